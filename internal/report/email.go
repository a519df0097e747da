package report

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

const emailSubject = "Your Climate Tech Readiness Report from Climate Insider"

// EmailBody renders the plain-text body of the share email: readiness
// tier, total score, and every non-empty action plan section.
func EmailBody(r Report) string {
	var b strings.Builder

	total := r.Scores.Total()

	b.WriteString(fmt.Sprintf("Dear %s,\n\n", r.Profile.UserName))
	b.WriteString("Thank you for completing the Climate Tech Adoption Readiness Assessment. Here is a summary of your results and personalized action plan.\n\n")
	b.WriteString(fmt.Sprintf("Overall Score: %d/%d - %s\n\n", total.RawScore, total.MaxScore, r.Level.Label))

	for _, ps := range planSections(r.Plan.Plan) {
		if len(ps.Items) == 0 {
			continue
		}
		b.WriteString(ps.Heading + "\n")
		for _, item := range ps.Items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Best regards,\nThe Climate Insider Team\n")

	return b.String()
}

// MailtoURL builds a mailto: URL addressed to the user's own email with
// the subject and body pre-filled.
func MailtoURL(r Report) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		r.Profile.UserEmail,
		escapeMailto(emailSubject),
		escapeMailto(EmailBody(r)))
}

// escapeMailto percent-encodes a mailto header value. QueryEscape uses
// '+' for spaces, which mail clients do not decode, so spaces become %20.
func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// OpenMailto hands the mailto URL to the platform's default opener,
// which launches the user's mail client with the draft. This is a
// client-side hand-off; nothing is sent by the app.
func OpenMailto(mailtoURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", mailtoURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", mailtoURL)
	default:
		cmd = exec.Command("xdg-open", mailtoURL)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open mail client: %w", err)
	}
	return nil
}
