package report

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

// A4 layout constants, in millimeters.
const (
	pageMargin = 10.0
	lineHeight = 5.5
	barWidth   = 60.0
	barHeight  = 3.5
)

// WritePDF renders the report to a single-page A4 PDF at path. Content
// that would overflow the page is scaled down uniformly and centered
// between the margins.
func WritePDF(r Report, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pageMargin)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	contentW := pageW - 2*pageMargin
	availH := pageH - 2*pageMargin

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	contentH := measure(pdf, tr, r, contentW)

	// Uniform scale-to-fit, anchored at the horizontal center so the
	// shrunken block stays centered between the margins.
	scale := 1.0
	if contentH > availH {
		scale = availH / contentH
	}
	if scale < 1.0 {
		pdf.TransformBegin()
		pdf.TransformScale(scale*100, scale*100, pageW/2, pageMargin)
	}

	draw(pdf, tr, r, contentW)

	if scale < 1.0 {
		pdf.TransformEnd()
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write PDF report: %w", err)
	}
	return nil
}

// measure runs the layout without drawing to find the content height.
func measure(pdf *fpdf.Fpdf, tr func(string) string, r Report, contentW float64) float64 {
	h := 0.0

	count := func(size float64, style, text string) {
		pdf.SetFont("Helvetica", style, size)
		lines := pdf.SplitText(tr(text), contentW)
		h += float64(len(lines)) * lineHeight
	}

	count(16, "B", "Climate Tech Adoption Readiness Report")
	h += lineHeight // spacer

	count(10, "", fmt.Sprintf("Company: %s", r.Profile.CompanyName))
	count(10, "", fmt.Sprintf("Contact: %s, %s", r.Profile.UserName, r.Profile.UserRole))
	count(10, "", fmt.Sprintf("Industry: %s    Size: %s", r.Profile.Industry, r.Profile.CompanySize))
	count(10, "", fmt.Sprintf("Primary Goal: %s", r.Profile.PrimaryGoal))
	h += lineHeight

	total := r.Scores.Total()
	count(13, "B", fmt.Sprintf("Overall Score: %d/%d - %s", total.RawScore, total.MaxScore, r.Level.Label))
	count(10, "I", r.Level.Description)
	h += lineHeight

	count(12, "B", "Section Scores")
	h += float64(len(r.Bank.Sections)) * (lineHeight + 1.5)
	h += lineHeight

	if r.Plan.Fallback() {
		count(9, "I", "Note: AI-generated recommendations were unavailable; the plan below is a fallback.")
		h += lineHeight / 2
	}
	for _, ps := range planSections(r.Plan.Plan) {
		if len(ps.Items) == 0 {
			continue
		}
		count(11, "B", ps.Heading)
		for _, item := range ps.Items {
			count(10, "", "- "+item)
		}
		h += lineHeight / 2
	}

	return h
}

// draw renders the report starting at the top margin.
func draw(pdf *fpdf.Fpdf, tr func(string) string, r Report, contentW float64) {
	pdf.SetXY(pageMargin, pageMargin)

	write := func(size float64, style, text string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.SetX(pageMargin)
		pdf.MultiCell(contentW, lineHeight, tr(text), "", "L", false)
	}
	spacer := func(h float64) {
		pdf.SetY(pdf.GetY() + h)
	}

	pdf.SetTextColor(16, 59, 42)
	write(16, "B", "Climate Tech Adoption Readiness Report")
	spacer(lineHeight)

	pdf.SetTextColor(0, 0, 0)
	write(10, "", fmt.Sprintf("Company: %s", r.Profile.CompanyName))
	write(10, "", fmt.Sprintf("Contact: %s, %s", r.Profile.UserName, r.Profile.UserRole))
	write(10, "", fmt.Sprintf("Industry: %s    Size: %s", r.Profile.Industry, r.Profile.CompanySize))
	write(10, "", fmt.Sprintf("Primary Goal: %s", r.Profile.PrimaryGoal))
	spacer(lineHeight)

	total := r.Scores.Total()
	pdf.SetTextColor(16, 59, 42)
	write(13, "B", fmt.Sprintf("Overall Score: %d/%d - %s", total.RawScore, total.MaxScore, r.Level.Label))
	pdf.SetTextColor(80, 80, 80)
	write(10, "I", r.Level.Description)
	spacer(lineHeight)

	pdf.SetTextColor(0, 0, 0)
	write(12, "B", "Section Scores")
	for _, sec := range r.Bank.Sections {
		s := r.Scores[sec.ID]
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetX(pageMargin)
		label := fmt.Sprintf("%s  %d/%d (%d%%)", sec.Title, s.RawScore, s.MaxScore, s.Percentage)
		pdf.CellFormat(contentW-barWidth, lineHeight, tr(label), "", 0, "L", false, 0, "")

		// Score bar, filled to the section percentage.
		barX := pageMargin + contentW - barWidth
		barY := pdf.GetY() + (lineHeight-barHeight)/2
		pdf.SetFillColor(229, 231, 235)
		pdf.Rect(barX, barY, barWidth, barHeight, "F")
		pdf.SetFillColor(82, 229, 163)
		pdf.Rect(barX, barY, barWidth*float64(s.Percentage)/100, barHeight, "F")

		pdf.Ln(lineHeight + 1.5)
	}
	spacer(lineHeight)

	if r.Plan.Fallback() {
		pdf.SetTextColor(146, 64, 14)
		write(9, "I", "Note: AI-generated recommendations were unavailable; the plan below is a fallback.")
		spacer(lineHeight / 2)
	}

	for _, ps := range planSections(r.Plan.Plan) {
		if len(ps.Items) == 0 {
			continue
		}
		pdf.SetTextColor(16, 59, 42)
		write(11, "B", ps.Heading)
		pdf.SetTextColor(0, 0, 0)
		for _, item := range ps.Items {
			write(10, "", "- "+item)
		}
		spacer(lineHeight / 2)
	}
}
