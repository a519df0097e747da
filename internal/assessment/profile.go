package assessment

import (
	"fmt"
	"strings"
)

// CompanyProfile holds the intake form fields captured before the
// assessment starts. Immutable once the assessment begins; discarded on
// restart.
type CompanyProfile struct {
	UserName        string
	UserRole        string
	UserPhone       string // optional
	UserEmail       string
	CompanyName     string
	Industry        string
	CompanySize     string
	PrimaryGoal     string
	Timeframe       string
	GeographicScope string
	Initiatives     string // optional free-text notes
}

// Intake option catalogs.
var (
	IndustryOptions = []string{
		"Manufacturing & Industrial",
		"Technology & Software",
		"Financial Services & Insurance",
		"Retail & Consumer Goods",
		"Healthcare & Pharmaceuticals",
		"Transportation & Logistics",
		"Energy & Utilities",
		"Construction & Real Estate",
		"Agriculture & Food",
		"Professional Services",
		"Other",
	}

	CompanySizeOptions = []string{
		"Small (1-50 employees)",
		"Medium (51-500 employees)",
		"Large (501-5000 employees)",
		"Enterprise (5000+ employees)",
	}

	PrimaryGoalOptions = []string{
		"Achieve net-zero emissions by 2030",
		"Achieve net-zero emissions by 2050",
		"Reduce operational costs through efficiency",
		"Meet regulatory compliance requirements",
		"Enhance brand reputation and ESG ratings",
		"Access green financing and investment",
		"Gain competitive advantage in sustainability",
		"Respond to customer/stakeholder demands",
		"Other",
	}

	TimeframeOptions       = []string{"0-1 years", "1-3 years", "3-5 years", "5+ years"}
	GeographicScopeOptions = []string{"Local", "National", "Regional", "Global"}
)

// FieldError is a per-field validation failure, surfaced inline on the
// intake form.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that all mandatory profile fields are present and that
// the email looks like an address. Phone and initiatives are optional.
// Returns one FieldError per problem.
func (p CompanyProfile) Validate() []FieldError {
	var errs []FieldError

	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, FieldError{Field: field, Message: "required"})
		}
	}

	require("name", p.UserName)
	require("role", p.UserRole)
	require("email", p.UserEmail)
	require("company", p.CompanyName)
	require("industry", p.Industry)
	require("size", p.CompanySize)
	require("goal", p.PrimaryGoal)
	require("timeframe", p.Timeframe)
	require("scope", p.GeographicScope)

	if email := strings.TrimSpace(p.UserEmail); email != "" {
		at := strings.Index(email, "@")
		if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
			errs = append(errs, FieldError{Field: "email", Message: "not a valid email address"})
		}
	}

	return errs
}
