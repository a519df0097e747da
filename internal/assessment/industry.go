package assessment

import (
	"fmt"
	"strings"
)

// fallbackIndustry is the catalog entry used when a profile's industry has
// no dedicated examples. It always exists in the catalog.
const fallbackIndustry = "Other"

// industryExamples maps each intake industry to technology examples shown
// alongside the implementation-count question.
var industryExamples = map[string][]string{
	"Manufacturing & Industrial":     {"Energy efficiency systems", "Waste heat recovery", "Sustainable materials", "Circular processes"},
	"Technology & Software":          {"Green IT infrastructure", "Sustainable data centers", "Renewable energy procurement", "AI for energy optimization"},
	"Financial Services & Insurance": {"Green bonds issuance platforms", "Climate risk analysis software", "Sustainable investment portfolio tools", "Parametric insurance for climate events"},
	"Retail & Consumer Goods":        {"Sustainable packaging solutions", "Supply chain transparency software", "Reverse logistics for circular economy", "Energy-efficient store lighting"},
	"Healthcare & Pharmaceuticals":   {"Green chemistry processes", "Energy-efficient lab equipment", "Sustainable medical device manufacturing", "Telehealth to reduce travel emissions"},
	"Transportation & Logistics":     {"Electric vehicle fleet", "Route optimization software", "Sustainable aviation fuel (SAF)", "Intermodal freight solutions"},
	"Energy & Utilities":             {"Smart grid technology", "Utility-scale battery storage", "Green hydrogen production", "Advanced metering infrastructure"},
	"Construction & Real Estate":     {"Low-carbon concrete", "Building energy management systems (BEMS)", "Prefabricated sustainable housing", "Geothermal heating/cooling"},
	"Agriculture & Food":             {"Precision agriculture sensors", "Alternative proteins", "Biofertilizers and biopesticides", "Agroforestry systems"},
	"Professional Services":          {"ESG reporting software", "Carbon accounting platforms", "Remote collaboration tools", "Sustainable business travel solutions"},
	fallbackIndustry:                 {"General energy efficiency", "Renewable energy procurement", "Waste reduction programs", "Sustainable supply chain management"},
}

// TechnologyExamples returns the example technologies for an industry.
// Unrecognized industries deliberately resolve to the "Other" entry rather
// than an empty list.
func TechnologyExamples(industry string) []string {
	if examples, ok := industryExamples[industry]; ok {
		return examples
	}
	return industryExamples[fallbackIndustry]
}

// implementationQuestionID is the one question whose help text is extended
// with industry-specific examples.
const implementationQuestionID = "q4_1"

// HelpTextFor returns the help text for a question, extended with
// industry-tailored technology examples where the question calls for them.
func HelpTextFor(q Question, industry string) string {
	if q.ID != implementationQuestionID {
		return q.HelpText
	}
	examples := TechnologyExamples(industry)
	return fmt.Sprintf("%s For your industry, this could include: %s.",
		q.HelpText, strings.Join(examples, ", "))
}
