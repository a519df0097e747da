package assessment

// DefaultBank returns the Climate Tech Adoption Readiness question bank.
// Section budgets sum to exactly 100 points; ValidateBank asserts this
// at startup.
func DefaultBank() *Bank {
	return &Bank{Sections: []Section{
		{
			ID:          "section1",
			Title:       "Research & Development Capacity",
			Description: "This section evaluates your organization's ability to innovate and develop new climate technologies, a crucial driver for long-term competitive advantage.",
			MaxPoints:   20,
			Questions: []Question{
				{
					ID:   "q1_1",
					Text: "How many climate technology patents, research publications, or innovation projects has your company filed/completed in the past 3 years?",
					Options: []Option{
						{Text: "None", Points: 0},
						{Text: "1 patent/publication", Points: 2},
						{Text: "2-4", Points: 4},
						{Text: "5-14", Points: 6},
						{Text: "15+", Points: 8},
					},
					HelpText:  "Include patents in renewable energy, energy efficiency, carbon capture, sustainable materials, etc.",
					MaxPoints: 8,
				},
				{
					ID:   "q1_2",
					Text: "What best describes your company's climate technology research capabilities?",
					Options: []Option{
						{Text: "No dedicated research infrastructure", Points: 0},
						{Text: "Limited internal R&D with some external partnerships", Points: 2},
						{Text: "Specialized R&D capabilities across locations with climate focus", Points: 4},
						{Text: "Dedicated physical R&D facility or extensive strategic research partnerships", Points: 6},
					},
					HelpText:  "Consider both in-house facilities and formal partnerships with research institutions.",
					MaxPoints: 6,
				},
				{
					ID:   "q1_3",
					Text: "How does your company disclose climate technology R&D investments?",
					Options: []Option{
						{Text: "No separate disclosure", Points: 0},
						{Text: "References climate innovation without financial details", Points: 2},
						{Text: "Discloses significant investment but not separated from broader R&D", Points: 4},
						{Text: "Provides specific climate tech R&D expenditure disclosure (≥20% of total R&D)", Points: 6},
					},
					HelpText:  "This refers to public disclosures in annual reports, sustainability reports, or investor briefings.",
					MaxPoints: 6,
				},
			},
		},
		{
			ID:          "section2",
			Title:       "Human Capital & Leadership",
			Description: "Assesses the organizational structure, leadership commitment, and internal expertise dedicated to climate technology, which are essential for successful strategy execution.",
			MaxPoints:   15,
			Questions: []Question{
				{
					ID:   "q2_1",
					Text: "How is climate technology organized within your company?",
					Options: []Option{
						{Text: "No formal structure", Points: 0},
						{Text: "Project-based initiatives without formal structure", Points: 2},
						{Text: "Integrated teams within existing operations", Points: 4},
						{Text: "Formal dedicated division/unit with independent governance", Points: 5},
					},
					HelpText:  "Consider how accountability and resources for climate tech are structured.",
					MaxPoints: 5,
				},
				{
					ID:   "q2_2",
					Text: "What level of executive leadership exists for climate technology?",
					Options: []Option{
						{Text: "No executive leadership", Points: 0},
						{Text: "Distributed responsibilities without clear accountability", Points: 1},
						{Text: "Integrated into existing executive roles (e.g., CTO, COO)", Points: 3},
						{Text: "C-suite role with explicit climate tech responsibility (e.g., Chief Sustainability Officer)", Points: 5},
					},
					HelpText:  "This assesses the level of strategic importance assigned to climate tech.",
					MaxPoints: 5,
				},
				{
					ID:   "q2_3",
					Text: "What climate technology skill development programs does your company offer?",
					Options: []Option{
						{Text: "No systematic programs", Points: 0},
						{Text: "Limited or ad hoc training activities", Points: 1},
						{Text: "Broad programs integrating climate topics into general training", Points: 3},
						{Text: "Formal, structured, recurring climate tech training programs for relevant staff", Points: 5},
					},
					HelpText:  "Includes internal training, external courses, and certification programs.",
					MaxPoints: 5,
				},
			},
		},
		{
			ID:          "section3",
			Title:       "Collaborative Ecosystem",
			Description: "Measures your company's engagement with external partners, including industry consortia, universities, and startups, to leverage collective intelligence and resources.",
			MaxPoints:   20,
			Questions: []Question{
				{
					ID:   "q3_1",
					Text: "What is your company's involvement in climate technology industry consortia?",
					Options: []Option{
						{Text: "No participation", Points: 0},
						{Text: "Minimal/symbolic memberships", Points: 1},
						{Text: "Active participant in major consortia", Points: 3},
						{Text: "Founding member or leadership role in multiple consortia", Points: 4},
					},
					HelpText:  "Consortia are groups of companies working together on shared challenges.",
					MaxPoints: 4,
				},
				{
					ID:   "q3_2",
					Text: "How extensive are your university/research institution partnerships for climate technology?",
					Options: []Option{
						{Text: "No partnerships", Points: 0},
						{Text: "Informal or project-specific collaborations", Points: 1},
						{Text: "One formal long-term partnership or multiple smaller ones", Points: 3},
						{Text: "Multiple formal, long-term strategic research partnerships", Points: 4},
					},
					HelpText:  "Formal partnerships often involve multi-year funding and shared research goals.",
					MaxPoints: 4,
				},
				{
					ID:   "q3_3",
					Text: "How many formal joint ventures focused on climate technology solutions does your company have?",
					Options: []Option{
						{Text: "None", Points: 0},
						{Text: "1-2 JVs", Points: 2},
						{Text: "3+ JVs", Points: 4},
					},
					HelpText:  "A joint venture is a business arrangement where two or more parties agree to pool their resources for the purpose of accomplishing a specific task.",
					MaxPoints: 4,
				},
				{
					ID:   "q3_4",
					Text: "How many climate tech startups has your company invested in through corporate venture or strategic programs?",
					Options: []Option{
						{Text: "None", Points: 0},
						{Text: "1-3", Points: 1},
						{Text: "4-6", Points: 3},
						{Text: "7+", Points: 4},
					},
					HelpText:  "Consider direct equity investments made by your company or its CVC arm.",
					MaxPoints: 4,
				},
				{
					ID:   "q3_5",
					Text: "How many climate tech companies has your company acquired in the last 3 years?",
					Options: []Option{
						{Text: "None", Points: 0},
						{Text: "1 acquisition", Points: 2},
						{Text: "2+ acquisitions", Points: 4},
					},
					HelpText:  "An acquisition is the purchase of one company by another.",
					MaxPoints: 4,
				},
			},
		},
		{
			ID:          "section4",
			Title:       "Technology Implementation",
			Description: "Examines the extent to which your company has deployed and operationalized climate technologies across its assets and value chain.",
			MaxPoints:   15,
			Questions: []Question{
				{
					ID:   "q4_1",
					Text: "How many major climate technology implementations does your company have operational or in advanced development?",
					Options: []Option{
						{Text: "None", Points: 0},
						{Text: "1-2 in development/pilot stage", Points: 2},
						{Text: "2-3 with at least one fully operational", Points: 4},
						{Text: "4+ operational or in advanced development", Points: 6},
					},
					HelpText:  "Examples: Energy efficiency systems, waste heat recovery, sustainable materials, circular economy processes.",
					MaxPoints: 6,
				},
				{
					ID:   "q4_2",
					Text: "What renewable energy projects does your company have?",
					Options: []Option{
						{Text: "None", Points: 0},
						{Text: "Pilot-scale projects only", Points: 1},
						{Text: "1-2 projects operational or confirmed", Points: 3},
						{Text: "Multiple projects operational or at Final Investment Decision (FID)", Points: 5},
					},
					HelpText:  "Includes on-site generation (e.g., solar panels) and off-site Power Purchase Agreements (PPAs).",
					MaxPoints: 5,
				},
				{
					ID:   "q4_3",
					Text: "How extensively has your company deployed digital technologies for emissions reduction?",
					Options: []Option{
						{Text: "No deployment", Points: 0},
						{Text: "Pilot-only without operational integration", Points: 1},
						{Text: "Partial deployment with indirect benefits for emissions", Points: 2},
						{Text: "Substantial deployment in certain segments (e.g., supply chain optimization)", Points: 3},
						{Text: "Full deployment across multiple facilities/operations with direct emissions tracking", Points: 4},
					},
					HelpText:  "Examples include IoT sensors for energy management, AI for process optimization, or blockchain for supply chain transparency.",
					MaxPoints: 4,
				},
			},
		},
		{
			ID:          "section5",
			Title:       "Regulatory & Risk Management",
			Description: "Evaluates your company's proactiveness in shaping climate policy and the maturity of its processes for managing and disclosing climate-related risks.",
			MaxPoints:   15,
			Questions: []Question{
				{
					ID:   "q5_1",
					Text: "How engaged is your company in climate policy and advocacy?",
					Options: []Option{
						{Text: "No public policy positions on climate", Points: 0},
						{Text: "Minimal climate policy statements, largely reactive", Points: 1},
						{Text: "Publicly supports high-level climate action (e.g., Paris Agreement)", Points: 3},
						{Text: "Has broad policy positions but lacks transparency on lobbying", Points: 5},
						{Text: "Publishes detailed policy positions with governance oversight and transparent lobbying", Points: 7},
					},
					HelpText:  "Reflects your company's proactive stance in shaping climate-related regulations.",
					MaxPoints: 7,
				},
				{
					ID:   "q5_2",
					Text: "How comprehensive is your company's climate risk management and disclosure?",
					Options: []Option{
						{Text: "No meaningful disclosure on climate risk", Points: 0},
						{Text: "High-level commentary without a structured framework", Points: 1},
						{Text: "General disclosure with partial alignment to a framework (e.g., TCFD)", Points: 3},
						{Text: "Structured disclosure aligned with TCFD, including qualitative scenario analysis", Points: 6},
						{Text: "Full structured disclosure (TCFD) with quantitative financial impacts from scenario analysis", Points: 8},
					},
					HelpText:  "TCFD (Task Force on Climate-related Financial Disclosures) is the leading framework for climate risk reporting.",
					MaxPoints: 8,
				},
			},
		},
		{
			ID:          "section6",
			Title:       "Business Model Innovation",
			Description: "Focuses on how deeply climate technology is integrated into your core corporate strategy, capital allocation, and business structure to create new value.",
			MaxPoints:   15,
			Questions: []Question{
				{
					ID:   "q6_1",
					Text: "How central are climate technologies to your company's corporate strategy?",
					Options: []Option{
						{Text: "No integration, climate is seen as a compliance issue", Points: 0},
						{Text: "Symbolic mentions in reports with no clear strategic link", Points: 1},
						{Text: "Acknowledged as a strategic area with minimal capital allocation (<10% of capex)", Points: 3},
						{Text: "Well-integrated with significant capital allocation (≥10% of capex) to climate tech", Points: 6},
						{Text: "Central to corporate strategy with ≥20% capital allocation and dedicated business units", Points: 8},
					},
					HelpText:  "Capex (Capital Expenditure) is funds used by a company to acquire, upgrade, and maintain physical assets.",
					MaxPoints: 8,
				},
				{
					ID:   "q6_2",
					Text: "Which of the following does your company have for climate technology? (Select all that apply)",
					Kind: MultiSelect,
					Options: []Option{
						{Text: "Named business unit or dedicated division", Points: 1},
						{Text: "Covers multiple climate technology domains (e.g., renewables, efficiency)", Points: 1},
						{Text: "Dedicated leadership reporting to senior management", Points: 1},
						{Text: "Project or financial segmentation with disclosed metrics", Points: 1},
						{Text: "Strategic partnerships or external investment structure", Points: 1},
						{Text: "Integration in corporate strategy and investor communications", Points: 1},
						{Text: "Standalone targets, KPIs, or performance metrics", Points: 1},
					},
					HelpText:  "This question assesses the maturity of your business structure around climate tech.",
					MaxPoints: 7,
				},
			},
		},
	}}
}
