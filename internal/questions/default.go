package questions

// phaseNames maps each phase to the title shown in badges and summaries.
var phaseNames = map[int]string{
	1: "Client & Project Basics",
	2: "Core Customization",
	3: "Lead Generation & Integrations",
	4: "Automation & Smart Features",
	5: "Reports & Dashboards",
	6: "Training & Support",
	7: "Data & Go-Live",
}

// PhaseName returns the display title of a phase, or "" for unknown phases.
func PhaseName(phase int) string {
	return phaseNames[phase]
}

// CompanyKey is the answer key whose value names the client in export file names.
const CompanyKey = "company_name"

var defaultRegistry = MustNew([]Question{
	// Phase 1
	{Phase: 1, Key: CompanyKey, Kind: FreeText,
		Prompt: "Hi! What's the name of the company we're preparing the proposal for?"},
	{Phase: 1, Key: "contact_person", Kind: FreeText,
		Prompt: "Great! Who's the main point of contact? (Name + Designation, e.g., Mr. Rajesh Sharma, Sales Head)"},
	{Phase: 1, Key: "business_overview", Kind: FreeText,
		Prompt: "To make this proposal spot-on, tell me a bit more about the business:\n\n" +
			"• What does the company primarily do?\n" +
			"• What are your main products or services?\n" +
			"• Who is your target customer?"},
	{Phase: 1, Key: "current_process", Kind: FreeText,
		Prompt: "What's your current sales process like? (e.g., From inquiry → demo → proposal → closure)\n\n" +
			"And what tools/systems are you using right now for leads and customer data?"},
	{Phase: 1, Key: "team_size", Kind: FreeText,
		Prompt: "How many people will be using Bigin in total?\n\nQuick breakdown:\n" +
			"• Sales/BD: __\n• Managers: __\n• Support: __\n• Others: __"},
	{Phase: 1, Key: "pain_points", Kind: FreeText, Summarize: true,
		Prompt: "What's the biggest challenge your team faces today? (e.g., Lead leakage, no follow-up tracking, manual reporting, data scattered everywhere)"},

	// Phase 2
	{Phase: 2, Key: "modules", Kind: MultiSelect,
		Prompt:  "Which modules need heavy customization?",
		Options: []string{"Contacts", "Companies", "Deals", "Products", "Tasks", "Others"}},
	{Phase: 2, Key: "custom_fields", Kind: FreeText,
		Prompt: "Any special custom fields you want? (e.g., Franchise Code, Loan Type, Source of Lead, EMI Details, etc.)"},
	{Phase: 2, Key: "pipeline_count", Kind: SingleSelect,
		Prompt:  "How many sales pipelines do you need? (e.g., 1 for Retail, 1 for Franchise, 1 for Corporate)",
		Options: []string{"1", "2", "3", "4+"}},
	{Phase: 2, Key: "pipeline_stages", Kind: FreeText, Summarize: true,
		Prompt: "For your pipeline(s), tell me the stages in order.\n\n" +
			"Example: New → Qualified → Proposal → Negotiation → Closed Won\n\n" +
			"(If multiple pipelines, separate each with a semicolon)"},

	// Phase 3
	{Phase: 3, Key: "lead_sources", Kind: MultiSelect,
		Prompt: "From where do you get leads today?",
		Options: []string{"Facebook Lead Ads", "Instagram", "LinkedIn", "Google Ads", "IndiaMART",
			"TradeIndia", "Website", "WhatsApp", "Walk-ins", "Referrals", "Others"}},
	{Phase: 3, Key: "whatsapp_integration", Kind: SingleSelect,
		Prompt:  "Do you want WhatsApp Business API integration with Bigin?",
		Options: []string{"Yes", "No", "Maybe later"}},
	{Phase: 3, Key: "other_integrations", Kind: FreeText, Summarize: true,
		Prompt: "Any other integrations? (e.g., Zoho Books, Google Sheets, Zoho Inventory, etc.)"},

	// Phase 4
	{Phase: 4, Key: "auto_assignment", Kind: SingleSelect,
		Prompt:  "Should leads be auto-assigned to team members? (Based on city, product, source, etc.)",
		Options: []string{"Yes", "No"}},
	{Phase: 4, Key: "automations", Kind: MultiSelect,
		Prompt: "What automatic actions do you want?",
		Options: []string{"Task creation on stage change", "Email or SMS reminders",
			"Notification to owner on high-value deals", "Auto follow-up sequences", "Others"}},
	{Phase: 4, Key: "alerts", Kind: FreeText, Summarize: true,
		Prompt: "Any specific alerts needed? (e.g., Deal value > ₹5L → notify owner)"},

	// Phase 5
	{Phase: 5, Key: "reports", Kind: MultiSelect, Summarize: true,
		Prompt: "Which reports are important to you? (You can select 5–15)",
		Options: []string{"Daily activity report", "Lead source wise report", "User-wise performance",
			"Pipeline health", "Conversion ratio", "EOD summary", "Others"}},

	// Phase 6
	{Phase: 6, Key: "training", Kind: FreeText,
		Prompt: "Training needs:\n\n• Sales team: How many hours?\n• Admin: How many hours?\n" +
			"• Owner/Senior management session? (Yes/No)"},
	{Phase: 6, Key: "support_duration", Kind: SingleSelect,
		Prompt:  "How many months of hand-holding support do you want? (This affects pricing)",
		Options: []string{"1 Month", "3 Months", "6 Months", "12 Months"}},
	{Phase: 6, Key: "whatsapp_group", Kind: SingleSelect, Summarize: true,
		Prompt:  "Should we create a WhatsApp supervision group for daily coordination?",
		Options: []string{"Yes", "No"}},

	// Phase 7
	{Phase: 7, Key: "data_migration", Kind: SingleSelect,
		Prompt:  "Do you have existing data to import?",
		Options: []string{"Only basic (Name/Phone/Email) → Free", "Full history → Paid"}},
	{Phase: 7, Key: "spoc", Kind: FreeText, Final: true,
		Prompt: "Who will be the main person we coordinate with? (Should be tech-savvy – Name + Mobile)"},
})

// Default returns the built-in Bigin CRM proposal registry.
func Default() *Registry {
	return defaultRegistry
}
