package domain

type ContentSection struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type PrivacyContact struct {
	Company string `json:"company"`
	CRECI   string `json:"creci"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

type PrivacyPolicy struct {
	Title       string           `json:"title"`
	LastUpdated string           `json:"last_updated"`
	Intro       string           `json:"intro"`
	Sections    []ContentSection `json:"sections"`
	Contact     PrivacyContact   `json:"contact"`
}

type ModuleCard struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type ImplementationStep struct {
	Step  string `json:"step"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type IntegrationCard struct {
	Icon   string `json:"icon"`
	Title  string `json:"title"`
	Text   string `json:"text"`
	Status string `json:"status"`
}

type DashboardContent struct {
	Modules             []ModuleCard         `json:"modules"`
	ImplementationSteps []ImplementationStep `json:"implementation_steps"`
	Integrations        []IntegrationCard    `json:"integrations"`
	AutomationRoutines  []string             `json:"automation_routines"`
	LandingChecklist    []string             `json:"landing_checklist"`
}
