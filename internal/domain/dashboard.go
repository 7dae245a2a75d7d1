package domain

// DashboardStats são as contagens brutas do estoque de um usuário
type DashboardStats struct {
	Total      int     `json:"total"`
	Available  int     `json:"available"`
	Sold       int     `json:"sold"`
	Rented     int     `json:"rented"`
	TotalValue float64 `json:"total_value"`
}

type Broker struct {
	Name  string `json:"name"`
	Deals int    `json:"deals"`
}

// Insights são os indicadores comerciais exibidos no painel
type Insights struct {
	ClosedDeals      int    `json:"closed_deals"`
	NewLeads         int    `json:"new_leads"`
	Visits           int    `json:"visits"`
	Proposals        int    `json:"proposals"`
	Closings         int    `json:"closings"`
	Pipeline         int    `json:"pipeline"`
	ResponseMinutes  int    `json:"response_minutes"`
	ProjectedRevenue int64  `json:"projected_revenue"`
	AutomationScore  int    `json:"automation_score"`
	ConversionRate   int    `json:"conversion_rate"`
	AverageTicket    int64  `json:"average_ticket"`
	InventoryHealth  int    `json:"inventory_health"`
	SiteScore        int    `json:"site_score"`
	BestBroker       Broker `json:"best_broker"`
}

type FormattedMoney struct {
	TotalValue       string `json:"total_value"`
	ProjectedRevenue string `json:"projected_revenue"`
	AverageTicket    string `json:"average_ticket"`
}

type DashboardResponse struct {
	UserEmail string         `json:"user_email"`
	Stats     DashboardStats `json:"stats"`
	Insights  Insights       `json:"insights"`
	Formatted FormattedMoney `json:"formatted"`
}
