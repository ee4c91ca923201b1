package models

// LeadItem is one scored sales lead from the admin leads endpoint.
type LeadItem struct {
	RestaurantID          string   `json:"restaurant_id"`
	Name                  string   `json:"name"`
	City                  string   `json:"city"`
	State                 string   `json:"state"`
	Phone                 string   `json:"phone"`
	WebsiteURL            string   `json:"website_url"`
	Platform              string   `json:"platform"`
	HasOnlineOrdering     bool     `json:"has_online_ordering"`
	HTTPStatus            *int     `json:"http_status"`
	SSLValid              *bool    `json:"ssl_valid"`
	AuditError            string   `json:"audit_error"`
	Rating                *float64 `json:"rating"`
	UserRatingCount       *int     `json:"user_rating_count"`
	LeadScore             int      `json:"lead_score"`
	EstimatedMonthlySpend int      `json:"estimated_monthly_spend"`
	StateSlug             string   `json:"state_slug"`
	CitySlug              string   `json:"city_slug"`
	RestaurantSlug        string   `json:"restaurant_slug"`
}

// ChartEntry is one label/value pair in the lead stats breakdowns.
type ChartEntry struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// LeadStats aggregates the leads list for the ops dashboard.
type LeadStats struct {
	TotalRestaurants   int          `json:"total_restaurants"`
	NoWebsiteCount     int          `json:"no_website_count"`
	BrokenWebsiteCount int          `json:"broken_website_count"`
	AvgLeadScore       float64      `json:"avg_lead_score"`
	PlatformCounts     []ChartEntry `json:"platform_counts"`
	ScoreDistribution  []ChartEntry `json:"score_distribution"`
	WebsiteStatus      []ChartEntry `json:"website_status"`
	OrderingCounts     []ChartEntry `json:"ordering_counts"`
}

// LeadsResponse is the paginated admin leads listing with its stats block.
type LeadsResponse struct {
	Stats      LeadStats  `json:"stats"`
	Items      []LeadItem `json:"items"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	TotalPages int        `json:"total_pages"`
}
