package models

// RestaurantDetail is the full restaurant record returned by the data API.
type RestaurantDetail struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Phone             string         `json:"phone"`
	WebsiteURL        string         `json:"website_url"`
	HasOnlineOrdering bool           `json:"has_online_ordering"`
	HasAIPhone        bool           `json:"has_ai_phone"`
	IsClaimed         bool           `json:"is_claimed"`
	Address1          string         `json:"address1"`
	Address2          string         `json:"address2"`
	City              string         `json:"city"`
	State             string         `json:"state"`
	Zip               string         `json:"zip"`
	Lat               *float64       `json:"lat"`
	Lng               *float64       `json:"lng"`
	Timezone          string         `json:"timezone"`
	HoursJSON         map[string]any `json:"hours_json"`
	StateSlug         string         `json:"state_slug"`
	CitySlug          string         `json:"city_slug"`
	RestaurantSlug    string         `json:"restaurant_slug"`
	IsCanonical       bool           `json:"is_canonical"`
	TemplateKey       string         `json:"template_key"`
}

// RestaurantListItem is the compact shape used on browse pages.
type RestaurantListItem struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address1       string `json:"address1"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zip            string `json:"zip"`
	StateSlug      string `json:"state_slug"`
	CitySlug       string `json:"city_slug"`
	RestaurantSlug string `json:"restaurant_slug"`
}

// StateInfo is one row of the state browse listing.
type StateInfo struct {
	State           string `json:"state"`
	RestaurantCount int    `json:"restaurant_count"`
}

// CityInfo is one row of the city browse listing for a state.
type CityInfo struct {
	City            string `json:"city"`
	CitySlug        string `json:"city_slug"`
	State           string `json:"state"`
	RestaurantCount int    `json:"restaurant_count"`
}

// SearchResult is a single full-text search hit.
type SearchResult struct {
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Address1       string  `json:"address1"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	StateSlug      string  `json:"state_slug"`
	CitySlug       string  `json:"city_slug"`
	RestaurantSlug string  `json:"restaurant_slug"`
	Rank           float64 `json:"rank"`
}

// Paginated wraps any list endpoint response from the data API.
type Paginated[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}
