package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"takeoutpages/internal/models"
)

// ApiClient handles API requests to the takeoutpages admin API
type ApiClient struct {
	httpClient *http.Client
	BaseURL    string
	AdminToken string
	UseMock    bool
}

// NewApiClient creates a new API client
func NewApiClient() *ApiClient {
	baseURL := os.Getenv("TAKEOUTPAGES_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := &ApiClient{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL:    baseURL,
		AdminToken: os.Getenv("TAKEOUTPAGES_ADMIN_TOKEN"),
		UseMock:    false, // Default to trying the real server first
	}

	// Verify connectivity - if server is not available, use mock data
	if !client.ping() {
		fmt.Printf("Warning: API server at %s is not available. Using mock data.\n", baseURL)
		client.UseMock = true
	}

	return client
}

// ping checks if the API server is available
func (c *ApiClient) ping() bool {
	resp, err := c.httpClient.Get(c.BaseURL + "/health")
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *ApiClient) get(path string, query url.Values) (*http.Response, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return nil, err
	}
	if c.AdminToken != "" {
		req.Header.Set("X-Admin-Token", c.AdminToken)
	}

	return c.httpClient.Do(req)
}

// GetLeads retrieves the lead board, optionally filtered to one state
func (c *ApiClient) GetLeads(state, sortBy, sortDir string, page, pageSize int) (*models.LeadsResponse, error) {
	if c.UseMock {
		return c.getMockLeads(state), nil
	}

	query := url.Values{}
	if state != "" {
		query.Set("state", state)
	}
	if sortBy != "" {
		query.Set("sort_by", sortBy)
	}
	if sortDir != "" {
		query.Set("sort_dir", sortDir)
	}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("page_size", fmt.Sprintf("%d", pageSize))

	resp, err := c.get("/admin/leads", query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get leads with status code: %d", resp.StatusCode)
	}

	var leads models.LeadsResponse
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, err
	}

	return &leads, nil
}

// ExportLeadsCSV downloads the lead board as CSV and writes it to path
func (c *ApiClient) ExportLeadsCSV(state, sortBy, sortDir, path string) error {
	if c.UseMock {
		return fmt.Errorf("CSV export requires a running API server")
	}

	query := url.Values{}
	if state != "" {
		query.Set("state", state)
	}
	if sortBy != "" {
		query.Set("sort_by", sortBy)
	}
	if sortDir != "" {
		query.Set("sort_dir", sortDir)
	}

	resp, err := c.get("/admin/leads/csv", query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to export leads with status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Mock data generators
// getMockLeads generates a small static lead board for offline demos
func (c *ApiClient) getMockLeads(state string) *models.LeadsResponse {
	rating := func(v float64) *float64 { return &v }
	count := func(v int) *int { return &v }

	items := []models.LeadItem{
		{
			RestaurantID:          "mock-1",
			Name:                  "Golden Dragon",
			City:                  "San Francisco",
			State:                 "CA",
			Phone:                 "(415) 555-0134",
			Platform:              "none",
			Rating:                rating(4.6),
			UserRatingCount:       count(182),
			LeadScore:             86,
			EstimatedMonthlySpend: 420,
			StateSlug:             "california",
			CitySlug:              "san-francisco",
			RestaurantSlug:        "golden-dragon",
		},
		{
			RestaurantID:          "mock-2",
			Name:                  "Jade Palace",
			City:                  "Sacramento",
			State:                 "CA",
			Phone:                 "(916) 555-0171",
			WebsiteURL:            "http://jadepalace.example",
			Platform:              "legacy",
			AuditError:            "connection timed out",
			Rating:                rating(4.4),
			UserRatingCount:       count(95),
			LeadScore:             74,
			EstimatedMonthlySpend: 310,
			StateSlug:             "california",
			CitySlug:              "sacramento",
			RestaurantSlug:        "jade-palace",
		},
		{
			RestaurantID:          "mock-3",
			Name:                  "Lucky Bamboo",
			City:                  "Brooklyn",
			State:                 "NY",
			Phone:                 "(718) 555-0119",
			WebsiteURL:            "https://luckybamboo.example",
			Platform:              "chownow",
			HasOnlineOrdering:     true,
			Rating:                rating(4.8),
			UserRatingCount:       count(240),
			LeadScore:             52,
			EstimatedMonthlySpend: 180,
			StateSlug:             "new-york",
			CitySlug:              "brooklyn",
			RestaurantSlug:        "lucky-bamboo",
		},
	}

	// Filter by state if specified
	if state != "" {
		var filtered []models.LeadItem
		for _, lead := range items {
			if lead.State == state {
				filtered = append(filtered, lead)
			}
		}
		items = filtered
	}

	return &models.LeadsResponse{
		Items:      items,
		Total:      len(items),
		Page:       1,
		PageSize:   20,
		TotalPages: 1,
		Stats: models.LeadStats{
			TotalRestaurants:   len(items),
			NoWebsiteCount:     1,
			BrokenWebsiteCount: 1,
			AvgLeadScore:       70.7,
		},
	}
}
