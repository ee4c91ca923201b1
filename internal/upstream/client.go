package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"takeoutpages/internal/models"
)

// Client talks to the restaurant data API. All page and admin reads, plus
// order creation, go through here; the service keeps no data of its own.
type Client struct {
	httpClient *http.Client
	BaseURL    string
	AdminToken string
}

// NewClient creates a data API client. adminToken may be empty when the
// admin surface is unused.
func NewClient(baseURL, adminToken string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Second * 10,
		},
		BaseURL:    baseURL,
		AdminToken: adminToken,
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, admin bool) (*http.Response, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if admin && c.AdminToken != "" {
		req.Header.Set("X-Admin-Token", c.AdminToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("data API %s %s: status %d", method, path, resp.StatusCode)
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, admin bool, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil, admin)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body any, admin bool, out any) error {
	resp, err := c.do(ctx, method, path, nil, body, admin)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(out)
}

func pageQuery(page, pageSize int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
	return query
}

// GetRestaurant fetches the restaurant record for a state/city/slug path.
func (c *Client) GetRestaurant(ctx context.Context, state, city, slug string) (*models.RestaurantDetail, error) {
	var detail models.RestaurantDetail
	path := fmt.Sprintf("/restaurants/%s/%s/%s", state, city, slug)
	if err := c.getJSON(ctx, path, nil, false, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// GetMenu fetches the live menu for a restaurant, if one is on file.
func (c *Client) GetMenu(ctx context.Context, state, city, slug string) (*models.Menu, error) {
	var menu models.Menu
	path := fmt.Sprintf("/menus/%s/%s/%s", state, city, slug)
	if err := c.getJSON(ctx, path, nil, false, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// ListStates fetches the state browse listing.
func (c *Client) ListStates(ctx context.Context) ([]models.StateInfo, error) {
	var states []models.StateInfo
	if err := c.getJSON(ctx, "/browse/states", nil, false, &states); err != nil {
		return nil, err
	}
	return states, nil
}

// ListCities fetches one page of cities for a state.
func (c *Client) ListCities(ctx context.Context, state string, page, pageSize int) (*models.Paginated[models.CityInfo], error) {
	var cities models.Paginated[models.CityInfo]
	path := fmt.Sprintf("/browse/%s/cities", state)
	if err := c.getJSON(ctx, path, pageQuery(page, pageSize), false, &cities); err != nil {
		return nil, err
	}
	return &cities, nil
}

// ListRestaurants fetches one page of restaurants for a city.
func (c *Client) ListRestaurants(ctx context.Context, state, city string, page, pageSize int) (*models.Paginated[models.RestaurantListItem], error) {
	var restaurants models.Paginated[models.RestaurantListItem]
	path := fmt.Sprintf("/browse/%s/%s/restaurants", state, city)
	if err := c.getJSON(ctx, path, pageQuery(page, pageSize), false, &restaurants); err != nil {
		return nil, err
	}
	return &restaurants, nil
}

// Search runs a full-text restaurant search, optionally scoped to a
// state and city.
func (c *Client) Search(ctx context.Context, q, state, city string, page, pageSize int) (*models.Paginated[models.SearchResult], error) {
	query := pageQuery(page, pageSize)
	query.Set("q", q)
	if state != "" {
		query.Set("state", state)
	}
	if city != "" {
		query.Set("city", city)
	}
	var results models.Paginated[models.SearchResult]
	if err := c.getJSON(ctx, "/search", query, false, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// CreateOrder submits an order for a restaurant and returns the created
// order record.
func (c *Client) CreateOrder(ctx context.Context, state, city, slug string, payload models.OrderCreate) (*models.Order, error) {
	var order models.Order
	path := fmt.Sprintf("/orders/%s/%s/%s", state, city, slug)
	if err := c.sendJSON(ctx, http.MethodPost, path, payload, false, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// GetOrder fetches a created order by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.getJSON(ctx, "/orders/"+orderID, nil, false, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// LeadsQuery narrows and sorts the admin leads listing.
type LeadsQuery struct {
	State    string
	SortBy   string
	SortDir  string
	Page     int
	PageSize int
}

func (q LeadsQuery) values() url.Values {
	values := pageQuery(q.Page, q.PageSize)
	if q.State != "" {
		values.Set("state", q.State)
	}
	if q.SortBy != "" {
		values.Set("sort_by", q.SortBy)
	}
	if q.SortDir != "" {
		values.Set("sort_dir", q.SortDir)
	}
	return values
}

// Leads fetches one page of scored sales leads with their stats block.
func (c *Client) Leads(ctx context.Context, query LeadsQuery) (*models.LeadsResponse, error) {
	var leads models.LeadsResponse
	if err := c.getJSON(ctx, "/admin/leads", query.values(), true, &leads); err != nil {
		return nil, err
	}
	return &leads, nil
}

// LeadsCSV fetches the leads export. The bytes are the upstream CSV
// verbatim, BOM included.
func (c *Client) LeadsCSV(ctx context.Context, query LeadsQuery) ([]byte, error) {
	values := query.values()
	values.Del("page")
	values.Del("page_size")
	resp, err := c.do(ctx, http.MethodGet, "/admin/leads/csv", values, nil, true)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// AdminMenu fetches a restaurant's menu through the admin surface,
// inactive entries included.
func (c *Client) AdminMenu(ctx context.Context, state, city, slug string) (*models.Menu, error) {
	var menu models.Menu
	path := fmt.Sprintf("/admin/menus/%s/%s/%s", state, city, slug)
	if err := c.getJSON(ctx, path, nil, true, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// UpsertMenu replaces a restaurant's menu and returns the stored result.
func (c *Client) UpsertMenu(ctx context.Context, state, city, slug string, payload models.MenuUpsert) (*models.Menu, error) {
	var menu models.Menu
	path := fmt.Sprintf("/admin/menus/%s/%s/%s", state, city, slug)
	if err := c.sendJSON(ctx, http.MethodPut, path, payload, true, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// SetTemplate stores a restaurant's template key. An empty key clears the
// stored preference, dropping the restaurant back to hash selection.
func (c *Client) SetTemplate(ctx context.Context, state, city, slug, templateKey string) (*models.RestaurantDetail, error) {
	var detail models.RestaurantDetail
	path := fmt.Sprintf("/admin/menus/%s/%s/%s/template", state, city, slug)
	payload := models.TemplateUpdate{TemplateKey: templateKey}
	if err := c.sendJSON(ctx, http.MethodPut, path, payload, true, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}
