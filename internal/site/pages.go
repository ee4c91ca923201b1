package site

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"takeoutpages/internal/demo"
	"takeoutpages/internal/menu"
	"takeoutpages/internal/models"
)

// Fetcher is the slice of the data API client a restaurant page needs.
type Fetcher interface {
	GetRestaurant(ctx context.Context, state, city, slug string) (*models.RestaurantDetail, error)
	GetMenu(ctx context.Context, state, city, slug string) (*models.Menu, error)
}

// RestaurantPage is the complete view model for one storefront page:
// the restaurant record, the resolved template, and every display block
// the templates consume.
type RestaurantPage struct {
	Restaurant      *models.RestaurantDetail `json:"restaurant"`
	TemplateKey     string                   `json:"templateKey"`
	TemplateLabel   string                   `json:"templateLabel"`
	Tagline         string                   `json:"tagline"`
	Menu            []menu.Category          `json:"menu"`
	OrderingEnabled bool                     `json:"orderingEnabled"`
	Reviews         []demo.Review            `json:"reviews"`
	Gallery         []demo.GalleryItem       `json:"gallery"`
	Specials        []demo.Special           `json:"specials"`
	Highlights      []string                 `json:"highlights"`
	Hours           demo.HoursData           `json:"hours"`
	MapsURL         string                   `json:"mapsUrl"`
	BasePath        string                   `json:"basePath"`
	OrderPath       string                   `json:"orderPath"`
}

// BuildRestaurantPage assembles the view model for one restaurant. The
// restaurant record and menu are fetched concurrently; either fetch
// failing is swallowed. No restaurant means no page (nil). No menu means
// the demo generator fills in and ordering is disabled.
func BuildRestaurantPage(ctx context.Context, f Fetcher, state, city, slug, requestedTemplate string) *RestaurantPage {
	var (
		restaurant *models.RestaurantDetail
		wireMenu   *models.Menu
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if detail, err := f.GetRestaurant(ctx, state, city, slug); err == nil {
			restaurant = detail
		}
	}()
	go func() {
		defer wg.Done()
		if m, err := f.GetMenu(ctx, state, city, slug); err == nil {
			wireMenu = m
		}
	}()
	wg.Wait()

	if restaurant == nil {
		return nil
	}

	templateKey := demo.SelectTemplate(restaurant.ID, restaurant.Name, restaurant.TemplateKey, requestedTemplate)

	var categories []menu.Category
	if wireMenu != nil {
		categories = menu.FromAPI(*wireMenu)
	} else {
		categories = demo.BuildMockMenu(restaurant.Name)
	}

	basePath := fmt.Sprintf("/%s/%s/%s", restaurant.StateSlug, restaurant.CitySlug, restaurant.RestaurantSlug)

	return &RestaurantPage{
		Restaurant:      restaurant,
		TemplateKey:     templateKey,
		TemplateLabel:   demo.TemplateLabels[templateKey],
		Tagline:         demo.BuildTagline(restaurant.Name, restaurant.City),
		Menu:            categories,
		OrderingEnabled: wireMenu != nil,
		Reviews:         demo.BuildMockReviews(restaurant.Name, restaurant.City),
		Gallery:         demo.BuildMockGallery(restaurant.Name),
		Specials:        demo.BuildMockSpecials(restaurant.Name),
		Highlights:      demo.BuildHighlights(restaurant.Name, restaurant.City),
		Hours:           demo.BuildHours(restaurant.HoursJSON),
		MapsURL:         BuildMapsURL(restaurant),
		BasePath:        basePath,
		OrderPath:       basePath,
	}
}

// BuildMapsURL links a restaurant to Google Maps, preferring coordinates
// over the street address.
func BuildMapsURL(r *models.RestaurantDetail) string {
	if r.Lat != nil && r.Lng != nil {
		return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", *r.Lat, *r.Lng)
	}
	fullAddress := fmt.Sprintf("%s, %s, %s %s", r.Address1, r.City, r.State, r.Zip)
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(fullAddress)
}
