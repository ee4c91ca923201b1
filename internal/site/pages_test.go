package site

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"takeoutpages/internal/demo"
	"takeoutpages/internal/models"
)

type fakeFetcher struct {
	restaurant *models.RestaurantDetail
	menu       *models.Menu
}

func (f *fakeFetcher) GetRestaurant(_ context.Context, _, _, _ string) (*models.RestaurantDetail, error) {
	if f.restaurant == nil {
		return nil, errors.New("not found")
	}
	return f.restaurant, nil
}

func (f *fakeFetcher) GetMenu(_ context.Context, _, _, _ string) (*models.Menu, error) {
	if f.menu == nil {
		return nil, errors.New("not found")
	}
	return f.menu, nil
}

func sampleRestaurant() *models.RestaurantDetail {
	return &models.RestaurantDetail{
		ID:             "r1",
		Name:           "Golden Dragon",
		Address1:       "123 Grand Ave",
		City:           "Oakland",
		State:          "CA",
		Zip:            "94610",
		StateSlug:      "california",
		CitySlug:       "oakland",
		RestaurantSlug: "golden-dragon",
	}
}

func sampleMenu() *models.Menu {
	return &models.Menu{
		ID:       "m1",
		IsActive: true,
		Categories: []models.MenuCategory{
			{
				ID:       "c1",
				Name:     "Entrees",
				IsActive: true,
				Items: []models.MenuItem{
					{ID: "i1", Name: "Kung Pao Chicken", PriceCents: 1550, IsActive: true},
				},
			},
		},
	}
}

func TestBuildRestaurantPage_NoRestaurant(t *testing.T) {
	page := BuildRestaurantPage(context.Background(), &fakeFetcher{}, "california", "oakland", "missing", "")
	assert.Nil(t, page)
}

func TestBuildRestaurantPage_WithMenu(t *testing.T) {
	f := &fakeFetcher{restaurant: sampleRestaurant(), menu: sampleMenu()}
	page := BuildRestaurantPage(context.Background(), f, "california", "oakland", "golden-dragon", "")

	assert.NotNil(t, page)
	assert.True(t, page.OrderingEnabled, "a real menu enables ordering")
	assert.Len(t, page.Menu, 1)
	assert.Equal(t, "Kung Pao Chicken", page.Menu[0].Items[0].Name)
	assert.Equal(t, 15.50, page.Menu[0].Items[0].Price)
	assert.Equal(t, "/california/oakland/golden-dragon", page.BasePath)
	assert.Equal(t, page.BasePath, page.OrderPath)
}

func TestBuildRestaurantPage_MenuFallback(t *testing.T) {
	f := &fakeFetcher{restaurant: sampleRestaurant()}
	page := BuildRestaurantPage(context.Background(), f, "california", "oakland", "golden-dragon", "")

	assert.NotNil(t, page)
	assert.False(t, page.OrderingEnabled, "a generated menu disables ordering")
	assert.NotEmpty(t, page.Menu, "the demo generator fills in")
	assert.Len(t, page.Reviews, 3)
	assert.Len(t, page.Gallery, 3)
	assert.Len(t, page.Highlights, 3)
	assert.True(t, page.Hours.IsSample, "no hours on file means the sample week")
}

func TestBuildRestaurantPage_TemplateSelection(t *testing.T) {
	f := &fakeFetcher{restaurant: sampleRestaurant()}

	// No stored key: hash selection, stable
	page := BuildRestaurantPage(context.Background(), f, "california", "oakland", "golden-dragon", "")
	want := demo.SelectTemplate("r1", "Golden Dragon", "", "")
	assert.Equal(t, want, page.TemplateKey)
	assert.Equal(t, demo.TemplateLabels[want], page.TemplateLabel)

	// A valid preview request overrides
	page = BuildRestaurantPage(context.Background(), f, "california", "oakland", "golden-dragon", "wok-fire")
	assert.Equal(t, "wok-fire", page.TemplateKey)

	// An invalid preview request is ignored
	page = BuildRestaurantPage(context.Background(), f, "california", "oakland", "golden-dragon", "bogus")
	assert.Equal(t, want, page.TemplateKey)
}

func TestBuildMapsURL(t *testing.T) {
	r := sampleRestaurant()
	url := BuildMapsURL(r)
	assert.Contains(t, url, "https://www.google.com/maps/search/?api=1&query=")
	assert.Contains(t, url, "123+Grand+Ave%2C+Oakland%2C+CA+94610")

	lat, lng := 37.8101, -122.2483
	r.Lat, r.Lng = &lat, &lng
	url = BuildMapsURL(r)
	assert.Contains(t, url, "query=37.8101,-122.2483", "coordinates win over the address")
}

func TestStateHero(t *testing.T) {
	ca := StateHero("ca")
	assert.Equal(t, "California Market View", ca.Eyebrow, "lookup is case-insensitive")

	unknown := StateHero("MT")
	assert.Equal(t, defaultHeroTheme, unknown)
}
