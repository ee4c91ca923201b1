package demo

import (
	"fmt"
	"math"

	"takeoutpages/internal/menu"
)

// Review is a generated customer review for display.
type Review struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Quote  string  `json:"quote"`
	Source string  `json:"source"`
}

// GalleryItem is a generated gallery tile.
type GalleryItem struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	ThemeClass string `json:"themeClass"`
}

// Special is a generated promo card.
type Special struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Fixed base pools. All generated content is a seeded rotation or index
// into these tables; nothing here is randomized at runtime, which is what
// keeps repeat visits to the same restaurant page stable.
var baseMenu = []menu.Category{
	{
		Name: "Appetizers",
		Items: []menu.Item{
			{ID: "spring-rolls", Name: "Crispy Spring Rolls", Description: "Cabbage, carrot, and glass noodle with sweet chili.", Price: 6.5, Popular: true},
			{ID: "potstickers", Name: "Pan-Seared Potstickers", Description: "Pork and chive dumplings with black vinegar dip.", Price: 8.0},
			{ID: "scallion-pancake", Name: "Scallion Pancake", Description: "Flaky layers, sesame, served with soy ginger.", Price: 7.0},
			{ID: "salt-pepper-tofu", Name: "Salt & Pepper Tofu", Description: "Crispy tofu, garlic, scallion, and chili.", Price: 9.5, Spice: 1},
		},
	},
	{
		Name: "Noodles & Rice",
		Items: []menu.Item{
			{ID: "house-fried-rice", Name: "House Fried Rice", Description: "BBQ pork, egg, peas, scallion, and soy.", Price: 12.5, Popular: true},
			{ID: "chow-fun", Name: "Beef Chow Fun", Description: "Wide rice noodles, bean sprouts, scallion.", Price: 14.0},
			{ID: "lo-mein", Name: "Vegetable Lo Mein", Description: "Cabbage, carrot, mushroom, garlic sauce.", Price: 11.5},
			{ID: "spicy-dan-dan", Name: "Spicy Dan Dan", Description: "Sesame chili sauce, ground pork, peanuts.", Price: 13.5, Spice: 2},
		},
	},
	{
		Name: "Chef's Specials",
		Items: []menu.Item{
			{ID: "orange-chicken", Name: "Crispy Orange Chicken", Description: "Citrus glaze, toasted sesame, orange peel.", Price: 15.0, Popular: true},
			{ID: "kung-pao", Name: "Kung Pao Chicken", Description: "Peanuts, bell pepper, Sichuan chili.", Price: 15.5, Spice: 2},
			{ID: "beef-broccoli", Name: "Beef & Broccoli", Description: "Oyster sauce, garlic, tender flank steak.", Price: 16.0},
			{ID: "szechuan-eggplant", Name: "Szechuan Eggplant", Description: "Sweet heat glaze, basil, charred scallion.", Price: 14.0, Spice: 1},
		},
	},
}

var taglines = []string{
	"Hand-tossed wok classics and neighborhood favorites.",
	"Fresh, fast, and full of flavor made to order.",
	"Family recipes, bold sauces, and comforting bowls.",
	"Wok-seared specialties with a cozy hometown feel.",
}

var reviewSnippets = []string{
	"Everything tasted fresh and the sauce balance was perfect.",
	"Best takeout in town. The lo mein is always a hit.",
	"Super fast pickup and the portions are generous.",
	"Crispy chicken stayed crunchy even after the drive home.",
	"Clean flavors, not greasy, and the staff is friendly.",
}

var reviewerNames = []string{"Maya L.", "Devon K.", "Chris P.", "Jamie S.", "Riley A."}

var reviewSources = []string{"Google", "Yelp", "DoorDash", "Uber Eats", "Grubhub"}

var galleryThemes = []string{
	"bg-[linear-gradient(135deg,#fff1f2,#fde68a)]",
	"bg-[linear-gradient(135deg,#ecfeff,#fde68a)]",
	"bg-[linear-gradient(135deg,#dcfce7,#fed7aa)]",
	"bg-[linear-gradient(135deg,#e0f2fe,#fee2e2)]",
	"bg-[linear-gradient(135deg,#fef3c7,#fde68a)]",
}

var specials = []Special{
	{ID: "family-feast", Title: "Family Feast", Description: "Two entrees, fried rice, and egg rolls.", Price: "$36"},
	{ID: "lunch-bento", Title: "Lunch Bento", Description: "Entree, salad, and steamed rice.", Price: "$14"},
	{ID: "chef-combo", Title: "Chef's Combo", Description: "Orange chicken and beef broccoli.", Price: "$22"},
}

var highlightOptions = []string{
	"Family-owned and operated",
	"No shortcuts, made fresh",
	"Pickup in 20-30 minutes",
	"Delivery within 4 miles",
	"Catering trays available",
	"Lunch specials every weekday",
}

// BuildTagline picks a tagline for a restaurant, stable per (name, city).
func BuildTagline(name, city string) string {
	seed := HashString(name + "-" + city)
	return taglines[seed%len(taglines)]
}

// BuildMockMenu derives a full display menu from the restaurant name.
// Categories and the items inside each category are rotated by the seed,
// and prices get a small seeded bump, so different restaurants show
// visibly different menus while the same restaurant always shows the
// same one.
func BuildMockMenu(name string) []menu.Category {
	seed := HashString(name)
	shifted := rotate(baseMenu, seed%len(baseMenu))
	out := make([]menu.Category, 0, len(shifted))
	for index, category := range shifted {
		items := rotate(category.Items, (seed+index)%len(category.Items))
		built := make([]menu.Item, 0, len(items))
		for itemIndex, item := range items {
			priceBump := float64((seed+itemIndex)%3) * 0.5
			item.ID = SlugifyID(category.Name) + "-" + SlugifyID(item.Name)
			item.Price = math.Round((item.Price+priceBump)*100) / 100
			built = append(built, item)
		}
		out = append(out, menu.Category{Name: category.Name, Items: built})
	}
	return out
}

// BuildMockReviews generates three reviews seeded by (name, city).
// Ratings stay in the 4.6-4.8 band.
func BuildMockReviews(name, city string) []Review {
	seed := HashString(name + "-" + city)
	quotes := rotate(reviewSnippets, seed%len(reviewSnippets))[:3]
	reviews := make([]Review, 0, len(quotes))
	for index, quote := range quotes {
		reviews = append(reviews, Review{
			ID:     fmt.Sprintf("%d-%d", seed, index),
			Name:   reviewerNames[(seed+index)%len(reviewerNames)],
			Rating: 4.6 + float64((seed+index)%3)*0.1,
			Quote:  quote,
			Source: reviewSources[(seed+index*2)%len(reviewSources)],
		})
	}
	return reviews
}

// BuildMockGallery generates the three gallery tiles for a restaurant.
func BuildMockGallery(name string) []GalleryItem {
	seed := HashString(name)
	themes := rotate(galleryThemes, seed%len(galleryThemes))
	return []GalleryItem{
		{ID: fmt.Sprintf("%d-hero", seed), Label: "Signature bowl", ThemeClass: themes[0]},
		{ID: fmt.Sprintf("%d-wok", seed), Label: "Wok-fired classic", ThemeClass: themes[1]},
		{ID: fmt.Sprintf("%d-sides", seed), Label: "Fresh sides", ThemeClass: themes[2]},
	}
}

// BuildMockSpecials rotates the fixed specials by the name seed.
func BuildMockSpecials(name string) []Special {
	seed := HashString(name)
	shifted := rotate(specials, seed%len(specials))
	if len(shifted) > 3 {
		shifted = shifted[:3]
	}
	return shifted
}

// BuildHighlights picks three highlight phrases seeded by (name, city).
func BuildHighlights(name, city string) []string {
	seed := HashString(name + "-" + city)
	return rotate(highlightOptions, seed%len(highlightOptions))[:3]
}
