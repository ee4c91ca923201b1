package menu

import (
	"fmt"

	"takeoutpages/internal/models"
)

// Category is a display-ready menu category.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is a display-ready menu item. Price is in dollars. Spice runs
// 0 (none) to 2 (hot).
type Item struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	Price          float64         `json:"price"`
	Popular        bool            `json:"popular,omitempty"`
	Spice          int             `json:"spice,omitempty"`
	ModifierGroups []ModifierGroup `json:"modifierGroups,omitempty"`
}

// ModifierGroup is a display-ready modifier group.
type ModifierGroup struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	MinSelect   int              `json:"minSelect"`
	MaxSelect   int              `json:"maxSelect"`
	IsRequired  bool             `json:"isRequired"`
	Options     []ModifierOption `json:"options"`
}

// ModifierOption is a display-ready option. Price is the delta in
// dollars and may be negative.
type ModifierOption struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	IsDefault bool    `json:"isDefault"`
}

// FromAPI converts a wire menu into display categories: inactive
// categories and items are dropped, prices move from cents to dollars,
// and categories left with no items are dropped.
func FromAPI(m models.Menu) []Category {
	var categories []Category
	for _, category := range m.Categories {
		if !category.IsActive {
			continue
		}
		var items []Item
		for _, item := range category.Items {
			if !item.IsActive {
				continue
			}
			items = append(items, Item{
				ID:             item.ID,
				Name:           item.Name,
				Description:    item.Description,
				Price:          float64(item.PriceCents) / 100,
				ModifierGroups: groupsFromAPI(item.ModifierGroups),
			})
		}
		if len(items) == 0 {
			continue
		}
		categories = append(categories, Category{Name: category.Name, Items: items})
	}
	return categories
}

func groupsFromAPI(groups []models.ModifierGroup) []ModifierGroup {
	var out []ModifierGroup
	for _, group := range groups {
		options := make([]ModifierOption, 0, len(group.Options))
		for _, option := range group.Options {
			options = append(options, ModifierOption{
				ID:        option.ID,
				Name:      option.Name,
				Price:     float64(option.PriceCents) / 100,
				IsDefault: option.IsDefault,
			})
		}
		out = append(out, ModifierGroup{
			ID:          group.ID,
			Name:        group.Name,
			Description: group.Description,
			MinSelect:   group.MinSelect,
			MaxSelect:   group.MaxSelect,
			IsRequired:  group.IsRequired,
			Options:     options,
		})
	}
	return out
}

// FormatPrice renders a dollar amount for display.
func FormatPrice(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}

// OptionPriceLabel renders a modifier option's price delta: free options
// read "Included", upcharges carry an explicit plus sign.
func OptionPriceLabel(option ModifierOption) string {
	if option.Price == 0 {
		return "Included"
	}
	if option.Price > 0 {
		return "+" + FormatPrice(option.Price)
	}
	return FormatPrice(option.Price)
}
