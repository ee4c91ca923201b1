package models

// Menu is the wire shape of a restaurant menu as served by the data API.
// Prices are integer cents; conversion to display dollars happens in the
// menu package.
type Menu struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	IsActive   bool           `json:"is_active"`
	Categories []MenuCategory `json:"categories"`
}

// MenuCategory is one wire category with its items.
type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	SortOrder   int        `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	Items       []MenuItem `json:"items"`
}

// MenuItem is one wire menu item.
type MenuItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	PriceCents     int             `json:"price_cents"`
	SortOrder      int             `json:"sort_order"`
	IsActive       bool            `json:"is_active"`
	ModifierGroups []ModifierGroup `json:"modifier_groups"`
}

// ModifierGroup is a named set of selectable options with count constraints.
type ModifierGroup struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	MinSelect   int              `json:"min_select"`
	MaxSelect   int              `json:"max_select"`
	IsRequired  bool             `json:"is_required"`
	SortOrder   int              `json:"sort_order"`
	Options     []ModifierOption `json:"options"`
}

// ModifierOption is one selectable option inside a modifier group. The
// price delta may be negative.
type ModifierOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	IsDefault  bool   `json:"is_default"`
	SortOrder  int    `json:"sort_order"`
}

// MenuUpsert is the admin payload that replaces a restaurant's menu.
type MenuUpsert struct {
	Name       string           `json:"name"`
	IsActive   bool             `json:"is_active"`
	Categories []MenuCategoryIn `json:"categories"`
}

// MenuCategoryIn is one category in a menu upsert.
type MenuCategoryIn struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	SortOrder   int          `json:"sort_order"`
	IsActive    bool         `json:"is_active"`
	Items       []MenuItemIn `json:"items"`
}

// MenuItemIn is one item in a menu upsert.
type MenuItemIn struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PriceCents  int    `json:"price_cents"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

// TemplateUpdate sets or clears a restaurant's stored template key.
type TemplateUpdate struct {
	TemplateKey string `json:"template_key"`
}
