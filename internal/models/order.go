package models

// OrderCreate is the order submission payload. Optional fields are
// pointers so that empty contact info serializes as null rather than "".
type OrderCreate struct {
	CustomerName    *string           `json:"customer_name"`
	CustomerPhone   *string           `json:"customer_phone"`
	FulfillmentType string            `json:"fulfillment_type"`
	Notes           *string           `json:"notes"`
	Items           []OrderItemCreate `json:"items"`
}

// OrderItemCreate is one line of an order submission.
type OrderItemCreate struct {
	MenuItemID string                    `json:"menu_item_id"`
	Quantity   int                       `json:"quantity"`
	Modifiers  []OrderItemModifierCreate `json:"modifiers,omitempty"`
}

// OrderItemModifierCreate references one chosen option inside a group.
type OrderItemModifierCreate struct {
	ModifierGroupID  string `json:"modifier_group_id"`
	ModifierOptionID string `json:"modifier_option_id"`
}

// Order is the created-order record echoed back by the data API.
type Order struct {
	ID              string      `json:"id"`
	Status          string      `json:"status"`
	FulfillmentType string      `json:"fulfillment_type"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	Notes           string      `json:"notes"`
	SubtotalCents   int         `json:"subtotal_cents"`
	TaxCents        int         `json:"tax_cents"`
	FeesCents       int         `json:"fees_cents"`
	TotalCents      int         `json:"total_cents"`
	Items           []OrderItem `json:"items"`
}

// OrderItem is one line of a created order.
type OrderItem struct {
	ID         string              `json:"id"`
	MenuItemID string              `json:"menu_item_id"`
	Name       string              `json:"name"`
	PriceCents int                 `json:"price_cents"`
	Quantity   int                 `json:"quantity"`
	Modifiers  []OrderItemModifier `json:"modifiers"`
}

// OrderItemModifier is a resolved modifier choice on a created order line.
type OrderItemModifier struct {
	ModifierGroupID    string `json:"modifier_group_id"`
	ModifierGroupName  string `json:"modifier_group_name"`
	ModifierOptionID   string `json:"modifier_option_id"`
	ModifierOptionName string `json:"modifier_option_name"`
	PriceCents         int    `json:"price_cents"`
}
