package cart

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"takeoutpages/internal/menu"
	"takeoutpages/internal/models"
)

// SelectedModifier is a chosen option snapshotted at add-time, so later
// menu edits cannot change a line that is already in the cart.
type SelectedModifier struct {
	GroupID    string
	GroupName  string
	OptionID   string
	OptionName string
	Price      float64
}

// Line is one cart entry. Lines with the same signature are merged by
// incrementing Quantity instead of appending a duplicate.
type Line struct {
	ID          string
	Signature   string
	ItemID      string
	Name        string
	Description string
	BasePrice   float64
	Quantity    int
	Modifiers   []SelectedModifier
}

// UnitPrice is the per-unit price of the line including modifier deltas.
func (l Line) UnitPrice() float64 {
	price := l.BasePrice
	for _, m := range l.Modifiers {
		price += m.Price
	}
	return price
}

// ModifierSummary is the one-line description of the chosen modifiers.
func (l Line) ModifierSummary() string {
	if len(l.Modifiers) == 0 {
		return "Standard"
	}
	names := make([]string, 0, len(l.Modifiers))
	for _, m := range l.Modifiers {
		names = append(names, m.OptionName)
	}
	return strings.Join(names, ", ")
}

// OrderPlacer submits an assembled order payload to the order-creation
// endpoint of one specific restaurant.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, payload models.OrderCreate) (*models.Order, error)
}

// ErrCannotSubmit is returned when submission is attempted while the
// cart is empty, ordering is disabled, or a submission is in flight.
var ErrCannotSubmit = errors.New("cart: order cannot be submitted")

// submitFailedMessage is the single user-facing message for any order
// submission failure. The cause is deliberately not differentiated.
const submitFailedMessage = "Unable to place order. Please try again."

// Cart holds one page session's order-in-progress: the committed lines,
// the draft customization for the item currently being configured, and
// the contact fields that ride along on submit. It is single-session
// state and not safe for concurrent use.
type Cart struct {
	Fulfillment   string
	CustomerName  string
	CustomerPhone string
	Notes         string

	orderingEnabled bool
	lines           []Line
	lineCounter     int

	customizing *menu.Item
	draft       map[string][]string

	submitting     bool
	confirmationID string
	errorMessage   string
}

// New creates an empty pickup cart.
func New(orderingEnabled bool) *Cart {
	return &Cart{
		Fulfillment:     "pickup",
		orderingEnabled: orderingEnabled,
	}
}

// OrderingEnabled reports whether this restaurant accepts orders.
func (c *Cart) OrderingEnabled() bool {
	return c.orderingEnabled
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// TotalItems is the summed quantity across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal is the pre-tax order total in dollars.
func (c *Cart) Subtotal() float64 {
	sum := 0.0
	for _, line := range c.lines {
		sum += float64(line.Quantity) * line.UnitPrice()
	}
	return sum
}

// Add puts an item in the cart. Items without modifier groups go straight
// to a line; items with groups open a draft customization seeded with
// each group's default options, to be finished by ConfirmCustomization.
func (c *Cart) Add(item menu.Item) {
	if !c.orderingEnabled {
		return
	}
	if len(item.ModifierGroups) == 0 {
		c.upsertLine(item, nil)
		return
	}
	c.openCustomizer(item)
}

// Customizing returns the item currently in draft customization, or nil.
func (c *Cart) Customizing() *menu.Item {
	return c.customizing
}

// DraftSelection returns the option ids currently chosen for a group in
// the open draft.
func (c *Cart) DraftSelection(groupID string) []string {
	selected := c.draft[groupID]
	out := make([]string, len(selected))
	copy(out, selected)
	return out
}

func (c *Cart) openCustomizer(item menu.Item) {
	draft := make(map[string][]string, len(item.ModifierGroups))
	for _, group := range item.ModifierGroups {
		var defaults []string
		for _, option := range group.Options {
			if option.IsDefault {
				defaults = append(defaults, option.ID)
			}
		}
		draft[group.ID] = defaults
	}
	c.customizing = &item
	c.draft = draft
}

// CancelCustomization discards the open draft without touching the cart.
func (c *Cart) CancelCustomization() {
	c.customizing = nil
	c.draft = nil
}

// ToggleOption flips one option in the open draft. Single-select groups
// (MaxSelect == 1) behave like radios: choosing a second option replaces
// the first. Multi-select groups add or remove, refusing an add once the
// group sits at MaxSelect (when MaxSelect > 0).
func (c *Cart) ToggleOption(group menu.ModifierGroup, option menu.ModifierOption) {
	if c.customizing == nil {
		return
	}
	current := c.draft[group.ID]
	isSelected := false
	for _, id := range current {
		if id == option.ID {
			isSelected = true
			break
		}
	}

	if group.MaxSelect == 1 {
		if isSelected {
			c.draft[group.ID] = nil
		} else {
			c.draft[group.ID] = []string{option.ID}
		}
		return
	}

	if isSelected {
		kept := make([]string, 0, len(current))
		for _, id := range current {
			if id != option.ID {
				kept = append(kept, id)
			}
		}
		c.draft[group.ID] = kept
		return
	}

	if group.MaxSelect > 0 && len(current) >= group.MaxSelect {
		return
	}
	c.draft[group.ID] = append(current, option.ID)
}

// ConfirmCustomization validates the open draft and, if every group
// passes, merges the configured item into the cart and closes the draft.
// The first violated rule is returned as the error and nothing is
// mutated; the draft stays open for correction.
func (c *Cart) ConfirmCustomization() error {
	if c.customizing == nil {
		return nil
	}
	item := *c.customizing
	if err := validateDraft(item, c.draft); err != nil {
		return err
	}
	c.upsertLine(item, selectedFromDraft(item, c.draft))
	c.CancelCustomization()
	return nil
}

func validateDraft(item menu.Item, draft map[string][]string) error {
	for _, group := range item.ModifierGroups {
		selectedCount := len(draft[group.ID])
		if (group.IsRequired || group.MinSelect > 0) && selectedCount < group.MinSelect {
			return fmt.Errorf("%s requires at least %d selection(s).", group.Name, group.MinSelect)
		}
		if group.MaxSelect > 0 && selectedCount > group.MaxSelect {
			return fmt.Errorf("%s allows up to %d selection(s).", group.Name, group.MaxSelect)
		}
	}
	return nil
}

func selectedFromDraft(item menu.Item, draft map[string][]string) []SelectedModifier {
	var selected []SelectedModifier
	for _, group := range item.ModifierGroups {
		chosen := make(map[string]bool, len(draft[group.ID]))
		for _, id := range draft[group.ID] {
			chosen[id] = true
		}
		for _, option := range group.Options {
			if !chosen[option.ID] {
				continue
			}
			selected = append(selected, SelectedModifier{
				GroupID:    group.ID,
				GroupName:  group.Name,
				OptionID:   option.ID,
				OptionName: option.Name,
				Price:      option.Price,
			})
		}
	}
	return selected
}

// lineSignature is the dedup key: item id plus the sorted set of chosen
// (group, option) pairs. Identical configurations map to the same
// signature regardless of selection order.
func lineSignature(itemID string, modifiers []SelectedModifier) string {
	tokens := make([]string, 0, len(modifiers))
	for _, m := range modifiers {
		tokens = append(tokens, m.GroupID+":"+m.OptionID)
	}
	sort.Strings(tokens)
	return itemID + "::" + strings.Join(tokens, "|")
}

func (c *Cart) upsertLine(item menu.Item, modifiers []SelectedModifier) {
	signature := lineSignature(item.ID, modifiers)
	for i := range c.lines {
		if c.lines[i].Signature == signature {
			c.lines[i].Quantity++
			return
		}
	}
	c.lineCounter++
	c.lines = append(c.lines, Line{
		ID:          fmt.Sprintf("%s-%d", item.ID, c.lineCounter),
		Signature:   signature,
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		BasePrice:   item.Price,
		Quantity:    1,
		Modifiers:   modifiers,
	})
}

// RemoveOne takes one unit off a line; at quantity 1 the line is deleted.
func (c *Cart) RemoveOne(lineID string) {
	for i := range c.lines {
		if c.lines[i].ID != lineID {
			continue
		}
		if c.lines[i].Quantity <= 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity--
		}
		return
	}
}

// AddOne increments a line's quantity. There is no upper bound.
func (c *Cart) AddOne(lineID string) {
	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity++
			return
		}
	}
}

// CanSubmit reports whether Submit would be attempted: ordering must be
// enabled, the cart non-empty, and no submission already in flight.
func (c *Cart) CanSubmit() bool {
	return c.orderingEnabled && c.TotalItems() > 0 && !c.submitting
}

// BuildPayload assembles the order-creation payload from current cart
// state. Empty contact fields serialize as null.
func (c *Cart) BuildPayload() models.OrderCreate {
	items := make([]models.OrderItemCreate, 0, len(c.lines))
	for _, line := range c.lines {
		modifiers := make([]models.OrderItemModifierCreate, 0, len(line.Modifiers))
		for _, m := range line.Modifiers {
			modifiers = append(modifiers, models.OrderItemModifierCreate{
				ModifierGroupID:  m.GroupID,
				ModifierOptionID: m.OptionID,
			})
		}
		items = append(items, models.OrderItemCreate{
			MenuItemID: line.ItemID,
			Quantity:   line.Quantity,
			Modifiers:  modifiers,
		})
	}
	return models.OrderCreate{
		CustomerName:    optionalString(c.CustomerName),
		CustomerPhone:   optionalString(c.CustomerPhone),
		FulfillmentType: c.Fulfillment,
		Notes:           optionalString(c.Notes),
		Items:           items,
	}
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Submit builds the payload atomically from current cart state and sends
// it through the placer. Success clears the lines and notes and records a
// truncated confirmation id. Failure leaves the cart intact and records
// one generic, retry-eligible error message; there is no automatic retry.
func (c *Cart) Submit(ctx context.Context, placer OrderPlacer) (string, error) {
	if !c.CanSubmit() {
		return "", ErrCannotSubmit
	}
	c.submitting = true
	c.errorMessage = ""
	c.confirmationID = ""
	defer func() { c.submitting = false }()

	order, err := placer.PlaceOrder(ctx, c.BuildPayload())
	if err != nil {
		c.errorMessage = submitFailedMessage
		return "", errors.New(submitFailedMessage)
	}

	c.lines = nil
	c.Notes = ""
	confirmation := order.ID
	if len(confirmation) > 8 {
		confirmation = confirmation[:8]
	}
	c.confirmationID = confirmation
	return confirmation, nil
}

// ConfirmationID returns the truncated id of the last placed order.
func (c *Cart) ConfirmationID() string {
	return c.confirmationID
}

// ErrorMessage returns the user-facing message from the last failed
// submission, if any.
func (c *Cart) ErrorMessage() string {
	return c.errorMessage
}
