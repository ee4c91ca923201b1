package cart

import (
	"context"
	"errors"
	"testing"

	"takeoutpages/internal/menu"
	"takeoutpages/internal/models"
)

func plainItem() menu.Item {
	return menu.Item{ID: "spring-rolls", Name: "Crispy Spring Rolls", Price: 6.5}
}

func customizableItem() menu.Item {
	return menu.Item{
		ID:    "kung-pao",
		Name:  "Kung Pao Chicken",
		Price: 15.5,
		ModifierGroups: []menu.ModifierGroup{
			{
				ID:         "spice",
				Name:       "Spice Level",
				MinSelect:  1,
				MaxSelect:  1,
				IsRequired: true,
				Options: []menu.ModifierOption{
					{ID: "mild", Name: "Mild"},
					{ID: "hot", Name: "Hot", Price: 0.5},
				},
			},
			{
				ID:        "addons",
				Name:      "Add-ons",
				MaxSelect: 2,
				Options: []menu.ModifierOption{
					{ID: "peanuts", Name: "Extra Peanuts", Price: 1.0},
					{ID: "rice", Name: "Side Rice", Price: 2.0},
					{ID: "egg", Name: "Fried Egg", Price: 1.5},
				},
			},
		},
	}
}

func TestAdd_PlainItemGoesStraightToLine(t *testing.T) {
	c := New(true)
	c.Add(plainItem())

	if c.Customizing() != nil {
		t.Error("Expected no draft for an item without modifier groups")
	}
	if got := c.TotalItems(); got != 1 {
		t.Errorf("Expected 1 item in cart, got %d", got)
	}
}

func TestAdd_SameItemMergesLine(t *testing.T) {
	c := New(true)
	c.Add(plainItem())
	c.Add(plainItem())

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("Expected 1 merged line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestAdd_OrderingDisabledIsNoOp(t *testing.T) {
	c := New(false)
	c.Add(plainItem())

	if got := c.TotalItems(); got != 0 {
		t.Errorf("Expected empty cart when ordering is disabled, got %d items", got)
	}
}

func TestAdd_CustomizableItemOpensDraft(t *testing.T) {
	item := customizableItem()
	item.ModifierGroups[0].Options[0].IsDefault = true

	c := New(true)
	c.Add(item)

	if c.Customizing() == nil {
		t.Fatal("Expected an open draft")
	}
	if got := c.TotalItems(); got != 0 {
		t.Errorf("Expected nothing committed yet, got %d items", got)
	}

	// Defaults are pre-selected
	selected := c.DraftSelection("spice")
	if len(selected) != 1 || selected[0] != "mild" {
		t.Errorf("Expected default option pre-selected, got %v", selected)
	}
}

func TestToggleOption_RadioReplaces(t *testing.T) {
	item := customizableItem()
	c := New(true)
	c.Add(item)

	spice := item.ModifierGroups[0]
	c.ToggleOption(spice, spice.Options[0])
	c.ToggleOption(spice, spice.Options[1])

	selected := c.DraftSelection("spice")
	if len(selected) != 1 || selected[0] != "hot" {
		t.Errorf("Expected radio behavior to replace the selection, got %v", selected)
	}
}

func TestToggleOption_MultiSelectRespectsMax(t *testing.T) {
	item := customizableItem()
	c := New(true)
	c.Add(item)

	addons := item.ModifierGroups[1]
	c.ToggleOption(addons, addons.Options[0])
	c.ToggleOption(addons, addons.Options[1])
	c.ToggleOption(addons, addons.Options[2]) // at max, refused

	selected := c.DraftSelection("addons")
	if len(selected) != 2 {
		t.Fatalf("Expected the third add at max to be refused, got %v", selected)
	}

	// Toggling off frees a slot
	c.ToggleOption(addons, addons.Options[0])
	c.ToggleOption(addons, addons.Options[2])
	selected = c.DraftSelection("addons")
	if len(selected) != 2 || selected[0] != "rice" || selected[1] != "egg" {
		t.Errorf("Expected rice and egg after swap, got %v", selected)
	}
}

func TestConfirmCustomization_RequiredGroupBlocks(t *testing.T) {
	item := customizableItem()
	c := New(true)
	c.Add(item)

	err := c.ConfirmCustomization()
	if err == nil {
		t.Fatal("Expected a validation error with the required group empty")
	}
	if err.Error() != "Spice Level requires at least 1 selection(s)." {
		t.Errorf("Unexpected validation message: %q", err.Error())
	}

	// Draft stays open, nothing committed
	if c.Customizing() == nil {
		t.Error("Expected draft to stay open after a validation failure")
	}
	if got := c.TotalItems(); got != 0 {
		t.Errorf("Expected nothing committed, got %d items", got)
	}
}

func TestConfirmCustomization_CommitsAndPrices(t *testing.T) {
	item := customizableItem()
	c := New(true)
	c.Add(item)

	spice := item.ModifierGroups[0]
	addons := item.ModifierGroups[1]
	c.ToggleOption(spice, spice.Options[1])   // Hot +0.50
	c.ToggleOption(addons, addons.Options[0]) // Extra Peanuts +1.00

	if err := c.ConfirmCustomization(); err != nil {
		t.Fatalf("Expected confirmation to pass, got %v", err)
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if got := lines[0].UnitPrice(); got != 17.0 {
		t.Errorf("Expected unit price 17.00 with modifiers, got %v", got)
	}
	if got := lines[0].ModifierSummary(); got != "Hot, Extra Peanuts" {
		t.Errorf("Unexpected modifier summary: %q", got)
	}
	if c.Customizing() != nil {
		t.Error("Expected draft to close after confirmation")
	}
}

func TestConfirmCustomization_SameConfigurationMerges(t *testing.T) {
	item := customizableItem()
	c := New(true)

	for i := 0; i < 2; i++ {
		c.Add(item)
		spice := item.ModifierGroups[0]
		c.ToggleOption(spice, spice.Options[0])
		if err := c.ConfirmCustomization(); err != nil {
			t.Fatalf("Expected confirmation to pass, got %v", err)
		}
	}

	lines := c.Lines()
	if len(lines) != 1 {
		t.Fatalf("Expected identical configurations to merge, got %d lines", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestConfirmCustomization_DifferentConfigurationsSplit(t *testing.T) {
	item := customizableItem()
	c := New(true)
	spice := item.ModifierGroups[0]

	c.Add(item)
	c.ToggleOption(spice, spice.Options[0])
	if err := c.ConfirmCustomization(); err != nil {
		t.Fatalf("Expected confirmation to pass, got %v", err)
	}

	c.Add(item)
	c.ToggleOption(spice, spice.Options[1])
	if err := c.ConfirmCustomization(); err != nil {
		t.Fatalf("Expected confirmation to pass, got %v", err)
	}

	if lines := c.Lines(); len(lines) != 2 {
		t.Errorf("Expected different configurations to stay separate, got %d lines", len(lines))
	}
}

func TestRemoveOne(t *testing.T) {
	c := New(true)
	c.Add(plainItem())
	c.Add(plainItem())

	lineID := c.Lines()[0].ID
	c.RemoveOne(lineID)
	if got := c.Lines()[0].Quantity; got != 1 {
		t.Errorf("Expected quantity 1 after decrement, got %d", got)
	}

	c.RemoveOne(lineID)
	if got := len(c.Lines()); got != 0 {
		t.Errorf("Expected line removed at quantity 1, got %d lines", got)
	}
}

func TestSubtotal(t *testing.T) {
	c := New(true)
	c.Add(plainItem())
	c.AddOne(c.Lines()[0].ID)

	if got := c.Subtotal(); got != 13.0 {
		t.Errorf("Expected subtotal 13.00, got %v", got)
	}
}

type fakePlacer struct {
	payload models.OrderCreate
	order   *models.Order
	err     error
}

func (f *fakePlacer) PlaceOrder(_ context.Context, payload models.OrderCreate) (*models.Order, error) {
	f.payload = payload
	return f.order, f.err
}

func TestSubmit_Success(t *testing.T) {
	c := New(true)
	c.Add(plainItem())
	c.CustomerName = "  Maya  "
	c.Notes = ""

	placer := &fakePlacer{order: &models.Order{ID: "ab12cd34-5678-90ef", Status: "received"}}
	confirmation, err := c.Submit(context.Background(), placer)
	if err != nil {
		t.Fatalf("Expected submit to succeed, got %v", err)
	}

	if confirmation != "ab12cd34" {
		t.Errorf("Expected 8-char confirmation, got %q", confirmation)
	}
	if c.ConfirmationID() != "ab12cd34" {
		t.Errorf("Expected confirmation recorded, got %q", c.ConfirmationID())
	}
	if got := c.TotalItems(); got != 0 {
		t.Errorf("Expected cart cleared on success, got %d items", got)
	}

	// Payload shape: trimmed name, null notes, pickup default
	if placer.payload.CustomerName == nil || *placer.payload.CustomerName != "Maya" {
		t.Errorf("Expected trimmed customer name, got %v", placer.payload.CustomerName)
	}
	if placer.payload.Notes != nil {
		t.Errorf("Expected empty notes to serialize as nil, got %v", placer.payload.Notes)
	}
	if placer.payload.FulfillmentType != "pickup" {
		t.Errorf("Expected pickup fulfillment, got %q", placer.payload.FulfillmentType)
	}
}

func TestSubmit_FailureKeepsCart(t *testing.T) {
	c := New(true)
	c.Add(plainItem())

	placer := &fakePlacer{err: errors.New("upstream 500")}
	_, err := c.Submit(context.Background(), placer)
	if err == nil {
		t.Fatal("Expected submit to fail")
	}
	if err.Error() != "Unable to place order. Please try again." {
		t.Errorf("Expected the generic failure message, got %q", err.Error())
	}

	if got := c.TotalItems(); got != 1 {
		t.Errorf("Expected cart intact after failure, got %d items", got)
	}
	if c.ErrorMessage() != "Unable to place order. Please try again." {
		t.Errorf("Expected error message recorded, got %q", c.ErrorMessage())
	}
	if !c.CanSubmit() {
		t.Error("Expected cart to be submittable again after failure")
	}
}

func TestSubmit_EmptyCartRefused(t *testing.T) {
	c := New(true)

	_, err := c.Submit(context.Background(), &fakePlacer{})
	if !errors.Is(err, ErrCannotSubmit) {
		t.Errorf("Expected ErrCannotSubmit for an empty cart, got %v", err)
	}
}

func TestSubmit_OrderingDisabledRefused(t *testing.T) {
	c := New(false)

	if c.CanSubmit() {
		t.Error("Expected CanSubmit to be false when ordering is disabled")
	}
	_, err := c.Submit(context.Background(), &fakePlacer{})
	if !errors.Is(err, ErrCannotSubmit) {
		t.Errorf("Expected ErrCannotSubmit, got %v", err)
	}
}
