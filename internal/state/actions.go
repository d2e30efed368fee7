package state

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"fridgekeeper/internal/models"
)

// AdvanceSetupStep changes which wizard screen is displayed. It does not
// finish setup; only FinishSetup does. Outside the wizard it is a no-op.
func (c *Container) AdvanceSetupStep(step SetupStep) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.step == StepNone || step == StepNone {
		return
	}
	c.step = step
	c.notifyLocked()
}

// FinishSetup adopts a configuration wholesale: persists it, takes over
// its style and color as the active display values, and re-keys every
// door flag to the new compartments (closed), discarding stale keys.
// The write happens first, so a failed write leaves the tree untouched.
func (c *Container) FinishSetup(cfg models.FridgeConfiguration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(cfg.Compartments) == 0 {
		c.log.Warn("ignoring setup finish with no compartments")
		return nil
	}
	next := cfg.Clone()
	if err := c.store.SaveConfiguration(next); err != nil {
		return fmt.Errorf("persist configuration: %w", err)
	}
	c.config = next
	c.style = next.Style
	c.color = next.Color
	c.step = StepNone
	c.doors = make(map[string]bool, len(next.Compartments))
	for _, comp := range next.Compartments {
		c.doors[comp.ID] = false
	}
	c.notifyLocked()
	return nil
}

// EnterSettings re-opens the setup wizard over an existing configuration.
// Re-entry is modeled identically to first-run setup.
func (c *Container) EnterSettings() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.config == nil {
		return
	}
	c.step = StepWelcome
	c.notifyLocked()
}

// ResetFridge wipes everything: both persisted records, the in-memory
// inventory, all ephemeral UI state, and the display style and color.
// Irreversible. The next state is first-run: wizard at welcome.
func (c *Container) ResetFridge() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.store.ClearConfiguration(); err != nil {
		return fmt.Errorf("clear configuration: %w", err)
	}
	if err := c.store.SaveInventory(nil); err != nil {
		return fmt.Errorf("clear inventory: %w", err)
	}
	c.config = nil
	c.inventory = []models.FoodItem{}
	c.style = models.DefaultStyle
	c.color = models.DefaultColor
	c.step = StepWelcome
	c.doors = map[string]bool{}
	c.sidebar = false
	c.cameraView = CameraDefault
	c.overlay = Overlay{}
	c.notifyLocked()
	return nil
}

// ToggleDoor flips a compartment's door flag. Absent keys count as
// closed, so the first toggle opens. No-op while unconfigured.
func (c *Container) ToggleDoor(compartmentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.config == nil {
		return
	}
	c.doors[compartmentID] = !c.doors[compartmentID]
	c.notifyLocked()
}

// SetColor replaces the active body color. Format validation, if any,
// belongs to the view.
func (c *Container) SetColor(hex string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.color = hex
	c.notifyLocked()
}

// SetStyle replaces the active display style.
func (c *Container) SetStyle(style models.Style) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.style = style
	c.notifyLocked()
}

// ToggleSidebar flips sidebar visibility.
func (c *Container) ToggleSidebar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sidebar = !c.sidebar
	c.notifyLocked()
}

// SetCameraView switches the scene viewing angle.
func (c *Container) SetCameraView(view CameraView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cameraView = view
	c.notifyLocked()
}

// AddFoodInput carries the fields of a food entry before an identifier
// exists. Zero dateAdded, expiry, and quantity get defaults.
type AddFoodInput struct {
	Name        string
	Category    models.Category
	Quantity    int
	Compartment string
	DateAdded   time.Time
	ExpiryDate  time.Time
}

// AddFood mints a new food entry and appends it to the inventory,
// persisting the whole list.
func (c *Container) AddFood(in AddFoodInput) (models.FoodItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.config == nil {
		return models.FoodItem{}, ErrNotConfigured
	}
	item := models.NewFoodItem(in.Name, in.Category, in.Quantity, in.Compartment, in.DateAdded, in.ExpiryDate)
	next := make([]models.FoodItem, 0, len(c.inventory)+1)
	next = append(next, c.inventory...)
	next = append(next, item)
	if err := c.store.SaveInventory(next); err != nil {
		return models.FoodItem{}, fmt.Errorf("persist inventory: %w", err)
	}
	c.inventory = next
	c.notifyLocked()
	return item, nil
}

// FoodPatch is a partial food update; nil fields are left untouched.
type FoodPatch struct {
	Name        *string
	Category    *models.Category
	Quantity    *int
	Compartment *string
	DateAdded   *time.Time
	ExpiryDate  *time.Time
}

// UpdateFood merges a patch into the food with the given identifier.
// An unknown identifier is a no-op, not an error. Quantity is clamped to
// at least 1. A category change that does not carry an expiry in the same
// patch reseeds the expiry from the new category's default shelf life.
func (c *Container) UpdateFood(id string, patch FoodPatch) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.config == nil {
		return ErrNotConfigured
	}
	idx := c.indexOfLocked(id)
	if idx < 0 {
		c.log.Debug("update for unknown food", zap.String("id", id))
		return nil
	}
	item := c.inventory[idx]
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil && *patch.Category != item.Category {
		item.Category = *patch.Category
		if patch.ExpiryDate == nil {
			item.ExpiryDate = models.DefaultExpiry(item.Category, item.DateAdded)
		}
	}
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
		if item.Quantity < 1 {
			item.Quantity = 1
		}
	}
	if patch.Compartment != nil {
		item.Compartment = *patch.Compartment
	}
	if patch.DateAdded != nil {
		item.DateAdded = *patch.DateAdded
	}
	if patch.ExpiryDate != nil {
		item.ExpiryDate = *patch.ExpiryDate
	}
	next := append([]models.FoodItem{}, c.inventory...)
	next[idx] = item
	if err := c.store.SaveInventory(next); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	c.inventory = next
	c.notifyLocked()
	return nil
}

// DeleteFood removes the food with the given identifier. Idempotent: an
// unknown identifier is a no-op.
func (c *Container) DeleteFood(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.config == nil {
		return ErrNotConfigured
	}
	idx := c.indexOfLocked(id)
	if idx < 0 {
		return nil
	}
	next := make([]models.FoodItem, 0, len(c.inventory)-1)
	next = append(next, c.inventory[:idx]...)
	next = append(next, c.inventory[idx+1:]...)
	if err := c.store.SaveInventory(next); err != nil {
		return fmt.Errorf("persist inventory: %w", err)
	}
	c.inventory = next
	c.notifyLocked()
	return nil
}

// OpenAddFoodOverlay opens the add-food overlay targeting a compartment.
func (c *Container) OpenAddFoodOverlay(compartmentID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overlay = Overlay{Kind: OverlayAddFood, Compartment: compartmentID}
	c.notifyLocked()
}

// CloseAddFoodOverlay closes the add-food overlay if it is the open one.
func (c *Container) CloseAddFoodOverlay() {
	c.closeOverlay(OverlayAddFood)
}

// OpenEditFoodOverlay opens the edit overlay for a food item. Replacing
// the overlay wholesale also closes any open context menu, which is the
// required coupling between the two.
func (c *Container) OpenEditFoodOverlay(foodID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOfLocked(foodID)
	if idx < 0 {
		return
	}
	item := c.inventory[idx]
	c.overlay = Overlay{Kind: OverlayEditFood, Item: &item}
	c.notifyLocked()
}

// CloseEditFoodOverlay closes the edit overlay if it is the open one.
func (c *Container) CloseEditFoodOverlay() {
	c.closeOverlay(OverlayEditFood)
}

// OpenContextMenu opens the context menu for a food item at the given
// screen coordinates.
func (c *Container) OpenContextMenu(foodID string, x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	idx := c.indexOfLocked(foodID)
	if idx < 0 {
		return
	}
	item := c.inventory[idx]
	c.overlay = Overlay{Kind: OverlayContextMenu, Item: &item, X: x, Y: y}
	c.notifyLocked()
}

// CloseContextMenu closes the context menu if it is the open overlay.
func (c *Container) CloseContextMenu() {
	c.closeOverlay(OverlayContextMenu)
}

func (c *Container) closeOverlay(kind OverlayKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.overlay.Kind != kind {
		return
	}
	c.overlay = Overlay{}
	c.notifyLocked()
}

func (c *Container) indexOfLocked(id string) int {
	for i := range c.inventory {
		if c.inventory[i].ID == id {
			return i
		}
	}
	return -1
}

// ExpiringSoon returns the foods that are expiring or already expired
// relative to now, in inventory order.
func (c *Container) ExpiringSoon(now time.Time) []models.FoodItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := []models.FoodItem{}
	for _, item := range c.inventory {
		if models.ExpiryStatus(item, now) != models.ExpiryFresh {
			out = append(out, item)
		}
	}
	return out
}
