package state

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"fridgekeeper/internal/models"
)

// SetupStep is the wizard screen currently shown. StepNone means the
// wizard is not active.
type SetupStep string

const (
	StepNone         SetupStep = ""
	StepWelcome      SetupStep = "welcome"
	StepTemplate     SetupStep = "template"
	StepCompartments SetupStep = "compartments"
	StepStyle        SetupStep = "style"
)

// CameraView is the active viewing angle of the fridge scene
type CameraView string

const (
	CameraDefault CameraView = "default"
	CameraTop     CameraView = "top"
)

// OverlayKind tags which overlay, if any, is open. Modeling the overlay
// as a tagged union makes the edit/context-menu exclusivity structural:
// there is only room for one.
type OverlayKind string

const (
	OverlayNone        OverlayKind = ""
	OverlayAddFood     OverlayKind = "add-food"
	OverlayEditFood    OverlayKind = "edit-food"
	OverlayContextMenu OverlayKind = "context-menu"
)

// Overlay is the single open overlay. Kind selects which payload fields
// are meaningful: Compartment for add-food, Item for edit-food and
// context-menu, X/Y for the context-menu anchor.
type Overlay struct {
	Kind        OverlayKind      `json:"kind"`
	Compartment string           `json:"compartment,omitempty"`
	Item        *models.FoodItem `json:"item,omitempty"`
	X           int              `json:"x,omitempty"`
	Y           int              `json:"y,omitempty"`
}

// Persistence is the durable mirror the container writes through. It is
// invoked synchronously inside the action that changed the data; the
// container holds the only in-memory copy.
type Persistence interface {
	SaveConfiguration(*models.FridgeConfiguration) error
	ClearConfiguration() error
	SaveInventory([]models.FoodItem) error
}

// ErrNotConfigured is returned by inventory actions dispatched before any
// fridge configuration exists.
var ErrNotConfigured = errors.New("no fridge configured")

// Snapshot is a deep copy of the state tree. Readers get snapshots, never
// the tree itself; every mutation goes through an action.
type Snapshot struct {
	Config     *models.FridgeConfiguration `json:"config"`
	Inventory  []models.FoodItem           `json:"inventory"`
	Style      models.Style                `json:"style"`
	Color      string                      `json:"color"`
	SetupStep  SetupStep                   `json:"setupStep"`
	Doors      map[string]bool             `json:"doors"`
	Sidebar    bool                        `json:"sidebar"`
	CameraView CameraView                  `json:"cameraView"`
	Overlay    Overlay                     `json:"overlay"`
}

// Configured reports whether a fridge configuration exists.
func (s Snapshot) Configured() bool {
	return s.Config != nil
}

// Container owns the authoritative state tree and exposes the closed set
// of actions that transition it. Every action runs to completion under
// one mutex, so two actions can never interleave: each observes a fully
// settled prior state and leaves a fully settled next state.
type Container struct {
	mu sync.Mutex

	store    Persistence
	log      *zap.Logger
	onChange func(Snapshot)

	config    *models.FridgeConfiguration
	inventory []models.FoodItem

	style models.Style
	color string

	step       SetupStep
	doors      map[string]bool
	sidebar    bool
	cameraView CameraView
	overlay    Overlay
}

// New builds a container around previously loaded records. A nil
// configuration means first run, which drops straight into the setup
// wizard's welcome screen.
func New(store Persistence, cfg *models.FridgeConfiguration, inventory []models.FoodItem, log *zap.Logger) *Container {
	c := &Container{
		store:      store,
		log:        log,
		config:     cfg.Clone(),
		inventory:  append([]models.FoodItem{}, inventory...),
		style:      models.DefaultStyle,
		color:      models.DefaultColor,
		doors:      map[string]bool{},
		cameraView: CameraDefault,
	}
	if cfg == nil {
		c.step = StepWelcome
		return c
	}
	c.style = cfg.Style
	c.color = cfg.Color
	for _, comp := range cfg.Compartments {
		c.doors[comp.ID] = false
	}
	return c
}

// OnChange registers the listener notified with a fresh snapshot after
// every successful action. Set it once, before dispatching; the listener
// runs inside the action and must not dispatch actions itself.
func (c *Container) OnChange(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Snapshot returns a deep copy of the current state tree.
func (c *Container) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Container) snapshotLocked() Snapshot {
	doors := make(map[string]bool, len(c.doors))
	for k, v := range c.doors {
		doors[k] = v
	}
	overlay := c.overlay
	if overlay.Item != nil {
		item := *overlay.Item
		overlay.Item = &item
	}
	return Snapshot{
		Config:     c.config.Clone(),
		Inventory:  append([]models.FoodItem{}, c.inventory...),
		Style:      c.style,
		Color:      c.color,
		SetupStep:  c.step,
		Doors:      doors,
		Sidebar:    c.sidebar,
		CameraView: c.cameraView,
		Overlay:    overlay,
	}
}

func (c *Container) notifyLocked() {
	if c.onChange != nil {
		c.onChange(c.snapshotLocked())
	}
}

// CompartmentGroup pairs one configured compartment with the foods
// assigned to it, in layout order.
type CompartmentGroup struct {
	Compartment models.CompartmentInstance `json:"compartment"`
	Label       string                     `json:"label"`
	Items       []models.FoodItem          `json:"items"`
}

// GroupedInventory returns the inventory grouped by compartment in the
// configuration's layout order. Foods whose compartment reference no
// longer matches any configured compartment are excluded here but remain
// in the inventory (orphan, don't cascade-delete).
func (c *Container) GroupedInventory() []CompartmentGroup {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.config == nil {
		return nil
	}
	groups := make([]CompartmentGroup, 0, len(c.config.Compartments))
	for _, comp := range c.config.Compartments {
		group := CompartmentGroup{
			Compartment: comp,
			Label:       models.CompartmentLabel(comp.ID, c.config),
			Items:       []models.FoodItem{},
		}
		for _, item := range c.inventory {
			if item.Compartment == comp.ID {
				group.Items = append(group.Items, item)
			}
		}
		groups = append(groups, group)
	}
	return groups
}
