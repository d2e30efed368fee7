package models

// FridgeConfiguration describes the single configured fridge. It is
// replaced wholesale on reconfiguration and absent until setup finishes.
type FridgeConfiguration struct {
	Name         string                `json:"name"`
	Compartments []CompartmentInstance `json:"compartments"`
	Style        Style                 `json:"style"`
	Color        string                `json:"color"`
	Photo        string                `json:"photo,omitempty"`
}

// Compartment returns the instance with the given identifier, if the
// configuration contains one.
func (c *FridgeConfiguration) Compartment(id string) (CompartmentInstance, bool) {
	for _, comp := range c.Compartments {
		if comp.ID == id {
			return comp, true
		}
	}
	return CompartmentInstance{}, false
}

// Clone deep-copies the configuration so callers can hold it without
// aliasing the container's tree.
func (c *FridgeConfiguration) Clone() *FridgeConfiguration {
	if c == nil {
		return nil
	}
	out := *c
	out.Compartments = make([]CompartmentInstance, len(c.Compartments))
	copy(out.Compartments, c.Compartments)
	return &out
}
