package models

// FridgeTemplate is a named layout preset offered during setup
type FridgeTemplate struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Layout []CompartmentType `json:"layout"`
}

var templates = []FridgeTemplate{
	{ID: "single-door", Name: "Single Door", Layout: []CompartmentType{CompartmentRefrigerator, CompartmentDoor}},
	{ID: "top-freezer", Name: "Top Freezer", Layout: []CompartmentType{CompartmentFreezer, CompartmentRefrigerator, CompartmentDoor}},
	{ID: "bottom-freezer", Name: "Bottom Freezer", Layout: []CompartmentType{CompartmentRefrigerator, CompartmentVegetable, CompartmentFreezer}},
	{ID: "french-door", Name: "French Door", Layout: []CompartmentType{CompartmentRefrigerator, CompartmentRefrigerator, CompartmentVegetable, CompartmentFreezer}},
}

// Templates returns every layout preset.
func Templates() []FridgeTemplate {
	out := make([]FridgeTemplate, len(templates))
	copy(out, templates)
	return out
}

// TemplateInfo looks up a layout preset by identifier.
func TemplateInfo(id string) (FridgeTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return FridgeTemplate{}, false
}

// Instantiate mints the compartment instances for this template's layout,
// top to bottom.
func (t FridgeTemplate) Instantiate() []CompartmentInstance {
	return InstancesFromTypeList(t.Layout)
}
