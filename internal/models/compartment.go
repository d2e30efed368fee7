package models

import (
	"fmt"
	"regexp"
)

// CompartmentType identifies a category of physical compartment
type CompartmentType string

const (
	// Compartment types
	CompartmentRefrigerator CompartmentType = "refrigerator"
	CompartmentFreezer      CompartmentType = "freezer"
	CompartmentVegetable    CompartmentType = "vegetable"
	CompartmentDoor         CompartmentType = "door"
)

// CompartmentTypeDefinition describes how one compartment type is presented
type CompartmentTypeDefinition struct {
	Type      CompartmentType `json:"type"`
	Name      string          `json:"name"`
	Icon      string          `json:"icon"`
	TempRange string          `json:"tempRange"`
	Tint      string          `json:"tint"`
}

// CompartmentInstance is one physical compartment of a configured fridge.
// Its identifier is minted by InstancesFromTypeList and stays stable for
// the lifetime of the configuration.
type CompartmentInstance struct {
	ID     string          `json:"id"`
	TypeID CompartmentType `json:"typeId"`
}

var compartmentTypeOrder = []CompartmentType{
	CompartmentRefrigerator,
	CompartmentFreezer,
	CompartmentVegetable,
	CompartmentDoor,
}

var compartmentTypes = map[CompartmentType]CompartmentTypeDefinition{
	CompartmentRefrigerator: {Type: CompartmentRefrigerator, Name: "Refrigerator", Icon: "🧊", TempRange: "2–5 °C", Tint: "#8ecae6"},
	CompartmentFreezer:      {Type: CompartmentFreezer, Name: "Freezer", Icon: "❄️", TempRange: "-18 °C", Tint: "#219ebc"},
	CompartmentVegetable:    {Type: CompartmentVegetable, Name: "Vegetable Drawer", Icon: "🥬", TempRange: "4–7 °C", Tint: "#95d5b2"},
	CompartmentDoor:         {Type: CompartmentDoor, Name: "Door Rack", Icon: "🚪", TempRange: "5–8 °C", Tint: "#ffb703"},
}

// CompartmentTypes returns every compartment type definition in display order.
func CompartmentTypes() []CompartmentTypeDefinition {
	defs := make([]CompartmentTypeDefinition, 0, len(compartmentTypeOrder))
	for _, t := range compartmentTypeOrder {
		defs = append(defs, compartmentTypes[t])
	}
	return defs
}

// CompartmentTypeInfo looks up the definition for a compartment type.
func CompartmentTypeInfo(t CompartmentType) (CompartmentTypeDefinition, bool) {
	def, ok := compartmentTypes[t]
	return def, ok
}

// InstancesFromTypeList mints compartment instances for an ordered type
// list. Ordinals count per type and start at 1, so two freezers become
// "freezer-1" and "freezer-2". This is the only place compartment
// identifiers are created.
func InstancesFromTypeList(typeIDs []CompartmentType) []CompartmentInstance {
	counts := make(map[CompartmentType]int, len(typeIDs))
	instances := make([]CompartmentInstance, 0, len(typeIDs))
	for _, t := range typeIDs {
		counts[t]++
		instances = append(instances, CompartmentInstance{
			ID:     fmt.Sprintf("%s-%d", t, counts[t]),
			TypeID: t,
		})
	}
	return instances
}

var ordinalSuffix = regexp.MustCompile(`-\d+$`)

// CompartmentLabel resolves a compartment instance identifier to a display
// name. It prefers the supplied configuration, then tries the identifier
// with its trailing ordinal stripped, and finally falls back to the raw
// identifier. It never fails.
func CompartmentLabel(instanceID string, cfg *FridgeConfiguration) string {
	if cfg != nil {
		for _, comp := range cfg.Compartments {
			if comp.ID != instanceID {
				continue
			}
			if def, ok := CompartmentTypeInfo(comp.TypeID); ok {
				return def.Name
			}
		}
	}
	base := ordinalSuffix.ReplaceAllString(instanceID, "")
	if def, ok := CompartmentTypeInfo(CompartmentType(base)); ok {
		return def.Name
	}
	return instanceID
}
