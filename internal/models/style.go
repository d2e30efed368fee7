package models

// Style identifies one of the fixed fridge visual styles
type Style string

const (
	// Fridge styles
	StyleRetro  Style = "retro"
	StyleModern Style = "modern"
	StyleCute   Style = "cute"
)

// Display defaults before any configuration exists and after a reset.
const (
	DefaultStyle = StyleModern
	DefaultColor = "#b0b0b0"
)

// StyleDefinition describes one visual style preset
type StyleDefinition struct {
	Style     Style  `json:"style"`
	Name      string `json:"name"`
	BodyColor string `json:"bodyColor"`
}

var styleOrder = []Style{StyleRetro, StyleModern, StyleCute}

var styles = map[Style]StyleDefinition{
	StyleRetro:  {Style: StyleRetro, Name: "Retro", BodyColor: "#e07a5f"},
	StyleModern: {Style: StyleModern, Name: "Modern", BodyColor: DefaultColor},
	StyleCute:   {Style: StyleCute, Name: "Cute", BodyColor: "#ffafcc"},
}

// Styles returns every style preset in display order.
func Styles() []StyleDefinition {
	defs := make([]StyleDefinition, 0, len(styleOrder))
	for _, s := range styleOrder {
		defs = append(defs, styles[s])
	}
	return defs
}

// StyleInfo looks up the definition for a style.
func StyleInfo(s Style) (StyleDefinition, bool) {
	def, ok := styles[s]
	return def, ok
}
