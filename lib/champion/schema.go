package champion

import (
	"strings"
)

// Slot describes one named rating inside a container.
type Slot struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
}

// Schema is the closed vocabulary of a rating container, slots are kept in
// their canonical output order.
type Schema struct {
	Name  string
	Slots []Slot
	index map[string]int
}

func newSchema(name string, min, max float64, slotNames ...string) *Schema {
	s := &Schema{
		Name:  name,
		Slots: make([]Slot, len(slotNames)),
		index: make(map[string]int, len(slotNames)),
	}
	for i, n := range slotNames {
		s.Slots[i] = Slot{Name: n, Min: min, Max: max}
		s.index[n] = i
	}
	return s
}

// NormalizeLabel trims whitespace and an optional trailing colon off of a
// scraped label.
func NormalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	label = strings.TrimSuffix(label, ":")
	return strings.TrimSpace(label)
}

// Lookup returns the position of the slot with the given label.
func (s *Schema) Lookup(label string) (int, bool) {
	i, ok := s.index[NormalizeLabel(label)]
	return i, ok
}

// SlotNames returns the names of every slot in canonical order.
func (s *Schema) SlotNames() []string {
	names := make([]string, len(s.Slots))
	for i, slot := range s.Slots {
		names[i] = slot.Name
	}
	return names
}

const (
	OverallCategory   = "Overall"
	OverallRatingName = "Overall Rating"
)

var CoreSchema = newSchema(
	"Core Areas", 0, 5,
	"Demon Lord",
	"Hydra",
	"Waves",
	"Chimera",
	"Amius",
	"Chimera Trials",
	"Sintranos Hard Stages",
)

var DungeonsSchema = newSchema(
	"Dungeons", 0, 5,
	"Spider",
	"Fire Knight",
	"Dragon",
	"Ice Golem",
	"Iron Twins",
	"Sand Devil",
	"Shogun Grove",
)

var HardModeSchema = newSchema(
	"Hard Mode", 0, 5,
	"Spider",
	"Fire Knight",
	"Dragon",
	"Ice Golem",
)

var DoomTowerSchema = newSchema(
	"Doom Tower", 0, 5,
	"Magna Dragon",
	"Nether Spider",
	"Celestial Griffin",
	"Dreadhorn",
	"Scarab King",
	"Frost Spider",
	"Eternal Dragon",
	"Dark Fae",
)

// faction wars is rated on the ordinal scale, see OrdinalValue
var FactionWarsSchema = newSchema(
	"Faction Wars", 1, 5,
	"Damage",
	"Decrease Defence",
	"Crowd Control",
	"Turn Meter Control",
)

// Schemas lists every container schema in the order categories are
// serialized.
var Schemas = []*Schema{
	CoreSchema,
	DungeonsSchema,
	HardModeSchema,
	DoomTowerSchema,
	FactionWarsSchema,
}

// SchemaByName finds a schema by its category display name.
func SchemaByName(name string) (*Schema, bool) {
	for _, s := range Schemas {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}

var ordinalScale = []string{"Bad", "OK", "Good", "Great", "Godlike"}

// OrdinalValue converts a label on the 5-point scale (Bad=1 .. Godlike=5)
// into its numeric value.
func OrdinalValue(label string) (float64, bool) {
	label = strings.TrimSpace(label)
	for i, l := range ordinalScale {
		if strings.EqualFold(l, label) {
			return float64(i + 1), true
		}
	}
	return 0, false
}

// OrdinalLabel is the inverse of OrdinalValue.
func OrdinalLabel(value float64) (string, bool) {
	i := int(value) - 1
	if float64(i+1) != value || i < 0 || i >= len(ordinalScale) {
		return "", false
	}
	return ordinalScale[i], true
}
