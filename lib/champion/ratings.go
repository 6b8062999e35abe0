package champion

import (
	"context"
	"log/slog"
)

// Container holds one value per slot of its schema. The zero Container has
// no schema and no slots, every Set on it is dropped.
type Container struct {
	schema *Schema
	values []float64
}

func NewContainer(schema *Schema) Container {
	values := make([]float64, len(schema.Slots))
	for i, slot := range schema.Slots {
		values[i] = slot.Default
	}
	return Container{schema: schema, values: values}
}

func NewCore() Container        { return NewContainer(CoreSchema) }
func NewDungeons() Container    { return NewContainer(DungeonsSchema) }
func NewHardMode() Container    { return NewContainer(HardModeSchema) }
func NewDoomTower() Container   { return NewContainer(DoomTowerSchema) }
func NewFactionWars() Container { return NewContainer(FactionWarsSchema) }

func (c Container) Schema() *Schema {
	return c.schema
}

// Set stores a value under the slot matching label. Labels outside of the
// vocabulary are logged and dropped, the return value reports whether the
// value was stored.
func (c *Container) Set(ctx context.Context, label string, value float64) bool {
	if c.schema == nil {
		slog.WarnContext(ctx, "rating set on an empty container", "name", label)
		return false
	}
	i, ok := c.schema.Lookup(label)
	if !ok {
		slog.WarnContext(
			ctx, "unknown rating name",
			"category", c.schema.Name,
			"name", label,
			"value", value,
		)
		return false
	}

	slot := c.schema.Slots[i]
	if value < slot.Min || value > slot.Max {
		slog.WarnContext(
			ctx, "rating out of expected range",
			"category", c.schema.Name,
			"name", slot.Name,
			"value", value,
			"min", slot.Min,
			"max", slot.Max,
		)
	}
	c.values[i] = value
	return true
}

func (c Container) Get(label string) (float64, bool) {
	if c.schema == nil {
		return 0, false
	}
	i, ok := c.schema.Lookup(label)
	if !ok {
		return 0, false
	}
	return c.values[i], true
}

// Scalars returns every slot in canonical order.
func (c Container) Scalars() []Scalar {
	out := make([]Scalar, len(c.values))
	for i, v := range c.values {
		out[i] = Scalar{Name: c.schema.Slots[i].Name, Value: v}
	}
	return out
}

func (c Container) Category() Category {
	if c.schema == nil {
		return Category{}
	}
	return Category{Name: c.schema.Name, Scalars: c.Scalars()}
}

// Ratings is the full set of ratings owned by a champion.
type Ratings struct {
	Overall   float64
	Core      Container
	Dungeons  Container
	HardMode  Container
	DoomTower Container
	// nil unless faction wars extraction was enabled
	FactionWars *Container
}

func (r Ratings) Entries() []Entry {
	entries := []Entry{Scalar{Name: OverallRatingName, Value: r.Overall}}
	containers := []Container{r.Core, r.Dungeons, r.HardMode, r.DoomTower}
	if r.FactionWars != nil {
		containers = append(containers, *r.FactionWars)
	}
	for _, c := range containers {
		// zero containers (ex. a champion that failed to load) are left out
		if c.schema == nil {
			continue
		}
		entries = append(entries, c.Category())
	}
	return entries
}
