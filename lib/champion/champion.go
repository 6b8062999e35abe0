package champion

// Champion is one scraped character with its ratings. Values are built once
// by the extractor and not mutated afterwards.
type Champion struct {
	Name     string
	Faction  Faction
	Affinity Affinity
	Rarity   string
	Ratings  Ratings
}

// Record converts the champion into the nested form consumed by the
// persistence backends.
func (c Champion) Record() Record {
	return Record{
		Name:     c.Name,
		Faction:  c.Faction.String(),
		Affinity: c.Affinity.String(),
		Rarity:   c.Rarity,
		Ratings:  c.Ratings.Entries(),
	}
}
