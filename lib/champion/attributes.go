package champion

import "strings"

type Faction int

const (
	FactionUnknown Faction = iota
	FactionShadowkin
	FactionHighElves
	FactionBarbarians
	FactionOrcs
	FactionDwarves
	FactionLizardmen
	FactionUndeadHordes
	FactionKnightRevenant
	FactionDarkElves
	FactionSkinwalkers
	FactionOgre
	FactionDemons
	FactionVoid
	factionCount
)

type assetName struct {
	name  string
	asset string
}

var factions = [factionCount]assetName{
	FactionUnknown:        {},
	FactionShadowkin:      {name: "Shadowkin", asset: "shadowkin"},
	FactionHighElves:      {name: "High Elves", asset: "high_elves"},
	FactionBarbarians:     {name: "Barbarians", asset: "barbarians"},
	FactionOrcs:           {name: "Orcs", asset: "orcs"},
	FactionDwarves:        {name: "Dwarves", asset: "dwarves"},
	FactionLizardmen:      {name: "Lizardmen", asset: "lizardmen"},
	FactionUndeadHordes:   {name: "Undead Hordes", asset: "undead_hordes"},
	FactionKnightRevenant: {name: "Knight Revenant", asset: "knight_revenant"},
	FactionDarkElves:      {name: "Dark Elves", asset: "dark_elves"},
	FactionSkinwalkers:    {name: "Skinwalkers", asset: "skinwalkers"},
	FactionOgre:           {name: "Ogre", asset: "ogre"},
	FactionDemons:         {name: "Demons", asset: "demons"},
	FactionVoid:           {name: "Void", asset: "void"},
}

// Factions returns every known faction.
func Factions() []Faction {
	out := make([]Faction, 0, factionCount-1)
	for f := FactionUnknown + 1; f < factionCount; f++ {
		out = append(out, f)
	}
	return out
}

func (f Faction) String() string {
	if f <= FactionUnknown || f >= factionCount {
		return ""
	}
	return factions[f].name
}

// Asset is the icon file name (without extension) the site uses for f.
func (f Faction) Asset() string {
	if f <= FactionUnknown || f >= factionCount {
		return ""
	}
	return factions[f].asset
}

// FactionFromAsset resolves an icon key such as "shadowkin".
func FactionFromAsset(key string) (Faction, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for f := FactionUnknown + 1; f < factionCount; f++ {
		if factions[f].asset == key {
			return f, true
		}
	}
	return FactionUnknown, false
}

type Affinity int

const (
	AffinityUnknown Affinity = iota
	AffinityForce
	AffinityMagic
	AffinitySpirit
	AffinityVoid
	affinityCount
)

var affinities = [affinityCount]assetName{
	AffinityUnknown: {},
	AffinityForce:   {name: "Force", asset: "force"},
	AffinityMagic:   {name: "Magic", asset: "magic"},
	AffinitySpirit:  {name: "Spirit", asset: "spirit"},
	AffinityVoid:    {name: "Void", asset: "void"},
}

func Affinities() []Affinity {
	out := make([]Affinity, 0, affinityCount-1)
	for a := AffinityUnknown + 1; a < affinityCount; a++ {
		out = append(out, a)
	}
	return out
}

func (a Affinity) String() string {
	if a <= AffinityUnknown || a >= affinityCount {
		return ""
	}
	return affinities[a].name
}

func (a Affinity) Asset() string {
	if a <= AffinityUnknown || a >= affinityCount {
		return ""
	}
	return affinities[a].asset
}

func AffinityFromAsset(key string) (Affinity, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for a := AffinityUnknown + 1; a < affinityCount; a++ {
		if affinities[a].asset == key {
			return a, true
		}
	}
	return AffinityUnknown, false
}

var rarities = map[string]string{
	"common":    "Common",
	"uncommon":  "Uncommon",
	"rare":      "Rare",
	"epic":      "Epic",
	"legendary": "Legendary",
	"mythical":  "Mythical",
}

// RarityFromAsset resolves a rarity icon key, rarity is not required so
// unknown keys simply resolve to false.
func RarityFromAsset(key string) (string, bool) {
	name, ok := rarities[strings.ToLower(strings.TrimSpace(key))]
	return name, ok
}
