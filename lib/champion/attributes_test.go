package champion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactionTableIsTotal(t *testing.T) {
	require.Len(t, Factions(), 13)

	seen := map[string]bool{}
	for _, f := range Factions() {
		require.NotEmpty(t, f.String())
		require.NotEmpty(t, f.Asset())
		require.False(t, seen[f.Asset()], "duplicate asset %s", f.Asset())
		seen[f.Asset()] = true

		resolved, ok := FactionFromAsset(f.Asset())
		require.True(t, ok)
		require.Equal(t, f, resolved)
	}
}

func TestAffinityTableIsTotal(t *testing.T) {
	require.Len(t, Affinities(), 4)

	for _, a := range Affinities() {
		resolved, ok := AffinityFromAsset(a.Asset())
		require.True(t, ok)
		require.Equal(t, a, resolved)
	}
}

func TestAttributeLookup(t *testing.T) {
	faction, ok := FactionFromAsset("shadowkin")
	require.True(t, ok)
	require.Equal(t, "Shadowkin", faction.String())

	faction, ok = FactionFromAsset("undead_hordes")
	require.True(t, ok)
	require.Equal(t, FactionUndeadHordes, faction)

	_, ok = FactionFromAsset("sylvan_watchers")
	require.False(t, ok)

	affinity, ok := AffinityFromAsset("Magic")
	require.True(t, ok)
	require.Equal(t, "Magic", affinity.String())

	require.Equal(t, "", FactionUnknown.String())
	require.Equal(t, "", AffinityUnknown.String())

	rarity, ok := RarityFromAsset("legendary")
	require.True(t, ok)
	require.Equal(t, "Legendary", rarity)
}
