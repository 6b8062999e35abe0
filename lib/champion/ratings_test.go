package champion

import (
	"context"
	"math/rand"
	"raidchampions/lib/testutil"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestContainerRoundTrip(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	for _, schema := range Schemas {
		container := NewContainer(schema)
		for i, name := range schema.SlotNames() {
			value := float64(i%5) + 0.5
			require.True(t, container.Set(ctx, name, value), name)

			got, ok := container.Get(name)
			require.True(t, ok)
			require.Equal(t, value, got)

			scalars := container.Scalars()
			require.Equal(t, name, scalars[i].Name)
			require.Equal(t, value, scalars[i].Value)
		}
	}
}

func TestContainerTrailingColon(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)

	core := NewCore()
	require.True(t, core.Set(ctx, "Demon Lord:", 4.5))
	require.True(t, core.Set(ctx, "  Hydra : ", 3))

	demonLord, _ := core.Get("Demon Lord")
	require.Equal(t, 4.5, demonLord)
	hydra, _ := core.Get("Hydra")
	require.Equal(t, 3.0, hydra)
	require.Empty(t, logs.Warnings())
}

func TestContainerUnknownLabel(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)
	rndm := rand.New(rand.NewSource(7))

	dungeons := NewDungeons()
	dungeons.Set(ctx, "Spider", 4)
	dungeons.Set(ctx, "Dragon", 2.5)
	before := dungeons.Scalars()

	for i := 0; i < 20; i++ {
		logs.Reset()
		label := testutil.RandomString(rndm, 12)

		require.False(t, dungeons.Set(ctx, label, 5))
		require.Len(t, logs.Warnings(), 1)
		if diff := cmp.Diff(before, dungeons.Scalars()); diff != "" {
			t.Fatalf("unknown label changed slots (-want +got):\n%s", diff)
		}
	}

	// names from other containers are not part of this vocabulary
	logs.Reset()
	require.False(t, dungeons.Set(ctx, "Demon Lord", 5))
	require.Len(t, logs.Warnings(), 1)
}

func TestContainerCanonicalOrder(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	tower := NewDoomTower()
	tower.Set(ctx, "Dark Fae", 1)
	tower.Set(ctx, "Magna Dragon", 2)
	tower.Set(ctx, "Scarab King", 3)

	expected := []Scalar{
		{Name: "Magna Dragon", Value: 2},
		{Name: "Nether Spider", Value: 0},
		{Name: "Celestial Griffin", Value: 0},
		{Name: "Dreadhorn", Value: 0},
		{Name: "Scarab King", Value: 3},
		{Name: "Frost Spider", Value: 0},
		{Name: "Eternal Dragon", Value: 0},
		{Name: "Dark Fae", Value: 1},
	}
	if diff := cmp.Diff(expected, tower.Scalars()); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestContainerOutOfRange(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)

	hardMode := NewHardMode()
	require.True(t, hardMode.Set(ctx, "Ice Golem", 7))
	require.Equal(t, []string{"rating out of expected range"}, logs.Warnings())

	value, _ := hardMode.Get("Ice Golem")
	require.Equal(t, 7.0, value)
}

func TestOrdinalScale(t *testing.T) {
	testCases := []struct {
		label string
		value float64
	}{
		{label: "Bad", value: 1},
		{label: "OK", value: 2},
		{label: "good", value: 3},
		{label: "Great", value: 4},
		{label: " Godlike ", value: 5},
	}

	for _, test := range testCases {
		value, ok := OrdinalValue(test.label)
		require.True(t, ok, test.label)
		require.Equal(t, test.value, value)

		label, ok := OrdinalLabel(test.value)
		require.True(t, ok)
		require.Equal(t, test.value, mustOrdinal(t, label))
	}

	_, ok := OrdinalValue("Amazing")
	require.False(t, ok)
	_, ok = OrdinalLabel(2.5)
	require.False(t, ok)
}

func mustOrdinal(t *testing.T, label string) float64 {
	value, ok := OrdinalValue(label)
	require.True(t, ok)
	return value
}
