package hellhades

import (
	"context"
	"errors"
	"os"
	"raidchampions/lib/champion"
	"raidchampions/lib/testutil"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const factionPath = "/wp-content/plugins/rsl-assets/assets/factions/shadowkin.png"

func readNinja(t *testing.T) string {
	contents, err := os.ReadFile("testdata/ninja.html")
	require.NoError(t, err)
	return string(contents)
}

func TestLoadNinja(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)

	ninja, err := Load(ctx, readNinja(t))
	require.NoError(t, err)
	require.Empty(t, logs.Warnings())

	require.Equal(t, "Ninja", ninja.Name)
	require.Equal(t, champion.FactionShadowkin, ninja.Faction)
	require.Equal(t, champion.AffinityMagic, ninja.Affinity)
	require.Equal(t, "", ninja.Rarity)
	require.Equal(t, 4.5, ninja.Ratings.Overall)
	require.Nil(t, ninja.Ratings.FactionWars)

	expected := map[*champion.Container][]champion.Scalar{
		&ninja.Ratings.Core: {
			{Name: "Demon Lord", Value: 4.5},
			{Name: "Hydra", Value: 4},
			{Name: "Waves", Value: 3.5},
			{Name: "Chimera", Value: 3.5},
			{Name: "Amius", Value: 2},
			{Name: "Chimera Trials", Value: 3},
			{Name: "Sintranos Hard Stages", Value: 2},
		},
		&ninja.Ratings.Dungeons: {
			{Name: "Spider", Value: 4.5},
			{Name: "Fire Knight", Value: 5},
			{Name: "Dragon", Value: 4},
			{Name: "Ice Golem", Value: 3.5},
			{Name: "Iron Twins", Value: 2.5},
			{Name: "Sand Devil", Value: 3},
			{Name: "Shogun Grove", Value: 2.5},
		},
		&ninja.Ratings.HardMode: {
			{Name: "Spider", Value: 4},
			{Name: "Fire Knight", Value: 4.5},
			{Name: "Dragon", Value: 3},
			{Name: "Ice Golem", Value: 3.5},
		},
		&ninja.Ratings.DoomTower: {
			{Name: "Magna Dragon", Value: 4},
			{Name: "Nether Spider", Value: 3.5},
			{Name: "Celestial Griffin", Value: 3},
			{Name: "Dreadhorn", Value: 4},
			{Name: "Scarab King", Value: 4.5},
			{Name: "Frost Spider", Value: 2},
			{Name: "Eternal Dragon", Value: 3},
			{Name: "Dark Fae", Value: 1.5},
		},
	}
	for container, scalars := range expected {
		if diff := cmp.Diff(scalars, container.Scalars()); diff != "" {
			t.Fatalf("%s (-want +got):\n%s", container.Schema().Name, diff)
		}
	}

	record := ninja.Record()
	require.Equal(t, "Shadowkin", record.Faction)
	require.Equal(t, "Magic", record.Affinity)
	require.Len(t, record.Rows(), 1+7+7+4+8)
}

func TestLoadFactionWars(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	ninja, err := Load(ctx, readNinja(t), WithFactionWars(true))
	require.NoError(t, err)
	require.NotNil(t, ninja.Ratings.FactionWars)

	expected := []champion.Scalar{
		{Name: "Damage", Value: 4},
		{Name: "Decrease Defence", Value: 2},
		{Name: "Crowd Control", Value: 5},
		{Name: "Turn Meter Control", Value: 3},
	}
	if diff := cmp.Diff(expected, ninja.Ratings.FactionWars.Scalars()); diff != "" {
		t.Fatalf("faction wars (-want +got):\n%s", diff)
	}

	value, ok := ninja.Record().Lookup("Faction Wars", "Crowd Control")
	require.True(t, ok)
	require.Equal(t, 5.0, value)
}

func TestLoadFactionWarsMissing(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)

	page := strings.Replace(readNinja(t), `id="faction-wars"`, `id="retired"`, 1)
	ninja, err := Load(ctx, page, WithFactionWars(true))
	require.NoError(t, err)
	require.Nil(t, ninja.Ratings.FactionWars)
	require.Equal(t, []string{"skipping faction wars ratings"}, logs.Warnings())
}

func TestLoadIsRepeatable(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	page := readNinja(t)
	first, err := Load(ctx, page, WithFactionWars(true))
	require.NoError(t, err)
	second, err := Load(ctx, page, WithFactionWars(true))
	require.NoError(t, err)

	if diff := cmp.Diff(first.Record(), second.Record()); diff != "" {
		t.Fatalf("records differ between loads (-first +second):\n%s", diff)
	}
}

func TestLoadMissingSection(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)

	page := strings.Replace(readNinja(t), `id="dungeons"`, `id="retired"`, 1)
	ninja, err := Load(ctx, page)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrSectionNotFound))
	require.Equal(t, champion.Champion{}, ninja)

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	require.Equal(t, StageCoreResolved, extractErr.Stage)
	require.Equal(t, "Dungeons", extractErr.Section)
	require.Equal(t, "anchor not found", extractErr.Reason)

	section, ok := MissingSection(err)
	require.True(t, ok)
	require.Equal(t, "Dungeons", section)

	require.Equal(t, []string{"failed to extract champion"}, logs.Warnings())
}

func TestLoadMissingOverall(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	page := strings.Replace(readNinja(t), `raid-ratings-overall`, `raid-ratings-gone`, 1)
	_, err := Load(ctx, page)
	require.True(t, errors.Is(err, ErrSectionNotFound))

	section, ok := MissingSection(err)
	require.True(t, ok)
	require.Equal(t, champion.OverallRatingName, section)
}

func TestLoadOverallNotANumber(t *testing.T) {
	ctx := context.Background()

	for _, text := range []string{"", "TBD"} {
		logs := testutil.RecordLogs(t)
		page := strings.Replace(readNinja(t), `<span>4.5</span>`, `<span>`+text+`</span>`, 1)
		_, err := Load(ctx, page)
		require.True(t, errors.Is(err, ErrSectionNotFound), text)

		var extractErr *ExtractError
		require.True(t, errors.As(err, &extractErr))
		require.Equal(t, StageAttributesResolved, extractErr.Stage)
		require.Equal(t, champion.OverallRatingName, extractErr.Section)
		require.Equal(t, "overall rating is empty", extractErr.Reason)
		require.Equal(t, []string{"failed to extract champion"}, logs.Warnings())
	}
}

func TestLoadMissingName(t *testing.T) {
	ctx := context.Background()
	testutil.RecordLogs(t)

	page := strings.Replace(readNinja(t), `fusion-title-1`, `fusion-title-2`, 1)
	_, err := Load(ctx, page)
	require.True(t, errors.Is(err, ErrNameNotFound))

	var extractErr *ExtractError
	require.True(t, errors.As(err, &extractErr))
	require.Equal(t, StageStart, extractErr.Stage)

	_, ok := MissingSection(err)
	require.False(t, ok)
}

func TestLoadAttributes(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		rewrite  func(page string) string
		warnings []string
		check    func(t *testing.T, c champion.Champion, err error)
	}{
		{
			name: "unknown faction",
			rewrite: func(page string) string {
				return strings.ReplaceAll(page, "factions/shadowkin.png", "factions/pirates.png")
			},
			warnings: []string{"could not determine faction from source", "failed to extract champion"},
			check: func(t *testing.T, c champion.Champion, err error) {
				require.True(t, errors.Is(err, ErrAttributeMissing))
				require.Equal(t, champion.Champion{}, c)
			},
		},
		{
			name: "single icon",
			rewrite: func(page string) string {
				return strings.Replace(page, `<img class="affinity-icon lazyloaded" data-orig-src="/wp-content/plugins/rsl-assets/assets/artwork/affinity/magic.png" decoding="async" src="/wp-content/plugins/rsl-assets/assets/artwork/affinity/magic.png"/>`, "", 1)
			},
			warnings: []string{"failed to extract champion"},
			check: func(t *testing.T, c champion.Champion, err error) {
				require.True(t, errors.Is(err, ErrAttributeMissing))
			},
		},
		{
			name: "lazyload placeholder",
			rewrite: func(page string) string {
				return strings.Replace(page, `decoding="async" src="`+factionPath+`"`, `decoding="async" src="data:image/svg+xml,%3Csvg%3E"`, 1)
			},
			check: func(t *testing.T, c champion.Champion, err error) {
				require.NoError(t, err)
				require.Equal(t, champion.FactionShadowkin, c.Faction)
			},
		},
		{
			name: "rarity icon",
			rewrite: func(page string) string {
				return strings.Replace(page, `decoding="async" src="/wp-content/plugins/rsl-assets/assets/artwork/affinity/magic.png"/>`, `decoding="async" src="/wp-content/plugins/rsl-assets/assets/artwork/affinity/magic.png"/><img src="/assets/rarity/legendary.png"/>`, 1)
			},
			check: func(t *testing.T, c champion.Champion, err error) {
				require.NoError(t, err)
				require.Equal(t, "Legendary", c.Rarity)
			},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			logs := testutil.RecordLogs(t)
			c, err := Load(ctx, test.rewrite(readNinja(t)))
			test.check(t, c, err)
			require.Equal(t, test.warnings, logs.Warnings())
		})
	}
}

func TestLoadEmptyPage(t *testing.T) {
	ctx := context.Background()

	for _, page := range []string{"", "   \n"} {
		c, err := Load(ctx, page)
		require.True(t, errors.Is(err, ErrPageUnavailable))
		require.Equal(t, champion.Champion{}, c)
	}
}

func TestResolveFaction(t *testing.T) {
	ctx := context.Background()
	logs := testutil.RecordLogs(t)

	faction, ok := resolveFaction(ctx, factionPath)
	require.True(t, ok)
	require.Equal(t, champion.FactionShadowkin, faction)

	faction, ok = resolveFaction(ctx, "/shadowkin.png")
	require.True(t, ok)
	require.Equal(t, champion.FactionShadowkin, faction)
	require.Empty(t, logs.Warnings())

	_, ok = resolveFaction(ctx, "/assets/factions/sylvan_watchers.png")
	require.False(t, ok)
	require.Equal(t, []string{"could not determine faction from source"}, logs.Warnings())
}
