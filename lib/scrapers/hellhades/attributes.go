package hellhades

import (
	"context"
	"fmt"
	"log/slog"
	"raidchampions/lib/champion"
	"raidchampions/lib/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// iconSource prefers the real image over lazyload placeholders.
func iconSource(img *goquery.Selection) string {
	src := strings.TrimSpace(img.AttrOr("src", ""))
	if src == "" || strings.HasPrefix(src, "data:") {
		for _, attr := range []string{"data-orig-src", "data-src"} {
			if alt := strings.TrimSpace(img.AttrOr(attr, "")); alt != "" {
				return alt
			}
		}
	}
	return src
}

func resolveFaction(ctx context.Context, src string) (champion.Faction, bool) {
	faction, ok := champion.FactionFromAsset(htmlutil.AssetKey(src))
	if !ok {
		slog.WarnContext(ctx, "could not determine faction from source", "src", src)
	}
	return faction, ok
}

func resolveAffinity(ctx context.Context, src string) (champion.Affinity, bool) {
	affinity, ok := champion.AffinityFromAsset(htmlutil.AssetKey(src))
	if !ok {
		slog.WarnContext(ctx, "could not determine affinity from source", "src", src)
	}
	return affinity, ok
}

type attributes struct {
	faction  champion.Faction
	affinity champion.Affinity
	rarity   string
}

// resolveAttributes reads the icon strip next to the champion name, the
// first icon is always the faction and the second the affinity.
func resolveAttributes(ctx context.Context, doc *goquery.Document) (attributes, error) {
	icons := doc.Find("div.raid-affinity-icon").First().Find("img")
	if icons.Length() < 2 {
		return attributes{}, fmt.Errorf("expected faction and affinity icons, found %d", icons.Length())
	}

	faction, ok := resolveFaction(ctx, iconSource(icons.Eq(0)))
	if !ok {
		return attributes{}, fmt.Errorf("unknown faction icon '%s'", iconSource(icons.Eq(0)))
	}
	affinity, ok := resolveAffinity(ctx, iconSource(icons.Eq(1)))
	if !ok {
		return attributes{}, fmt.Errorf("unknown affinity icon '%s'", iconSource(icons.Eq(1)))
	}

	attrs := attributes{faction: faction, affinity: affinity}
	if icons.Length() > 2 {
		rarity, ok := champion.RarityFromAsset(htmlutil.AssetKey(iconSource(icons.Eq(2))))
		if ok {
			attrs.rarity = rarity
		}
	}
	return attrs, nil
}
