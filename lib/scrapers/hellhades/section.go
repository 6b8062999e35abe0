package hellhades

import (
	"context"
	"fmt"
	"log/slog"
	"raidchampions/lib/champion"
	"raidchampions/lib/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Section is one rating category block of the champion page.
type Section struct {
	Anchor string
	Schema *champion.Schema
}

func (s Section) Name() string {
	return s.Schema.Name
}

var (
	CoreSection        = Section{Anchor: "key-areas", Schema: champion.CoreSchema}
	DungeonsSection    = Section{Anchor: "dungeons", Schema: champion.DungeonsSchema}
	HardModeSection    = Section{Anchor: "hard-mode", Schema: champion.HardModeSchema}
	DoomTowerSection   = Section{Anchor: "doom-tower", Schema: champion.DoomTowerSchema}
	FactionWarsSection = Section{Anchor: "faction-wars", Schema: champion.FactionWarsSchema}
)

type labeledRating struct {
	Label string
	Value float64
}

type sectionError struct {
	section Section
	reason  string
}

func (e sectionError) Error() string {
	return fmt.Sprintf("%s: %s", e.section.Name(), e.reason)
}

func (e sectionError) Unwrap() error {
	return ErrSectionNotFound
}

// splitRating splits the flattened item text on the first colon.
func splitRating(text string) (label, value string, ok bool) {
	label, value, ok = strings.Cut(text, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(label), strings.TrimSpace(value), true
}

// extractSection returns the labeled ratings listed under the section's
// anchor in document order. Items that cannot be read are skipped, a
// section without any items is an error.
func extractSection(ctx context.Context, doc *goquery.Document, section Section) ([]labeledRating, error) {
	ctx, span := tracer.Start(ctx, "extractSection")
	defer span.End()
	span.SetAttributes(attribute.String("section.anchor", section.Anchor))

	root := doc.Find(fmt.Sprintf("div#%s", section.Anchor)).First()
	if root.Length() == 0 {
		span.SetStatus(codes.Error, "anchor not found")
		return nil, sectionError{section: section, reason: "anchor not found"}
	}

	list := root.Find("div.raid-ratings-list").First()
	if list.Length() == 0 {
		span.SetStatus(codes.Error, "ratings list not found")
		return nil, sectionError{section: section, reason: "ratings list not found"}
	}

	items := list.Find("div.raid-rating")
	if items.Length() == 0 {
		span.SetStatus(codes.Error, "no rating items")
		return nil, sectionError{section: section, reason: "no rating items"}
	}

	var ratings []labeledRating
	items.Each(func(idx int, item *goquery.Selection) {
		text := htmlutil.JoinText(item, " ")
		label, valueText, ok := splitRating(text)
		if !ok {
			slog.WarnContext(
				ctx, "rating item has no label separator",
				"section", section.Name(),
				"item", idx,
				"text", text,
			)
			return
		}

		value, ok := decodeRating(ctx, label, valueText, item)
		if !ok {
			return
		}
		ratings = append(ratings, labeledRating{Label: label, Value: value})
	})

	span.SetAttributes(attribute.Int("section.ratings", len(ratings)))
	return ratings, nil
}

// fillSection extracts a section into a new container of its schema.
func fillSection(ctx context.Context, doc *goquery.Document, section Section) (champion.Container, error) {
	ratings, err := extractSection(ctx, doc, section)
	if err != nil {
		return champion.Container{}, err
	}
	container := champion.NewContainer(section.Schema)
	for _, r := range ratings {
		container.Set(ctx, r.Label, r.Value)
	}
	return container, nil
}
