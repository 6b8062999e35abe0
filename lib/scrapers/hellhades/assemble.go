package hellhades

import (
	"context"
	"errors"
	"log/slog"
	"raidchampions/lib/champion"
	"raidchampions/lib/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type Options struct {
	// extract the faction wars section when the page has it
	FactionWars bool
}

type Option func(*Options)

func WithFactionWars(enabled bool) Option {
	return func(o *Options) {
		o.FactionWars = enabled
	}
}

type assembly struct {
	doc     *goquery.Document
	opts    Options
	result  champion.Champion
	section string
}

type step struct {
	reaches Stage
	run     func(ctx context.Context, a *assembly) error
}

func resolveName(ctx context.Context, a *assembly) error {
	header := a.doc.Find("div.fusion-title.fusion-title-1 h1").First()
	if header.Length() == 0 {
		return errors.New("title header not found")
	}
	name := htmlutil.NormalizeText(header.Text())
	if name == "" {
		return errors.New("title header is empty")
	}
	a.result.Name = name
	return nil
}

func resolveChampionAttributes(ctx context.Context, a *assembly) error {
	attrs, err := resolveAttributes(ctx, a.doc)
	if err != nil {
		return err
	}
	a.result.Faction = attrs.faction
	a.result.Affinity = attrs.affinity
	a.result.Rarity = attrs.rarity
	return nil
}

func resolveOverall(ctx context.Context, a *assembly) error {
	a.section = champion.OverallRatingName
	item := a.doc.Find("div.raid-ratings-overall div.raid-rating").First()
	if item.Length() == 0 {
		return errors.New("overall rating not found")
	}
	// the star next to the value is decoration, only the text is the rating
	value, ok := parseNumber(htmlutil.JoinText(item, " "))
	if !ok {
		return errors.New("overall rating is empty")
	}
	a.result.Ratings.Overall = value
	a.section = ""
	return nil
}

func resolveSection(section Section, assign func(r *champion.Ratings, c champion.Container)) func(context.Context, *assembly) error {
	return func(ctx context.Context, a *assembly) error {
		a.section = section.Name()
		container, err := fillSection(ctx, a.doc, section)
		if err != nil {
			return err
		}
		assign(&a.result.Ratings, container)
		a.section = ""
		return nil
	}
}

func resolveFactionWars(ctx context.Context, a *assembly) error {
	if !a.opts.FactionWars {
		return nil
	}
	container, err := fillSection(ctx, a.doc, FactionWarsSection)
	if err != nil {
		// the site no longer publishes faction wars for every champion
		slog.WarnContext(ctx, "skipping faction wars ratings", "err", err)
		return nil
	}
	a.result.Ratings.FactionWars = &container
	return nil
}

var steps = []step{
	{reaches: StageNameResolved, run: resolveName},
	{reaches: StageAttributesResolved, run: resolveChampionAttributes},
	{reaches: StageOverallResolved, run: resolveOverall},
	{reaches: StageCoreResolved, run: resolveSection(CoreSection, func(r *champion.Ratings, c champion.Container) { r.Core = c })},
	{reaches: StageDungeonsResolved, run: resolveSection(DungeonsSection, func(r *champion.Ratings, c champion.Container) { r.Dungeons = c })},
	{reaches: StageHardModeResolved, run: resolveSection(HardModeSection, func(r *champion.Ratings, c champion.Container) { r.HardMode = c })},
	{reaches: StageDoomTowerResolved, run: resolveSection(DoomTowerSection, func(r *champion.Ratings, c champion.Container) { r.DoomTower = c })},
	{reaches: StageFactionWarsResolved, run: resolveFactionWars},
}

func failureKind(stage Stage) error {
	switch stage {
	case StageStart:
		return ErrNameNotFound
	case StageNameResolved:
		return ErrAttributeMissing
	}
	return ErrSectionNotFound
}

// LoadDocument builds a champion out of a parsed champion page. Either a
// fully populated champion is returned or an *ExtractError, never a partial
// record.
func LoadDocument(ctx context.Context, doc *goquery.Document, opts ...Option) (champion.Champion, error) {
	ctx, span := tracer.Start(ctx, "LoadDocument")
	defer span.End()

	a := &assembly{doc: doc}
	for _, o := range opts {
		o(&a.opts)
	}

	stage := StageStart
	for _, s := range steps {
		err := s.run(ctx, a)
		if err != nil {
			extractErr := &ExtractError{
				Stage:   stage,
				Section: a.section,
				Reason:  err.Error(),
				Err:     failureKind(stage),
			}
			var secErr sectionError
			if errors.As(err, &secErr) {
				extractErr.Reason = secErr.reason
			}
			span.RecordError(extractErr)
			span.SetStatus(codes.Error, "failed to extract champion")
			slog.WarnContext(ctx, "failed to extract champion", "err", extractErr)
			return champion.Champion{}, extractErr
		}
		stage = s.reaches
	}

	span.SetAttributes(attribute.String("champion.name", a.result.Name))
	return a.result, nil
}

// Load parses a champion page. An empty page is treated the same as an
// unavailable one.
func Load(ctx context.Context, page string, opts ...Option) (champion.Champion, error) {
	if strings.TrimSpace(page) == "" {
		return champion.Champion{}, &ExtractError{Stage: StageStart, Reason: "no document", Err: ErrPageUnavailable}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return champion.Champion{}, &ExtractError{Stage: StageStart, Reason: err.Error(), Err: ErrPageUnavailable}
	}
	return LoadDocument(ctx, doc, opts...)
}
