package hellhades

import (
	"context"
	"log/slog"
	"raidchampions/lib/champion"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var numericRating = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// parseNumber accepts plain decimal numbers only, forms like "1e3" or
// "Inf" are not ratings.
func parseNumber(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if !numericRating.MatchString(text) {
		return 0, false
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ratingIcons returns the icons a rating is drawn with. Without a
// div.star-ratings container only full and half star icons of the item
// count, other icons (info, warning) are not ratings.
func ratingIcons(item *goquery.Selection) *goquery.Selection {
	container := item.Find("div.star-ratings").First()
	if container.Length() > 0 {
		return container.Find("i")
	}
	return item.Find("i").FilterFunction(func(_ int, icon *goquery.Selection) bool {
		return isFullStar(icon) || isHalfStar(icon)
	})
}

// decodeRating turns the value text of a rating item into a number. Literal
// numbers win, then labels of the ordinal scale, then the star icons found
// in the item markup. ok is false when none of them are present.
func decodeRating(ctx context.Context, label, text string, item *goquery.Selection) (value float64, ok bool) {
	text = strings.TrimSpace(text)
	if value, ok := parseNumber(text); ok {
		return value, true
	}
	if value, ok := champion.OrdinalValue(text); ok {
		return value, true
	}

	if item != nil {
		icons := ratingIcons(item)
		if icons.Length() > 0 {
			return countStars(ctx, label, icons), true
		}
	}

	slog.WarnContext(ctx, "could not decode rating value", "label", label, "text", text)
	return 0, false
}

func isFullStar(icon *goquery.Selection) bool {
	return icon.HasClass("fas") && icon.HasClass("fa-star")
}

func isHalfStar(icon *goquery.Selection) bool {
	return icon.HasClass("fa-star-half") || icon.HasClass("fa-star-half-alt")
}

// countStars sums full (1.0) and half (0.5) star icons. Every icon is a
// slot, a slot that is neither (ex. an empty star) is reported since it
// usually means the layout changed.
func countStars(ctx context.Context, label string, icons *goquery.Selection) float64 {
	full := 0
	half := 0
	icons.Each(func(_ int, icon *goquery.Selection) {
		switch {
		case isFullStar(icon):
			full++
		case isHalfStar(icon):
			half++
		}
	})

	if full+half != icons.Length() {
		slog.WarnContext(
			ctx, "did not count all stars",
			"label", label,
			"expected", icons.Length(),
			"full", full,
			"half", half,
		)
	}

	return float64(full) + 0.5*float64(half)
}
