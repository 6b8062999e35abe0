package reports

import (
	"fmt"
	"slices"
	"strings"

	"github.com/antzucaro/matchr"
)

type NotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no champion matches '%s'", e.Query)
	}
	return fmt.Sprintf(
		"no champion matches '%s', did you mean: %s?",
		e.Query, strings.Join(e.Suggestions, ", "),
	)
}

type suggestion struct {
	name       string
	similarity float64
}

// Suggest returns up to n names ordered by Jaro-Winkler similarity to the
// query, names with no similarity at all are left out.
func Suggest(names []string, query string, n int) []string {
	query = strings.ToLower(strings.TrimSpace(query))

	var candidates []suggestion
	for _, name := range names {
		similarity := matchr.JaroWinkler(strings.ToLower(name), query, false)
		if similarity <= 0 {
			continue
		}
		candidates = append(candidates, suggestion{name: name, similarity: similarity})
	}
	slices.SortStableFunc(candidates, func(a, b suggestion) int {
		switch {
		case a.similarity > b.similarity:
			return -1
		case a.similarity < b.similarity:
			return 1
		}
		return 0
	})
	if len(candidates) > n {
		candidates = candidates[:n]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}
