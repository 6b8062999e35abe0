package reports

import (
	"cmp"
	"fmt"
	"raidchampions/lib/champion"
	"slices"
	"strconv"
	"strings"
)

// Table is a rendered-agnostic report, every cell is already formatted.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

func formatRating(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func columnName(row champion.RatingRow) string {
	return fmt.Sprintf("%s - %s", row.Category, row.Subcategory)
}

// ChampionReport has one row per champion and one column per rating, named
// "Category - Subcategory". Columns appear in the order they are first seen,
// ratings a champion does not have are left blank.
func ChampionReport(records []champion.Record) Table {
	table := Table{
		Title:  "Champions",
		Header: []string{"Name", "Faction", "Affinity", "Rarity"},
	}

	var ratingColumns []string
	index := map[string]int{}
	for _, r := range records {
		for _, row := range r.Rows() {
			name := columnName(row)
			if _, ok := index[name]; ok {
				continue
			}
			index[name] = len(ratingColumns)
			ratingColumns = append(ratingColumns, name)
		}
	}
	table.Header = append(table.Header, ratingColumns...)

	for _, r := range records {
		row := make([]string, 4+len(ratingColumns))
		row[0] = r.Name
		row[1] = r.Faction
		row[2] = r.Affinity
		row[3] = r.Rarity
		for _, rating := range r.Rows() {
			row[4+index[columnName(rating)]] = formatRating(rating.Rating)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

// FindChampion returns the first champion whose name contains query,
// ignoring case.
func FindChampion(records []champion.Record, query string) (champion.Record, bool) {
	needle := strings.ToLower(strings.TrimSpace(query))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			return r, true
		}
	}
	return champion.Record{}, false
}

// ChampionDetail lists the attributes of a single champion followed by its
// ratings grouped by category. When no champion matches, the error is a
// *NotFoundError carrying the closest names.
func ChampionDetail(records []champion.Record, query string) (Table, error) {
	r, ok := FindChampion(records, query)
	if !ok {
		return Table{}, &NotFoundError{
			Query:       query,
			Suggestions: Suggest(champion.Names(records), query, 3),
		}
	}

	table := Table{
		Title:  r.Name,
		Header: []string{"Field", "Value"},
		Rows: [][]string{
			{"Name", r.Name},
			{"Faction", orNA(r.Faction)},
			{"Affinity", orNA(r.Affinity)},
			{"Rarity", orNA(r.Rarity)},
			{"---", "---"},
		},
	}

	current := ""
	for _, row := range r.Rows() {
		if row.Category != current {
			if current != "" {
				table.Rows = append(table.Rows, []string{"", ""})
			}
			current = row.Category
			table.Rows = append(table.Rows, []string{fmt.Sprintf("[%s]", row.Category), ""})
		}
		table.Rows = append(table.Rows, []string{"  " + row.Subcategory, formatRating(row.Rating)})
	}
	return table, nil
}

type ratedRow struct {
	name string
	champion.RatingRow
}

// RatingSummary lists every rating. With a category, only that category is
// kept and the best ratings come first, otherwise ratings are grouped by
// category and subcategory.
func RatingSummary(records []champion.Record, category string) Table {
	var rows []ratedRow
	for _, r := range records {
		for _, row := range r.Rows() {
			if category != "" && !strings.EqualFold(row.Category, category) {
				continue
			}
			rows = append(rows, ratedRow{name: r.Name, RatingRow: row})
		}
	}

	if category != "" {
		slices.SortStableFunc(rows, func(a, b ratedRow) int {
			return cmp.Or(cmp.Compare(b.Rating, a.Rating), strings.Compare(a.name, b.name))
		})
	} else {
		slices.SortStableFunc(rows, func(a, b ratedRow) int {
			return cmp.Or(
				strings.Compare(a.Category, b.Category),
				strings.Compare(a.Subcategory, b.Subcategory),
				cmp.Compare(b.Rating, a.Rating),
			)
		})
	}

	title := "Rating summary"
	if category != "" {
		title = fmt.Sprintf("Rating summary: %s", category)
	}
	table := Table{
		Title:  title,
		Header: []string{"Name", "Category", "Subcategory", "Rating"},
	}
	for _, row := range rows {
		table.Rows = append(table.Rows, []string{row.name, row.Category, row.Subcategory, formatRating(row.Rating)})
	}
	return table
}

func status(v string) string {
	if v == "" {
		return "MISSING"
	}
	return "OK"
}

// MissingData lists champions without a faction, affinity or rarity.
func MissingData(records []champion.Record) Table {
	table := Table{
		Title:  "Missing data",
		Header: []string{"Name", "Faction", "Affinity", "Rarity"},
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b champion.Record) int {
		return strings.Compare(a.Name, b.Name)
	})
	for _, r := range sorted {
		if r.Faction != "" && r.Affinity != "" && r.Rarity != "" {
			continue
		}
		table.Rows = append(table.Rows, []string{r.Name, status(r.Faction), status(r.Affinity), status(r.Rarity)})
	}
	return table
}

// Leaderboard ranks the champions rated for a category and subcategory,
// keeping at most limit of them (0 keeps everyone).
func Leaderboard(records []champion.Record, category, subcategory string, limit int) Table {
	type entry struct {
		record champion.Record
		rating float64
	}
	var entries []entry
	for _, r := range records {
		rating, ok := r.Lookup(category, subcategory)
		if !ok {
			continue
		}
		entries = append(entries, entry{record: r, rating: rating})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return cmp.Or(cmp.Compare(b.rating, a.rating), strings.Compare(a.record.Name, b.record.Name))
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	table := Table{
		Title:  fmt.Sprintf("Top %s - %s", category, subcategory),
		Header: []string{"Rank", "Name", "Faction", "Affinity", "Rarity", "Rating"},
	}
	for i, e := range entries {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(i + 1),
			e.record.Name,
			e.record.Faction,
			e.record.Affinity,
			e.record.Rarity,
			formatRating(e.rating),
		})
	}
	return table
}
