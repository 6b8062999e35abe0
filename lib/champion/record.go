package champion

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is either a Scalar or a Category.
type Entry interface {
	EntryName() string
	isEntry()
}

type Scalar struct {
	Name  string
	Value float64
}

func (s Scalar) EntryName() string { return s.Name }
func (Scalar) isEntry()            {}

type Category struct {
	Name    string
	Scalars []Scalar
}

func (c Category) EntryName() string { return c.Name }
func (Category) isEntry()            {}

// Record is the serialized form of a champion.
type Record struct {
	Name     string
	Faction  string
	Affinity string
	Rarity   string
	Ratings  []Entry
}

// RatingRow is a single flattened rating, top level scalars are filed under
// OverallCategory.
type RatingRow struct {
	Category    string
	Subcategory string
	Rating      float64
}

func (r Record) Rows() []RatingRow {
	var rows []RatingRow
	for _, e := range r.Ratings {
		switch e := e.(type) {
		case Scalar:
			rows = append(rows, RatingRow{
				Category:    OverallCategory,
				Subcategory: e.Name,
				Rating:      e.Value,
			})
		case Category:
			for _, s := range e.Scalars {
				rows = append(rows, RatingRow{
					Category:    e.Name,
					Subcategory: s.Name,
					Rating:      s.Value,
				})
			}
		}
	}
	return rows
}

// EntriesFromRows is the inverse of Record.Rows, categories keep the order
// in which they first appear.
func EntriesFromRows(rows []RatingRow) []Entry {
	var entries []Entry
	index := map[string]int{}
	for _, row := range rows {
		if row.Category == OverallCategory {
			entries = append(entries, Scalar{Name: row.Subcategory, Value: row.Rating})
			continue
		}
		i, ok := index[row.Category]
		if !ok {
			i = len(entries)
			index[row.Category] = i
			entries = append(entries, Category{Name: row.Category})
		}
		category := entries[i].(Category)
		category.Scalars = append(category.Scalars, Scalar{Name: row.Subcategory, Value: row.Rating})
		entries[i] = category
	}
	return entries
}

// Lookup finds a rating by category and slot name, use OverallCategory for
// top level scalars.
func (r Record) Lookup(category, name string) (float64, bool) {
	for _, row := range r.Rows() {
		if row.Category == category && row.Subcategory == name {
			return row.Rating, true
		}
	}
	return 0, false
}

type objectWriter struct {
	buf   *bytes.Buffer
	first bool
	err   error
}

func newObjectWriter(buf *bytes.Buffer) *objectWriter {
	buf.WriteByte('{')
	return &objectWriter{buf: buf, first: true}
}

func (w *objectWriter) key(k string) {
	if !w.first {
		w.buf.WriteByte(',')
	}
	w.first = false
	encoded, err := json.Marshal(k)
	if err != nil {
		w.err = err
		return
	}
	w.buf.Write(encoded)
	w.buf.WriteByte(':')
}

func (w *objectWriter) value(k string, v any) {
	w.key(k)
	encoded, err := json.Marshal(v)
	if err != nil {
		w.err = err
		return
	}
	w.buf.Write(encoded)
}

func (w *objectWriter) close() error {
	w.buf.WriteByte('}')
	return w.err
}

// MarshalJSON keeps keys in canonical order rather than the alphabetical
// order encoding/json would give a map.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	obj := newObjectWriter(&buf)
	obj.value("Name", r.Name)
	obj.value("Faction", r.Faction)
	obj.value("Affinity", r.Affinity)
	obj.value("Rarity", r.Rarity)

	obj.key("Ratings")
	ratings := newObjectWriter(&buf)
	for _, e := range r.Ratings {
		switch e := e.(type) {
		case Scalar:
			ratings.value(e.Name, e.Value)
		case Category:
			ratings.key(e.Name)
			category := newObjectWriter(&buf)
			for _, s := range e.Scalars {
				category.value(s.Name, s.Value)
			}
			if err := category.close(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown rating entry %T", e)
		}
	}
	if err := ratings.close(); err != nil {
		return nil, err
	}
	if err := obj.close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Names(records []Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
