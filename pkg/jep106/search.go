package jep106

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// Entry pairs an identifier with its assigned manufacturer name.
type Entry struct {
	ID
	Name string
}

// All yields every assigned slot in bank then code order.
func All() iter.Seq2[ID, string] {
	return func(yield func(ID, string) bool) {
		for b := range banks {
			for i, name := range banks[b] {
				if name == "" {
					continue
				}
				if !yield(ID{Bank: uint8(b), Code: uint8(i + 1)}, name) {
					return
				}
			}
		}
	}
}

// Bank returns the assigned entries of a single bank, or nil when bank is out
// of range.
func Bank(bank uint8) []Entry {
	if int(bank) >= len(banks) {
		return nil
	}
	var entries []Entry
	for i, name := range banks[bank] {
		if name != "" {
			entries = append(entries, Entry{ID: ID{Bank: bank, Code: uint8(i + 1)}, Name: name})
		}
	}
	return entries
}

// Assigned returns how many slots of bank carry a name.
func Assigned(bank uint8) int {
	if int(bank) >= len(banks) {
		return 0
	}
	n := 0
	for _, name := range banks[bank] {
		if name != "" {
			n++
		}
	}
	return n
}

// Search returns every entry whose name contains query, ignoring case.
// An empty query matches nothing.
func Search(query string) []Entry {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var matches []Entry
	for id, name := range All() {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, Entry{ID: id, Name: name})
		}
	}
	return matches
}

// Suggest returns up to n entries whose name, or one word of it, is within a
// small edit distance of query, closest first. It backs "did you mean" hints
// when Search finds nothing.
func Suggest(query string, n int) []Entry {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || n <= 0 {
		return nil
	}
	limit := max(2, len(needle)/3)

	type scored struct {
		Entry
		dist int
	}
	var hits []scored
	for id, name := range All() {
		d := distance(needle, strings.ToLower(name))
		if d <= limit {
			hits = append(hits, scored{Entry{ID: id, Name: name}, d})
		}
	}
	slices.SortStableFunc(hits, func(a, b scored) int { return cmp.Compare(a.dist, b.dist) })

	out := make([]Entry, 0, min(n, len(hits)))
	for _, h := range hits[:min(n, len(hits))] {
		out = append(out, h.Entry)
	}
	return out
}

// distance is the edit distance from needle to name or to its closest word.
func distance(needle, name string) int {
	best := levenshtein.ComputeDistance(needle, name)
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		best = min(best, levenshtein.ComputeDistance(needle, w))
	}
	return best
}
