package directory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"orgdir/internal/domain"
)

// Normalize lower-cases s and trims surrounding whitespace
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Candidates returns the records whose normalized name starts with the
// normalized query, in their original order. An empty query matches everything.
func Candidates(query string, records []domain.OrganizationRecord) []domain.OrganizationRecord {
	q := Normalize(query)
	var out []domain.OrganizationRecord
	for _, r := range records {
		if strings.HasPrefix(Normalize(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// ExactMatch returns the first record whose normalized name equals the normalized query
func ExactMatch(query string, records []domain.OrganizationRecord) (domain.OrganizationRecord, bool) {
	q := Normalize(query)
	for _, r := range records {
		if Normalize(r.Name) == q {
			return r, true
		}
	}
	return domain.OrganizationRecord{}, false
}

// ParseLocale turns a BCP 47 string into a tag, falling back to English
func ParseLocale(locale string) language.Tag {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		return language.English
	}
	return tag
}

// SortRecords returns a copy of records ordered by name using the collation rules of tag.
// Equal names keep their source order.
func SortRecords(records []domain.OrganizationRecord, tag language.Tag) []domain.OrganizationRecord {
	sorted := make([]domain.OrganizationRecord, len(records))
	copy(sorted, records)

	c := collate.New(tag)
	sort.SliceStable(sorted, func(i, j int) bool {
		return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
	})
	return sorted
}
