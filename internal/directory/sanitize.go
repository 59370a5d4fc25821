package directory

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"

	"orgdir/internal/domain"
)

// cleanText removes terminal escape sequences and control characters so a
// value from the data source can only ever print as plain text
func cleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// sanitize returns a copy of rec with every displayed field cleaned
func sanitize(rec domain.OrganizationRecord) domain.OrganizationRecord {
	out := domain.OrganizationRecord{
		Name:     cleanText(rec.Name),
		Website:  cleanText(rec.Website),
		Phone:    cleanText(rec.Phone),
		Hours:    cleanText(rec.Hours),
		HelpPage: cleanText(rec.HelpPage),
	}
	if rec.Social != nil {
		out.Social = &domain.SocialLinks{
			Twitter:  cleanText(rec.Social.Twitter),
			Facebook: cleanText(rec.Social.Facebook),
		}
	}
	return out
}
