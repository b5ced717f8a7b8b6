// Package citekey derives deterministic, human-readable citation keys from
// an entry's author, date, and title.
package citekey

import (
	"strings"
	"unicode"
)

// NoAuthor is substituted for the author placeholders when an entry has no
// creator in the author role.
const NoAuthor = "No_author"

// Generator produces citation keys from a template. The zero value is not
// usable; construct with New.
type Generator struct {
	template string
	banned   []string
}

// New returns a Generator for the given key template and space-separated
// banned title-word list.
func New(template, bannedWords string) *Generator {
	return &Generator{
		template: template,
		banned:   strings.Fields(bannedWords),
	}
}

// Year extracts the year from a Zotero date field: the portion before the
// first space, split on "-", first segment. Empty date yields "".
func Year(date string) string {
	if date == "" {
		return ""
	}
	if i := strings.IndexByte(date, ' '); i >= 0 {
		date = date[:i]
	}
	if i := strings.IndexByte(date, '-'); i >= 0 {
		date = date[:i]
	}
	return date
}

// Make computes the citekey for one entry. lastname is the surname of the
// first author-role creator, or empty if the entry has none. No collision
// detection is performed: identical author/year/title-word inputs yield
// identical keys.
func (g *Generator) Make(lastname, date, title string) string {
	year := Year(date)
	titleWord := g.titleWord(title)

	if lastname == "" {
		lastname = NoAuthor
	}
	lastname = stripNonWord(lastname)
	titleWord = stripNonWord(titleWord)

	key := g.template
	key = strings.ReplaceAll(key, "{author}", strings.ToLower(lastname))
	key = strings.ReplaceAll(key, "{Author}", titleCase(lastname))
	key = strings.ReplaceAll(key, "{year}", shortYear(year))
	key = strings.ReplaceAll(key, "{Year}", year)
	key = strings.ReplaceAll(key, "{title}", strings.ToLower(titleWord))
	key = strings.ReplaceAll(key, "{Title}", titleCase(titleWord))
	return strings.ReplaceAll(key, " ", "")
}

// titleWord lowercases the title, strips one leading banned word and one
// leading single-letter word, and returns the first run of characters up to
// a space or one of ",;:.!?".
func (g *Generator) titleWord(title string) string {
	t := strings.ToLower(title)
	for _, w := range g.banned {
		if strings.HasPrefix(t, w+" ") {
			t = t[len(w)+1:]
			break
		}
	}
	if len(t) >= 2 && t[1] == ' ' && t[0] >= 'a' && t[0] <= 'z' {
		t = t[2:]
	}
	if i := strings.IndexAny(t, " ,;:.!?"); i >= 0 {
		t = t[:i]
	}
	return t
}

// shortYear drops the two century digits from a four-or-more character year.
func shortYear(year string) string {
	if len(year) >= 4 {
		return year[2:]
	}
	return year
}

// stripNonWord removes every character that is not a letter, digit, or
// underscore.
func stripNonWord(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// titleCase upper-cases the first letter of each letter run, so that
// "no_author" becomes "No_Author".
func titleCase(s string) string {
	var b strings.Builder
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
