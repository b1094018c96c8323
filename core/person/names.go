// Package person derives display forms of people's names: capitalized first names,
// upper-cased surnames, list ordering, initials and the avatar fallback shown when no photo exists.
//
// Every function here is total: empty or unusable input degrades to "" (or "?" for avatars).
package person

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Casers are stateful, so a new one is built per call.

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// capitalize upper-cases the first rune of s and leaves the rest as is.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return upper(s[:size]) + s[size:]
}

// firstRune returns the first rune of s, upper-cased, as a string.
// Initials use the simple one-to-one mapping so they never grow past one rune.
func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r))
}

func isNamePartSeparator(r rune) bool {
	return r == '-' || unicode.IsSpace(r)
}

// FormatFirstName lowers s, then capitalizes every part separated by a hyphen or a whitespace.
// Parts are joined back with "-" if s contained one, with a single space otherwise.
//
//	FormatFirstName("JEAN-pierre")  // "Jean-Pierre"
//	FormatFirstName("marie claire") // "Marie Claire"
func FormatFirstName(s string) string {
	if s == "" {
		return ""
	}

	// empty parts are kept: "a  b" keeps both separators.
	parts := splitKeepEmpty(lower(s), isNamePartSeparator)
	for i, part := range parts {
		parts[i] = capitalize(part)
	}

	sep := " "
	if strings.Contains(s, "-") {
		sep = "-"
	}
	return strings.Join(parts, sep)
}

// splitKeepEmpty splits s around every rune satisfying f, keeping empty parts.
func splitKeepEmpty(s string, f func(rune) bool) []string {
	parts := make([]string, 0, 2)
	start := 0
	for i, r := range s {
		if f(r) {
			parts = append(parts, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, s[start:])
}

// FormatLastName upper-cases the whole surname.
func FormatLastName(s string) string {
	if s == "" {
		return ""
	}
	return upper(s)
}

// splitFullName returns the formatted first names and surname of fullName.
// The last whitespace separated word is always taken as the surname;
// a single word is a first name and lastName is then "".
func splitFullName(fullName string) (firstNames []string, lastName string, ok bool) {
	words := strings.Fields(fullName)
	switch len(words) {
	case 0:
		return nil, "", false
	case 1:
		return []string{FormatFirstName(words[0])}, "", true
	}
	n := len(words) - 1
	firstNames = make([]string, n)
	for i, w := range words[:n] {
		firstNames[i] = FormatFirstName(w)
	}
	return firstNames, FormatLastName(words[n]), true
}

// FormatFullName returns fullName as "First Names SURNAME".
// A single word is formatted as a first name.
func FormatFullName(fullName string) string {
	firstNames, lastName, ok := splitFullName(fullName)
	if !ok {
		return ""
	}
	if lastName == "" {
		return firstNames[0]
	}
	return strings.Join(firstNames, " ") + " " + lastName
}

// FormatNameForList returns fullName as "SURNAME First Names", the order used by tables.
func FormatNameForList(fullName string) string {
	firstNames, lastName, ok := splitFullName(fullName)
	if !ok {
		return ""
	}
	if lastName == "" {
		return firstNames[0]
	}
	return lastName + " " + strings.Join(firstNames, " ")
}

// Initials returns the first letter of a single word name,
// or the first letters of the first and last words.
//
//	Initials("Jean Dupont") // "JD"
//	Initials("Madonna")     // "M"
func Initials(fullName string) string {
	words := strings.Fields(fullName)
	switch len(words) {
	case 0:
		return ""
	case 1:
		return firstRune(words[0])
	}
	return firstRune(words[0]) + firstRune(words[len(words)-1])
}

// NameForms holds every display form of a name.
// FirstName and LastName format the whole input as a single part.
type NameForms struct {
	Input     string `json:"input"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	ListName  string `json:"list_name"`
	Initials  string `json:"initials"`
}

// Forms formats name every way it can be displayed.
func Forms(name string) NameForms {
	return NameForms{
		Input:     name,
		FirstName: FormatFirstName(name),
		LastName:  FormatLastName(name),
		FullName:  FormatFullName(name),
		ListName:  FormatNameForList(name),
		Initials:  Initials(name),
	}
}
