// Package country holds the countries members can come from, with their french names and flags.
package country

import (
	"strings"
	"unicode"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Country is a member's country of origin.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

const (
	DefaultCode = "FR"
	// UnknownFlag is shown for countries we don't know.
	UnknownFlag = "🏳️"

	// minimum difflib ratio for a misspelled name to match
	fuzzyCutoff = 0.9
)

var countries = [...]Country{
	{Code: "FR", Name: "France", Flag: "🇫🇷"},
	{Code: "BR", Name: "Brésil", Flag: "🇧🇷"},
	{Code: "ES", Name: "Espagne", Flag: "🇪🇸"},
	{Code: "IT", Name: "Italie", Flag: "🇮🇹"},
	{Code: "PT", Name: "Portugal", Flag: "🇵🇹"},
	{Code: "BE", Name: "Belgique", Flag: "🇧🇪"},
	{Code: "CH", Name: "Suisse", Flag: "🇨🇭"},
	{Code: "DE", Name: "Allemagne", Flag: "🇩🇪"},
	{Code: "GB", Name: "Royaume-Uni", Flag: "🇬🇧"},
	{Code: "US", Name: "États-Unis", Flag: "🇺🇸"},
	{Code: "CA", Name: "Canada", Flag: "🇨🇦"},
	{Code: "MX", Name: "Mexique", Flag: "🇲🇽"},
	{Code: "AR", Name: "Argentine", Flag: "🇦🇷"},
	{Code: "CL", Name: "Chili", Flag: "🇨🇱"},
	{Code: "CO", Name: "Colombie", Flag: "🇨🇴"},
	{Code: "RU", Name: "Russie", Flag: "🇷🇺"},
	{Code: "JP", Name: "Japon", Flag: "🇯🇵"},
	{Code: "KR", Name: "Corée du Sud", Flag: "🇰🇷"},
	{Code: "CN", Name: "Chine", Flag: "🇨🇳"},
	{Code: "IN", Name: "Inde", Flag: "🇮🇳"},
	{Code: "IL", Name: "Israël", Flag: "🇮🇱"},
	{Code: "VN", Name: "Vietnam", Flag: "🇻🇳"},
	{Code: "TH", Name: "Thaïlande", Flag: "🇹🇭"},
	{Code: "AU", Name: "Australie", Flag: "🇦🇺"},
	{Code: "NZ", Name: "Nouvelle-Zélande", Flag: "🇳🇿"},
	{Code: "MA", Name: "Maroc", Flag: "🇲🇦"},
	{Code: "TN", Name: "Tunisie", Flag: "🇹🇳"},
	{Code: "DZ", Name: "Algérie", Flag: "🇩🇿"},
	{Code: "SN", Name: "Sénégal", Flag: "🇸🇳"},
	{Code: "CI", Name: "Côte d'Ivoire", Flag: "🇨🇮"},
	{Code: "ZA", Name: "Afrique du Sud", Flag: "🇿🇦"},
	{Code: "PL", Name: "Pologne", Flag: "🇵🇱"},
	{Code: "NL", Name: "Pays-Bas", Flag: "🇳🇱"},
	{Code: "SE", Name: "Suède", Flag: "🇸🇪"},
	{Code: "NO", Name: "Norvège", Flag: "🇳🇴"},
	{Code: "DK", Name: "Danemark", Flag: "🇩🇰"},
	{Code: "FI", Name: "Finlande", Flag: "🇫🇮"},
	{Code: "GR", Name: "Grèce", Flag: "🇬🇷"},
	{Code: "TR", Name: "Turquie", Flag: "🇹🇷"},
	{Code: "RO", Name: "Roumanie", Flag: "🇷🇴"},
	{Code: "HU", Name: "Hongrie", Flag: "🇭🇺"},
	{Code: "CZ", Name: "République Tchèque", Flag: "🇨🇿"},
	{Code: "AT", Name: "Autriche", Flag: "🇦🇹"},
	{Code: "IE", Name: "Irlande", Flag: "🇮🇪"},
	{Code: "LU", Name: "Luxembourg", Flag: "🇱🇺"},
	{Code: "MC", Name: "Monaco", Flag: "🇲🇨"},
}

// All returns a copy of the known countries, in display order.
func All() []Country {
	l := make([]Country, len(countries))
	copy(l, countries[:])
	return l
}

// ByCode looks a country up by its two-letter code, case-insensitively.
func ByCode(code string) (Country, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return Country{}, false
	}
	for _, c := range countries {
		if c.Code == code {
			return c, true
		}
	}
	return Country{}, false
}

// Flag returns the flag of code, UnknownFlag if the code is empty or unknown.
func Flag(code string) string {
	if c, ok := ByCode(code); ok {
		return c.Flag
	}
	return UnknownFlag
}

// ByName finds the country a free-text name refers to.
// Names match case-insensitively when equal or when one contains the other, first in list order.
// Misspelled or unaccented names fall back to the closest name if it is similar enough.
func ByName(name string) (Country, bool) {
	query := strings.ToLower(strings.TrimSpace(name))
	if query == "" {
		return Country{}, false
	}

	for _, c := range countries {
		n := strings.ToLower(c.Name)
		if n == query || strings.Contains(n, query) || strings.Contains(query, n) {
			return c, true
		}
	}
	return closest(query)
}

func closest(query string) (Country, bool) {
	var (
		best      Country
		bestRatio float64
	)
	sm := difflib.NewMatcher(nil, splitChars(foldAccents(query)))
	for _, c := range countries {
		sm.SetSeq1(splitChars(foldAccents(strings.ToLower(c.Name))))
		if r := sm.Ratio(); r > bestRatio {
			best, bestRatio = c, r
		}
	}
	if bestRatio < fuzzyCutoff {
		return Country{}, false
	}
	return best, true
}

// foldAccents strips diacritics: "sénégal" -> "senegal".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// splitChars splits s into its runes, the unit difflib compares.
func splitChars(s string) []string {
	rs := []rune(s)
	chars := make([]string, len(rs))
	for i, r := range rs {
		chars[i] = string(r)
	}
	return chars
}

// FlagByName returns the flag of the country name refers to, UnknownFlag if none.
func FlagByName(name string) string {
	if c, ok := ByName(name); ok {
		return c.Flag
	}
	return UnknownFlag
}

// CodeByName returns the code of the country name refers to, DefaultCode if none.
func CodeByName(name string) string {
	if c, ok := ByName(name); ok {
		return c.Code
	}
	return DefaultCode
}
