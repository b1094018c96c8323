// Package phone formats phone numbers the way member forms display them: "+33 6 12 34 56 78".
package phone

import "strings"

const (
	DefaultCountry = "FR"
	defaultPrefix  = "+33"
	// digits kept after the french prefix
	frenchDigits = 9
)

var prefixes = map[string]string{
	"FR": "+33",
	"BE": "+32",
	"CH": "+41",
	"LU": "+352",
	"MC": "+377",
	"CA": "+1",
	"US": "+1",
	"GB": "+44",
	"DE": "+49",
	"ES": "+34",
	"IT": "+39",
	"PT": "+351",
	"NL": "+31",
	"MA": "+212",
	"TN": "+216",
	"DZ": "+213",
	"SN": "+221",
	"CI": "+225",
	"CM": "+237",
	"MG": "+261",
	"MU": "+230",
	"RE": "+262",
	"GP": "+590",
	"MQ": "+596",
	"GF": "+594",
	"NC": "+687",
	"PF": "+689",
}

// Prefix returns the dialing prefix of countryCode (case-insensitive), "+33" if unknown.
func Prefix(countryCode string) string {
	if p, ok := prefixes[strings.ToUpper(strings.TrimSpace(countryCode))]; ok {
		return p
	}
	return defaultPrefix
}

// Prefixes returns a copy of the country code -> dialing prefix table.
func Prefixes() map[string]string {
	m := make(map[string]string, len(prefixes))
	for k, v := range prefixes {
		m[k] = v
	}
	return m
}

// Placeholder is the example number shown in an empty phone field.
func Placeholder(countryCode string) string {
	return Prefix(countryCode) + " 6 12 34 56 78"
}

// Format normalizes input into an international number using the prefix of countryCode.
// Everything but digits and '+' is dropped, a national leading 0 is replaced by the prefix,
// and french numbers are grouped by two. Other countries are returned compact.
//
//	Format("06 12 34 56 78", "FR") // "+33 6 12 34 56 78"
//	Format("0612345678", "BE")     // "+32612345678"
func Format(input, countryCode string) string {
	if input == "" {
		return ""
	}
	prefix := Prefix(countryCode)

	cleaned := sanitize(input)
	if strings.HasPrefix(cleaned, "0") && len(cleaned) > 1 {
		cleaned = prefix + cleaned[1:]
	}
	if !strings.HasPrefix(cleaned, "+") && cleaned != "" {
		cleaned = prefix + cleaned
	}

	if !strings.HasPrefix(cleaned, defaultPrefix) {
		return cleaned
	}

	rest := cleaned[len(defaultPrefix):]
	if len(rest) > frenchDigits {
		rest = rest[:frenchDigits]
	}
	var b strings.Builder
	b.WriteString(defaultPrefix)
	// trunk digit alone, then pairs: 6 12 34 56 78
	for i := 0; i < len(rest); i++ {
		if i == 0 || i%2 == 1 {
			b.WriteByte(' ')
		}
		b.WriteByte(rest[i])
	}
	return strings.TrimSpace(b.String())
}

// sanitize keeps ASCII digits and '+'.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c == '+' || ('0' <= c && c <= '9') {
			b.WriteByte(c)
		}
	}
	return b.String()
}
