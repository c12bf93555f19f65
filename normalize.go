package hostedpay

import "strings"

// Only these lowercase letters are folded. Uppercase forms and every other
// accented letter are left for entity encoding, which the gateway accepts.
var diacriticFolder = strings.NewReplacer(
	"å", "a",
	"ä", "a",
	"ö", "o",
)

// Normalize prepares a free-text value for the payment request: it folds å, ä
// and ö to ASCII and then encodes the remaining reserved and named characters
// as HTML entities.
func Normalize(s string) string {
	return EscapeEntities(FoldDiacritics(s))
}

// FoldDiacritics replaces lowercase å, ä and ö with their unaccented letters.
func FoldDiacritics(s string) string {
	return diacriticFolder.Replace(s)
}

// EscapeEntities encodes &, <, >, ", ' and every character that has an HTML
// named entity as &name;. Characters without a name pass through unchanged.
func EscapeEntities(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		name, ok := entityNames[r]
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('&')
		b.WriteString(name)
		b.WriteByte(';')
	}
	return b.String()
}
