package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Letters NFD does not decompose into a base letter plus marks.
var letterFolds = strings.NewReplacer(
	"ß", "ss", "ẞ", "ss",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
	"ø", "o", "Ø", "o",
	"đ", "d", "Đ", "d",
	"ð", "d", "Ð", "d",
	"ł", "l", "Ł", "l",
	"þ", "th", "Þ", "th",
	"ħ", "h", "Ħ", "h",
	"ŧ", "t", "Ŧ", "t",
	"ı", "i",
)

// Slugify lower-cases name, folds accents to ASCII and collapses every run of
// other characters into a single hyphen. The result never starts or ends with
// a hyphen and may be empty.
func Slugify(name string) string {
	name = letterFolds.Replace(name)
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// IsValidSlug reports whether s is in persisted slug form.
func IsValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ResolveSlug returns explicit verbatim when given, otherwise the slug of name.
func ResolveSlug(explicit, name string) (string, error) {
	if explicit != "" {
		if !IsValidSlug(explicit) {
			return "", invalid("slug", "must match [a-z0-9-] without leading, trailing or repeated hyphens")
		}
		return explicit, nil
	}
	slug := Slugify(name)
	if slug == "" {
		return "", invalid("slug", "name has no characters usable in a slug")
	}
	return slug, nil
}
