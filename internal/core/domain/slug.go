package domain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// recordIDPattern matches identifiers assigned by the table service:
// three letters followed by at least fourteen alphanumerics.
var recordIDPattern = regexp.MustCompile(`^[A-Za-z]{3}[A-Za-z0-9]{14,}$`)

// honorificPattern matches a leading title that must not leak into slugs.
var honorificPattern = regexp.MustCompile(`(?i)^(dr|prof|mr|ms|mrs|miss)(\.\s*|\s+)`)

// LooksLikeRecordID reports whether s has the lexical shape of a record identifier.
func LooksLikeRecordID(s string) bool {
	return recordIDPattern.MatchString(strings.TrimSpace(s))
}

// SafeName returns s trimmed, or "" when s is a record identifier.
func SafeName(s string) string {
	s = strings.TrimSpace(s)
	if LooksLikeRecordID(s) {
		return ""
	}
	return s
}

// Slugify converts s into a URL-safe slug made of [a-z0-9-].
// Diacritics are folded ("é" becomes "e"), every other run of characters
// outside [a-z0-9] becomes a single hyphen, and hyphens are trimmed from
// both ends. Letters outside the Latin script are dropped, so a name written
// only in another script yields "". Slugify is idempotent.
func Slugify(s string) string {
	s = strings.ToLower(stripDiacritics(strings.TrimSpace(s)))

	var b strings.Builder
	b.Grow(len(s))
	pendingHyphen := false
	for _, r := range s {
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

// PersonSlug slugifies a person's name after dropping a leading honorific,
// so "Dr. Amahle M'Botu" becomes "amahle-m-botu".
func PersonSlug(name string) string {
	name = strings.TrimSpace(name)
	if stripped := honorificPattern.ReplaceAllString(name, ""); strings.TrimSpace(stripped) != "" {
		name = stripped
	}
	return Slugify(name)
}

// SafeSlug returns candidate slugified when it is usable, or "" when it is
// empty or a record identifier.
func SafeSlug(candidate string) string {
	if SafeName(candidate) == "" {
		return ""
	}
	return Slugify(candidate)
}

// DisplayName joins the non-empty parts with single spaces.
func DisplayName(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.Join(strings.Fields(p), " "); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// latinFolds spells out Latin letters that have no canonical decomposition.
var latinFolds = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "đ", "d", "Đ", "D", "ł", "l", "Ł", "L",
	"þ", "th", "Þ", "TH", "ð", "d", "Ð", "D",
)

// stripDiacritics folds Latin letters to ASCII: it decomposes s to NFD,
// drops combining marks and spells out letters such as "ß" and "ø".
// Letters from other scripts are left for Slugify to drop.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(latinFolds.Replace(s))
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
