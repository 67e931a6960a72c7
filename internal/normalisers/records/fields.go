package records

import (
	"strings"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// Column names shared by several tables.
const (
	FieldStatus         = "Status"
	FieldSlug           = "Slug"
	FieldSlugOverride   = "Slug Override"
	FieldSlugFormula    = "Slug Formula"
	FieldFullName       = "Full Name"
	FieldName           = "Name"
	FieldTitle          = "Title"
	FieldSEOTitle       = "SEO Title Override"
	FieldSEODescription = "SEO Description"
)

// slugColumns are consulted in order for an explicit slug.
var slugColumns = []string{FieldSlugOverride, FieldSlug, FieldSlugFormula}

// explicitSlug returns the first slug column value that is not shaped like a
// record identifier, slugified.
func explicitSlug(f domain.Fields) string {
	for _, key := range slugColumns {
		if slug := domain.SafeSlug(f.String(key)); slug != "" {
			return slug
		}
	}
	return ""
}

// nameOrSlug returns the slug columns' value, falling back to a slug of the
// first usable name.
func nameOrSlug(f domain.Fields, names ...string) string {
	if slug := explicitSlug(f); slug != "" {
		return slug
	}
	for _, name := range names {
		if name = domain.SafeName(name); name != "" {
			return domain.PersonSlug(name)
		}
	}
	return ""
}

// safeString reads the first non-empty alias that is not a record identifier.
func safeString(f domain.Fields, keys ...string) string {
	for _, key := range keys {
		if s := domain.SafeName(f.String(key)); s != "" {
			return s
		}
	}
	return ""
}

// lines splits a long-text column into trimmed, non-empty lines.
func lines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// recordIDs returns the linked record identifiers held in key.
func recordIDs(f domain.Fields, key string) []string {
	var ids []string
	for _, v := range f.Strings(key) {
		if domain.LooksLikeRecordID(v) {
			ids = append(ids, v)
		}
	}
	return ids
}
