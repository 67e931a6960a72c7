// Package records maps raw table rows onto the site's domain entities.
//
// Every mapper is a pure function of its input record. Field values are read
// through the typed accessors on [domain.Fields], so absent or malformed
// columns decode to empty values instead of failing the whole listing.
//
// Derived attributes follow shared rules:
//   - slugs come from an explicit slug column when it is not shaped like a
//     record identifier, otherwise from the person's name
//   - display names prefer an explicit full-name column, otherwise the
//     title, first and last name joined with single spaces
//   - a value shaped like a record identifier never becomes a name or slug
package records
