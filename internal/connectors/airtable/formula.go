package airtable

import (
	"fmt"
	"strings"
)

// Escape makes v safe to embed inside a single-quoted formula literal.
// Backslashes are escaped first so the quote escapes are not doubled.
func Escape(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	return strings.ReplaceAll(v, `'`, `\'`)
}

// Eq builds {field}='value'.
func Eq(field, value string) string {
	return fmt.Sprintf("{%s}='%s'", field, Escape(value))
}

// LowerEq builds a case-insensitive match of field against value.
func LowerEq(field, value string) string {
	return fmt.Sprintf("LOWER({%s})='%s'", field, Escape(strings.ToLower(value)))
}

// RecordIDEq matches a single record by identifier.
func RecordIDEq(id string) string {
	return fmt.Sprintf("RECORD_ID()='%s'", Escape(id))
}

// RecordIDIn matches any of ids. One id yields a bare clause and none
// yields the empty string.
func RecordIDIn(ids []string) string {
	clauses := make([]string, 0, len(ids))
	for _, id := range ids {
		clauses = append(clauses, RecordIDEq(id))
	}
	return Or(clauses...)
}

// And joins non-empty clauses with AND().
func And(clauses ...string) string {
	return combine("AND", clauses)
}

// Or joins non-empty clauses with OR().
func Or(clauses ...string) string {
	return combine("OR", clauses)
}

func combine(op string, clauses []string) string {
	parts := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c != "" {
			parts = append(parts, c)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	}
	return op + "(" + strings.Join(parts, ",") + ")"
}

// Chunk splits ids into consecutive slices of at most size elements.
func Chunk(ids []string, size int) [][]string {
	if size <= 0 {
		size = len(ids)
	}
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
