package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Record is one row of a table in the hosted table service.
type Record struct {
	// ID is the service-assigned record identifier (e.g. "recXXXXXXXXXXXXXX").
	ID string `json:"id"`

	// CreatedTime is when the row was created upstream.
	CreatedTime time.Time `json:"createdTime,omitempty"`

	// Fields holds the row's cell values keyed by column name.
	Fields Fields `json:"fields"`
}

// Page is one response of a list call.
type Page struct {
	Records []Record `json:"records"`

	// Offset is the continuation token. Empty when no pages remain.
	Offset string `json:"offset,omitempty"`
}

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort orders a list call by one field.
type Sort struct {
	Field     string
	Direction Direction
}

// Query holds the options of a list call. Zero values are omitted.
type Query struct {
	// Filter is an opaque formula; callers escape interpolated values.
	Filter     string
	View       string
	Sort       []Sort
	Fields     []string
	PageSize   int
	MaxRecords int
	Offset     string
}

// Attachment is a file cell entry.
type Attachment struct {
	ID           string `json:"id,omitempty"`
	URL          string `json:"url"`
	Filename     string `json:"filename,omitempty"`
	Size         int64  `json:"size,omitempty"`
	Type         string `json:"type,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

// Fields is the decoded cell map of a record.
//
// Accessors tolerate absent and malformed cells by returning the zero value,
// so mappers never need to type-assert raw JSON.
type Fields map[string]any

// String returns the first non-empty string found under keys, in order.
// Lists yield their first non-empty element; objects yield their "name"
// or "value" entry.
func (f Fields) String(keys ...string) string {
	for _, key := range keys {
		if s := strings.TrimSpace(firstString(f[key])); s != "" {
			return s
		}
	}
	return ""
}

// Strings returns a list cell as strings. A single string cell becomes a
// one-element list.
func (f Fields) Strings(key string) []string {
	switch v := f[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(firstString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	}
	return nil
}

// Float returns a numeric cell.
func (f Fields) Float(key string) (float64, bool) {
	switch v := f[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		n, err := v.Float64()
		return n, err == nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	}
	return 0, false
}

// Int returns a numeric cell truncated to an int.
func (f Fields) Int(key string) (int, bool) {
	n, ok := f.Float(key)
	return int(n), ok
}

// Bool returns a checkbox cell. Absent cells are false.
func (f Fields) Bool(key string) bool {
	switch v := f[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

// Attachments returns a file cell.
func (f Fields) Attachments(key string) []Attachment {
	items, ok := f[key].([]any)
	if !ok {
		return nil
	}
	out := make([]Attachment, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		a := Attachment{
			ID:       stringOf(m["id"]),
			URL:      stringOf(m["url"]),
			Filename: stringOf(m["filename"]),
			Type:     stringOf(m["type"]),
		}
		if size, ok := m["size"].(float64); ok {
			a.Size = int64(size)
		}
		if thumbs, ok := m["thumbnails"].(map[string]any); ok {
			for _, name := range []string{"large", "small"} {
				if t, ok := thumbs[name].(map[string]any); ok && a.ThumbnailURL == "" {
					a.ThumbnailURL = stringOf(t["url"])
				}
			}
		}
		if a.URL == "" {
			a.URL = a.ThumbnailURL
		}
		if a.URL != "" {
			out = append(out, a)
		}
	}
	return out
}

// FirstAttachmentURL returns the URL of the first file in a cell, or "".
func (f Fields) FirstAttachmentURL(key string) string {
	if files := f.Attachments(key); len(files) > 0 {
		return files[0].URL
	}
	return ""
}

// Ref decodes the first record identifier found under keys.
// Values may be identifier strings, linked-record lists or objects
// carrying an "id", "recordId" or "record" entry.
func (f Fields) Ref(keys ...string) Reference {
	for _, key := range keys {
		if id := extractRecordID(f[key]); id != "" {
			return Resolved(id)
		}
	}
	return Unresolved()
}

func extractRecordID(value any) string {
	switch v := value.(type) {
	case string:
		if LooksLikeRecordID(v) {
			return v
		}
	case []string:
		for _, item := range v {
			if LooksLikeRecordID(item) {
				return item
			}
		}
	case []any:
		for _, item := range v {
			if id := extractRecordID(item); id != "" {
				return id
			}
		}
	case map[string]any:
		for _, k := range []string{"id", "recordId", "record"} {
			if s, ok := v[k].(string); ok && LooksLikeRecordID(s) {
				return s
			}
		}
	}
	return ""
}

func firstString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		for _, item := range v {
			if strings.TrimSpace(item) != "" {
				return item
			}
		}
	case []any:
		for _, item := range v {
			if s := firstString(item); strings.TrimSpace(s) != "" {
				return s
			}
		}
	case map[string]any:
		if s, ok := v["name"].(string); ok {
			return s
		}
		if s, ok := v["value"].(string); ok {
			return s
		}
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func stringOf(v any) string {
	s, _ := v.(string)
	return s
}
