package domain

import "encoding/json"

// Reference is a link from one record to another, decoded at the service
// boundary. It is either Resolved(id) or Unresolved; consumers never sniff
// string shapes to tell the two apart.
type Reference struct {
	id string
}

// Resolved returns a reference to the record with the given identifier.
// An empty identifier yields Unresolved.
func Resolved(id string) Reference {
	return Reference{id: id}
}

// Unresolved returns a reference that points nowhere.
func Unresolved() Reference {
	return Reference{}
}

// ID returns the referenced identifier and whether the reference is resolved.
func (r Reference) ID() (string, bool) {
	return r.id, r.id != ""
}

// IsResolved reports whether the reference carries an identifier.
func (r Reference) IsResolved() bool {
	return r.id != ""
}

// MarshalJSON encodes a resolved reference as its identifier and an
// unresolved one as null.
func (r Reference) MarshalJSON() ([]byte, error) {
	if r.id == "" {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

// UnmarshalJSON accepts an identifier string or null.
func (r *Reference) UnmarshalJSON(data []byte) error {
	var id *string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	r.id = ""
	if id != nil {
		r.id = *id
	}
	return nil
}
