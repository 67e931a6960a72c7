package driven

import "github.com/custodia-labs/asb-site/internal/core/domain"

// LookupCache maps record identifiers to resolved speaker lookup entries.
// It is shared by every request of the process; implementations must be
// safe for concurrent use.
type LookupCache interface {
	// Get returns the cached entry for id.
	Get(id string) (domain.SpeakerInfo, bool)

	// Put stores or replaces the entry for info.ID.
	Put(info domain.SpeakerInfo)

	// Len returns the number of live entries.
	Len() int

	// Clear drops every entry.
	Clear()
}
