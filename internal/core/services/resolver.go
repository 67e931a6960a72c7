package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
	"github.com/custodia-labs/asb-site/internal/logger"
	"github.com/custodia-labs/asb-site/internal/normalisers/records"
)

// DefaultLookupChunkSize bounds the identifiers per lookup query so the
// request URL stays well inside the service's practical length limit.
const DefaultLookupChunkSize = 15

// SpeakerResolver turns speaker record identifiers into lookup entries and
// merges them onto videos. Resolved entries are kept in the injected cache,
// so an identifier is fetched at most once while it stays cached.
type SpeakerResolver struct {
	client    driven.RecordClient
	cache     driven.LookupCache
	table     string
	chunkSize int

	// fetchMu serialises cache misses so concurrent callers do not fetch
	// the same identifiers twice.
	fetchMu sync.Mutex
}

// NewSpeakerResolver creates a resolver reading speaker rows from table.
func NewSpeakerResolver(client driven.RecordClient, cache driven.LookupCache, table string) *SpeakerResolver {
	return &SpeakerResolver{
		client:    client,
		cache:     cache,
		table:     table,
		chunkSize: DefaultLookupChunkSize,
	}
}

// Lookup returns the entries for ids, in first-seen order. Identifiers that
// match no row are omitted.
func (r *SpeakerResolver) Lookup(ctx context.Context, ids []string) ([]domain.SpeakerInfo, error) {
	unique := dedupe(ids)
	if len(unique) == 0 {
		return nil, nil
	}

	if missing := r.missing(unique); len(missing) > 0 {
		if err := r.fetch(ctx, unique); err != nil {
			return nil, err
		}
	}

	found := make([]domain.SpeakerInfo, 0, len(unique))
	for _, id := range unique {
		if info, ok := r.cache.Get(id); ok {
			found = append(found, info)
		}
	}
	return found, nil
}

func (r *SpeakerResolver) missing(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := r.cache.Get(id); !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// fetch loads the still-missing identifiers among ids chunk by chunk.
func (r *SpeakerResolver) fetch(ctx context.Context, ids []string) error {
	r.fetchMu.Lock()
	defer r.fetchMu.Unlock()

	// Another caller may have filled the cache while we waited.
	missing := r.missing(ids)
	if len(missing) == 0 {
		return nil
	}

	for _, chunk := range airtable.Chunk(missing, r.chunkSize) {
		rows, err := r.client.ListAll(ctx, r.table, domain.Query{
			Filter: airtable.RecordIDIn(chunk),
		})
		if err != nil {
			return fmt.Errorf("resolve speakers: %w", err)
		}
		for _, row := range rows {
			if row.ID == "" {
				continue
			}
			r.cache.Put(records.SpeakerInfo(row))
		}
	}

	logger.Debug("resolved %d speaker references (%d cached)", len(missing), r.cache.Len())
	return nil
}

// ApplyToVideos returns a copy of videos with speaker display fields taken
// from the resolved lookup entries. Videos whose reference does not resolve
// keep a slug derived from a plausible speaker name, or none at all.
func (r *SpeakerResolver) ApplyToVideos(ctx context.Context, videos []domain.Video) ([]domain.Video, error) {
	if len(videos) == 0 {
		return videos, nil
	}

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		if id, ok := v.SpeakerRef.ID(); ok {
			ids = append(ids, id)
		}
	}

	infos, err := r.Lookup(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.SpeakerInfo, len(infos))
	for _, info := range infos {
		byID[info.ID] = info
	}

	out := make([]domain.Video, len(videos))
	for i, v := range videos {
		out[i] = applySpeaker(v, byID)
	}
	return out, nil
}

func applySpeaker(v domain.Video, byID map[string]domain.SpeakerInfo) domain.Video {
	id, _ := v.SpeakerRef.ID()
	info, ok := byID[id]
	if !ok {
		if v.SpeakerSlug == "" {
			if name := domain.SafeName(v.SpeakerName); name != "" {
				v.SpeakerSlug = domain.PersonSlug(name)
			}
		}
		return v
	}

	v.SpeakerTitle = info.Title
	v.SpeakerFirstName = info.FirstName
	v.SpeakerLastName = info.LastName
	if info.DisplayName != "" {
		v.SpeakerName = info.DisplayName
	}

	switch {
	case info.Slug != "":
		v.SpeakerSlug = info.Slug
	case v.SpeakerSlug != "":
	default:
		v.SpeakerSlug = domain.PersonSlug(domain.SafeName(v.SpeakerName))
	}
	return v
}

// dedupe drops empty and repeated identifiers, keeping first-seen order.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
