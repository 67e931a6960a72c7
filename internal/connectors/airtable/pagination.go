package airtable

import (
	"context"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
)

// ListAll drains every page of q in order. Page N+1 is requested only after
// page N has arrived, using its continuation token. If any page fails the
// error is returned and records already fetched are discarded.
func ListAll(ctx context.Context, lister driven.RecordLister, table string, q domain.Query) ([]domain.Record, error) {
	var all []domain.Record

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := lister.List(ctx, table, q)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Records...)

		if page.Offset == "" {
			break
		}
		q.Offset = page.Offset
	}

	return all, nil
}
