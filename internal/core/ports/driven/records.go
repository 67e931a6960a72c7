package driven

import (
	"context"

	"github.com/custodia-labs/asb-site/internal/core/domain"
)

// RecordLister fetches a single page of records from a table.
type RecordLister interface {
	// List issues one request and returns the decoded page.
	// The page's Offset is empty when no further pages remain.
	List(ctx context.Context, table string, q domain.Query) (domain.Page, error)
}

// RecordClient reads and writes rows of the hosted table service.
// Tables may be addressed by name or by table ID ("tblXXXXXXXXXXXXXX").
type RecordClient interface {
	RecordLister

	// ListAll follows continuation tokens until the result set is drained
	// and returns every record in page order. No partial result is
	// returned on failure.
	ListAll(ctx context.Context, table string, q domain.Query) ([]domain.Record, error)

	// Create writes a new row and returns it with its assigned ID.
	Create(ctx context.Context, table string, fields map[string]any) (domain.Record, error)
}
