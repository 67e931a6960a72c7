package services

import (
	"context"
	"errors"
	"regexp"
	"sync"

	"github.com/custodia-labs/asb-site/internal/connectors/airtable"
	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/core/ports/driven"
)

// --- Mock implementations ---

// listCall records one List request.
type listCall struct {
	table string
	query domain.Query
}

// createCall records one Create request.
type createCall struct {
	table  string
	fields map[string]any
}

// fakeRecordClient implements driven.RecordClient for testing. Pages are
// served by the list func; ListAll drains it through the real aggregator.
type fakeRecordClient struct {
	mu        sync.Mutex
	calls     []listCall
	created   []createCall
	list      func(table string, q domain.Query) (domain.Page, error)
	createErr error
}

var _ driven.RecordClient = (*fakeRecordClient)(nil)

func (f *fakeRecordClient) List(ctx context.Context, table string, q domain.Query) (domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return domain.Page{}, err
	}
	f.mu.Lock()
	f.calls = append(f.calls, listCall{table: table, query: q})
	list := f.list
	f.mu.Unlock()

	if list == nil {
		return domain.Page{}, nil
	}
	return list(table, q)
}

func (f *fakeRecordClient) ListAll(ctx context.Context, table string, q domain.Query) ([]domain.Record, error) {
	return airtable.ListAll(ctx, f, table, q)
}

func (f *fakeRecordClient) Create(_ context.Context, table string, fields map[string]any) (domain.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return domain.Record{}, f.createErr
	}
	f.created = append(f.created, createCall{table: table, fields: fields})
	return domain.Record{ID: "recCreated00000001", Fields: fields}, nil
}

func (f *fakeRecordClient) listCalls() []listCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]listCall(nil), f.calls...)
}

// staticPage serves the same records for every query.
func staticPage(rows ...domain.Record) func(string, domain.Query) (domain.Page, error) {
	return func(string, domain.Query) (domain.Page, error) {
		return domain.Page{Records: rows}, nil
	}
}

// failingPage fails every query with err.
func failingPage(err error) func(string, domain.Query) (domain.Page, error) {
	return func(string, domain.Query) (domain.Page, error) {
		return domain.Page{}, err
	}
}

var errUpstream = errors.New("upstream unavailable")

var recordIDClause = regexp.MustCompile(`RECORD_ID\(\)='([^']+)'`)

// filterIDs returns the record identifiers a formula asks for.
func filterIDs(formula string) []string {
	var ids []string
	for _, m := range recordIDClause.FindAllStringSubmatch(formula, -1) {
		ids = append(ids, m[1])
	}
	return ids
}

func record(id string, fields domain.Fields) domain.Record {
	return domain.Record{ID: id, Fields: fields}
}
