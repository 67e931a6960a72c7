package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/asb-site/internal/core/domain"
	"github.com/custodia-labs/asb-site/internal/logger"
)

// ViewStatus is the lifecycle of a page's data.
type ViewStatus string

const (
	ViewLoading  ViewStatus = "loading"
	ViewReady    ViewStatus = "ready"
	ViewNotFound ViewStatus = "not_found"
	ViewFailed   ViewStatus = "failed"
)

// FailureMessage is shown for any failed load. Raw errors are logged only.
const FailureMessage = "Something went wrong while loading this page. Please try again."

// ViewState is a snapshot of a View.
type ViewState[T any] struct {
	Status  ViewStatus `json:"status"`
	Data    T          `json:"data,omitempty"`
	Message string     `json:"message,omitempty"`
}

// View tracks the data behind one page. Each Load supersedes the previous
// one: the earlier load's context is cancelled and its result discarded, so
// a response for a previous slug never overwrites the current one.
type View[T any] struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	state  ViewState[T]
}

// NewView returns a view in the loading state.
func NewView[T any]() *View[T] {
	return &View[T]{state: ViewState[T]{Status: ViewLoading}}
}

// Load runs fetch and records its outcome unless a newer Load started in
// the meantime. It returns the state as seen after the call.
func (v *View[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) ViewState[T] {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.seq++
	seq := v.seq
	loadCtx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.state = ViewState[T]{Status: ViewLoading}
	v.mu.Unlock()

	data, err := fetch(loadCtx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if seq != v.seq {
		logger.Debug("discarding superseded load %d", seq)
		return v.state
	}
	cancel()
	v.cancel = nil

	switch {
	case err == nil:
		v.state = ViewState[T]{Status: ViewReady, Data: data}
	case errors.Is(err, domain.ErrNotFound):
		v.state = ViewState[T]{Status: ViewNotFound}
	default:
		logger.Error("load failed: %v", err)
		v.state = ViewState[T]{Status: ViewFailed, Message: FailureMessage}
	}
	return v.state
}

// State returns the current snapshot.
func (v *View[T]) State() ViewState[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Close cancels any load in flight.
func (v *View[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.seq++
}
