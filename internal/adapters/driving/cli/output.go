package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/asb-site/internal/core/services"
)

// errNotFound is returned by inspection commands when nothing matched.
var errNotFound = errors.New("not found")

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// wantJSON is true when --json is set or output is piped.
func wantJSON(cmd *cobra.Command) bool {
	return jsonOutput || !isTerminal(cmd.OutOrStdout())
}

// load runs fetch through a view so inspection commands report outcomes the
// same way the site does: raw failures are logged, users see a generic
// message.
func load[T any](cmd *cobra.Command, fetch func(context.Context) (T, error)) (T, error) {
	view := services.NewView[T]()
	defer view.Close()

	state := view.Load(cmd.Context(), fetch)
	switch state.Status {
	case services.ViewReady:
		return state.Data, nil
	case services.ViewNotFound:
		var zero T
		return zero, errNotFound
	default:
		var zero T
		return zero, errors.New(state.Message)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// field prints "  label: value" when value is set.
func field(cmd *cobra.Command, label, value string) {
	if value != "" {
		cmd.Printf("  %s: %s\n", label, value)
	}
}
