package tui

import (
	"log/slog"

	"github.com/petals-kitchen/menubook/internal/store"
	"github.com/petals-kitchen/menubook/pkg/types"
)

// Deps carries everything the TUI needs, injected at the composition root.
// The store is the single session instance; the TUI never constructs its own.
type Deps struct {
	Store   *store.Store
	Catalog []types.Candidate
	Config  types.Config

	Logger *slog.Logger
}
