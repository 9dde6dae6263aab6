package api

import (
	"sync/atomic"

	"github.com/Noty-chan/rogue-prison/internal/progression"
	"github.com/Noty-chan/rogue-prison/internal/storage"
	"github.com/Noty-chan/rogue-prison/internal/view"
)

// GameHandler groups all game-related HTTP handlers.
type GameHandler struct {
	repo       storage.Repository
	dispatcher *progression.Dispatcher

	codexDoc atomic.Pointer[view.CodexDoc]
}

// NewGameHandler creates a new GameHandler with the given repository and
// the dispatcher that applies player actions.
func NewGameHandler(repo storage.Repository, d *progression.Dispatcher) *GameHandler {
	return &GameHandler{repo: repo, dispatcher: d}
}
