package controller

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/jrcoleman/quoridor-mcts/pkg/mcts"
)

// ErrConfiguration is returned by Validate (and surfaced from New) when a
// Config field is out of range. sim_increment == 0 is the canonical
// case: the worker would spin-loop forever waiting for the batch to
// drain (spec.md §7).
var ErrConfiguration = pkgerrors.New("controller: invalid configuration")

// ErrNoLegalMoves re-exports mcts.ErrNoLegalMoves at the controller's
// public surface, since ChooseBestAction and SetStateAndMakeBestMove
// both delegate to the tree's choose_best_action.
var ErrNoLegalMoves = mcts.ErrNoLegalMoves

// ErrNotEvaluated re-exports mcts.ErrNotEvaluated, returned by
// GetEvaluation when the root has no simulations and no cached value.
var ErrNotEvaluated = mcts.ErrNotEvaluated
