package mcts

import pkgerrors "github.com/pkg/errors"

var (
	// ErrNotEvaluated is returned by GetEquity when a root has neither
	// visits nor a cached leaf value.
	ErrNotEvaluated = pkgerrors.New("mcts: node has no evaluation available")

	// ErrNoLegalMoves is returned by ChooseBestAction on a terminal (or
	// otherwise action-less) node.
	ErrNoLegalMoves = pkgerrors.New("mcts: no legal moves available")
)
