package board

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// IllegalMoveReason classifies why an action was rejected.
type IllegalMoveReason string

const (
	ReasonBadSyntax  IllegalMoveReason = "bad_syntax"
	ReasonNotLegal   IllegalMoveReason = "not_legal"
	ReasonOutOfWalls IllegalMoveReason = "out_of_walls"
	ReasonFencesOff  IllegalMoveReason = "fences_off"
)

// ErrIllegalMove is the sentinel every IllegalMoveError wraps, so callers
// can test with errors.Is(err, board.ErrIllegalMove) without caring about
// the specific reason.
var ErrIllegalMove = pkgerrors.New("board: illegal move")

// IllegalMoveError reports an action that is not legal in the position
// it was applied to.
type IllegalMoveError struct {
	Action string
	Reason IllegalMoveReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q: %s", e.Action, e.Reason)
}

func (e *IllegalMoveError) Unwrap() error { return ErrIllegalMove }

// NewIllegalMoveError builds a stack-annotated IllegalMoveError.
func NewIllegalMoveError(action string, reason IllegalMoveReason) error {
	return pkgerrors.WithStack(&IllegalMoveError{Action: action, Reason: reason})
}
