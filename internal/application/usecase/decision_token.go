package usecase

import (
	"errors"

	"go.uber.org/atomic"

	"github.com/bnema/riblet/internal/domain/entity"
)

// ErrDoubleDecision is returned when a navigation decision is resolved twice.
var ErrDoubleDecision = errors.New("navigation decision already resolved")

// DecisionHandler is the completion supplied by the hosting surface.
type DecisionHandler func(decision entity.Decision)

// DecisionToken is a single-use wrapper around a DecisionHandler.
// The first Resolve consumes it; later calls fail without invoking the handler.
type DecisionToken struct {
	resolved atomic.Bool
	handler  DecisionHandler
}

// NewDecisionToken wraps handler. A nil handler is allowed.
func NewDecisionToken(handler DecisionHandler) *DecisionToken {
	return &DecisionToken{handler: handler}
}

// Resolve delivers decision to the handler exactly once.
func (t *DecisionToken) Resolve(decision entity.Decision) error {
	if !t.resolved.CompareAndSwap(false, true) {
		return ErrDoubleDecision
	}
	if t.handler != nil {
		t.handler(decision)
	}
	return nil
}

// Resolved reports whether the token has been consumed.
func (t *DecisionToken) Resolved() bool {
	return t.resolved.Load()
}
