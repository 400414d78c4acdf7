// Package fitch finds Fitch-style natural-deduction proofs for classical
// propositional logic. Given premises and a conclusion it either returns a
// complete, rule-justified proof or reports that the argument is invalid.
package fitch

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/proofdev/fitch/formula"
	"github.com/proofdev/fitch/internal/prover"
	"github.com/proofdev/fitch/proof"
)

var (
	// ErrInvalidArgument reports that the conclusion does not semantically
	// follow from the premises. Checked upfront; no search is performed.
	ErrInvalidArgument = errors.New("invalid argument, no proof exists")

	// ErrProofNotFound reports that the argument is valid but the search
	// exhausted all branches. Indicates a completeness gap in the rule
	// set rather than a bad request.
	ErrProofNotFound = errors.New("argument is valid, but no proof was found")
)

// Engine runs proof searches. The zero-configured Engine from New is ready
// to use.
type Engine struct {
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger for search tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates a proof search engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Prove searches for a proof of the conclusion from the premises. The
// returned proof is pruned and renumbered: premises occupy lines 1..k and
// the final line's formula is the conclusion.
func (e *Engine) Prove(premises []formula.Formula, conclusion formula.Formula) (*proof.Proof, error) {
	if !formula.IsValid(premises, conclusion) {
		return nil, fmt.Errorf("%s: %w", sequentString(premises, conclusion), ErrInvalidArgument)
	}

	p, ok := prover.Run(premises, conclusion, e.logger)
	if !ok {
		return nil, fmt.Errorf("%s: %w", sequentString(premises, conclusion), ErrProofNotFound)
	}
	return p, nil
}

// Prove runs a search with a default engine.
func Prove(premises []formula.Formula, conclusion formula.Formula) (*proof.Proof, error) {
	return New().Prove(premises, conclusion)
}

func sequentString(premises []formula.Formula, conclusion formula.Formula) string {
	parts := make([]string, 0, len(premises))
	for _, premise := range premises {
		parts = append(parts, premise.String())
	}
	if len(parts) == 0 {
		return "⊢ " + conclusion.String()
	}
	return strings.Join(parts, ", ") + " ⊢ " + conclusion.String()
}
