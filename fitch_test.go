package fitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/proofdev/fitch/formula"
)

func TestProveValidArgument(t *testing.T) {
	t.Parallel()

	p := formula.Atom{Name: "P"}
	q := formula.Atom{Name: "Q"}
	premises := []formula.Formula{formula.Imp{Left: p, Right: q}, p}

	prf, err := Prove(premises, q)
	require.NoError(t, err)
	require.NotNil(t, prf)

	assert.True(t, prf.IsComplete())
	assert.Equal(t, premises, prf.Premises)
	assert.Equal(t, formula.Formula(q), prf.Conclusion)
}

func TestProveInvalidArgument(t *testing.T) {
	t.Parallel()

	p := formula.Atom{Name: "P"}
	q := formula.Atom{Name: "Q"}

	prf, err := Prove([]formula.Formula{p}, q)
	assert.Nil(t, prf)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "P ⊢ Q")
}

func TestProveTheorem(t *testing.T) {
	t.Parallel()

	p := formula.Atom{Name: "P"}
	goal := formula.Or{Left: p, Right: formula.Not{Inner: p}}

	prf, err := Prove(nil, goal)
	require.NoError(t, err)
	assert.True(t, prf.IsComplete())
}

func TestEngineWithLogger(t *testing.T) {
	t.Parallel()

	p := formula.Atom{Name: "P"}
	engine := New(WithLogger(zap.NewNop()))

	prf, err := engine.Prove([]formula.Formula{p}, p)
	require.NoError(t, err)
	assert.True(t, prf.IsComplete())
}
