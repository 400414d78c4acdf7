package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormulaString(t *testing.T) {
	t.Parallel()

	p := Atom{Name: "P"}
	q := Atom{Name: "Q"}

	tests := []struct {
		name string
		f    Formula
		want string
	}{
		{"atom", p, "P"},
		{"bottom", Bottom{}, "⊥"},
		{"negation", Not{Inner: p}, "¬P"},
		{"double negation", Not{Inner: Not{Inner: p}}, "¬¬P"},
		{"conjunction", And{Left: p, Right: q}, "(P ∧ Q)"},
		{"disjunction", Or{Left: p, Right: q}, "(P ∨ Q)"},
		{"implication", Imp{Left: p, Right: q}, "(P → Q)"},
		{"biconditional", Iff{Left: p, Right: q}, "(P ↔ Q)"},
		{
			"nested",
			Imp{Left: And{Left: p, Right: q}, Right: Not{Inner: Or{Left: p, Right: q}}},
			"((P ∧ Q) → ¬(P ∨ Q))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.String())
		})
	}
}

func TestStructuralEquality(t *testing.T) {
	t.Parallel()

	p := Atom{Name: "P"}
	q := Atom{Name: "Q"}

	a := Formula(Imp{Left: p, Right: And{Left: q, Right: Bottom{}}})
	b := Formula(Imp{Left: Atom{Name: "P"}, Right: And{Left: Atom{Name: "Q"}, Right: Bottom{}}})

	assert.True(t, a == b)
	assert.False(t, a == Formula(Imp{Left: q, Right: And{Left: q, Right: Bottom{}}}))

	// independently built formulas hit the same map bucket
	set := map[Formula]bool{a: true}
	assert.True(t, set[b])
}
