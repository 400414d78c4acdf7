package sequent

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofdev/fitch/formula"
)

const modusPonensYAML = `
sequents:
  - name: modus ponens
    premises:
      - imp:
          - atom: P
          - atom: Q
      - atom: P
    conclusion:
      atom: Q
`

func TestParse(t *testing.T) {
	t.Parallel()

	sequents, err := Parse([]byte(modusPonensYAML))
	require.NoError(t, err)
	require.Len(t, sequents, 1)

	s := sequents[0]
	assert.Equal(t, "modus ponens", s.Name)

	premises, conclusion, err := s.Formulas()
	require.NoError(t, err)

	p := formula.Atom{Name: "P"}
	q := formula.Atom{Name: "Q"}
	require.Len(t, premises, 2)
	assert.Equal(t, formula.Formula(formula.Imp{Left: p, Right: q}), premises[0])
	assert.Equal(t, formula.Formula(p), premises[1])
	assert.Equal(t, formula.Formula(q), conclusion)
}

func TestParseConnectives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want formula.Formula
	}{
		{
			"bottom",
			"conclusion:\n  bottom: true",
			formula.Bottom{},
		},
		{
			"negation",
			"conclusion:\n  not:\n    atom: P",
			formula.Not{Inner: formula.Atom{Name: "P"}},
		},
		{
			"conjunction",
			"conclusion:\n  and:\n    - atom: P\n    - atom: Q",
			formula.And{Left: formula.Atom{Name: "P"}, Right: formula.Atom{Name: "Q"}},
		},
		{
			"disjunction",
			"conclusion:\n  or:\n    - atom: P\n    - atom: Q",
			formula.Or{Left: formula.Atom{Name: "P"}, Right: formula.Atom{Name: "Q"}},
		},
		{
			"biconditional",
			"conclusion:\n  iff:\n    - atom: P\n    - atom: Q",
			formula.Iff{Left: formula.Atom{Name: "P"}, Right: formula.Atom{Name: "Q"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := "sequents:\n  - name: t\n    " +
				strings.ReplaceAll(tt.yaml, "\n", "\n    ")
			sequents, err := Parse([]byte(doc))
			require.NoError(t, err)

			_, conclusion, err := sequents[0].Formulas()
			require.NoError(t, err)
			assert.Equal(t, tt.want, conclusion)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", ":"},
		{"no sequents", "sequents: []"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestNodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *Node
	}{
		{"nil node", nil},
		{"empty node", &Node{}},
		{"unary and", &Node{And: []*Node{{Atom: "P"}}}},
		{"ternary or", &Node{Or: []*Node{{Atom: "P"}, {Atom: "Q"}, {Atom: "R"}}}},
		{"bad operand", &Node{Imp: []*Node{{Atom: "P"}, {}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.node.Formula()
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sequents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(modusPonensYAML), 0o644))

	sequents, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, sequents, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
