package proof

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofdev/fitch/formula"
)

var (
	atomP = formula.Atom{Name: "P"}
	atomQ = formula.Atom{Name: "Q"}
)

func just(rule string, cites ...Ref) Justification {
	r, ok := ByName(rule)
	if !ok {
		panic("unknown rule " + rule)
	}
	return Justification{Rule: r, Cites: cites}
}

func TestRefString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "3", Ref{Start: 3, End: 3}.String())
	assert.Equal(t, "3-5", Ref{Start: 3, End: 5}.String())
}

func TestJustificationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "PR", just("PR").String())
	assert.Equal(t, "→E 1, 2", just("→E", Ref{Start: 1, End: 1}, Ref{Start: 2, End: 2}).String())
	assert.Equal(t, "∨E 1, 3-5, 6-7",
		just("∨E", Ref{Start: 1, End: 1}, Ref{Start: 3, End: 5}, Ref{Start: 6, End: 7}).String())
}

func TestByName(t *testing.T) {
	t.Parallel()

	rule, ok := ByName("¬E")
	require.True(t, ok)
	assert.Equal(t, "Negation elimination", rule.Describe)

	_, ok = ByName("XYZ")
	assert.False(t, ok)
}

func TestNewSeedsPremises(t *testing.T) {
	t.Parallel()

	p := New([]formula.Formula{atomP, atomQ}, atomP)
	lines := p.Lines()
	require.Len(t, lines, 2)

	for i, line := range lines {
		assert.Equal(t, i+1, line.Index)
		assert.Equal(t, "PR", line.Just.Rule.Name)
	}
	assert.Equal(t, formula.Formula(atomP), lines[0].Formula)
	assert.Equal(t, formula.Formula(atomQ), lines[1].Formula)
}

func TestBuildConditionalProof(t *testing.T) {
	t.Parallel()

	// 1 │ │ P          AS
	//   │ ├──
	// 2 │ │ P          R 1
	// 3 │ (P → P)      →I 1-2
	goal := formula.Imp{Left: atomP, Right: atomP}
	p := New(nil, goal)

	as := p.BeginSubproof(atomP)
	assert.Equal(t, 1, as.Index)
	assert.False(t, p.IsComplete())

	p.AddLine(atomP, just("R", Ref{Start: 1, End: 1}))

	closing, err := p.EndSubproof(goal, just("→I", Ref{Start: 1, End: 2}))
	require.NoError(t, err)
	assert.Equal(t, 3, closing.Index)

	assert.True(t, p.IsComplete())

	require.Len(t, p.Entries(), 2)
	sub, ok := p.Entries()[0].(*Subproof)
	require.True(t, ok)
	assert.Equal(t, 1, sub.Start)
	assert.Equal(t, 2, sub.End)
}

func TestEndAndBeginSubproof(t *testing.T) {
	t.Parallel()

	goal := formula.Iff{Left: atomP, Right: atomQ}
	p := New([]formula.Formula{atomP, atomQ}, goal)

	p.BeginSubproof(atomP)
	p.AddLine(atomQ, just("R", Ref{Start: 2, End: 2}))

	as, err := p.EndAndBeginSubproof(atomQ)
	require.NoError(t, err)
	assert.Equal(t, 5, as.Index)

	p.AddLine(atomP, just("R", Ref{Start: 1, End: 1}))
	_, err = p.EndSubproof(goal, just("↔I", Ref{Start: 3, End: 4}, Ref{Start: 5, End: 6}))
	require.NoError(t, err)

	assert.True(t, p.IsComplete())
	require.Len(t, p.Entries(), 5)

	first, ok := p.Entries()[2].(*Subproof)
	require.True(t, ok)
	second, ok := p.Entries()[3].(*Subproof)
	require.True(t, ok)
	assert.Equal(t, [2]int{3, 4}, [2]int{first.Start, first.End})
	assert.Equal(t, [2]int{5, 6}, [2]int{second.Start, second.End})
}

func TestEndSubproofWithoutOpen(t *testing.T) {
	t.Parallel()

	p := New(nil, atomP)
	_, err := p.EndSubproof(atomP, just("R"))
	assert.Error(t, err)
}

func TestIsCompleteRequiresClosedScopes(t *testing.T) {
	t.Parallel()

	p := New(nil, atomP)
	p.BeginSubproof(atomP)
	// the goal formula is present but only inside an open subproof
	assert.False(t, p.IsComplete())
}

func TestDeleteLine(t *testing.T) {
	t.Parallel()

	p := New([]formula.Formula{atomP}, atomQ)
	p.AddLine(atomQ, just("R", Ref{Start: 1, End: 1}))
	assert.True(t, p.IsComplete())

	require.NoError(t, p.DeleteLine())
	assert.False(t, p.IsComplete())
	require.Len(t, p.Lines(), 1)

	// index is reusable after deletion
	line := p.AddLine(atomQ, just("R", Ref{Start: 1, End: 1}))
	assert.Equal(t, 2, line.Index)
}

func TestDeleteLineDissolvesEmptySubproof(t *testing.T) {
	t.Parallel()

	p := New([]formula.Formula{atomP}, atomQ)
	p.BeginSubproof(atomQ)
	require.NoError(t, p.DeleteLine())

	require.Len(t, p.Entries(), 1)
	_, err := p.EndSubproof(atomQ, just("R"))
	assert.Error(t, err, "dissolved subproof should no longer be open")
}

func TestDeleteLineEmptyProof(t *testing.T) {
	t.Parallel()

	p := New(nil, atomP)
	assert.Error(t, p.DeleteLine())
}

func TestRender(t *testing.T) {
	t.Parallel()

	goal := formula.Imp{Left: atomP, Right: atomP}
	p := New(nil, goal)
	p.BeginSubproof(atomP)
	p.AddLine(atomP, just("R", Ref{Start: 1, End: 1}))
	_, err := p.EndSubproof(goal, just("→I", Ref{Start: 1, End: 2}))
	require.NoError(t, err)

	out := p.Render()
	assert.Contains(t, out, "AS")
	assert.Contains(t, out, "R 1")
	assert.Contains(t, out, "→I 1-2")
	assert.Contains(t, out, "├──")
	assert.Contains(t, out, "(P → P)")
}
