// Package proof defines the externally consumable proof representation:
// numbered lines, rule justifications with citations, and nested subproofs.
//
// The same incremental editing API serves both interactive front ends that
// build proofs line by line and the search engine, whose discovered proofs
// are emitted through it, so either kind renders uniformly.
package proof

import (
	"errors"
	"strconv"

	"github.com/proofdev/fitch/formula"
)

// Ref is a citation target: a single line (Start == End) or a subproof range.
type Ref struct {
	Start, End int
}

func (r Ref) String() string {
	if r.Start == r.End {
		return strconv.Itoa(r.Start)
	}
	return strconv.Itoa(r.Start) + "-" + strconv.Itoa(r.End)
}

// Justification names the rule deriving a line and cites its supports.
type Justification struct {
	Rule  Rule
	Cites []Ref
}

func (j Justification) String() string {
	s := j.Rule.Name
	for i, ref := range j.Cites {
		if i == 0 {
			s += " "
		} else {
			s += ", "
		}
		s += ref.String()
	}
	return s
}

// Entry is one element of a proof sequence: a Line or a Subproof.
type Entry interface {
	isEntry()
}

// Line is a single numbered proof line.
type Line struct {
	Index   int
	Formula formula.Formula
	Just    Justification
}

func (*Line) isEntry() {}

// Subproof is a nested scope opened by an assumption line.
// Start and End are the external indices of its first and last lines.
type Subproof struct {
	Start, End int
	Entries    []Entry
}

func (*Subproof) isEntry() {}

// Proof is a Fitch-style proof of a conclusion from premises.
type Proof struct {
	Premises   []formula.Formula
	Conclusion formula.Formula

	entries []Entry
	open    []*Subproof
	next    int
}

// New creates a proof seeded with one premise line per premise.
func New(premises []formula.Formula, conclusion formula.Formula) *Proof {
	p := &Proof{
		Premises:   premises,
		Conclusion: conclusion,
		next:       1,
	}
	premiseRule, _ := ByName("PR")
	for _, premise := range premises {
		p.AddLine(premise, Justification{Rule: premiseRule})
	}
	return p
}

// Entries returns the top-level proof sequence.
func (p *Proof) Entries() []Entry {
	return p.entries
}

func (p *Proof) append(e Entry) {
	if len(p.open) > 0 {
		sub := p.open[len(p.open)-1]
		sub.Entries = append(sub.Entries, e)
		return
	}
	p.entries = append(p.entries, e)
}

// AddLine appends a justified line to the innermost open scope.
func (p *Proof) AddLine(f formula.Formula, just Justification) *Line {
	line := &Line{Index: p.next, Formula: f, Just: just}
	p.next++
	p.append(line)
	return line
}

// BeginSubproof opens a new subproof with the given assumption and
// returns the assumption line.
func (p *Proof) BeginSubproof(assumption formula.Formula) *Line {
	sub := &Subproof{Start: p.next}
	p.append(sub)
	p.open = append(p.open, sub)

	assumptionRule, _ := ByName("AS")
	return p.AddLine(assumption, Justification{Rule: assumptionRule})
}

// EndSubproof closes the innermost open subproof and appends the concluding
// line, whose justification normally cites the closed subproof's range.
func (p *Proof) EndSubproof(f formula.Formula, just Justification) (*Line, error) {
	if err := p.closeSubproof(); err != nil {
		return nil, err
	}
	return p.AddLine(f, just), nil
}

// EndAndBeginSubproof closes the innermost open subproof and immediately
// opens a sibling subproof with the given assumption. Used for rules
// justified by two adjacent subproofs, such as ↔I.
func (p *Proof) EndAndBeginSubproof(assumption formula.Formula) (*Line, error) {
	if err := p.closeSubproof(); err != nil {
		return nil, err
	}
	return p.BeginSubproof(assumption), nil
}

func (p *Proof) closeSubproof() error {
	if len(p.open) == 0 {
		return errors.New("no open subproof")
	}
	sub := p.open[len(p.open)-1]
	sub.End = p.next - 1
	p.open = p.open[:len(p.open)-1]
	return nil
}

// DeleteLine removes the most recently added line. A subproof left empty by
// the deletion is dissolved.
func (p *Proof) DeleteLine() error {
	entries := &p.entries
	if len(p.open) > 0 {
		entries = &p.open[len(p.open)-1].Entries
	}
	if len(*entries) == 0 {
		return errors.New("no line to delete")
	}

	last := (*entries)[len(*entries)-1]
	if _, ok := last.(*Line); !ok {
		return errors.New("last entry is not a line")
	}

	*entries = (*entries)[:len(*entries)-1]
	p.next--

	if len(p.open) > 0 && len(*entries) == 0 {
		sub := p.open[len(p.open)-1]
		p.open = p.open[:len(p.open)-1]
		p.removeEntry(sub)
	}
	return nil
}

func (p *Proof) removeEntry(e Entry) {
	entries := &p.entries
	if len(p.open) > 0 {
		entries = &p.open[len(p.open)-1].Entries
	}
	for i, cur := range *entries {
		if cur == e {
			*entries = append((*entries)[:i], (*entries)[i+1:]...)
			return
		}
	}
}

// IsComplete reports whether the proof is finished: no open subproofs and a
// final top-level line whose formula is the conclusion.
func (p *Proof) IsComplete() bool {
	if len(p.open) > 0 || len(p.entries) == 0 {
		return false
	}
	line, ok := p.entries[len(p.entries)-1].(*Line)
	return ok && line.Formula == p.Conclusion
}

// Lines returns every line of the proof in order, descending into subproofs.
func (p *Proof) Lines() []*Line {
	var lines []*Line
	var walk func(entries []Entry)
	walk = func(entries []Entry) {
		for _, e := range entries {
			switch e := e.(type) {
			case *Line:
				lines = append(lines, e)
			case *Subproof:
				walk(e.Entries)
			}
		}
	}
	walk(p.entries)
	return lines
}
