// Package prover implements the recursive proof search for classical
// propositional natural deduction: deterministic saturation, goal-directed
// introduction, and speculative backtracking branches with dominance
// pruning, followed by pruning and renumbering of the accepted derivation.
package prover

import "github.com/proofdev/fitch/formula"

// ID identifies a proof object within a Store. IDs increase monotonically
// with creation order across the whole search and are never reused, so a
// citation stays unambiguous even after its target is dropped from a
// working sequence while backtracking.
type ID int

// Line is a derived formula, the name of the rule that justified it, and
// the IDs of the earlier objects it cites.
type Line struct {
	Formula formula.Formula
	Rule    string
	Cites   []ID
}

func (*Line) isObject() {}

// Subproof is a completed nested derivation: a sequence opened by an
// assumption line that reached the subproof's goal.
type Subproof struct {
	Seq  []ID
	Goal formula.Formula
}

func (*Subproof) isObject() {}

type object interface {
	isObject()
}

// Store is the arena owning every proof object created during one search.
// Sequences are plain ID slices, so branching copies an index list rather
// than an object graph; the objects themselves are shared and never
// mutated in place during search.
type Store struct {
	objects []object
}

func NewStore() *Store {
	return &Store{}
}

// NewLine creates a line object and returns its ID.
func (s *Store) NewLine(f formula.Formula, rule string, cites ...ID) ID {
	s.objects = append(s.objects, &Line{Formula: f, Rule: rule, Cites: cites})
	return ID(len(s.objects) - 1)
}

// NewSubproof creates a subproof object and returns its ID.
func (s *Store) NewSubproof(seq []ID, goal formula.Formula) ID {
	s.objects = append(s.objects, &Subproof{Seq: seq, Goal: goal})
	return ID(len(s.objects) - 1)
}

// LineAt returns the line with the given ID, if it is one.
func (s *Store) LineAt(id ID) (*Line, bool) {
	line, ok := s.objects[id].(*Line)
	return line, ok
}

// SubproofAt returns the subproof with the given ID, if it is one.
func (s *Store) SubproofAt(id ID) (*Subproof, bool) {
	sub, ok := s.objects[id].(*Subproof)
	return sub, ok
}

// LineCount counts the lines in seq, descending into subproofs.
func (s *Store) LineCount(seq []ID) int {
	count := 0
	for _, id := range seq {
		if sub, ok := s.SubproofAt(id); ok {
			count += s.LineCount(sub.Seq)
		} else {
			count++
		}
	}
	return count
}

// IPCount counts the indirect-proof lines in seq, descending into subproofs.
func (s *Store) IPCount(seq []ID) int {
	count := 0
	for _, id := range seq {
		if sub, ok := s.SubproofAt(id); ok {
			count += s.IPCount(sub.Seq)
			continue
		}
		if line, _ := s.LineAt(id); line.Rule == "IP" {
			count++
		}
	}
	return count
}

// Formulas returns the set of formulas available on the lines of seq.
// Lines inside nested subproofs are out of scope and not included.
func (s *Store) Formulas(seq []ID) map[formula.Formula]bool {
	set := make(map[formula.Formula]bool)
	for _, id := range seq {
		if line, ok := s.LineAt(id); ok {
			set[line.Formula] = true
		}
	}
	return set
}

// Assumptions returns the set of premise and assumption formulas on the
// lines of seq.
func (s *Store) Assumptions(seq []ID) map[formula.Formula]bool {
	set := make(map[formula.Formula]bool)
	for _, id := range seq {
		if line, ok := s.LineAt(id); ok && (line.Rule == "PR" || line.Rule == "AS") {
			set[line.Formula] = true
		}
	}
	return set
}

// Citations returns the set of IDs cited anywhere within seq, including by
// lines nested in subproofs.
func (s *Store) Citations(seq []ID) map[ID]bool {
	set := make(map[ID]bool)
	s.collectCitations(seq, set)
	return set
}

func (s *Store) collectCitations(seq []ID, set map[ID]bool) {
	for _, id := range seq {
		if sub, ok := s.SubproofAt(id); ok {
			s.collectCitations(sub.Seq, set)
			continue
		}
		line, _ := s.LineAt(id)
		for _, cite := range line.Cites {
			set[cite] = true
		}
	}
}

func cloneIDs(seq []ID) []ID {
	return append([]ID(nil), seq...)
}

func sameSeq(a, b []ID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
