package prover

import (
	"github.com/proofdev/fitch/formula"
	"github.com/proofdev/fitch/proof"
)

// Process prunes unused derivation steps from an accepted sequence and
// renumbers it into the external proof representation. The result is
// emitted through the proof package's editing API, so a discovered proof
// has exactly the shape a hand-built one would.
func (s *Store) Process(seq []ID, premises []formula.Formula, conclusion formula.Formula) *proof.Proof {
	root := &Subproof{Seq: cloneIDs(seq), Goal: conclusion}
	s.removeUncited(root, nil)
	return s.translate(root, premises, conclusion)
}

// removeUncited sweeps the sequence removing every object that is neither
// cited, nor the final object, nor a premise or assumption, repeating
// until a pass removes nothing: dropping a line can orphan the lines only
// it cited. Descends into kept subproofs.
func (s *Store) removeUncited(sub *Subproof, cites map[ID]bool) {
	if cites == nil {
		cites = s.Citations(sub.Seq)
	}

	for {
		n := len(sub.Seq)
		kept := make([]ID, 0, n)

		for i, id := range sub.Seq {
			if cites[id] || i == n-1 {
				if inner, ok := s.SubproofAt(id); ok {
					s.removeUncited(inner, cites)
				}
				kept = append(kept, id)
				continue
			}
			if line, ok := s.LineAt(id); ok && (line.Rule == "PR" || line.Rule == "AS") {
				kept = append(kept, id)
			}
		}

		sub.Seq = kept
		if len(kept) == n {
			return
		}
		cites = s.Citations(sub.Seq)
	}
}

// translate walks the pruned tree assigning sequential external line
// numbers, threading an ID-to-reference table through the walk so later
// citations are rewritten from internal identity to external index or
// range.
func (s *Store) translate(root *Subproof, premises []formula.Formula, conclusion formula.Formula) *proof.Proof {
	p := proof.New(premises, conclusion)
	refs := make(map[ID]proof.Ref)
	idx := 1

	// The premise lines seeded by proof.New correspond one-to-one to the
	// leading PR lines of the internal sequence.
	seq := root.Seq
	k := 0
	for ; k < len(seq) && k < len(premises); k++ {
		refs[seq[k]] = proof.Ref{Start: idx, End: idx}
		idx++
	}

	s.emit(p, seq[k:], refs, &idx)
	return p
}

func (s *Store) emit(p *proof.Proof, seq []ID, refs map[ID]proof.Ref, idx *int) {
	for i := 0; i < len(seq); i++ {
		if line, ok := s.LineAt(seq[i]); ok {
			p.AddLine(line.Formula, s.justification(line, refs))
			refs[seq[i]] = proof.Ref{Start: *idx, End: *idx}
			*idx++
			continue
		}

		// A run of adjacent subproofs is closed by the line that follows
		// and cites them (→I/¬I/IP for one, ↔I/∨E for two).
		j := i
		for j < len(seq) {
			if _, ok := s.SubproofAt(seq[j]); !ok {
				break
			}
			j++
		}

		for k := i; k < j; k++ {
			sub, _ := s.SubproofAt(seq[k])
			assumption, _ := s.LineAt(sub.Seq[0])
			if k == i {
				p.BeginSubproof(assumption.Formula)
			} else {
				p.EndAndBeginSubproof(assumption.Formula)
			}
			start := *idx
			refs[sub.Seq[0]] = proof.Ref{Start: start, End: start}
			*idx++

			s.emit(p, sub.Seq[1:], refs, idx)
			refs[seq[k]] = proof.Ref{Start: start, End: *idx - 1}
		}

		closing, _ := s.LineAt(seq[j])
		p.EndSubproof(closing.Formula, s.justification(closing, refs))
		refs[seq[j]] = proof.Ref{Start: *idx, End: *idx}
		*idx++
		i = j
	}
}

func (s *Store) justification(line *Line, refs map[ID]proof.Ref) proof.Justification {
	rule, _ := proof.ByName(line.Rule)
	cites := make([]proof.Ref, 0, len(line.Cites))
	for _, cite := range line.Cites {
		cites = append(cites, refs[cite])
	}
	return proof.Justification{Rule: rule, Cites: cites}
}
