package prover

import "github.com/proofdev/fitch/formula"

// eliminate applies the deterministic elimination rules to a fixpoint.
// Reiteration and explosion close the goal outright and end the pass;
// the other rules keep deriving until none applies. This phase never
// backtracks and never deletes lines.
func (p *Prover) eliminate() bool {
	for {
		if p.elimReiterate() {
			return true
		}
		if p.elimExplosion() {
			return true
		}
		if p.elimNot() {
			continue
		}
		if p.elimAnd() {
			continue
		}
		if p.elimImp() {
			continue
		}
		if p.elimIff() {
			continue
		}
		return false
	}
}

// elimReiterate closes the goal if it is already derived. A trailing
// derived line with the goal formula counts as-is; otherwise the earliest
// occurrence is reiterated into a new line.
func (p *Prover) elimReiterate() bool {
	if len(p.seq) > 0 {
		if line, ok := p.store.LineAt(p.seq[len(p.seq)-1]); ok {
			if line.Formula == p.goal && line.Rule != "PR" && line.Rule != "AS" {
				return true
			}
		}
	}

	for _, id := range p.seq {
		if line, ok := p.store.LineAt(id); ok && line.Formula == p.goal {
			p.seq = append(p.seq, p.store.NewLine(line.Formula, "R", id))
			return true
		}
	}
	return false
}

// elimExplosion derives the goal from an available absurdity.
func (p *Prover) elimExplosion() bool {
	for _, id := range p.seq {
		if line, ok := p.store.LineAt(id); ok {
			if _, isBottom := line.Formula.(formula.Bottom); isBottom {
				p.seq = append(p.seq, p.store.NewLine(p.goal, "X", id))
				return true
			}
		}
	}
	return false
}

// elimNot derives absurdity from a negation and its inner formula.
func (p *Prover) elimNot() bool {
	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		neg, ok := line.Formula.(formula.Not)
		if !ok {
			continue
		}
		for _, id2 := range p.seq {
			if line2, ok := p.store.LineAt(id2); ok && line2.Formula == neg.Inner {
				p.seq = append(p.seq, p.store.NewLine(formula.Bottom{}, "¬E", id, id2))
				return true
			}
		}
	}
	return false
}

// elimAnd derives a conjunct not yet present from an available conjunction.
func (p *Prover) elimAnd() bool {
	formulas := p.store.Formulas(p.seq)

	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		conj, ok := line.Formula.(formula.And)
		if !ok {
			continue
		}
		for _, conjunct := range []formula.Formula{conj.Left, conj.Right} {
			if !formulas[conjunct] {
				p.seq = append(p.seq, p.store.NewLine(conjunct, "∧E", id))
				return true
			}
		}
	}
	return false
}

// elimImp applies modus ponens when an implication and its antecedent are
// present and the consequent is not.
func (p *Prover) elimImp() bool {
	formulas := p.store.Formulas(p.seq)

	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		imp, ok := line.Formula.(formula.Imp)
		if !ok {
			continue
		}
		if formulas[imp.Right] {
			continue
		}
		for _, id2 := range p.seq {
			if line2, ok := p.store.LineAt(id2); ok && line2.Formula == imp.Left {
				p.seq = append(p.seq, p.store.NewLine(imp.Right, "→E", id, id2))
				return true
			}
		}
	}
	return false
}

// elimIff derives the missing side of a biconditional when exactly one
// side is present.
func (p *Prover) elimIff() bool {
	formulas := p.store.Formulas(p.seq)

	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		iff, ok := line.Formula.(formula.Iff)
		if !ok {
			continue
		}
		haveLeft := formulas[iff.Left]
		haveRight := formulas[iff.Right]

		if haveLeft && !haveRight {
			for _, id2 := range p.seq {
				if line2, ok := p.store.LineAt(id2); ok && line2.Formula == iff.Left {
					p.seq = append(p.seq, p.store.NewLine(iff.Right, "↔E", id, id2))
					return true
				}
			}
		}
		if haveRight && !haveLeft {
			for _, id2 := range p.seq {
				if line2, ok := p.store.LineAt(id2); ok && line2.Formula == iff.Right {
					p.seq = append(p.seq, p.store.NewLine(iff.Left, "↔E", id, id2))
					return true
				}
			}
		}
	}
	return false
}

// forceNotElim speculatively proves the inner formula of an available
// negation so that ¬-elimination can fire. Only attempted when the current
// assumptions are semantically inconsistent, since the move aims at
// absurdity.
func (p *Prover) forceNotElim() bool {
	if !formula.IsValid(p.assumptionList(), formula.Bottom{}) {
		return false
	}

	var branches [][]ID
	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		neg, ok := line.Formula.(formula.Not)
		if !ok {
			continue
		}
		sub := p.withGoal(neg.Inner)
		if sub.prove() {
			sub.popReiteration()
			if !sameSeq(sub.seq, p.seq) {
				branches = append(branches, sub.seq)
			}
		}
	}
	return p.commitBestBranch(branches)
}

// forceImpElim speculatively proves the antecedent of an available
// implication whose consequent is still missing, gated by a semantic check
// that the antecedent actually follows.
func (p *Prover) forceImpElim() bool {
	formulas := p.store.Formulas(p.seq)

	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		imp, ok := line.Formula.(formula.Imp)
		if !ok {
			continue
		}
		if formulas[imp.Right] {
			continue
		}

		if formula.IsValid(p.assumptionList(), imp.Left) {
			sub := p.withGoal(imp.Left)
			if sub.prove() {
				sub.popReiteration()
				if !sameSeq(sub.seq, p.seq) {
					p.seq = sub.seq
					return true
				}
			}
		}
	}
	return false
}

// forceIffElim speculatively proves one side of an available biconditional
// with neither side present, so ↔-elimination can fire.
func (p *Prover) forceIffElim() bool {
	formulas := p.store.Formulas(p.seq)

	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		iff, ok := line.Formula.(formula.Iff)
		if !ok {
			continue
		}
		if formulas[iff.Left] || formulas[iff.Right] {
			continue
		}
		if !formula.IsValid(p.assumptionList(), iff.Left) {
			continue
		}

		var branches [][]ID
		for _, side := range []formula.Formula{iff.Left, iff.Right} {
			sub := p.withGoal(side)
			sub.seen = copySeen(p.seen)
			if sub.prove() {
				sub.popReiteration()
				if !sameSeq(sub.seq, p.seq) {
					branches = append(branches, sub.seq)
				}
			}
		}
		if p.commitBestBranch(branches) {
			return true
		}
	}
	return false
}

// orElim case-splits on an available disjunction: one assumption subproof
// per disjunct, both targeting the current goal, closed by ∨-elimination.
func (p *Prover) orElim() bool {
	n := len(p.seq)
	var branches [][]ID

	for _, id := range p.seq {
		line, ok := p.store.LineAt(id)
		if !ok {
			continue
		}
		disj, ok := line.Formula.(formula.Or)
		if !ok {
			continue
		}

		as1 := p.store.NewLine(disj.Left, "AS")
		sub1 := p.withSeq(append(cloneIDs(p.seq), as1))
		sub1.seen = copySeen(p.seen)
		if !sub1.prove() {
			continue
		}
		sp1 := p.store.NewSubproof(cloneIDs(sub1.seq[n:]), p.goal)

		as2 := p.store.NewLine(disj.Right, "AS")
		sub2 := p.withSeq(append(cloneIDs(p.seq), sp1, as2))
		sub2.seen = copySeen(p.seen)
		if !sub2.prove() {
			continue
		}
		sp2 := p.store.NewSubproof(cloneIDs(sub2.seq[n+1:]), p.goal)

		closing := p.store.NewLine(p.goal, "∨E", id, sp1, sp2)
		branches = append(branches, append(cloneIDs(p.seq), sp1, sp2, closing))
	}
	return p.commitBestBranch(branches)
}
