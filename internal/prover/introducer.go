package prover

import "github.com/proofdev/fitch/formula"

// introduce dispatches on the goal's main connective. Atomic goals and
// absurdity have no introduction rule and fall through to the speculative
// branches.
func (p *Prover) introduce() bool {
	switch goal := p.goal.(type) {
	case formula.Not:
		return p.introNot(goal)
	case formula.And:
		return p.introAnd(goal)
	case formula.Or:
		return p.introOr(goal)
	case formula.Imp:
		return p.introImp(goal)
	case formula.Iff:
		return p.introIff(goal)
	}
	return false
}

// introNot proves ¬A by assuming A and deriving absurdity.
func (p *Prover) introNot(goal formula.Not) bool {
	return p.closeSubproof(goal.Inner, formula.Bottom{}, "¬I")
}

// introImp proves A → B by assuming A and deriving B.
func (p *Prover) introImp(goal formula.Imp) bool {
	return p.closeSubproof(goal.Left, goal.Right, "→I")
}

// introIP is the indirect proof branch: assume the negated goal and derive
// absurdity. Tried last among the speculative branches and penalized by
// the branch-selection cost.
func (p *Prover) introIP() bool {
	return p.closeSubproof(formula.Not{Inner: p.goal}, formula.Bottom{}, "IP")
}

// closeSubproof opens an assumption subproof targeting subgoal and, if the
// recursive search closes it, appends the subproof and the rule line
// deriving the current goal from it.
func (p *Prover) closeSubproof(assumption, subgoal formula.Formula, rule string) bool {
	n := len(p.seq)
	as := p.store.NewLine(assumption, "AS")

	sub := p.withSeq(append(cloneIDs(p.seq), as))
	sub.goal = subgoal
	if !sub.prove() {
		return false
	}

	sp := p.store.NewSubproof(cloneIDs(sub.seq[n:]), subgoal)
	p.seq = append(p.seq, sp, p.store.NewLine(p.goal, rule, sp))
	return true
}

// introAnd proves both conjuncts, trying both orders and keeping the
// cheaper derivation.
func (p *Prover) introAnd(goal formula.And) bool {
	var branches [][]ID

	orders := [][2]formula.Formula{
		{goal.Left, goal.Right},
		{goal.Right, goal.Left},
	}
	for _, order := range orders {
		first := p.withGoal(order[0])
		first.seen = copySeen(p.seen)
		if !first.prove() {
			continue
		}
		firstID := first.popReiteration()

		second := first.withGoal(order[1])
		second.seen = copySeen(p.seen)
		if !second.prove() {
			continue
		}
		secondID := second.popReiteration()

		closing := p.store.NewLine(p.goal, "∧I", firstID, secondID)
		branches = append(branches, append(cloneIDs(second.seq), closing))
	}
	return p.commitBestBranch(branches)
}

// introOr reuses an already-available disjunct when possible; otherwise it
// recursively proves a disjunct that the oracle confirms follows from the
// current assumptions.
func (p *Prover) introOr(goal formula.Or) bool {
	for _, id := range p.seq {
		if line, ok := p.store.LineAt(id); ok {
			if line.Formula == goal.Left || line.Formula == goal.Right {
				p.seq = append(p.seq, p.store.NewLine(p.goal, "∨I", id))
				return true
			}
		}
	}

	var branches [][]ID
	for _, disjunct := range []formula.Formula{goal.Left, goal.Right} {
		if !formula.IsValid(p.assumptionList(), disjunct) {
			continue
		}
		sub := p.withGoal(disjunct)
		if !sub.prove() {
			continue
		}
		disjunctID := sub.popReiteration()
		closing := p.store.NewLine(p.goal, "∨I", disjunctID)
		branches = append(branches, append(cloneIDs(sub.seq), closing))
	}
	return p.commitBestBranch(branches)
}

// introIff proves both directions as adjacent assumption subproofs and
// combines them.
func (p *Prover) introIff(goal formula.Iff) bool {
	n := len(p.seq)

	as1 := p.store.NewLine(goal.Left, "AS")
	sub1 := p.withSeq(append(cloneIDs(p.seq), as1))
	sub1.goal = goal.Right
	sub1.seen = copySeen(p.seen)
	if !sub1.prove() {
		return false
	}
	sp1 := p.store.NewSubproof(cloneIDs(sub1.seq[n:]), goal.Right)

	as2 := p.store.NewLine(goal.Right, "AS")
	sub2 := p.withSeq(append(cloneIDs(p.seq), sp1, as2))
	sub2.goal = goal.Left
	sub2.seen = copySeen(p.seen)
	if !sub2.prove() {
		return false
	}
	sp2 := p.store.NewSubproof(cloneIDs(sub2.seq[n+1:]), goal.Left)

	p.seq = append(p.seq, sp1, sp2, p.store.NewLine(p.goal, "↔I", sp1, sp2))
	return true
}
