package prover

import (
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/proofdev/fitch/formula"
	"github.com/proofdev/fitch/proof"
)

// stateKey identifies a search state by its visible assumptions and goal.
// Assumption formulas are rendered in sorted order so that the key does
// not depend on derivation order.
type stateKey struct {
	assumptions string
	goal        string
}

type cost struct {
	ip, lines int
}

func (c cost) less(o cost) bool {
	if c.ip != o.ip {
		return c.ip < o.ip
	}
	return c.lines < o.lines
}

// stateRecord is the dominance record kept per state: the cheapest cost at
// which the state was reached and the richest formula set available there.
type stateRecord struct {
	cost     cost
	formulas map[formula.Formula]bool
}

// Prover is one search invocation over a working sequence and a goal.
// Speculative branches run on forked Provers with independent sequence
// copies; the store and, for the five speculative branches, the seen table
// are shared so dominance pruning works across sibling branches. Rules
// running paired sub-searches hand out private seen copies, see copySeen.
type Prover struct {
	store *Store
	seq   []ID
	goal  formula.Formula
	seen  map[stateKey]stateRecord
	log   *zap.Logger
}

// Run searches for a proof of conclusion from premises. On success it
// returns the pruned, renumbered external proof.
func Run(premises []formula.Formula, conclusion formula.Formula, log *zap.Logger) (*proof.Proof, bool) {
	if log == nil {
		log = zap.NewNop()
	}

	store := NewStore()
	seq := make([]ID, 0, len(premises))
	for _, premise := range premises {
		seq = append(seq, store.NewLine(premise, "PR"))
	}

	p := &Prover{
		store: store,
		seq:   seq,
		goal:  conclusion,
		seen:  make(map[stateKey]stateRecord),
		log:   log,
	}
	if !p.prove() {
		return nil, false
	}
	return store.Process(p.seq, premises, conclusion), true
}

// prove is the search state machine: saturate, then introduce on the
// goal's connective, then try the five speculative branches on
// independent copies and commit the best successful one.
func (p *Prover) prove() bool {
	if !p.enterState() {
		return false
	}

	if p.eliminate() {
		return true
	}
	if p.introduce() {
		return true
	}

	var branches [][]ID

	if b := p.fork(); b.forceNotElim() && b.prove() {
		branches = append(branches, b.seq)
	}
	if b := p.fork(); b.forceImpElim() && b.prove() {
		branches = append(branches, b.seq)
	}
	if b := p.fork(); b.forceIffElim() && b.prove() {
		branches = append(branches, b.seq)
	}
	if b := p.fork(); b.orElim() {
		branches = append(branches, b.seq)
	}
	if b := p.fork(); b.introIP() {
		branches = append(branches, b.seq)
	}

	return p.commitBestBranch(branches)
}

// enterState consults the dominance table. A state whose cost is no better
// and whose available formulas are no richer than a previously recorded
// visit fails immediately; otherwise the merged record is stored.
func (p *Prover) enterState() bool {
	key := p.stateKey()
	c := cost{ip: p.store.IPCount(p.seq), lines: p.store.LineCount(p.seq)}
	formulas := p.store.Formulas(p.seq)

	if prev, ok := p.seen[key]; ok {
		if !c.less(prev.cost) && subset(formulas, prev.formulas) {
			p.log.Debug("state dominated",
				zap.String("goal", p.goal.String()),
				zap.Int("lines", c.lines))
			return false
		}
		if prev.cost.less(c) {
			c = prev.cost
		}
		if strictSubset(formulas, prev.formulas) {
			formulas = prev.formulas
		}
	}

	p.seen[key] = stateRecord{cost: c, formulas: formulas}
	return true
}

func (p *Prover) stateKey() stateKey {
	set := p.store.Assumptions(p.seq)
	keys := make([]string, 0, len(set))
	for f := range set {
		keys = append(keys, encode(f))
	}
	sort.Strings(keys)
	return stateKey{
		assumptions: strings.Join(keys, "\x1f"),
		goal:        encode(p.goal),
	}
}

// encode renders f in a prefix form that stays injective over arbitrary
// atom names: atoms are quoted, so an atom literally named "¬P" cannot
// collide with the encoding of the compound ¬P.
func encode(f formula.Formula) string {
	switch f := f.(type) {
	case formula.Atom:
		return strconv.Quote(f.Name)
	case formula.Bottom:
		return "⊥"
	case formula.Not:
		return "¬" + encode(f.Inner)
	case formula.And:
		return "∧" + encode(f.Left) + encode(f.Right)
	case formula.Or:
		return "∨" + encode(f.Left) + encode(f.Right)
	case formula.Imp:
		return "→" + encode(f.Left) + encode(f.Right)
	case formula.Iff:
		return "↔" + encode(f.Left) + encode(f.Right)
	default:
		return ""
	}
}

// commitBestBranch installs the candidate minimizing, lexicographically,
// (indirect-proof count, line count). Ties keep the first found.
func (p *Prover) commitBestBranch(branches [][]ID) bool {
	if len(branches) == 0 {
		return false
	}

	best := branches[0]
	bestCost := cost{ip: p.store.IPCount(best), lines: p.store.LineCount(best)}
	for _, branch := range branches[1:] {
		c := cost{ip: p.store.IPCount(branch), lines: p.store.LineCount(branch)}
		if c.less(bestCost) {
			best, bestCost = branch, c
		}
	}

	p.seq = best
	return true
}

// fork copies the prover with an independent sequence; the store and the
// seen table stay shared.
func (p *Prover) fork() *Prover {
	return p.withSeq(cloneIDs(p.seq))
}

// withSeq is a prover over the given sequence with the same goal.
func (p *Prover) withSeq(seq []ID) *Prover {
	return &Prover{store: p.store, seq: seq, goal: p.goal, seen: p.seen, log: p.log}
}

// withGoal is a prover over a copy of the sequence with a new goal.
func (p *Prover) withGoal(goal formula.Formula) *Prover {
	sub := p.fork()
	sub.goal = goal
	return sub
}

// popReiteration collapses a trailing pure reiteration, returning the ID
// of the originally cited line instead; otherwise it returns the ID of
// the last object.
func (p *Prover) popReiteration() ID {
	last := p.seq[len(p.seq)-1]
	if line, ok := p.store.LineAt(last); ok && line.Rule == "R" {
		p.seq = p.seq[:len(p.seq)-1]
		return line.Cites[0]
	}
	return last
}

// copySeen hands a sub-search a private dominance table. Rules that run
// two sequential sub-searches over deliberately similar states (both
// conjunct orders, both biconditional directions, both disjunction cases)
// must use copies: with a shared table the first sub-search's entry
// dominates its twin and the rule fails on duplicate subgoals like P ∧ P.
func copySeen(seen map[stateKey]stateRecord) map[stateKey]stateRecord {
	out := make(map[stateKey]stateRecord, len(seen))
	for key, record := range seen {
		out[key] = record
	}
	return out
}

func (p *Prover) assumptionList() []formula.Formula {
	set := p.store.Assumptions(p.seq)
	list := make([]formula.Formula, 0, len(set))
	for f := range set {
		list = append(list, f)
	}
	return list
}

func subset(a, b map[formula.Formula]bool) bool {
	for f := range a {
		if !b[f] {
			return false
		}
	}
	return true
}

func strictSubset(a, b map[formula.Formula]bool) bool {
	return len(a) < len(b) && subset(a, b)
}
