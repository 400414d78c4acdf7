// Package formula defines the propositional formula model shared by the
// semantic oracle and the proof search engine.
//
// Formulas are immutable values built bottom-up. Every variant is a
// comparable struct, so == on two Formula values is structural equality
// and formulas can be used directly as map keys.
package formula

// Formula represents a propositional formula.
type Formula interface {
	isFormula()
	String() string
}

// Atom represents an atomic proposition.
type Atom struct {
	Name string
}

func (Atom) isFormula() {}
func (f Atom) String() string {
	return f.Name
}

// Bottom represents the absurdity constant ⊥.
type Bottom struct{}

func (Bottom) isFormula() {}
func (Bottom) String() string {
	return "⊥"
}

// Not represents a negation ¬A.
type Not struct {
	Inner Formula
}

func (Not) isFormula() {}
func (f Not) String() string {
	return "¬" + f.Inner.String()
}

// And represents a conjunction (A ∧ B).
type And struct {
	Left, Right Formula
}

func (And) isFormula() {}
func (f And) String() string {
	return "(" + f.Left.String() + " ∧ " + f.Right.String() + ")"
}

// Or represents a disjunction (A ∨ B).
type Or struct {
	Left, Right Formula
}

func (Or) isFormula() {}
func (f Or) String() string {
	return "(" + f.Left.String() + " ∨ " + f.Right.String() + ")"
}

// Imp represents an implication (A → B).
type Imp struct {
	Left, Right Formula
}

func (Imp) isFormula() {}
func (f Imp) String() string {
	return "(" + f.Left.String() + " → " + f.Right.String() + ")"
}

// Iff represents a biconditional (A ↔ B).
type Iff struct {
	Left, Right Formula
}

func (Iff) isFormula() {}
func (f Iff) String() string {
	return "(" + f.Left.String() + " ↔ " + f.Right.String() + ")"
}
