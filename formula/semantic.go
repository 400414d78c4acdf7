package formula

import "sort"

// Vars returns the sorted names of the atomic propositions occurring in f.
func Vars(f Formula) []string {
	set := make(map[string]bool)
	collectVars(f, set)

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars(f Formula, set map[string]bool) {
	switch f := f.(type) {
	case Atom:
		set[f.Name] = true
	case Bottom:
	case Not:
		collectVars(f.Inner, set)
	case And:
		collectVars(f.Left, set)
		collectVars(f.Right, set)
	case Or:
		collectVars(f.Left, set)
		collectVars(f.Right, set)
	case Imp:
		collectVars(f.Left, set)
		collectVars(f.Right, set)
	case Iff:
		collectVars(f.Left, set)
		collectVars(f.Right, set)
	}
}

// Eval returns the truth value of f under the given assignment.
// Atoms missing from the assignment evaluate to false.
func Eval(f Formula, assignment map[string]bool) bool {
	switch f := f.(type) {
	case Bottom:
		return false
	case Atom:
		return assignment[f.Name]
	case Not:
		return !Eval(f.Inner, assignment)
	case And:
		return Eval(f.Left, assignment) && Eval(f.Right, assignment)
	case Or:
		return Eval(f.Left, assignment) || Eval(f.Right, assignment)
	case Imp:
		return !Eval(f.Left, assignment) || Eval(f.Right, assignment)
	case Iff:
		return Eval(f.Left, assignment) == Eval(f.Right, assignment)
	default:
		return false
	}
}

// IsValid reports whether the conclusion is a semantic consequence of the
// premises, by enumerating all truth assignments over the atoms occurring
// in them. Exponential in the number of distinct atoms; callers keep the
// formula sets small.
func IsValid(premises []Formula, conclusion Formula) bool {
	varSet := make(map[string]bool)
	for _, premise := range premises {
		collectVars(premise, varSet)
	}
	collectVars(conclusion, varSet)

	if len(varSet) == 0 {
		empty := map[string]bool{}
		for _, premise := range premises {
			if !Eval(premise, empty) {
				return true
			}
		}
		return Eval(conclusion, empty)
	}

	names := make([]string, 0, len(varSet))
	for name := range varSet {
		names = append(names, name)
	}
	sort.Strings(names)

	n := len(names)
	for i := 0; i < 1<<n; i++ {
		assignment := make(map[string]bool, n)
		for j, name := range names {
			assignment[name] = i&(1<<(n-1-j)) != 0
		}

		satisfied := true
		for _, premise := range premises {
			if !Eval(premise, assignment) {
				satisfied = false
				break
			}
		}

		if satisfied && !Eval(conclusion, assignment) {
			return false
		}
	}

	return true
}
