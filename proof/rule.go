package proof

// Rule describes a natural-deduction inference rule by name.
type Rule struct {
	Name     string
	Describe string
}

// Rules is the ordered registry of rule descriptors known to the system.
var Rules = []Rule{
	{Name: "PR", Describe: "Premise"},
	{Name: "AS", Describe: "Assumption"},
	{Name: "R", Describe: "Reiteration"},
	{Name: "X", Describe: "Explosion"},
	{Name: "¬E", Describe: "Negation elimination"},
	{Name: "∧E", Describe: "Conjunction elimination"},
	{Name: "→E", Describe: "Conditional elimination"},
	{Name: "↔E", Describe: "Biconditional elimination"},
	{Name: "∨E", Describe: "Disjunction elimination"},
	{Name: "∧I", Describe: "Conjunction introduction"},
	{Name: "∨I", Describe: "Disjunction introduction"},
	{Name: "→I", Describe: "Conditional introduction"},
	{Name: "¬I", Describe: "Negation introduction"},
	{Name: "↔I", Describe: "Biconditional introduction"},
	{Name: "IP", Describe: "Indirect proof"},
}

// ByName looks up a rule descriptor in the registry.
func ByName(name string) (Rule, bool) {
	for _, rule := range Rules {
		if rule.Name == name {
			return rule, true
		}
	}
	return Rule{}, false
}
