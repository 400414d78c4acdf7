// Package sequent loads argument files: YAML documents listing sequents
// whose formulas are given structurally, one connective per mapping key,
// so no formula text parser is involved.
package sequent

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/proofdev/fitch/formula"
)

// Node is the structural YAML encoding of a formula. Exactly one field
// must be set.
type Node struct {
	Atom   string  `yaml:"atom,omitempty"`
	Bottom bool    `yaml:"bottom,omitempty"`
	Not    *Node   `yaml:"not,omitempty"`
	And    []*Node `yaml:"and,omitempty"`
	Or     []*Node `yaml:"or,omitempty"`
	Imp    []*Node `yaml:"imp,omitempty"`
	Iff    []*Node `yaml:"iff,omitempty"`
}

// Formula converts the node into a formula value.
func (n *Node) Formula() (formula.Formula, error) {
	if n == nil {
		return nil, fmt.Errorf("empty formula node")
	}

	switch {
	case n.Atom != "":
		return formula.Atom{Name: n.Atom}, nil
	case n.Bottom:
		return formula.Bottom{}, nil
	case n.Not != nil:
		inner, err := n.Not.Formula()
		if err != nil {
			return nil, err
		}
		return formula.Not{Inner: inner}, nil
	case n.And != nil:
		left, right, err := pair(n.And, "and")
		if err != nil {
			return nil, err
		}
		return formula.And{Left: left, Right: right}, nil
	case n.Or != nil:
		left, right, err := pair(n.Or, "or")
		if err != nil {
			return nil, err
		}
		return formula.Or{Left: left, Right: right}, nil
	case n.Imp != nil:
		left, right, err := pair(n.Imp, "imp")
		if err != nil {
			return nil, err
		}
		return formula.Imp{Left: left, Right: right}, nil
	case n.Iff != nil:
		left, right, err := pair(n.Iff, "iff")
		if err != nil {
			return nil, err
		}
		return formula.Iff{Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("formula node has no connective")
	}
}

func pair(nodes []*Node, connective string) (formula.Formula, formula.Formula, error) {
	if len(nodes) != 2 {
		return nil, nil, fmt.Errorf("%s expects exactly two operands, got %d", connective, len(nodes))
	}
	left, err := nodes[0].Formula()
	if err != nil {
		return nil, nil, err
	}
	right, err := nodes[1].Formula()
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

// Sequent is one named argument: premises and a conclusion.
type Sequent struct {
	Name       string  `yaml:"name"`
	Premises   []*Node `yaml:"premises"`
	Conclusion *Node   `yaml:"conclusion"`
}

// Formulas converts the sequent's nodes into formula values.
func (s *Sequent) Formulas() ([]formula.Formula, formula.Formula, error) {
	premises := make([]formula.Formula, 0, len(s.Premises))
	for i, node := range s.Premises {
		f, err := node.Formula()
		if err != nil {
			return nil, nil, fmt.Errorf("premise %d: %w", i+1, err)
		}
		premises = append(premises, f)
	}

	conclusion, err := s.Conclusion.Formula()
	if err != nil {
		return nil, nil, fmt.Errorf("conclusion: %w", err)
	}
	return premises, conclusion, nil
}

type file struct {
	Sequents []*Sequent `yaml:"sequents"`
}

// Parse decodes a sequent document.
func Parse(data []byte) ([]*Sequent, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("error parsing sequent file: %w", err)
	}
	if len(f.Sequents) == 0 {
		return nil, fmt.Errorf("sequent file defines no sequents")
	}
	return f.Sequents, nil
}

// Load reads and decodes a sequent file.
func Load(path string) ([]*Sequent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading sequent file: %w", err)
	}
	return Parse(data)
}
