// Package filter implements a small row-filter expression language for
// tabular data, e.g. "C>100" or "A=foo AND B<50".
package filter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Operator is a comparison operator in a filter condition.
type Operator string

const (
	OpEqual          Operator = "="
	OpNotEqual       Operator = "!="
	OpGreaterThan    Operator = ">"
	OpLessThan       Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// Combinator joins two adjacent conditions in a compound filter.
type Combinator string

const (
	And Combinator = "AND"
	Or  Combinator = "OR"
)

// Condition is a single column comparison.
type Condition struct {
	// Column is the column letter sequence the condition applies to.
	Column string
	// Op is the comparison operator.
	Op Operator
	// Value is the right-hand side, compared numerically when possible.
	Value string
}

// Compound is an ordered sequence of conditions joined by combinators.
// len(Combinators) is always len(Conditions)-1. Evaluation is a strict
// left-to-right fold: "A AND B OR C" means "(A AND B) OR C". AND does not
// bind tighter than OR.
type Compound struct {
	Conditions  []Condition
	Combinators []Combinator
}

// ErrInvalidFilter indicates an expression that does not parse. A compound
// expression fails as a whole if any segment fails.
var ErrInvalidFilter = errors.New("invalid filter")

var (
	combinatorRe = regexp.MustCompile(`(?i)\s+(AND|OR)\s+`)
	// Operators are listed longest-first so ">=" never half-matches as ">".
	conditionRe = regexp.MustCompile(`^\s*([A-Za-z]+)\s*(>=|<=|!=|=|>|<)\s*(.*?)\s*$`)
)

// Parse parses a filter expression into a Compound. Combinator keywords are
// case-insensitive and must be surrounded by whitespace.
func Parse(expr string) (*Compound, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidFilter)
	}

	var f Compound
	rest := expr
	for {
		loc := combinatorRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		cond, err := parseCondition(rest[:loc[0]])
		if err != nil {
			return nil, err
		}
		f.Conditions = append(f.Conditions, cond)
		f.Combinators = append(f.Combinators, Combinator(strings.ToUpper(rest[loc[2]:loc[3]])))
		rest = rest[loc[1]:]
	}

	cond, err := parseCondition(rest)
	if err != nil {
		return nil, err
	}
	f.Conditions = append(f.Conditions, cond)
	return &f, nil
}

func parseCondition(segment string) (Condition, error) {
	m := conditionRe.FindStringSubmatch(segment)
	if m == nil {
		return Condition{}, fmt.Errorf("%w: %q", ErrInvalidFilter, strings.TrimSpace(segment))
	}
	return Condition{
		Column: strings.ToUpper(m[1]),
		Op:     Operator(m[2]),
		Value:  m[3],
	}, nil
}
