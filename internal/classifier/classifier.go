// Package classifier decides how each struct field is rendered in the
// generated field-visiting method: skipped, followed as a pointer, or printed
// as a plain value.
package classifier

import "github.com/seitarof/ptrprint/internal/parser"

// Strategy selects the emission path for one field.
type Strategy int

const (
	// StrategySkip drops the field from the generated method entirely.
	StrategySkip Strategy = iota
	// StrategyPointerFollow emits dedup-read-recurse logic.
	StrategyPointerFollow
	// StrategyPlainPrint emits a single formatted field line.
	StrategyPlainPrint
)

// FieldPlan is the classification result for one field.
type FieldPlan struct {
	Field    parser.FieldInfo
	Strategy Strategy
}

// Classifier maps parsed fields to emission strategies.
type Classifier interface {
	Classify(fields []parser.FieldInfo) []FieldPlan
}

// Rule tries to classify one field. Rules run in priority order; the first
// match wins.
type Rule interface {
	Name() string
	Try(f parser.FieldInfo) (Strategy, bool)
}

type classifierImpl struct {
	rules []Rule
}

// New builds a classifier with a rule chain.
func New(rules ...Rule) Classifier {
	return &classifierImpl{rules: rules}
}

// DefaultRules returns the built-in rules in priority order. Padding wins
// over everything: a padding field is never printed, pointer-typed or not.
func DefaultRules() []Rule {
	return []Rule{
		&PaddingRule{},
		&PointerRule{},
		&PlainRule{},
	}
}

func (c *classifierImpl) Classify(fields []parser.FieldInfo) []FieldPlan {
	plans := make([]FieldPlan, 0, len(fields))
	for _, f := range fields {
		plans = append(plans, c.classifyOne(f))
	}
	return plans
}

func (c *classifierImpl) classifyOne(f parser.FieldInfo) FieldPlan {
	for _, rule := range c.rules {
		if strategy, ok := rule.Try(f); ok {
			return FieldPlan{Field: f, Strategy: strategy}
		}
	}
	return FieldPlan{Field: f, Strategy: StrategySkip}
}

// PaddingRule: structural filler, no output.
type PaddingRule struct{}

func (r *PaddingRule) Name() string { return "padding" }

func (r *PaddingRule) Try(f parser.FieldInfo) (Strategy, bool) {
	if f.IsPadding {
		return StrategySkip, true
	}
	return StrategySkip, false
}

// PointerRule: ptrprint.Pointer fields get follow logic.
type PointerRule struct{}

func (r *PointerRule) Name() string { return "pointer-follow" }

func (r *PointerRule) Try(f parser.FieldInfo) (Strategy, bool) {
	if f.IsPointer && f.Pointee != nil {
		return StrategyPointerFollow, true
	}
	return StrategySkip, false
}

// PlainRule: everything else is printed through the generic formatter.
type PlainRule struct{}

func (r *PlainRule) Name() string { return "plain-print" }

func (r *PlainRule) Try(f parser.FieldInfo) (Strategy, bool) {
	return StrategyPlainPrint, true
}
