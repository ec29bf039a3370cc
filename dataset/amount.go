package dataset

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prodrate/rational"
)

// Amount is a YAML scalar read as an exact rational.
type Amount struct {
	rational.Rational
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a scalar", node.Line)
	}
	if node.Tag == "!!float" {
		f, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		r, err := rational.FromFloat(f)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		a.Rational = r

		return nil
	}
	r, err := rational.Parse(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	a.Rational = r

	return nil
}

// quantityDef is one ingredient or product line.
type quantityDef struct {
	Item        string  `yaml:"item" validate:"required"`
	Amount      *Amount `yaml:"amount" validate:"required_without_all=AmountMin AmountMax"`
	AmountMin   *Amount `yaml:"amount_min" validate:"required_with=AmountMax"`
	AmountMax   *Amount `yaml:"amount_max" validate:"required_with=AmountMin"`
	Probability *Amount `yaml:"probability"`
}

// UnmarshalYAML accepts the mapping form and the [item, amount] pair.
func (q *quantityDef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		if len(node.Content) != 2 {
			return fmt.Errorf("line %d: pair form takes [item, amount]", node.Line)
		}
		var amount Amount
		if err := node.Content[1].Decode(&amount); err != nil {
			return err
		}
		*q = quantityDef{Item: node.Content[0].Value, Amount: &amount}

		return nil
	}

	type plain quantityDef
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*q = quantityDef(p)

	return nil
}

// value returns the effective amount per craft.
func (q quantityDef) value() rational.Rational {
	var v rational.Rational
	if q.Amount != nil {
		v = q.Amount.Rational
	} else {
		v = q.AmountMin.Add(q.AmountMax.Rational).Mul(rational.Half)
	}
	if q.Probability != nil {
		v = v.Mul(q.Probability.Rational)
	}

	return v
}
