package ucum

import "fmt"

// Expr is a node of a parsed unit expression tree. The concrete types are
// Numeric, Symbol, Product, Quotient, and Power.
type Expr interface {
	exprNode()
	String() string
}

// Numeric is a bare numeric factor, e.g. the 1000 that "10*3" parses to or
// the "2" in "2.mol".
type Numeric struct {
	Value float64
}

func (Numeric) exprNode() {}
func (n Numeric) String() string {
	return formatNumeric(n.Value)
}

func formatNumeric(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// Symbol is an atomic unit or prefix+unit code, e.g. "kg", "[in_i]",
// "Cel". Annotation, if present, is the bracketed free-text comment
// trailing the code (e.g. "{total}" in "mL{total}"); it carries no semantic
// weight in evaluation.
type Symbol struct {
	Code       string
	Annotation string
}

func (Symbol) exprNode() {}
func (s Symbol) String() string {
	if s.Annotation != "" {
		return s.Code + "{" + s.Annotation + "}"
	}
	return s.Code
}

// Factor pairs an expression with the integer exponent UCUM power syntax
// applies to it, used inside a Product.
type Factor struct {
	Expr     Expr
	Exponent int
}

// Product is a dot-product of factors, e.g. "kg.m". Parse also returns a
// one-factor Product for a single component whose exponent is not 1
// (e.g. "m2" or "(kg.m)2").
type Product struct {
	Factors []Factor
}

func (Product) exprNode() {}
func (p Product) String() string {
	out := ""
	for i, f := range p.Factors {
		if i > 0 {
			out += "."
		}
		out += f.Expr.String()
		if f.Exponent != 1 {
			out += fmt.Sprintf("%d", f.Exponent)
		}
	}
	return out
}

// Quotient is a left-associative division, e.g. "kg/m3" or "1/min".
type Quotient struct {
	Numerator   Expr
	Denominator Expr
}

func (Quotient) exprNode() {}
func (q Quotient) String() string {
	return q.Numerator.String() + "/" + q.Denominator.String()
}

// Power raises an expression to an integer exponent. Evaluate accepts it,
// but Parse does not produce it: a parsed exponent is carried by the
// Factor it belongs to inside a Product.
type Power struct {
	Base     Expr
	Exponent int
}

func (Power) exprNode() {}
func (p Power) String() string {
	return fmt.Sprintf("%s%d", p.Base.String(), p.Exponent)
}
