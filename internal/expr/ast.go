package expr

import "math"

// node is one compiled piece of an expression.
type node interface {
	eval(x float64) (float64, error)
}

type numberNode struct {
	value float64
}

func (n numberNode) eval(float64) (float64, error) {
	return n.value, nil
}

type varNode struct{}

func (varNode) eval(x float64) (float64, error) {
	return x, nil
}

type negNode struct {
	operand node
}

func (n negNode) eval(x float64) (float64, error) {
	v, err := n.operand.eval(x)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

type binaryNode struct {
	op          byte
	left, right node
}

func (n binaryNode) eval(x float64) (float64, error) {
	a, err := n.left.eval(x)
	if err != nil {
		return 0, err
	}
	b, err := n.right.eval(x)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case '%':
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return floorMod(a, b), nil
	case '^':
		if a == 0 && b < 0 {
			return 0, ErrDivisionByZero
		}
		return math.Pow(a, b), nil
	}
	return math.NaN(), nil
}

// floorMod returns a remainder with the sign of the divisor.
func floorMod(a, b float64) float64 {
	r := math.Mod(a, b)
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}
	return r
}

type callNode struct {
	fn  func(float64) float64
	arg node
}

func (n callNode) eval(x float64) (float64, error) {
	v, err := n.arg.eval(x)
	if err != nil {
		return 0, err
	}
	return n.fn(v), nil
}
