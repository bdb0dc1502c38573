// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mathquery extracts numbers and arithmetic operations from
// free-form query text and evaluates them.
package mathquery

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/research-agent/pkg/types"
)

// numberPattern matches integers and decimals, e.g. "42", "3.14".
var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// ErrTooFewNumbers reports a query with fewer than the two numbers every
// calculation needs.
var ErrTooFewNumbers = errors.New("need at least two numbers for calculations")

// ErrDivisionByZero reports a division with a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// operationGroup pairs an operation with the words and symbols that
// request it.
type operationGroup struct {
	op       types.Operation
	keywords []string
}

// operationGroups are checked independently: a query can request several
// operations, and each is evaluated against the same pair of numbers.
var operationGroups = []operationGroup{
	{types.OpAddition, []string{"add", "sum", "plus", "+"}},
	{types.OpSubtraction, []string{"subtract", "minus", "difference", "-"}},
	{types.OpMultiplication, []string{"multiply", "product", "times", "*", "×"}},
	{types.OpDivision, []string{"divide", "quotient", "/", "÷"}},
	{types.OpExponents, []string{"power", "exponent", "^", "**", "squared", "cubed"}},
}

// ExtractNumbers returns every number in the query, in order of appearance.
func ExtractNumbers(query string) []float64 {
	var numbers []float64
	for _, m := range numberPattern.FindAllString(query, -1) {
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers
}

// DetectOperations returns every operation the query requests, in the
// fixed group order: addition, subtraction, multiplication, division,
// exponents.
func DetectOperations(query string) []types.Operation {
	q := strings.ToLower(query)
	var ops []types.Operation
	for _, g := range operationGroups {
		for _, kw := range g.keywords {
			if strings.Contains(q, kw) {
				ops = append(ops, g.op)
				break
			}
		}
	}
	return ops
}

// Evaluate applies one operation to a pair of numbers.
func Evaluate(op types.Operation, a, b float64) (float64, error) {
	switch op {
	case types.OpAddition:
		return a + b, nil
	case types.OpSubtraction:
		return a - b, nil
	case types.OpMultiplication:
		return a * b, nil
	case types.OpDivision:
		if b == 0 {
			return 0, ErrDivisionByZero
		}
		return a / b, nil
	case types.OpExponents:
		return math.Pow(a, b), nil
	default:
		return 0, fmt.Errorf("unknown operation %q", op)
	}
}

// Calculation is the outcome of evaluating one detected operation.
type Calculation struct {
	Operation types.Operation
	Value     float64
	Err       error
}

// EvaluateAll extracts numbers and operations from the query and evaluates
// every detected operation against the first two numbers. It returns
// ErrTooFewNumbers when the query carries fewer than two numbers. A query
// with two numbers but no recognizable operation yields an empty slice.
func EvaluateAll(query string) ([]Calculation, error) {
	numbers := ExtractNumbers(query)
	if len(numbers) < 2 {
		return nil, ErrTooFewNumbers
	}
	a, b := numbers[0], numbers[1]

	var calcs []Calculation
	for _, op := range DetectOperations(query) {
		v, err := Evaluate(op, a, b)
		calcs = append(calcs, Calculation{Operation: op, Value: v, Err: err})
	}
	return calcs, nil
}
