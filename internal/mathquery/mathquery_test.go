// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mathquery

import (
	"errors"
	"testing"

	"github.com/pdiddy/research-agent/pkg/types"
)

func TestExtractNumbers(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []float64
	}{
		{"two integers", "What is 42 + 18?", []float64{42, 18}},
		{"decimals", "add 3.5 and 2.25", []float64{3.5, 2.25}},
		{"power query", "What is 2 to the power of 10?", []float64{2, 10}},
		{"no numbers", "add some things together", nil},
		{"single number", "what about 7", []float64{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractNumbers(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractNumbers(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ExtractNumbers(%q)[%d] = %v, want %v", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectOperations(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []types.Operation
	}{
		{"plus symbol", "What is 42 + 18?", []types.Operation{types.OpAddition}},
		{"power phrase", "What is 2 to the power of 10?", []types.Operation{types.OpExponents}},
		{"divide word", "Divide 10 by 0", []types.Operation{types.OpDivision}},
		{"double star matches two groups", "2 ** 3", []types.Operation{types.OpMultiplication, types.OpExponents}},
		{"word pair", "5 plus 3 minus 1", []types.Operation{types.OpAddition, types.OpSubtraction}},
		{"nothing detected", "7 and 3", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectOperations(tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectOperations(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("DetectOperations(%q)[%d] = %q, want %q", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		op      types.Operation
		a, b    float64
		want    float64
		wantErr error
	}{
		{"addition", types.OpAddition, 42, 18, 60, nil},
		{"subtraction", types.OpSubtraction, 10, 4, 6, nil},
		{"multiplication", types.OpMultiplication, 8, 9, 72, nil},
		{"division", types.OpDivision, 10, 4, 2.5, nil},
		{"division by zero", types.OpDivision, 10, 0, 0, ErrDivisionByZero},
		{"exponent", types.OpExponents, 2, 10, 1024, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.op, tt.a, tt.b)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Evaluate(%q, %v, %v) error = %v, want %v", tt.op, tt.a, tt.b, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Evaluate(%q, %v, %v) = %v, want %v", tt.op, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEvaluateAll(t *testing.T) {
	t.Run("addition via symbol", func(t *testing.T) {
		calcs, err := EvaluateAll("What is 42 + 18?")
		if err != nil {
			t.Fatalf("EvaluateAll: %v", err)
		}
		if len(calcs) != 1 || calcs[0].Operation != types.OpAddition || calcs[0].Value != 60 {
			t.Errorf("got %+v, want one addition with value 60", calcs)
		}
	})

	t.Run("exponent phrase", func(t *testing.T) {
		calcs, err := EvaluateAll("What is 2 to the power of 10?")
		if err != nil {
			t.Fatalf("EvaluateAll: %v", err)
		}
		if len(calcs) != 1 || calcs[0].Operation != types.OpExponents || calcs[0].Value != 1024 {
			t.Errorf("got %+v, want one exponentiation with value 1024", calcs)
		}
	})

	t.Run("division by zero is carried per calculation", func(t *testing.T) {
		calcs, err := EvaluateAll("Divide 10 by 0")
		if err != nil {
			t.Fatalf("EvaluateAll: %v", err)
		}
		if len(calcs) != 1 || !errors.Is(calcs[0].Err, ErrDivisionByZero) {
			t.Errorf("got %+v, want one division carrying ErrDivisionByZero", calcs)
		}
	})

	t.Run("too few numbers", func(t *testing.T) {
		if _, err := EvaluateAll("add something"); !errors.Is(err, ErrTooFewNumbers) {
			t.Errorf("error = %v, want ErrTooFewNumbers", err)
		}
	})

	t.Run("numbers but no operation", func(t *testing.T) {
		calcs, err := EvaluateAll("7 and 3")
		if err != nil {
			t.Fatalf("EvaluateAll: %v", err)
		}
		if len(calcs) != 0 {
			t.Errorf("got %+v, want no calculations", calcs)
		}
	})

	t.Run("extra numbers beyond the first two are ignored", func(t *testing.T) {
		calcs, err := EvaluateAll("5 plus 3 plus 1")
		if err != nil {
			t.Fatalf("EvaluateAll: %v", err)
		}
		if len(calcs) != 1 || calcs[0].Value != 8 {
			t.Errorf("got %+v, want one addition with value 8", calcs)
		}
	})
}
