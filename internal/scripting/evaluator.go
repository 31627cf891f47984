package scripting

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Evaluator turns multiplier expressions such as "1.5*1.2" or
// "life_orb*critical" into a number. Each call runs in a fresh sandbox, so an
// Evaluator is safe for concurrent use.
type Evaluator struct {
	instLimit int
	constants map[string]float64
	logger    *zap.Logger
}

// NewEvaluator creates an Evaluator. constants are exposed to expressions as
// read-only globals; names that are not Lua identifiers are skipped.
//
// Precondition: logger must be non-nil; instLimit >= 0.
// Postcondition: Returns a non-nil Evaluator.
func NewEvaluator(instLimit int, constants map[string]float64, logger *zap.Logger) *Evaluator {
	consts := make(map[string]float64, len(constants))
	for name, v := range constants {
		if !identPattern.MatchString(name) {
			logger.Warn("skipping constant with invalid name", zap.String("name", name))
			continue
		}
		consts[name] = v
	}
	return &Evaluator{instLimit: instLimit, constants: consts, logger: logger}
}

// Constants returns a copy of the named values visible to expressions.
func (e *Evaluator) Constants() map[string]float64 {
	out := make(map[string]float64, len(e.constants))
	for k, v := range e.constants {
		out[k] = v
	}
	return out
}

// Eval evaluates expr and returns its numeric value.
//
// Postcondition: Returns a number, or an error when expr fails to compile,
// exceeds the instruction limit, or does not yield a number.
func (e *Evaluator) Eval(expr string) (float64, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, fmt.Errorf("empty expression")
	}
	L, cancel := NewSandboxedState(e.instLimit)
	defer cancel()
	defer L.Close()

	for name, v := range e.constants {
		L.SetGlobal(name, lua.LNumber(v))
	}
	if err := L.DoString("return " + expr); err != nil {
		e.logger.Debug("expression failed", zap.String("expr", expr), zap.Error(err))
		return 0, fmt.Errorf("evaluating %q: %w", expr, err)
	}
	ret := L.Get(-1)
	L.Pop(1)
	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("evaluating %q: result is %s, not a number", expr, ret.Type())
	}
	return float64(n), nil
}

// Multiplier evaluates expr and requires a finite, non-negative result.
//
// Postcondition: Returns a value in [0, +Inf), or an error.
func (e *Evaluator) Multiplier(expr string) (float64, error) {
	v, err := e.Eval(expr)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("multiplier %q is not finite", expr)
	}
	if v < 0 {
		return 0, fmt.Errorf("multiplier %q is negative (%v)", expr, v)
	}
	return v, nil
}
