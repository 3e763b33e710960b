package main

import (
	"fmt"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

type ExpressionExecutor struct {
	functions []FunctionDefinition
}

func NewExpressionExecutor() *ExpressionExecutor {
	return &ExpressionExecutor{
		functions: FunctionLibrary,
	}
}

// Evaluate runs an expression (formula text without "=") against a lookup table.
// Failures carry one of the contracts error kinds.
func (e *ExpressionExecutor) Evaluate(expression string, lookup contracts.CellLookup) (contracts.Value, error) {
	ev := &evaluation{
		executor:  e,
		lookup:    lookup,
		resolving: map[string]bool{},
	}

	value, err := ev.evaluate(expression)
	if err != nil {
		err = fmt.Errorf("%s: %w", expression, err)
	}
	return value, err
}

// EvaluateToValue is Evaluate with failures collapsed to the error sentinel
func (e *ExpressionExecutor) EvaluateToValue(expression string, lookup contracts.CellLookup) contracts.Value {
	return contracts.ResultValue(e.Evaluate(expression, lookup))
}

func (e *ExpressionExecutor) function(name string) (Function, bool) {
	for _, definition := range e.functions {
		if definition.Name == name {
			return definition.Evaluate, true
		}
	}
	return nil, false
}

// evaluation is the state of one Evaluate call
type evaluation struct {
	executor *ExpressionExecutor
	lookup   contracts.CellLookup
	// cells whose formulas are being resolved on the current path
	resolving map[string]bool
}

func (ev *evaluation) evaluate(expression string) (contracts.Value, error) {
	node, err := ParseExpression(expression)
	if err != nil {
		return contracts.Value{}, err
	}

	switch n := node.(type) {
	case *CellRefNode:
		return ev.resolveCell(n.Name)
	case *CallNode:
		return ev.evaluateCall(n)
	default:
		return contracts.Value{}, fmt.Errorf("unrecognized expression: %w", contracts.SyntaxError)
	}
}

func (ev *evaluation) evaluateCall(call *CallNode) (contracts.Value, error) {
	function, ok := ev.executor.function(call.Name)
	if !ok {
		return contracts.Value{}, fmt.Errorf("unknown function %s: %w", call.Name, contracts.SyntaxError)
	}

	return function(ev, call)
}

// resolveCell returns the stored value of a cell, evaluating it when it holds a formula.
// An absent cell resolves to undefined.
func (ev *evaluation) resolveCell(name string) (contracts.Value, error) {
	value := ev.lookup[name]
	if !value.IsFormula() {
		return value, nil
	}

	if ev.resolving[name] {
		return contracts.Value{}, fmt.Errorf("%s: %w", name, contracts.CircularReferenceError)
	}

	ev.resolving[name] = true
	defer delete(ev.resolving, name)

	return ev.evaluate(value.Expression())
}
