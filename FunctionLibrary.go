package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

type Function func(ev *evaluation, call *CallNode) (contracts.Value, error)

type FunctionDefinition struct {
	Name     string
	Evaluate Function
}

// DIVIDE rejects a quotient that does not reproduce the dividend within this tolerance
const divideTolerance = 1e-7

// FunctionLibrary is ordered: dispatch tries the entries in this order
var FunctionLibrary = []FunctionDefinition{
	{"SUM", evaluateSum},
	{"MULTIPLY", evaluateMultiply},
	{"DIVIDE", evaluateDivide},
	{"GT", evaluateGreater},
	{"EQ", evaluateEqual},
	{"NOT", evaluateNot},
	{"AND", evaluateAnd},
	{"OR", evaluateOr},
	{"IF", evaluateIf},
	{"CONCAT", evaluateConcat},
}

func evaluateSum(ev *evaluation, call *CallNode) (contracts.Value, error) {
	operands := ev.numericOperands(call.Args)
	if err := requireNumbers(call, operands); err != nil {
		return contracts.Value{}, err
	}

	sum := 0.0
	for _, operand := range operands {
		number, _ := operand.ToNumber()
		sum += number
	}

	return contracts.Number(sum), nil
}

func evaluateMultiply(ev *evaluation, call *CallNode) (contracts.Value, error) {
	operands := ev.numericOperands(call.Args)
	if err := requireNumbers(call, operands); err != nil {
		return contracts.Value{}, err
	}

	if !hasSameKind(operands) {
		return contracts.Value{}, fmt.Errorf("%s: operands of mixed kinds: %w", call.Name, contracts.TypeError)
	}

	product := 1.0
	for _, operand := range operands {
		number, _ := operand.ToNumber()
		product *= number
	}

	return contracts.Number(product), nil
}

func evaluateDivide(ev *evaluation, call *CallNode) (contracts.Value, error) {
	operands, err := numericPair(ev, call)
	if err != nil {
		return contracts.Value{}, err
	}

	dividend, _ := operands[0].ToNumber()
	divisor, _ := operands[1].ToNumber()
	if divisor == 0 {
		return contracts.Value{}, fmt.Errorf("%s: division by zero: %w", call.Name, contracts.DomainError)
	}

	quotient := dividend / divisor
	if !(math.Abs(dividend-quotient*divisor) <= divideTolerance) {
		return contracts.Value{}, fmt.Errorf("%s: inexact quotient: %w", call.Name, contracts.DomainError)
	}

	return contracts.Number(quotient), nil
}

func evaluateGreater(ev *evaluation, call *CallNode) (contracts.Value, error) {
	operands, err := numericPair(ev, call)
	if err != nil {
		return contracts.Value{}, err
	}

	// two stored strings compare lexically, anything else numerically
	if operands[0].Kind == contracts.StringKind && operands[1].Kind == contracts.StringKind {
		return contracts.Bool(operands[0].Text > operands[1].Text), nil
	}

	left, _ := operands[0].ToNumber()
	right, _ := operands[1].ToNumber()
	return contracts.Bool(left > right), nil
}

func evaluateEqual(ev *evaluation, call *CallNode) (contracts.Value, error) {
	operands, err := numericPair(ev, call)
	if err != nil {
		return contracts.Value{}, err
	}

	return contracts.Bool(operands[0].StrictEqual(operands[1])), nil
}

func evaluateNot(ev *evaluation, call *CallNode) (contracts.Value, error) {
	args := splitArgs(call)
	if len(args) != 1 {
		return contracts.Value{}, arityError(call, "exactly 1")
	}

	operands := ev.numericOperands(args)
	if err := requireNumbers(call, operands); err != nil {
		return contracts.Value{}, err
	}

	return contracts.Bool(!operands[0].Truthy()), nil
}

func evaluateAnd(ev *evaluation, call *CallNode) (contracts.Value, error) {
	operands := ev.numericOperands(splitArgs(call))

	result := true
	for index, operand := range operands {
		if operand.Kind != contracts.BoolKind {
			return contracts.Value{}, fmt.Errorf("%s: operand %d is not a boolean: %w", call.Name, index+1, contracts.TypeError)
		}
		result = result && operand.Bool
	}

	return contracts.Bool(result), nil
}

// evaluateOr matches the literal text "true" among the string operands.
// The check for a boolean false that follows can never succeed because every
// parameter is a string by then; the behaviour is kept as it is relied upon.
func evaluateOr(ev *evaluation, call *CallNode) (contracts.Value, error) {
	values := ev.stringOperands(call.Args)

	parameters := make([]contracts.Value, len(values))
	converted := make([]contracts.Value, len(values))
	for index, value := range values {
		parameters[index] = contracts.String(value)
		converted[index] = parameters[index]

		// only the kind of a converted parameter is inspected
		if number, ok := parameters[index].ToNumber(); ok {
			converted[index] = contracts.Number(math.Trunc(number))
		}
	}

	if !hasSameKind(converted) {
		return contracts.Value{}, fmt.Errorf("%s: operands of mixed kinds: %w", call.Name, contracts.TypeError)
	}

	if containsStrictly(parameters, contracts.String("true")) {
		return contracts.Bool(true), nil
	}

	return contracts.Bool(containsStrictly(parameters, contracts.Bool(false))), nil
}

// evaluateIf takes a single condition call and returns the raw stored value of
// the condition's first operand when it holds, of its second operand otherwise.
// Arguments after the condition are ignored.
func evaluateIf(ev *evaluation, call *CallNode) (contracts.Value, error) {
	if len(call.Args) == 0 {
		return contracts.Value{}, arityError(call, "exactly 1")
	}

	condition, ok := call.Args[0].(*CallNode)
	if !ok {
		return contracts.Value{}, fmt.Errorf("%s: condition must be a function call: %w", call.Name, contracts.TypeError)
	}

	conditionValue, err := ev.evaluateCall(condition)
	if err != nil {
		return contracts.Value{}, err
	}

	branch := 1
	if conditionValue.Truthy() {
		branch = 0
	}

	// a condition with fewer operands has no cell for the branch
	if branch >= len(condition.Args) {
		return contracts.Value{}, nil
	}
	return ev.lookup[condition.Args[branch].Source()], nil
}

func evaluateConcat(ev *evaluation, call *CallNode) (contracts.Value, error) {
	return contracts.String(strings.Join(ev.stringOperands(call.Args), "")), nil
}

func numericPair(ev *evaluation, call *CallNode) ([]contracts.Value, error) {
	if len(call.Args) != 2 {
		return nil, arityError(call, "exactly 2")
	}

	operands := ev.numericOperands(call.Args)
	if err := requireNumbers(call, operands); err != nil {
		return nil, err
	}

	return operands, nil
}

func requireNumbers(call *CallNode, operands []contracts.Value) error {
	if index := firstInvalidNumber(operands); index >= 0 {
		return fmt.Errorf("%s: operand %d is not a number: %w", call.Name, index+1, contracts.TypeError)
	}
	return nil
}

// splitArgs gives an empty argument list as the single empty token that
// splitting "" on commas produces
func splitArgs(call *CallNode) []Node {
	if len(call.Args) == 0 {
		return []Node{&LiteralNode{}}
	}
	return call.Args
}

func arityError(call *CallNode, expected string) error {
	return fmt.Errorf("%s: expects %s operands, got %d: %w", call.Name, expected, len(call.Args), contracts.ArityError)
}
