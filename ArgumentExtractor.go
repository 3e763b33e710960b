package main

import (
	"strings"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

// numericOperands resolves every argument for a numeric function.
// Cell references keep the stored value and its kind, an absent cell is NaN;
// everything else goes through Number(). Invalid operands are kept, callers validate.
func (ev *evaluation) numericOperands(args []Node) []contracts.Value {
	operands := make([]contracts.Value, len(args))

	for index, arg := range args {
		if ref, ok := arg.(*CellRefNode); ok {
			if value, exists := ev.lookup[ref.Name]; exists {
				operands[index] = value
			} else {
				operands[index] = contracts.NaN()
			}
			continue
		}

		operands[index] = contracts.Number(contracts.ParseNumber(arg.Source()))
	}

	return operands
}

// stringOperands resolves every argument to its string form.
// Quoted literals lose their quotes, cell references are stringified (absent cell is ""),
// anything else is kept verbatim.
func (ev *evaluation) stringOperands(args []Node) []string {
	operands := make([]string, len(args))

	for index, arg := range args {
		text := arg.Source()

		if isQuoted(text) {
			operands[index] = text[1 : len(text)-1]
		} else if ref, ok := arg.(*CellRefNode); ok {
			operands[index] = ev.lookup[ref.Name].String()
		} else {
			operands[index] = text
		}
	}

	return operands
}

func isQuoted(text string) bool {
	return len(text) >= 2 && strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`)
}

func firstInvalidNumber(operands []contracts.Value) int {
	for index, operand := range operands {
		if _, ok := operand.ToNumber(); !ok {
			return index
		}
	}
	return -1
}

// hasSameKind is vacuously true for an empty list
func hasSameKind(operands []contracts.Value) bool {
	for _, operand := range operands {
		if operand.Kind != operands[0].Kind {
			return false
		}
	}
	return true
}

func containsStrictly(operands []contracts.Value, needle contracts.Value) bool {
	for _, operand := range operands {
		if operand.StrictEqual(needle) {
			return true
		}
	}
	return false
}
