package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

func _parseArgs(t *testing.T, expression string) []Node {
	node, err := ParseExpression(expression)
	assert.NoError(t, err)

	return node.(*CallNode).Args
}

func TestEvaluation_numericOperands(t *testing.T) {
	ev := &evaluation{lookup: contracts.CellLookup{
		"A1": contracts.Number(2),
		"B1": contracts.String("3"),
		"C1": contracts.Bool(true),
	}}

	operands := ev.numericOperands(_parseArgs(t, `SUM(A1, B1, C1, 4.5, , D1, "5", x)`))

	assert.Len(t, operands, 8)
	assert.Equal(t, contracts.Number(2), operands[0])
	// stored values keep their kind
	assert.Equal(t, contracts.String("3"), operands[1])
	assert.Equal(t, contracts.Bool(true), operands[2])
	assert.Equal(t, contracts.Number(4.5), operands[3])
	assert.Equal(t, contracts.Number(0), operands[4])
	assert.True(t, math.IsNaN(operands[5].Number))
	assert.True(t, math.IsNaN(operands[6].Number))
	assert.True(t, math.IsNaN(operands[7].Number))

	assert.Equal(t, 5, firstInvalidNumber(operands))
}

func TestEvaluation_stringOperands(t *testing.T) {
	ev := &evaluation{lookup: contracts.CellLookup{
		"A1": contracts.Number(2),
		"B1": contracts.Bool(false),
	}}

	operands := ev.stringOperands(_parseArgs(t, `CONCAT(A1, B1, C1, "a, b", "A1",  bare text , "")`))

	assert.Equal(t, []string{"2", "false", "", "a, b", "A1", "bare text", ""}, operands)
}

func TestHasSameKind(t *testing.T) {
	assert.True(t, hasSameKind(nil))
	assert.True(t, hasSameKind([]contracts.Value{contracts.Number(1), contracts.Number(2)}))
	assert.False(t, hasSameKind([]contracts.Value{contracts.Number(1), contracts.String("2")}))
}
