package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

func TestNewCellLookupChain(t *testing.T) {
	stored := contracts.CellLookup{"A1": contracts.Number(1), "B1": contracts.Number(2)}

	t.Run("first_shadows_second", func(t *testing.T) {
		vars := contracts.CellLookup{"A1": contracts.String("override"), "C1": contracts.Bool(true)}

		chained := NewCellLookupChain(vars, stored)

		assert.Equal(t, contracts.CellLookup{
			"A1": contracts.String("override"),
			"B1": contracts.Number(2),
			"C1": contracts.Bool(true),
		}, chained)
		assert.Equal(t, contracts.Number(1), stored["A1"])
	})

	t.Run("nil_layers", func(t *testing.T) {
		assert.Equal(t, stored, NewCellLookupChain(nil, stored))
		assert.Equal(t, stored, NewCellLookupChain(stored, nil))
		assert.Nil(t, NewCellLookupChain(nil, nil))
	})
}
