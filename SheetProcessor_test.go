package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
	"github.com/tmsptr/spreadsheetEvaluator/mocks"
)

func _sheet(id string, rows ...[]contracts.Value) *contracts.Sheet {
	return &contracts.Sheet{Id: id, Data: rows}
}

func _row(values ...any) []contracts.Value {
	row := make([]contracts.Value, len(values))
	for index, value := range values {
		switch v := value.(type) {
		case int:
			row[index] = contracts.Number(float64(v))
		case float64:
			row[index] = contracts.Number(v)
		case bool:
			row[index] = contracts.Bool(v)
		case string:
			row[index] = contracts.String(v)
		}
	}
	return row
}

func TestSheetProcessor_BuildLookup(t *testing.T) {
	processor := NewSheetProcessor(NewExpressionExecutor())

	lookup := processor.BuildLookup(_sheet("sheet1", _row(1, "=A1"), _row(true)))

	assert.Equal(t, contracts.CellLookup{
		"A1": contracts.Number(1),
		"B1": contracts.String("=A1"),
		"A2": contracts.Bool(true),
	}, lookup)
}

func TestSheetProcessor_ProcessSheets(t *testing.T) {
	processor := NewSheetProcessor(NewExpressionExecutor())

	t.Run("bare_reference_chain", func(t *testing.T) {
		sheets := contracts.SheetList{_sheet("sheet1", _row("=B1", "=C1", 7))}

		result := processor.ProcessSheets(sheets)

		assert.Equal(t, _row(7, 7, 7), result[0].Data[0])
	})

	t.Run("results_written_in_place", func(t *testing.T) {
		sheet := _sheet("sheet1", _row(2, 3, "=SUM(A1,B1)"), _row("text", false, "=CONCAT(A2, B2)"))
		sheets := contracts.SheetList{sheet}

		result := processor.ProcessSheets(sheets)

		assert.Same(t, sheet, result[0])
		assert.Equal(t, _row(2, 3, 5), sheet.Data[0])
		assert.Equal(t, _row("text", false, "textfalse"), sheet.Data[1])
	})

	t.Run("snapshot_does_not_see_results", func(t *testing.T) {
		sheets := contracts.SheetList{_sheet("sheet1", _row("=SUM(1,2)", "=SUM(A1,1)"))}

		result := processor.ProcessSheets(sheets)

		assert.Equal(t, _row(3, contracts.ErrorSentinel), result[0].Data[0])
	})

	t.Run("sheets_have_own_lookups", func(t *testing.T) {
		sheets := contracts.SheetList{
			_sheet("sheet1", _row(1, "=SUM(A1,1)")),
			_sheet("sheet2", _row(10, "=SUM(A1,1)")),
		}

		result := processor.ProcessSheets(sheets)

		assert.Equal(t, _row(1, 2), result[0].Data[0])
		assert.Equal(t, _row(10, 11), result[1].Data[0])
	})

	t.Run("columns_beyond_Z", func(t *testing.T) {
		values := make([]any, 27)
		for index := range values {
			values[index] = index + 1
		}
		values[26] = "=SUM(A1,Z1)"

		result := processor.ProcessSheets(contracts.SheetList{_sheet("wide", _row(values...))})

		assert.Equal(t, contracts.Number(27), result[0].Data[0][26])
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, processor.ProcessSheets(contracts.SheetList{}))
		assert.Equal(t, contracts.SheetList{_sheet("empty")}, processor.ProcessSheets(contracts.SheetList{_sheet("empty")}))
	})
}

func TestSheetProcessor_ProcessSheetsWithFailures(t *testing.T) {
	t.Run("failures", func(t *testing.T) {
		processor := NewSheetProcessor(NewExpressionExecutor())
		sheets := contracts.SheetList{_sheet("sheet1", _row(1, "=DIVIDE(A1,0)", "=C2"), _row("=B2", "=A2", "=UNKNOWN()"))}

		result, failures := processor.ProcessSheetsWithFailures(sheets)

		assert.Equal(t, _row(1, contracts.ErrorSentinel, contracts.ErrorSentinel), result[0].Data[0])
		assert.Equal(t, _row(contracts.ErrorSentinel, contracts.ErrorSentinel, contracts.ErrorSentinel), result[0].Data[1])

		kinds := map[string]string{}
		for _, failure := range failures {
			assert.Equal(t, "sheet1", failure.SheetId)
			kinds[failure.Cell] = failure.Kind
		}
		assert.Equal(t, map[string]string{
			"B1": "domain",
			"C1": "syntax",
			"A2": "circular",
			"B2": "circular",
			"C2": "syntax",
		}, kinds)
	})

	t.Run("no_failures", func(t *testing.T) {
		processor := NewSheetProcessor(NewExpressionExecutor())

		_, failures := processor.ProcessSheetsWithFailures(contracts.SheetList{_sheet("sheet1", _row(1, "=A1"))})

		assert.NotNil(t, failures)
		assert.Empty(t, failures)
	})

	t.Run("executor_is_called_for_every_formula", func(t *testing.T) {
		executor := mocks.NewExpressionExecutor(t)
		lookup := contracts.CellLookup{"A1": contracts.String("=GT(1,2)"), "B1": contracts.Number(4)}
		executor.On("Evaluate", "GT(1,2)", lookup).Return(contracts.Bool(false), nil).Once()

		processor := NewSheetProcessor(executor)
		result := processor.ProcessSheets(contracts.SheetList{_sheet("sheet1", _row("=GT(1,2)", 4))})

		assert.Equal(t, _row(false, 4), result[0].Data[0])
	})
}
