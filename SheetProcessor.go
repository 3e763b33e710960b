package main

import (
	"fmt"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

type SheetProcessor struct {
	executor contracts.ExpressionExecutor
}

func NewSheetProcessor(executor contracts.ExpressionExecutor) *SheetProcessor {
	return &SheetProcessor{executor: executor}
}

// BuildLookup snapshots the raw grid values by cell name
func (p *SheetProcessor) BuildLookup(sheet *contracts.Sheet) contracts.CellLookup {
	lookup := contracts.CellLookup{}

	for rowIndex, row := range sheet.Data {
		for columnIndex, value := range row {
			if name := CellName(rowIndex, columnIndex); name != "" {
				lookup[name] = value
			}
		}
	}

	return lookup
}

// ProcessSheets replaces every formula cell with its result, in place
func (p *SheetProcessor) ProcessSheets(sheets contracts.SheetList) contracts.SheetList {
	sheets, _ = p.ProcessSheetsWithFailures(sheets)
	return sheets
}

func (p *SheetProcessor) ProcessSheetsWithFailures(sheets contracts.SheetList) (contracts.SheetList, []*contracts.CellFailure) {
	// every snapshot is taken before any grid is written
	lookups := make([]contracts.CellLookup, len(sheets))
	for index, sheet := range sheets {
		if sheet != nil {
			lookups[index] = p.BuildLookup(sheet)
		}
	}

	failures := make([]*contracts.CellFailure, 0)

	for index, sheet := range sheets {
		if sheet == nil {
			continue
		}

		for rowIndex, row := range sheet.Data {
			for columnIndex, value := range row {
				if !value.IsFormula() {
					continue
				}

				result, err := p.resolve(value.Expression(), lookups[index])
				if err != nil {
					failures = append(failures, &contracts.CellFailure{
						SheetId:    sheet.Id,
						Cell:       CellName(rowIndex, columnIndex),
						Expression: value.Text,
						Kind:       contracts.ErrorKind(err),
						Message:    err.Error(),
					})
				}

				row[columnIndex] = contracts.ResultValue(result, err)
			}
		}
	}

	return sheets, failures
}

// resolve evaluates one formula cell. A bare reference is chased through the snapshot
// until a non-formula value is reached; anything else is dispatched once.
func (p *SheetProcessor) resolve(expression string, lookup contracts.CellLookup) (contracts.Value, error) {
	if !IsCellName(expression) {
		return p.executor.Evaluate(expression, lookup)
	}

	value := lookup[expression]
	chased := map[string]bool{}

	for value.IsFormula() {
		if chased[value.Text] {
			return contracts.Value{}, fmt.Errorf("%s: %w", expression, contracts.CircularReferenceError)
		}
		chased[value.Text] = true

		var err error
		value, err = p.executor.Evaluate(value.Expression(), lookup)
		if err != nil {
			return value, err
		}
	}

	return value, nil
}
