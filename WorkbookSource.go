package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbookSheets reads every worksheet of an .xlsx file as a sheet named after the worksheet
func LoadWorkbookSheets(path string) (contracts.SheetList, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	sheets := make(contracts.SheetList, 0)
	for _, sheetName := range file.GetSheetList() {
		rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", sheetName, err)
		}

		sheet := &contracts.Sheet{Id: sheetName, Data: make([][]contracts.Value, len(rows))}
		for rowIndex, row := range rows {
			sheet.Data[rowIndex] = make([]contracts.Value, len(row))

			for columnIndex, text := range row {
				value, err := workbookCellValue(file, sheetName, rowIndex, columnIndex, text)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", sheetName, err)
				}
				sheet.Data[rowIndex][columnIndex] = value
			}
		}

		sheets = append(sheets, sheet)
	}

	return sheets, nil
}

func workbookCellValue(file *excelize.File, sheetName string, rowIndex int, columnIndex int, text string) (contracts.Value, error) {
	name := CellName(rowIndex, columnIndex)

	formula, err := file.GetCellFormula(sheetName, name)
	if err != nil {
		return contracts.Value{}, err
	}
	if formula != "" {
		return contracts.String(contracts.FormulaPrefix + formula), nil
	}

	cellType, err := file.GetCellType(sheetName, name)
	if err != nil {
		return contracts.Value{}, err
	}

	switch {
	case cellType == excelize.CellTypeBool:
		return contracts.Bool(text == "1" || strings.EqualFold(text, "true")), nil
	case text == "":
		return contracts.Value{}, nil
	case cellType == excelize.CellTypeNumber || cellType == excelize.CellTypeUnset:
		if number, ok := contracts.String(text).ToNumber(); ok {
			return contracts.Number(number), nil
		}
	}

	return contracts.String(text), nil
}

// SaveWorkbookSheets writes sheets as worksheets of a new .xlsx file
func SaveWorkbookSheets(path string, sheets contracts.SheetList) error {
	file := excelize.NewFile()
	defer file.Close()

	defaultSheet := file.GetSheetName(0)
	for index, sheet := range sheets {
		if index > 0 {
			if _, err := file.NewSheet(sheet.Id); err != nil {
				return err
			}
		} else if sheet.Id != defaultSheet {
			if err := file.SetSheetName(defaultSheet, sheet.Id); err != nil {
				return err
			}
		}

		for rowIndex, row := range sheet.Data {
			for columnIndex, value := range row {
				name := CellName(rowIndex, columnIndex)
				if name == "" || value.IsUndefined() {
					continue
				}

				if err := file.SetCellValue(sheet.Id, name, workbookValue(value)); err != nil {
					return fmt.Errorf("%s!%s: %w", sheet.Id, name, err)
				}
			}
		}
	}

	return file.SaveAs(path)
}

func workbookValue(value contracts.Value) interface{} {
	switch value.Kind {
	case contracts.NumberKind:
		// NaN and Infinity have no cell representation
		if math.IsNaN(value.Number) || math.IsInf(value.Number, 0) {
			return value.String()
		}
		return value.Number
	case contracts.BoolKind:
		return value.Bool
	default:
		return value.Text
	}
}
