package contracts

import "errors"

type SheetRepository interface {
	SaveSheets(runId string, original SheetList, processed SheetList) error
	GetSheet(sheetId string) (*SheetRecord, error)
	GetCell(sheetId string, cellId string) (*Cell, error)
	GetLookup(sheetId string) (CellLookup, error)
}

var SheetNotFoundError = errors.New("sheet not found")
