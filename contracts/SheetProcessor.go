package contracts

type SheetProcessor interface {
	ProcessSheets(sheets SheetList) SheetList
	ProcessSheetsWithFailures(sheets SheetList) (SheetList, []*CellFailure)
	BuildLookup(sheet *Sheet) CellLookup
}
