package main

import (
	"regexp"

	"github.com/xuri/excelize/v2"
)

var cellNameRegex = regexp.MustCompile(`^[A-Z]+\d+$`)

// IsCellName reports whether text is a bare cell reference such as A1 or AB12
func IsCellName(text string) bool {
	return cellNameRegex.MatchString(text)
}

// CellName derives the name of a zero-based grid position: (0, 0) is A1, column 26 is AA.
// Positions outside the worksheet limits have no name.
func CellName(rowIndex int, columnIndex int) string {
	name, err := excelize.CoordinatesToCellName(columnIndex+1, rowIndex+1)
	if err != nil {
		return ""
	}

	return name
}
