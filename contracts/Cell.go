package contracts

import (
	"errors"
)

// Cell is a processed cell as returned by the API
type Cell struct {
	Name   string `json:"name"`
	Value  Value  `json:"value"`
	Result Value  `json:"result"`
}

// StoredCell is the persisted form of one grid position
type StoredCell struct {
	Row    int
	Column int
	Cell
}

// CellLookup is the flat cell name -> raw value snapshot of one sheet
type CellLookup map[string]Value

var CellNotFoundError = errors.New("cell not found")

var ValueDecodeError = errors.New("invalid cell value")
