package main

import "github.com/tmsptr/spreadsheetEvaluator/contracts"

// NewCellLookupChain layers first over second: a name present in first shadows second
func NewCellLookupChain(first contracts.CellLookup, second contracts.CellLookup) contracts.CellLookup {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	chained := make(contracts.CellLookup, len(first)+len(second))
	for name, value := range second {
		chained[name] = value
	}
	for name, value := range first {
		chained[name] = value
	}

	return chained
}
