package main

import (
	"strings"
)

type Canonicalizer struct {
	cellNameReplacer *strings.Replacer
}

func NewCanonicalizer() *Canonicalizer {
	return &Canonicalizer{
		// absolute markers ($A$1) and inner whitespace do not change the addressed cell
		cellNameReplacer: strings.NewReplacer("$", "", " ", "", "\t", ""),
	}
}

func (c *Canonicalizer) CanonicalizeSheetId(sheetId string) string {
	return strings.ToLower(strings.TrimSpace(sheetId))
}

func (c *Canonicalizer) CanonicalizeCellName(cellName string) string {
	return strings.ToUpper(c.cellNameReplacer.Replace(cellName))
}
