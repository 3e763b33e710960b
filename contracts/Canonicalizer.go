package contracts

type Canonicalizer interface {
	CanonicalizeSheetId(sheetId string) string
	CanonicalizeCellName(cellName string) string
}
