package contracts

// Sheet is a 2-D grid of raw cell values as served by the hub
type Sheet struct {
	Id   string    `json:"id"`
	Data [][]Value `json:"data"`
}

type SheetList []*Sheet

// CellFailure records a formula cell whose evaluation collapsed to the error sentinel
type CellFailure struct {
	SheetId    string `json:"sheet_id"`
	Cell       string `json:"cell"`
	Expression string `json:"expression"`
	Kind       string `json:"kind"`
	Message    string `json:"message"`
}

// SheetRecord is a processed sheet loaded back from storage
type SheetRecord struct {
	RunId    string
	Original *Sheet
	Result   *Sheet
}

// SheetMeta is stored next to the cells of a processed sheet
type SheetMeta struct {
	SheetId    string
	RunId      string
	RowLengths []int
}

func (s *Sheet) Clone() *Sheet {
	if s == nil {
		return nil
	}

	clone := &Sheet{Id: s.Id, Data: make([][]Value, len(s.Data))}
	for index, row := range s.Data {
		clone.Data[index] = append([]Value(nil), row...)
	}
	return clone
}

func (l SheetList) Clone() SheetList {
	clone := make(SheetList, len(l))
	for index, sheet := range l {
		clone[index] = sheet.Clone()
	}
	return clone
}
