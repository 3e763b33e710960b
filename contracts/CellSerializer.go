package contracts

type CellSerializer interface {
	Marshal(cell *StoredCell) []byte
	Unmarshal([]byte) (*StoredCell, error)
	MarshalMeta(meta *SheetMeta) []byte
	UnmarshalMeta([]byte) (*SheetMeta, error)
}
