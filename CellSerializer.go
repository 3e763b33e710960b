package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

var SerializerError = errors.New("invalid serialized data")

type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

// Marshal layout: row u32 | column u32 | name (u16 length) | value | result
func (s *CellBinarySerializer) Marshal(cell *contracts.StoredCell) []byte {
	serializedData := make([]byte, 0, 10+len(cell.Name)+len(cell.Value.Text)+len(cell.Result.Text)+24)

	serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(cell.Row))
	serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(cell.Column))
	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(cell.Name)))
	serializedData = append(serializedData, cell.Name...)
	serializedData = appendValue(serializedData, cell.Value)
	serializedData = appendValue(serializedData, cell.Result)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (*contracts.StoredCell, error) {
	r := &byteReader{data: data}
	cell := &contracts.StoredCell{}

	cell.Row = int(r.uint32())
	cell.Column = int(r.uint32())
	cell.Name = string(r.bytes(int(r.uint16())))
	cell.Value = r.value()
	cell.Result = r.value()

	if r.err != nil {
		return nil, r.err
	}
	if r.offset != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", SerializerError, len(data)-r.offset)
	}
	return cell, nil
}

// MarshalMeta layout: sheet id (u16 length) | run id (u16 length) | row count u32 | row lengths u32...
func (s *CellBinarySerializer) MarshalMeta(meta *contracts.SheetMeta) []byte {
	serializedData := make([]byte, 0, 8+len(meta.SheetId)+len(meta.RunId)+4*len(meta.RowLengths))

	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(meta.SheetId)))
	serializedData = append(serializedData, meta.SheetId...)
	serializedData = binary.LittleEndian.AppendUint16(serializedData, uint16(len(meta.RunId)))
	serializedData = append(serializedData, meta.RunId...)
	serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(len(meta.RowLengths)))
	for _, rowLength := range meta.RowLengths {
		serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(rowLength))
	}
	return serializedData
}

func (s *CellBinarySerializer) UnmarshalMeta(data []byte) (*contracts.SheetMeta, error) {
	r := &byteReader{data: data}
	meta := &contracts.SheetMeta{}

	meta.SheetId = string(r.bytes(int(r.uint16())))
	meta.RunId = string(r.bytes(int(r.uint16())))
	rowCount := int(r.uint32())
	if r.err == nil && rowCount*4 > len(data)-r.offset {
		return nil, fmt.Errorf("%w: row count %d exceeds data", SerializerError, rowCount)
	}

	meta.RowLengths = make([]int, rowCount)
	for index := range meta.RowLengths {
		meta.RowLengths[index] = int(r.uint32())
	}

	if r.err != nil {
		return nil, r.err
	}
	return meta, nil
}

func appendValue(data []byte, value contracts.Value) []byte {
	data = append(data, byte(value.Kind))

	switch value.Kind {
	case contracts.NumberKind:
		data = binary.LittleEndian.AppendUint64(data, math.Float64bits(value.Number))
	case contracts.BoolKind:
		if value.Bool {
			data = append(data, 1)
		} else {
			data = append(data, 0)
		}
	case contracts.StringKind:
		data = binary.LittleEndian.AppendUint32(data, uint32(len(value.Text)))
		data = append(data, value.Text...)
	}

	return data
}

// byteReader keeps the first error and returns zero values afterwards
type byteReader struct {
	data   []byte
	offset int
	err    error
}

func (r *byteReader) bytes(length int) []byte {
	if r.err != nil {
		return nil
	}

	if length < 0 || r.offset+length > len(r.data) {
		r.err = fmt.Errorf("%w: need %d bytes at offset %d, have %d", SerializerError, length, r.offset, len(r.data)-r.offset)
		return nil
	}

	chunk := r.data[r.offset : r.offset+length]
	r.offset += length
	return chunk
}

func (r *byteReader) uint16() uint16 {
	if chunk := r.bytes(2); chunk != nil {
		return binary.LittleEndian.Uint16(chunk)
	}
	return 0
}

func (r *byteReader) uint32() uint32 {
	if chunk := r.bytes(4); chunk != nil {
		return binary.LittleEndian.Uint32(chunk)
	}
	return 0
}

func (r *byteReader) value() contracts.Value {
	kind := r.bytes(1)
	if kind == nil {
		return contracts.Value{}
	}

	switch contracts.ValueKind(kind[0]) {
	case contracts.UndefinedKind:
		return contracts.Value{}
	case contracts.NumberKind:
		if chunk := r.bytes(8); chunk != nil {
			return contracts.Number(math.Float64frombits(binary.LittleEndian.Uint64(chunk)))
		}
	case contracts.BoolKind:
		if chunk := r.bytes(1); chunk != nil {
			return contracts.Bool(chunk[0] == 1)
		}
	case contracts.StringKind:
		length := int(r.uint32())
		if chunk := r.bytes(length); chunk != nil {
			return contracts.String(string(chunk))
		}
	default:
		r.err = fmt.Errorf("%w: unknown value kind %d", SerializerError, kind[0])
	}

	return contracts.Value{}
}
