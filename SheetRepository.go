package main

import (
	"bytes"
	"fmt"

	"github.com/tmsptr/spreadsheetEvaluator/contracts"
	"go.etcd.io/bbolt"
)

type SheetRepository struct {
	db            *bbolt.DB
	serializer    contracts.CellSerializer
	canonicalizer contracts.Canonicalizer
}

// cell names start with a letter, so the meta key never collides with a cell
var metaKey = []byte{0x00, 0x00, 'm'}

func NewSheetRepository(
	db *bbolt.DB, serializer contracts.CellSerializer, canonicalizer contracts.Canonicalizer,
) *SheetRepository {
	return &SheetRepository{
		db:            db,
		serializer:    serializer,
		canonicalizer: canonicalizer,
	}
}

// SaveSheets replaces the stored state of every sheet in processed.
// original must be the snapshot taken before processing, index-aligned with processed.
func (s *SheetRepository) SaveSheets(runId string, original contracts.SheetList, processed contracts.SheetList) error {
	if len(original) != len(processed) {
		return fmt.Errorf("%d original sheets for %d processed", len(original), len(processed))
	}

	return s.db.Batch(func(tx *bbolt.Tx) error {
		for index, sheet := range processed {
			if sheet == nil || original[index] == nil {
				continue
			}

			if err := s.putSheet(tx, runId, original[index], sheet); err != nil {
				return fmt.Errorf("sheet %s: %w", sheet.Id, err)
			}
		}
		return nil
	})
}

func (s *SheetRepository) putSheet(tx *bbolt.Tx, runId string, original *contracts.Sheet, processed *contracts.Sheet) error {
	bucketId := []byte(s.canonicalizer.CanonicalizeSheetId(processed.Id))

	if tx.Bucket(bucketId) != nil {
		if err := tx.DeleteBucket(bucketId); err != nil {
			return err
		}
	}

	bucket, err := tx.CreateBucket(bucketId)
	if err != nil {
		return err
	}

	meta := &contracts.SheetMeta{
		SheetId:    processed.Id,
		RunId:      runId,
		RowLengths: make([]int, len(processed.Data)),
	}

	for rowIndex, row := range processed.Data {
		meta.RowLengths[rowIndex] = len(row)

		for columnIndex, result := range row {
			name := CellName(rowIndex, columnIndex)
			if name == "" {
				continue
			}

			stored := &contracts.StoredCell{
				Row:    rowIndex,
				Column: columnIndex,
				Cell: contracts.Cell{
					Name:   name,
					Value:  originalValue(original, rowIndex, columnIndex),
					Result: result,
				},
			}

			if err = bucket.Put([]byte(name), s.serializer.Marshal(stored)); err != nil {
				return err
			}
		}
	}

	return bucket.Put(metaKey, s.serializer.MarshalMeta(meta))
}

func originalValue(sheet *contracts.Sheet, rowIndex int, columnIndex int) contracts.Value {
	if rowIndex < len(sheet.Data) && columnIndex < len(sheet.Data[rowIndex]) {
		return sheet.Data[rowIndex][columnIndex]
	}
	return contracts.Value{}
}

func (s *SheetRepository) GetSheet(sheetId string) (record *contracts.SheetRecord, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, meta, err := s.openSheet(tx, sheetId)
		if err != nil {
			return err
		}

		record = &contracts.SheetRecord{
			RunId:    meta.RunId,
			Original: &contracts.Sheet{Id: meta.SheetId, Data: make([][]contracts.Value, len(meta.RowLengths))},
			Result:   &contracts.Sheet{Id: meta.SheetId, Data: make([][]contracts.Value, len(meta.RowLengths))},
		}
		for rowIndex, rowLength := range meta.RowLengths {
			record.Original.Data[rowIndex] = make([]contracts.Value, rowLength)
			record.Result.Data[rowIndex] = make([]contracts.Value, rowLength)
		}

		return s.forEachCell(bucket, func(cell *contracts.StoredCell) {
			if cell.Row < len(meta.RowLengths) && cell.Column < meta.RowLengths[cell.Row] {
				record.Original.Data[cell.Row][cell.Column] = cell.Value
				record.Result.Data[cell.Row][cell.Column] = cell.Result
			}
		})
	})

	if err != nil {
		record = nil
	}
	return
}

func (s *SheetRepository) GetCell(sheetId string, cellId string) (cell *contracts.Cell, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, _, err := s.openSheet(tx, sheetId)
		if err != nil {
			return err
		}

		byteValue := bucket.Get([]byte(s.canonicalizer.CanonicalizeCellName(cellId)))
		if byteValue == nil {
			return fmt.Errorf("%s: %w", cellId, contracts.CellNotFoundError)
		}

		stored, err := s.serializer.Unmarshal(byteValue)
		if err != nil {
			return err
		}

		cell = &stored.Cell
		return nil
	})

	return
}

// GetLookup rebuilds the snapshot lookup table of a stored sheet from its original values
func (s *SheetRepository) GetLookup(sheetId string) (lookup contracts.CellLookup, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		bucket, _, err := s.openSheet(tx, sheetId)
		if err != nil {
			return err
		}

		lookup = contracts.CellLookup{}
		return s.forEachCell(bucket, func(cell *contracts.StoredCell) {
			lookup[cell.Name] = cell.Value
		})
	})

	return
}

func (s *SheetRepository) openSheet(tx *bbolt.Tx, sheetId string) (*bbolt.Bucket, *contracts.SheetMeta, error) {
	bucket := tx.Bucket([]byte(s.canonicalizer.CanonicalizeSheetId(sheetId)))
	if bucket == nil {
		return nil, nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	metaData := bucket.Get(metaKey)
	if metaData == nil {
		return nil, nil, fmt.Errorf("%s: %w", sheetId, contracts.SheetNotFoundError)
	}

	meta, err := s.serializer.UnmarshalMeta(metaData)
	if err != nil {
		return nil, nil, err
	}

	return bucket, meta, nil
}

func (s *SheetRepository) forEachCell(bucket *bbolt.Bucket, fn func(cell *contracts.StoredCell)) error {
	c := bucket.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if bytes.Equal(k, metaKey) {
			continue
		}

		cell, err := s.serializer.Unmarshal(v)
		if err != nil {
			return fmt.Errorf("cell %s: %w", k, err)
		}
		fn(cell)
	}

	return nil
}
