package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

// GetCoinList returns the slots of a collection, by ordinal when ordered is set
// and in insertion order otherwise.
func (r *SQLiteRepository) GetCoinList(ctx context.Context, name string, ordered bool) ([]domain.CoinSlot, error) {
	m, err := lookup(ctx, r.db, name)
	if err != nil {
		return nil, err
	}
	return coinList(ctx, r.db, m.Name, ordered)
}

func coinList(ctx context.Context, q querier, table string, ordered bool) ([]domain.CoinSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM ` + quoteIdent(table)
	if ordered {
		query += ` ORDER BY sortOrder, _id`
	} else {
		query += ` ORDER BY _id`
	}
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	slots := []domain.CoinSlot{}
	for rows.Next() {
		var s domain.CoinSlot
		if err := rows.Scan(&s.Identifier, &s.Mint, &s.Owned, &s.Grade, &s.Quantity, &s.Notes, &s.ImageID, &s.Index); err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, rows.Err()
}

// UpdateSlot writes the user-editable fields of the slot at slot.Index.
func (r *SQLiteRepository) UpdateSlot(ctx context.Context, name string, slot domain.CoinSlot) error {
	m, err := lookup(ctx, r.db, name)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `UPDATE `+quoteIdent(m.Name)+`
		SET inCollection = ?, advGradeIndex = ?, advQuantityIndex = ?, advNotes = ?, imageId = ?
		WHERE sortOrder = ?`,
		boolInt(slot.Owned), slot.Grade, slot.Quantity, slot.Notes, slot.ImageID, slot.Index)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %d in %q", domain.ErrInvalidIndex, slot.Index, name)
	}
	return nil
}

// InsertSlotAt inserts slot at slot.Index and shifts the trailing slots up by one.
// An index equal to the slot count appends.
func (r *SQLiteRepository) InsertSlotAt(ctx context.Context, name string, slot domain.CoinSlot) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		m, err := lookup(ctx, tx, name)
		if err != nil {
			return err
		}
		total, err := countSlots(ctx, tx, m.Name)
		if err != nil {
			return err
		}
		if slot.Index < 0 || slot.Index > total {
			return fmt.Errorf("%w: %d in %q of %d slots", domain.ErrInvalidIndex, slot.Index, name, total)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE `+quoteIdent(m.Name)+` SET sortOrder = sortOrder + 1 WHERE sortOrder >= ?`, slot.Index); err != nil {
			return err
		}
		if err := insertSlots(ctx, tx, m.Name, []domain.CoinSlot{slot}); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE collection_info SET total = ? WHERE name = ?`, total+1, m.Name)
		return err
	})
}

// DeleteSlotAt removes the slot at index and shifts the trailing slots down by one.
func (r *SQLiteRepository) DeleteSlotAt(ctx context.Context, name string, index int) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		m, err := lookup(ctx, tx, name)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM `+quoteIdent(m.Name)+` WHERE sortOrder = ?`, index)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return fmt.Errorf("%w: %d in %q", domain.ErrInvalidIndex, index, name)
		}
		if _, err := tx.ExecContext(ctx, `UPDATE `+quoteIdent(m.Name)+` SET sortOrder = sortOrder - 1 WHERE sortOrder > ?`, index); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE collection_info SET total = total - 1 WHERE name = ?`, m.Name)
		return err
	})
}

// ReplaceSlots regenerates a collection under meta, which may carry a new name.
// The display order and display type of the collection are kept.
func (r *SQLiteRepository) ReplaceSlots(ctx context.Context, oldName string, meta *domain.CollectionMetadata, slots []domain.CoinSlot) error {
	if err := domain.ValidateCollectionName(meta.Name); err != nil {
		return err
	}
	if err := domain.CheckOrdinals(slots); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidIndex, err)
	}
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		old, err := lookup(ctx, tx, oldName)
		if err != nil {
			return err
		}
		if err := dropForReuse(ctx, tx, old.Name, meta.Name); err != nil {
			return err
		}
		if err := createSlotTable(ctx, tx, meta.Name); err != nil {
			return err
		}
		if err := insertSlots(ctx, tx, meta.Name, slots); err != nil {
			return err
		}

		meta.DisplayOrder = old.DisplayOrder
		meta.DisplayType = old.DisplayType
		meta.Total = len(slots)
		meta.Collected = domain.CountOwned(slots)
		_, err = tx.ExecContext(ctx, `UPDATE collection_info
			SET name = ?, coinType = ?, total = ?, startYear = ?, endYear = ?, showMintMarks = ?, showCheckboxes = ?
			WHERE name = ?`,
			meta.Name, meta.CoinType, meta.Total, meta.StartYear, meta.StopYear, meta.MintMarkFlags, meta.CheckboxFlags, old.Name)
		return err
	})
}

// dropForReuse drops the old table after checking the new name is free.
func dropForReuse(ctx context.Context, q querier, oldName, newName string) error {
	if oldName != newName {
		found, err := exists(ctx, q, newName)
		if err != nil {
			return err
		}
		if found && !strings.EqualFold(oldName, newName) {
			return fmt.Errorf("collection %q: %w", newName, domain.ErrAlreadyExists)
		}
	}
	_, err := q.ExecContext(ctx, `DROP TABLE `+quoteIdent(oldName))
	return err
}

// AppendSlots adds slots after the last one and moves the stop year.
func (r *SQLiteRepository) AppendSlots(ctx context.Context, name string, stopYear int, slots []domain.CoinSlot) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		m, err := lookup(ctx, tx, name)
		if err != nil {
			return err
		}
		total, err := countSlots(ctx, tx, m.Name)
		if err != nil {
			return err
		}
		appended := make([]domain.CoinSlot, len(slots))
		for i, s := range slots {
			s.Index = total + i
			appended[i] = s
		}
		if err := insertSlots(ctx, tx, m.Name, appended); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE collection_info SET total = ?, endYear = ? WHERE name = ?`,
			total+len(slots), stopYear, m.Name)
		return err
	})
}
