package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

// CreateAndPopulate creates the collection table, fills it and registers the
// collection, all in one transaction. An unset display order places the
// collection at the end of the list.
func (r *SQLiteRepository) CreateAndPopulate(ctx context.Context, meta *domain.CollectionMetadata, slots []domain.CoinSlot) error {
	if err := domain.ValidateCollectionName(meta.Name); err != nil {
		return err
	}
	if err := domain.CheckOrdinals(slots); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidIndex, err)
	}

	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		return create(ctx, tx, meta, slots)
	})
}

func create(ctx context.Context, q querier, meta *domain.CollectionMetadata, slots []domain.CoinSlot) error {
	found, err := exists(ctx, q, meta.Name)
	if err != nil {
		return err
	}
	if found {
		return fmt.Errorf("collection %q: %w", meta.Name, domain.ErrAlreadyExists)
	}
	if meta.DisplayOrder == domain.UnsetDisplayOrder {
		if meta.DisplayOrder, err = nextDisplayOrder(ctx, q); err != nil {
			return err
		}
	}
	meta.Total = len(slots)
	meta.Collected = domain.CountOwned(slots)

	if err := createSlotTable(ctx, q, meta.Name); err != nil {
		return err
	}
	if err := insertSlots(ctx, q, meta.Name, slots); err != nil {
		return err
	}
	return insertInfo(ctx, q, meta)
}

func (r *SQLiteRepository) GetCollection(ctx context.Context, name string) (*domain.CollectionMetadata, error) {
	m, err := lookup(ctx, r.db, name)
	if err != nil {
		return nil, err
	}
	if m.Collected, err = countOwned(ctx, r.db, m.Name); err != nil {
		return nil, err
	}
	return m, nil
}

// GetAllTables returns every collection in display order.
func (r *SQLiteRepository) GetAllTables(ctx context.Context) ([]domain.CollectionMetadata, error) {
	metas, err := listInfo(ctx, r.db)
	if err != nil {
		return nil, err
	}
	for i := range metas {
		if metas[i].Collected, err = countOwned(ctx, r.db, metas[i].Name); err != nil {
			return nil, err
		}
	}
	return metas, nil
}

// listInfo reads every master row. The rows are closed before returning so the
// caller can issue further queries on a single connection.
func listInfo(ctx context.Context, q querier) ([]domain.CollectionMetadata, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+infoColumns+` FROM collection_info ORDER BY displayOrder, _id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var metas []domain.CollectionMetadata
	for rows.Next() {
		m, err := scanInfo(rows)
		if err != nil {
			return nil, err
		}
		metas = append(metas, *m)
	}
	return metas, rows.Err()
}

// DropCollection removes the collection and closes the gap in the display order.
func (r *SQLiteRepository) DropCollection(ctx context.Context, name string) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		m, err := lookup(ctx, tx, name)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+quoteIdent(m.Name)); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM collection_info WHERE name = ?`, m.Name); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE collection_info SET displayOrder = displayOrder - 1 WHERE displayOrder > ?`, m.DisplayOrder)
		return err
	})
}

func (r *SQLiteRepository) RenameCollection(ctx context.Context, oldName, newName string) error {
	if err := domain.ValidateCollectionName(newName); err != nil {
		return err
	}
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		m, err := lookup(ctx, tx, oldName)
		if err != nil {
			return err
		}
		if m.Name == newName {
			return nil
		}
		if !strings.EqualFold(m.Name, newName) {
			found, err := exists(ctx, tx, newName)
			if err != nil {
				return err
			}
			if found {
				return fmt.Errorf("collection %q: %w", newName, domain.ErrAlreadyExists)
			}
		}
		if err := renameTable(ctx, tx, m.Name, newName); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE collection_info SET name = ? WHERE name = ?`, newName, m.Name)
		return err
	})
}

// renameTable renames through a temporary name when only the case changes,
// since table names compare case-insensitively.
func renameTable(ctx context.Context, q querier, from, to string) error {
	if strings.EqualFold(from, to) {
		tmp := "rename_" + from
		for i := 1; ; i++ {
			taken, err := tableExists(ctx, q, tmp)
			if err != nil {
				return err
			}
			if !taken {
				break
			}
			tmp = fmt.Sprintf("rename_%s_%d", from, i)
		}
		if err := renameTable(ctx, q, from, tmp); err != nil {
			return err
		}
		from = tmp
	}
	if _, err := q.ExecContext(ctx, `ALTER TABLE `+quoteIdent(from)+` RENAME TO `+quoteIdent(to)); err != nil {
		return fmt.Errorf("rename table %s to %s: %w", from, to, err)
	}
	return nil
}

func tableExists(ctx context.Context, q querier, name string) (bool, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ? COLLATE NOCASE`, name).Scan(&n)
	return n > 0, err
}

// CopyCollection duplicates a collection and its slots directly after the source
// in the display order.
func (r *SQLiteRepository) CopyCollection(ctx context.Context, source, target string) (*domain.CollectionMetadata, error) {
	if err := domain.ValidateCollectionName(target); err != nil {
		return nil, err
	}
	var out *domain.CollectionMetadata
	err := r.WithTransaction(ctx, func(tx *sql.Tx) error {
		src, err := lookup(ctx, tx, source)
		if err != nil {
			return err
		}
		found, err := exists(ctx, tx, target)
		if err != nil {
			return err
		}
		if found {
			return fmt.Errorf("collection %q: %w", target, domain.ErrAlreadyExists)
		}

		c := src.Copy(target)
		c.DisplayOrder = src.DisplayOrder + 1
		if _, err := tx.ExecContext(ctx, `UPDATE collection_info SET displayOrder = displayOrder + 1 WHERE displayOrder > ?`, src.DisplayOrder); err != nil {
			return err
		}
		if err := createSlotTable(ctx, tx, target); err != nil {
			return err
		}
		copyRows := `INSERT INTO ` + quoteIdent(target) + ` (` + slotColumns + `) SELECT ` + slotColumns +
			` FROM ` + quoteIdent(src.Name) + ` ORDER BY sortOrder`
		if _, err := tx.ExecContext(ctx, copyRows); err != nil {
			return fmt.Errorf("copy slots of %s: %w", src.Name, err)
		}
		if err := insertInfo(ctx, tx, c); err != nil {
			return err
		}
		if c.Collected, err = countOwned(ctx, tx, target); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateDisplayOrder assigns display orders 0..n-1 following names, which must
// name every collection exactly once.
func (r *SQLiteRepository) UpdateDisplayOrder(ctx context.Context, names []string) error {
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		metas, err := listInfo(ctx, tx)
		if err != nil {
			return err
		}
		if len(names) != len(metas) {
			return fmt.Errorf("%w: got %d names for %d collections", domain.ErrInvalidOrder, len(names), len(metas))
		}
		stored := make(map[string]string, len(metas))
		for _, m := range metas {
			stored[strings.ToLower(m.Name)] = m.Name
		}
		for i, n := range names {
			key := strings.ToLower(n)
			name, ok := stored[key]
			if !ok {
				return fmt.Errorf("%w: %q is missing or repeated", domain.ErrInvalidOrder, n)
			}
			delete(stored, key)
			if _, err := tx.ExecContext(ctx, `UPDATE collection_info SET displayOrder = ? WHERE name = ?`, i, name); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) UpdateDisplayType(ctx context.Context, name string, displayType int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE collection_info SET display = ? WHERE name = ?`, displayType, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("collection %q: %w", name, domain.ErrNotFound)
	}
	return nil
}

// ReplaceAll drops every collection and writes the given ones in a single
// transaction. Display orders are taken from the collections as given.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, collections []domain.Collection) error {
	for i := range collections {
		if err := domain.ValidateCollectionName(collections[i].Name); err != nil {
			return err
		}
	}
	return r.WithTransaction(ctx, func(tx *sql.Tx) error {
		metas, err := listInfo(ctx, tx)
		if err != nil {
			return err
		}
		for _, m := range metas {
			if _, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS `+quoteIdent(m.Name)); err != nil {
				return err
			}
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM collection_info`); err != nil {
			return err
		}
		for i := range collections {
			c := &collections[i]
			if err := create(ctx, tx, &c.CollectionMetadata, c.CoinList); err != nil {
				return err
			}
		}
		return nil
	})
}
