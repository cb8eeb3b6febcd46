package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/tursodatabase/libsql-client-go/libsql" // Turso driver
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
	_ "modernc.org/sqlite" // Local SQLite driver
)

// SQLiteRepository keeps one master row per collection in collection_info and
// the slots of each collection in a table named after it.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbURL string) (*SQLiteRepository, error) {
	driverName := "sqlite"
	if strings.Contains(dbURL, "libsql://") || strings.Contains(dbURL, "wss://") {
		driverName = "libsql"
	}

	db, err := sql.Open(driverName, dbURL)
	if err != nil {
		return nil, err
	}
	if driverName == "sqlite" {
		// A single connection serialises writers and keeps in-memory databases alive.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err := migrateUp(db); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// Ping checks the database connection.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

const slotColumns = `coinIdentifier, coinMint, inCollection, advGradeIndex, advQuantityIndex, advNotes, imageId, sortOrder`

const infoColumns = `name, coinType, total, display, displayOrder, startYear, endYear, showMintMarks, showCheckboxes`

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func createSlotTable(ctx context.Context, q querier, name string) error {
	query := `CREATE TABLE ` + quoteIdent(name) + ` (
		_id INTEGER PRIMARY KEY AUTOINCREMENT,
		coinIdentifier TEXT NOT NULL,
		coinMint TEXT NOT NULL DEFAULT '',
		inCollection INTEGER NOT NULL DEFAULT 0,
		advGradeIndex INTEGER NOT NULL DEFAULT 0,
		advQuantityIndex INTEGER NOT NULL DEFAULT 0,
		advNotes TEXT NOT NULL DEFAULT '',
		imageId INTEGER NOT NULL DEFAULT -1,
		sortOrder INTEGER NOT NULL
	)`
	if _, err := q.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", name, err)
	}
	return nil
}

func insertSlots(ctx context.Context, q querier, name string, slots []domain.CoinSlot) error {
	stmt, err := q.PrepareContext(ctx, `INSERT INTO `+quoteIdent(name)+` (`+slotColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range slots {
		if _, err := stmt.ExecContext(ctx, s.Identifier, s.Mint, boolInt(s.Owned), s.Grade, s.Quantity, s.Notes, s.ImageID, s.Index); err != nil {
			return fmt.Errorf("insert slot %q into %s: %w", s.DisplayName(), name, err)
		}
	}
	return nil
}

func insertInfo(ctx context.Context, q querier, m *domain.CollectionMetadata) error {
	_, err := q.ExecContext(ctx, `INSERT INTO collection_info (`+infoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.Name, m.CoinType, m.Total, m.DisplayType, m.DisplayOrder, m.StartYear, m.StopYear, m.MintMarkFlags, m.CheckboxFlags)
	if err != nil {
		return fmt.Errorf("insert collection_info %q: %w", m.Name, err)
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInfo(row rowScanner) (*domain.CollectionMetadata, error) {
	var m domain.CollectionMetadata
	err := row.Scan(&m.Name, &m.CoinType, &m.Total, &m.DisplayType, &m.DisplayOrder,
		&m.StartYear, &m.StopYear, &m.MintMarkFlags, &m.CheckboxFlags)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// lookup returns the stored metadata of a collection, or ErrNotFound.
func lookup(ctx context.Context, q querier, name string) (*domain.CollectionMetadata, error) {
	row := q.QueryRowContext(ctx, `SELECT `+infoColumns+` FROM collection_info WHERE name = ?`, name)
	m, err := scanInfo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("collection %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func exists(ctx context.Context, q querier, name string) (bool, error) {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM collection_info WHERE name = ?`, name).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func countOwned(ctx context.Context, q querier, name string) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+quoteIdent(name)+` WHERE inCollection = 1`).Scan(&n)
	return n, err
}

func countSlots(ctx context.Context, q querier, name string) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+quoteIdent(name)).Scan(&n)
	return n, err
}

func nextDisplayOrder(ctx context.Context, q querier) (int, error) {
	var n int
	err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(displayOrder) + 1, 0) FROM collection_info`).Scan(&n)
	return n, err
}

// Ensure interface compliance
var _ ports.CollectionRepository = (*SQLiteRepository)(nil)
