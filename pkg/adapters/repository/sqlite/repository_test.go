package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

var dbSeq atomic.Int64

func newTestRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:repo%d?mode=memory&cache=shared", dbSeq.Add(1))
	repo, err := NewSQLiteRepository(dsn)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func makeSlots(ids ...string) []domain.CoinSlot {
	slots := make([]domain.CoinSlot, len(ids))
	for i, id := range ids {
		slots[i] = domain.NewCoinSlot(id, "", i, domain.NoImage)
	}
	return slots
}

func mustCreate(t *testing.T, repo *SQLiteRepository, name string, slots []domain.CoinSlot) *domain.CollectionMetadata {
	t.Helper()
	meta := &domain.CollectionMetadata{Name: name, CoinType: 15, StartYear: 1916, StopYear: 1945, DisplayOrder: domain.UnsetDisplayOrder}
	if err := repo.CreateAndPopulate(context.Background(), meta, slots); err != nil {
		t.Fatalf("CreateAndPopulate(%q): %v", name, err)
	}
	return meta
}

func identifiers(slots []domain.CoinSlot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Identifier
	}
	return out
}

func tableNames(t *testing.T, repo *SQLiteRepository) []string {
	t.Helper()
	metas, err := repo.GetAllTables(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	out := make([]string, len(metas))
	for i, m := range metas {
		out[i] = m.Name
	}
	return out
}

func TestCreateAndGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	slots := makeSlots("1916", "1917", "1918")
	slots[1].Owned = true
	slots[1].Notes = "AU"
	meta := mustCreate(t, repo, "Mercury Dimes", slots)
	if meta.DisplayOrder != 0 || meta.Total != 3 || meta.Collected != 1 {
		t.Errorf("meta = %+v", meta)
	}

	got, err := repo.GetCollection(ctx, "mercury dimes")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Mercury Dimes" || got.Total != 3 || got.Collected != 1 || got.CoinType != 15 {
		t.Errorf("GetCollection = %+v", got)
	}

	list, err := repo.GetCoinList(ctx, "Mercury Dimes", true)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(list, slots) {
		t.Errorf("coin list\n got %+v\nwant %+v", list, slots)
	}

	second := mustCreate(t, repo, "Second", makeSlots("a"))
	if second.DisplayOrder != 1 {
		t.Errorf("second display order = %d", second.DisplayOrder)
	}
}

func TestCreateRejects(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustCreate(t, repo, "Mine", makeSlots("a"))

	tests := []struct {
		name string
		want error
	}{
		{"MINE", domain.ErrAlreadyExists},
		{"", domain.ErrInvalidName},
		{"collection_info", domain.ErrInvalidName},
		{"sqlite_master", domain.ErrInvalidName},
	}
	for _, tt := range tests {
		meta := &domain.CollectionMetadata{Name: tt.name, DisplayOrder: domain.UnsetDisplayOrder}
		if err := repo.CreateAndPopulate(ctx, meta, makeSlots("x")); !errors.Is(err, tt.want) {
			t.Errorf("create %q: got %v, want %v", tt.name, err, tt.want)
		}
	}

	// A failed create leaves nothing behind.
	if got := tableNames(t, repo); !reflect.DeepEqual(got, []string{"Mine"}) {
		t.Errorf("tables = %v", got)
	}
}

func TestQuotedNames(t *testing.T) {
	repo := newTestRepo(t)
	name := `Dad's "Good" Coins; DROP TABLE collection_info`
	mustCreate(t, repo, name, makeSlots("1964"))
	list, err := repo.GetCoinList(context.Background(), name, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Errorf("got %d slots", len(list))
	}
}

func TestMissingCollection(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	checks := map[string]error{}
	_, checks["GetCollection"] = repo.GetCollection(ctx, "nope")
	_, checks["GetCoinList"] = repo.GetCoinList(ctx, "nope", true)
	checks["UpdateSlot"] = repo.UpdateSlot(ctx, "nope", domain.CoinSlot{})
	checks["DeleteSlotAt"] = repo.DeleteSlotAt(ctx, "nope", 0)
	checks["DropCollection"] = repo.DropCollection(ctx, "nope")
	checks["UpdateDisplayType"] = repo.UpdateDisplayType(ctx, "nope", 1)
	for op, err := range checks {
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("%s: got %v, want ErrNotFound", op, err)
		}
	}
}

func TestInsertAndDeleteRenumber(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustCreate(t, repo, "c", makeSlots("a", "b", "c"))

	if err := repo.InsertSlotAt(ctx, "c", domain.NewCoinSlot("x", "", 1, domain.NoImage)); err != nil {
		t.Fatal(err)
	}
	list, _ := repo.GetCoinList(ctx, "c", true)
	if got := identifiers(list); !reflect.DeepEqual(got, []string{"a", "x", "b", "c"}) {
		t.Errorf("after insert: %v", got)
	}
	if err := domain.CheckOrdinals(list); err != nil {
		t.Error(err)
	}

	if err := repo.InsertSlotAt(ctx, "c", domain.NewCoinSlot("end", "", 4, domain.NoImage)); err != nil {
		t.Fatal(err)
	}
	if err := repo.InsertSlotAt(ctx, "c", domain.NewCoinSlot("far", "", 9, domain.NoImage)); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Errorf("insert past end: %v", err)
	}

	if err := repo.DeleteSlotAt(ctx, "c", 0); err != nil {
		t.Fatal(err)
	}
	list, _ = repo.GetCoinList(ctx, "c", true)
	if got := identifiers(list); !reflect.DeepEqual(got, []string{"x", "b", "c", "end"}) {
		t.Errorf("after delete: %v", got)
	}
	if err := domain.CheckOrdinals(list); err != nil {
		t.Error(err)
	}
	if err := repo.DeleteSlotAt(ctx, "c", 4); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Errorf("delete past end: %v", err)
	}

	meta, _ := repo.GetCollection(ctx, "c")
	if meta.Total != 4 {
		t.Errorf("total = %d", meta.Total)
	}
}

func TestUpdateSlot(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustCreate(t, repo, "c", makeSlots("a", "b"))

	s := domain.NewCoinSlot("b", "", 1, 3)
	s.Owned, s.Grade, s.Quantity, s.Notes = true, 5, 2, "toned"
	if err := repo.UpdateSlot(ctx, "c", s); err != nil {
		t.Fatal(err)
	}
	list, _ := repo.GetCoinList(ctx, "c", true)
	if !reflect.DeepEqual(list[1], s) {
		t.Errorf("got %+v, want %+v", list[1], s)
	}
	meta, _ := repo.GetCollection(ctx, "c")
	if meta.Collected != 1 {
		t.Errorf("collected = %d", meta.Collected)
	}

	s.Index = 7
	if err := repo.UpdateSlot(ctx, "c", s); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Errorf("got %v", err)
	}
}

func TestDropRenameCopy(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustCreate(t, repo, "one", makeSlots("a"))
	two := makeSlots("b", "c")
	two[0].Owned = true
	mustCreate(t, repo, "two", two)
	mustCreate(t, repo, "three", makeSlots("d"))

	copied, err := repo.CopyCollection(ctx, "one", "one copy")
	if err != nil {
		t.Fatal(err)
	}
	if copied.DisplayOrder != 1 {
		t.Errorf("copy display order = %d", copied.DisplayOrder)
	}
	if got := tableNames(t, repo); !reflect.DeepEqual(got, []string{"one", "one copy", "two", "three"}) {
		t.Errorf("after copy: %v", got)
	}
	if _, err := repo.CopyCollection(ctx, "one", "TWO"); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("copy onto existing: %v", err)
	}

	if err := repo.RenameCollection(ctx, "two", "Two"); err != nil {
		t.Fatalf("case-only rename: %v", err)
	}
	if err := repo.RenameCollection(ctx, "Two", "three"); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("rename onto existing: %v", err)
	}
	if err := repo.RenameCollection(ctx, "Two", "renamed"); err != nil {
		t.Fatal(err)
	}
	list, err := repo.GetCoinList(ctx, "renamed", true)
	if err != nil || len(list) != 2 || !list[0].Owned {
		t.Errorf("renamed list = %+v, %v", list, err)
	}

	if err := repo.DropCollection(ctx, "one copy"); err != nil {
		t.Fatal(err)
	}
	metas, _ := repo.GetAllTables(ctx)
	for i, m := range metas {
		if m.DisplayOrder != i {
			t.Errorf("%s has display order %d at %d", m.Name, m.DisplayOrder, i)
		}
	}
	if _, err := repo.GetCoinList(ctx, "one copy", true); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("dropped collection still readable: %v", err)
	}
}

func TestCaseOnlyRenameAvoidsTakenNames(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustCreate(t, repo, "c", makeSlots("a", "b"))
	mustCreate(t, repo, "Rename_c", makeSlots("x"))
	mustCreate(t, repo, "rename_c_1", makeSlots("y"))

	if err := repo.RenameCollection(ctx, "c", "C"); err != nil {
		t.Fatalf("case-only rename: %v", err)
	}
	if got := tableNames(t, repo); !reflect.DeepEqual(got, []string{"C", "Rename_c", "rename_c_1"}) {
		t.Errorf("tables = %v", got)
	}
	for name, want := range map[string][]string{"C": {"a", "b"}, "Rename_c": {"x"}, "rename_c_1": {"y"}} {
		list, err := repo.GetCoinList(ctx, name, true)
		if err != nil {
			t.Fatalf("GetCoinList(%q): %v", name, err)
		}
		if got := identifiers(list); !reflect.DeepEqual(got, want) {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
}

func TestUpdateDisplayOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	for _, n := range []string{"a", "b", "c"} {
		mustCreate(t, repo, n, makeSlots("x"))
	}
	if err := repo.UpdateDisplayOrder(ctx, []string{"C", "a", "b"}); err != nil {
		t.Fatal(err)
	}
	if got := tableNames(t, repo); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("order = %v", got)
	}

	for _, bad := range [][]string{{"a", "b"}, {"a", "a", "b"}, {"a", "b", "z"}} {
		if err := repo.UpdateDisplayOrder(ctx, bad); !errors.Is(err, domain.ErrInvalidOrder) {
			t.Errorf("%v: got %v", bad, err)
		}
	}
	if got := tableNames(t, repo); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Errorf("failed reorder changed order: %v", got)
	}
}

func TestReplaceAndAppendSlots(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustCreate(t, repo, "first", makeSlots("z"))
	mustCreate(t, repo, "c", makeSlots("1916", "1917"))
	if err := repo.UpdateDisplayType(ctx, "c", domain.DisplayAdvanced); err != nil {
		t.Fatal(err)
	}

	meta := &domain.CollectionMetadata{Name: "C renamed", CoinType: 15, StartYear: 1917, StopYear: 1918}
	if err := repo.ReplaceSlots(ctx, "c", meta, makeSlots("1917", "1918")); err != nil {
		t.Fatal(err)
	}
	got, err := repo.GetCollection(ctx, "C renamed")
	if err != nil {
		t.Fatal(err)
	}
	if got.DisplayOrder != 1 || got.DisplayType != domain.DisplayAdvanced || got.StartYear != 1917 || got.Total != 2 {
		t.Errorf("after replace: %+v", got)
	}

	if err := repo.AppendSlots(ctx, "C renamed", 1919, makeSlots("1919")); err != nil {
		t.Fatal(err)
	}
	list, _ := repo.GetCoinList(ctx, "C renamed", true)
	if ids := identifiers(list); !reflect.DeepEqual(ids, []string{"1917", "1918", "1919"}) {
		t.Errorf("after append: %v", ids)
	}
	if err := domain.CheckOrdinals(list); err != nil {
		t.Error(err)
	}
	got, _ = repo.GetCollection(ctx, "C renamed")
	if got.StopYear != 1919 || got.Total != 3 {
		t.Errorf("after append: %+v", got)
	}

	clash := &domain.CollectionMetadata{Name: "first"}
	if err := repo.ReplaceSlots(ctx, "C renamed", clash, makeSlots("x")); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("replace onto existing: %v", err)
	}
	if _, err := repo.GetCoinList(ctx, "C renamed", true); err != nil {
		t.Errorf("failed replace lost the collection: %v", err)
	}
}

func TestReplaceAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	mustCreate(t, repo, "old", makeSlots("a"))

	in := []domain.Collection{
		{CollectionMetadata: domain.CollectionMetadata{Name: "new1", CoinType: 0, DisplayOrder: 0}, CoinList: makeSlots("1909")},
		{CollectionMetadata: domain.CollectionMetadata{Name: "new2", CoinType: 1, DisplayOrder: 1}, CoinList: makeSlots("1938", "1939")},
	}
	if err := repo.ReplaceAll(ctx, in); err != nil {
		t.Fatal(err)
	}
	if got := tableNames(t, repo); !reflect.DeepEqual(got, []string{"new1", "new2"}) {
		t.Errorf("tables = %v", got)
	}

	// A failing import keeps what was there.
	bad := []domain.Collection{
		{CollectionMetadata: domain.CollectionMetadata{Name: "x"}, CoinList: makeSlots("1")},
		{CollectionMetadata: domain.CollectionMetadata{Name: "X"}, CoinList: makeSlots("2")},
	}
	if err := repo.ReplaceAll(ctx, bad); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("got %v", err)
	}
	if got := tableNames(t, repo); !reflect.DeepEqual(got, []string{"new1", "new2"}) {
		t.Errorf("tables after failed import = %v", got)
	}
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic was swallowed")
			}
		}()
		_ = repo.WithTransaction(ctx, func(tx *sql.Tx) error {
			if err := createSlotTable(ctx, tx, "ghost"); err != nil {
				return err
			}
			panic("boom")
		})
	}()

	var n int
	if err := repo.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'ghost'`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Error("table created in a panicking transaction survived")
	}
}
