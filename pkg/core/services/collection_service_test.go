package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

const (
	lincolnIndex = 0
	mercuryIndex = 15
	mercuryYears = 27
)

var dbSeq atomic.Int64

func newTestService(t *testing.T) *CollectionService {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	repo, err := sqlite.NewSQLiteRepository(dsn)
	if err != nil {
		t.Fatalf("NewSQLiteRepository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return NewCollectionService(repo)
}

func mustCreate(t *testing.T, svc *CollectionService, name string, coinType int) *domain.CollectionMetadata {
	t.Helper()
	meta, err := svc.CreateCollection(context.Background(), domain.CollectionRequest{Name: name, CoinType: coinType})
	if err != nil {
		t.Fatalf("CreateCollection(%q): %v", name, err)
	}
	return meta
}

func ptr[T any](v T) *T { return &v }

func TestCreateCollection(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	meta := mustCreate(t, svc, " Mercury ", mercuryIndex)
	if meta.Name != "Mercury" || meta.Total != mercuryYears || meta.StartYear != 1916 || meta.StopYear != 1945 {
		t.Fatalf("unexpected metadata: %+v", meta)
	}

	c, err := svc.GetCollection(ctx, "mercury")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.CoinList) != mercuryYears || c.CoinList[0].Identifier != "1916" {
		t.Errorf("coin list: %d slots, first %q", len(c.CoinList), c.CoinList[0].Identifier)
	}
	if err := domain.CheckOrdinals(c.CoinList); err != nil {
		t.Error(err)
	}
}

func TestCreateCollectionErrors(t *testing.T) {
	svc := newTestService(t)
	mustCreate(t, svc, "Mercury", mercuryIndex)

	tests := []struct {
		name string
		req  domain.CollectionRequest
		want error
	}{
		{"unknown series", domain.CollectionRequest{Name: "X", CoinType: 99}, domain.ErrUnknownSeries},
		{"empty name", domain.CollectionRequest{Name: "  ", CoinType: mercuryIndex}, domain.ErrInvalidName},
		{"reserved name", domain.CollectionRequest{Name: "collection_info", CoinType: mercuryIndex}, domain.ErrInvalidName},
		{"duplicate", domain.CollectionRequest{Name: "MERCURY", CoinType: mercuryIndex}, domain.ErrAlreadyExists},
		{"inverted years", domain.CollectionRequest{Name: "Y", CoinType: mercuryIndex,
			Parameters: domain.SlotParameters{StartYear: 1940, StopYear: 1930}}, domain.ErrInvalidParameters},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCollection(context.Background(), tt.req)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestEditCollectionCarriesAnnotations(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "Mercury", mercuryIndex)

	if _, err := svc.UpdateSlot(ctx, "Mercury", 0, domain.SlotPatch{Owned: ptr(true), Notes: ptr("VF")}); err != nil {
		t.Fatal(err)
	}

	req := domain.CollectionRequest{
		Name:     "Mercury P+D",
		CoinType: mercuryIndex,
		Parameters: domain.SlotParameters{
			ShowMintMarks: true,
			Options:       map[domain.OptionKey]bool{domain.MintP: true, domain.MintD: true},
		},
	}
	meta, err := svc.EditCollection(ctx, "Mercury", req)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Name != "Mercury P+D" || meta.Total != 52 || meta.Collected != 1 {
		t.Fatalf("unexpected metadata after edit: %+v", meta)
	}

	c, err := svc.GetCollection(ctx, "Mercury P+D")
	if err != nil {
		t.Fatal(err)
	}
	first := c.CoinList[0]
	if first.Identifier != "1916" || first.Mint != "" || !first.Owned || first.Notes != "VF" {
		t.Errorf("annotations not carried: %+v", first)
	}
	if c.CoinList[1].Mint != "D" || c.CoinList[1].Owned {
		t.Errorf("second slot = %+v, want unowned 1916 D", c.CoinList[1])
	}
	if _, err := svc.GetCollection(ctx, "Mercury"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("old name still resolves: %v", err)
	}
}

func TestEditCollectionRenameOnly(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "Mercury", mercuryIndex)

	meta, err := svc.EditCollection(ctx, "Mercury", domain.CollectionRequest{Name: "Dimes", CoinType: mercuryIndex})
	if err != nil {
		t.Fatal(err)
	}
	if meta.Name != "Dimes" || meta.Total != mercuryYears {
		t.Errorf("rename: %+v", meta)
	}

	_, err = svc.EditCollection(ctx, "Dimes", domain.CollectionRequest{CoinType: lincolnIndex})
	if !errors.Is(err, domain.ErrInvalidParameters) {
		t.Errorf("changing series: got %v", err)
	}
}

func TestSlotOperations(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "Mercury", mercuryIndex)

	if _, err := svc.UpdateSlot(ctx, "Mercury", 0, domain.SlotPatch{Owned: ptr(true)}); err != nil {
		t.Fatal(err)
	}
	if err := svc.CopySlot(ctx, "Mercury", 0); err != nil {
		t.Fatal(err)
	}
	c, err := svc.GetCollection(ctx, "Mercury")
	if err != nil {
		t.Fatal(err)
	}
	if c.Total != mercuryYears+1 || c.CoinList[1].Identifier != "1916" || c.CoinList[1].Owned {
		t.Fatalf("after copy: total %d, slot 1 %+v", c.Total, c.CoinList[1])
	}

	if err := svc.DeleteSlot(ctx, "Mercury", 1); err != nil {
		t.Fatal(err)
	}
	c, _ = svc.GetCollection(ctx, "Mercury")
	if c.Total != mercuryYears || c.CoinList[1].Identifier != "1917" {
		t.Errorf("after delete: total %d, slot 1 %q", c.Total, c.CoinList[1].Identifier)
	}
	if err := domain.CheckOrdinals(c.CoinList); err != nil {
		t.Error(err)
	}

	if _, err := svc.UpdateSlot(ctx, "Mercury", mercuryYears, domain.SlotPatch{Owned: ptr(true)}); !errors.Is(err, domain.ErrInvalidIndex) {
		t.Errorf("out of range slot: got %v", err)
	}
	if _, err := svc.UpdateSlot(ctx, "Mercury", 0, domain.SlotPatch{ImageID: ptr(5)}); !errors.Is(err, domain.ErrInvalidParameters) {
		t.Errorf("image id outside table: got %v", err)
	}
	if err := svc.SetDisplayType(ctx, "Mercury", 7); !errors.Is(err, domain.ErrInvalidParameters) {
		t.Errorf("display type 7: got %v", err)
	}
}

func TestSummary(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	mustCreate(t, svc, "Mercury", mercuryIndex)
	for _, i := range []int{0, 1} {
		if _, err := svc.UpdateSlot(ctx, "Mercury", i, domain.SlotPatch{Owned: ptr(true)}); err != nil {
			t.Fatal(err)
		}
	}

	sum, err := svc.Summary(ctx, "Mercury")
	if err != nil {
		t.Fatal(err)
	}
	if sum.Series != "Mercury Dimes" || sum.Collected != 2 || sum.Total != mercuryYears {
		t.Errorf("summary = %+v", sum)
	}
	if !sum.FaceValue.Equal(decimal.RequireFromString("2.7")) || !sum.OwnedValue.Equal(decimal.RequireFromString("0.2")) {
		t.Errorf("face %s owned %s", sum.FaceValue, sum.OwnedValue)
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	slots, err := svc.Preview(ctx, mercuryIndex, domain.SlotParameters{StartYear: 1940})
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 6 || slots[0].Identifier != "1940" {
		t.Errorf("preview: %d slots starting %q", len(slots), slots[0].Identifier)
	}
	list, _ := svc.ListCollections(ctx)
	if len(list) != 0 {
		t.Errorf("preview created %d collections", len(list))
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestService(t)
	mustCreate(t, src, "Mercury", mercuryIndex)
	mustCreate(t, src, "Lincoln", lincolnIndex)
	if _, err := src.UpdateSlot(ctx, "Lincoln", 3, domain.SlotPatch{Owned: ptr(true), Grade: ptr(4)}); err != nil {
		t.Fatal(err)
	}
	if err := src.ReorderCollections(ctx, []string{"Lincoln", "Mercury"}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := src.Export(ctx, &buf); err != nil {
		t.Fatal(err)
	}

	dst := newTestService(t)
	mustCreate(t, dst, "Replaced", mercuryIndex)
	res, err := dst.Import(ctx, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(res.Imported, ",") != "Lincoln,Mercury" || len(res.Issues) != 0 {
		t.Fatalf("import result = %+v", res)
	}

	list, err := dst.ListCollections(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 || list[0].Name != "Lincoln" || list[0].Collected != 1 {
		t.Fatalf("imported list = %+v", list)
	}
	c, _ := dst.GetCollection(ctx, "Lincoln")
	if !c.CoinList[3].Owned || c.CoinList[3].Grade != 4 {
		t.Errorf("slot annotations lost: %+v", c.CoinList[3])
	}
}

func TestImportSkipsInvalidCollections(t *testing.T) {
	svc := newTestService(t)
	doc := `{"databaseVersion": 1, "collections": [
		{"name": "Dimes", "coinType": 15, "displayOrder": 1, "coinList": [{"name": "1916", "mint": "", "index": 0, "imageId": 42}]},
		{"name": "Ghost", "coinType": 99, "coinList": [{"name": "1916", "index": 0}]},
		{"name": "dimes", "coinType": 15, "coinList": [{"name": "1917", "index": 0}]},
		{"name": "Cents", "coinType": 0, "displayOrder": 0, "coinList": [{"name": "1909", "index": 0, "imageId": -1}]}
	]}`

	res, err := svc.Import(context.Background(), strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(res.Imported, ",") != "Cents,Dimes" {
		t.Errorf("imported = %v", res.Imported)
	}
	skipped := 0
	for _, is := range res.Issues {
		if is.Skipped {
			skipped++
		}
	}
	if skipped != 2 || len(res.Issues) != 3 {
		t.Errorf("issues = %+v", res.Issues)
	}

	c, err := svc.GetCollection(context.Background(), "Dimes")
	if err != nil {
		t.Fatal(err)
	}
	if c.CoinList[0].ImageID != domain.NoImage {
		t.Errorf("image id not reset: %d", c.CoinList[0].ImageID)
	}

	_, err = svc.Import(context.Background(), strings.NewReader(`{"databaseVersion": 99, "collections": []}`))
	if !errors.Is(err, domain.ErrUnsupportedVersion) {
		t.Errorf("newer document: got %v", err)
	}
}

func TestExtendToYear(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCollection(ctx, domain.CollectionRequest{
		Name:       "Lincoln",
		CoinType:   lincolnIndex,
		Parameters: domain.SlotParameters{StopYear: 2024},
	})
	if err != nil {
		t.Fatal(err)
	}
	mustCreate(t, svc, "Mercury", mercuryIndex)
	before, _ := svc.GetCollection(ctx, "Lincoln")

	extended, err := svc.ExtendToYear(ctx, 2025)
	if err != nil {
		t.Fatal(err)
	}
	if len(extended) != 1 || extended[0] != "Lincoln" {
		t.Fatalf("extended = %v", extended)
	}

	after, _ := svc.GetCollection(ctx, "Lincoln")
	if after.StopYear != 2025 || after.Total <= before.Total {
		t.Errorf("after extend: stop %d total %d (was %d)", after.StopYear, after.Total, before.Total)
	}
	last := after.CoinList[len(after.CoinList)-1]
	if !strings.HasPrefix(last.Identifier, "2025") || last.Index != after.Total-1 {
		t.Errorf("last slot = %+v", last)
	}

	again, err := svc.ExtendToYear(ctx, 2025)
	if err != nil || len(again) != 0 {
		t.Errorf("second extend = %v, %v", again, err)
	}
}
