package ports

import (
	"context"
	"io"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

// CollectionRepository defines storage operations for collections and their slots.
// Collection names are matched case-insensitively.
type CollectionRepository interface {
	// Collections
	CreateAndPopulate(ctx context.Context, meta *domain.CollectionMetadata, slots []domain.CoinSlot) error
	GetCollection(ctx context.Context, name string) (*domain.CollectionMetadata, error)
	GetAllTables(ctx context.Context) ([]domain.CollectionMetadata, error)
	DropCollection(ctx context.Context, name string) error
	RenameCollection(ctx context.Context, oldName, newName string) error
	CopyCollection(ctx context.Context, source, target string) (*domain.CollectionMetadata, error)
	UpdateDisplayOrder(ctx context.Context, names []string) error
	UpdateDisplayType(ctx context.Context, name string, displayType int) error

	// Slots
	GetCoinList(ctx context.Context, name string, ordered bool) ([]domain.CoinSlot, error)
	UpdateSlot(ctx context.Context, name string, slot domain.CoinSlot) error
	InsertSlotAt(ctx context.Context, name string, slot domain.CoinSlot) error
	DeleteSlotAt(ctx context.Context, name string, index int) error
	ReplaceSlots(ctx context.Context, oldName string, meta *domain.CollectionMetadata, slots []domain.CoinSlot) error
	AppendSlots(ctx context.Context, name string, stopYear int, slots []domain.CoinSlot) error

	// Import
	ReplaceAll(ctx context.Context, collections []domain.Collection) error

	Close() error
}

// CollectionService defines business logic for collections
type CollectionService interface {
	CreateCollection(ctx context.Context, req domain.CollectionRequest) (*domain.CollectionMetadata, error)
	ListCollections(ctx context.Context) ([]domain.CollectionMetadata, error)
	GetCollection(ctx context.Context, name string) (*domain.Collection, error)
	EditCollection(ctx context.Context, name string, req domain.CollectionRequest) (*domain.CollectionMetadata, error)
	DeleteCollection(ctx context.Context, name string) error
	CopyCollection(ctx context.Context, source, target string) (*domain.CollectionMetadata, error)
	ReorderCollections(ctx context.Context, names []string) error
	SetDisplayType(ctx context.Context, name string, displayType int) error
	Summary(ctx context.Context, name string) (*domain.Summary, error)

	UpdateSlot(ctx context.Context, name string, index int, patch domain.SlotPatch) (*domain.CoinSlot, error)
	CopySlot(ctx context.Context, name string, index int) error
	DeleteSlot(ctx context.Context, name string, index int) error

	Preview(ctx context.Context, seriesIndex int, params domain.SlotParameters) ([]domain.CoinSlot, error)
	Export(ctx context.Context, w io.Writer) error
	Import(ctx context.Context, r io.Reader) (*domain.ImportResult, error)
	ExtendToYear(ctx context.Context, year int) ([]string, error)
}

// JobFunc is the work of a background job. Its result is stored on the job.
type JobFunc func(ctx context.Context) (any, error)

// JobDispatcher runs background jobs in submission order.
type JobDispatcher interface {
	Submit(kind string, fn JobFunc, onDone func(domain.Job)) (domain.Job, error)
	Get(id string) (domain.Job, bool)
}
