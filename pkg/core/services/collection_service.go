package services

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/catalog"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/logger"
	"github.com/wadjakorntonsri/coin-collection/pkg/metrics"
	"github.com/wadjakorntonsri/coin-collection/pkg/ports"
)

type CollectionService struct {
	repo ports.CollectionRepository
}

func NewCollectionService(repo ports.CollectionRepository) *CollectionService {
	return &CollectionService{repo: repo}
}

var _ ports.CollectionService = (*CollectionService)(nil)

// resolve overlays the requested parameters on base and clamps the years.
// Keys the series does not declare are dropped. A request without options only
// changes the mint mark switch when it turns it on.
func resolve(series *catalog.Series, base, req domain.SlotParameters) (domain.SlotParameters, error) {
	p := base.Clone()
	if req.Options != nil || req.ShowMintMarks {
		p.ShowMintMarks = req.ShowMintMarks
	}
	if req.StartYear != 0 {
		p.StartYear = req.StartYear
	}
	if req.StopYear != 0 {
		p.StopYear = req.StopYear
	}
	if p.Options == nil {
		p.Options = make(map[domain.OptionKey]bool)
	}
	for _, key := range series.DeclaredKeys() {
		if on, ok := req.Options[key]; ok {
			p.Options[key] = on
		}
	}
	return series.NormalizeParameters(p)
}

func (s *CollectionService) populate(ctx context.Context, series *catalog.Series, p domain.SlotParameters) ([]domain.CoinSlot, error) {
	slots, err := catalog.Populate(series, p)
	if err != nil {
		return nil, err
	}
	generated(ctx, series, p.StartYear, p.StopYear, slots)
	return slots, nil
}

func generated(ctx context.Context, series *catalog.Series, start, stop int, slots []domain.CoinSlot) {
	metrics.SlotsGenerated.WithLabelValues(series.Name).Add(float64(len(slots)))
	logger.FromContext(ctx).Debug("populated series",
		zap.String("series", series.Name),
		zap.Int("start", start),
		zap.Int("stop", stop),
		zap.Int("slots", len(slots)))
}

func (s *CollectionService) CreateCollection(ctx context.Context, req domain.CollectionRequest) (meta *domain.CollectionMetadata, err error) {
	defer func() { metrics.CollectionOps.WithLabelValues("create", metrics.Outcome(err)).Inc() }()

	name := strings.TrimSpace(req.Name)
	if err := domain.ValidateCollectionName(name); err != nil {
		return nil, err
	}
	series, err := catalog.ByIndex(req.CoinType)
	if err != nil {
		return nil, err
	}
	p, err := resolve(series, series.DefaultParameters(), req.Parameters)
	if err != nil {
		return nil, err
	}
	slots, err := s.populate(ctx, series, p)
	if err != nil {
		return nil, err
	}

	meta = domain.NewCollectionMetadata(name, series.Index, p, len(slots))
	if err := s.repo.CreateAndPopulate(ctx, meta, slots); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("collection created",
		zap.String("collection", meta.Name),
		zap.String("series", series.Name),
		zap.Int("slots", meta.Total))
	return meta, nil
}

func (s *CollectionService) ListCollections(ctx context.Context) ([]domain.CollectionMetadata, error) {
	return s.repo.GetAllTables(ctx)
}

func (s *CollectionService) GetCollection(ctx context.Context, name string) (*domain.Collection, error) {
	meta, err := s.repo.GetCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	slots, err := s.repo.GetCoinList(ctx, meta.Name, true)
	if err != nil {
		return nil, err
	}
	return &domain.Collection{CollectionMetadata: *meta, CoinList: slots}, nil
}

// EditCollection renames a collection and/or regenerates it with new parameters.
// The series cannot change. Annotations carry over to regenerated slots with the
// same identifier and mint; slots that no longer exist are dropped.
func (s *CollectionService) EditCollection(ctx context.Context, name string, req domain.CollectionRequest) (meta *domain.CollectionMetadata, err error) {
	defer func() { metrics.CollectionOps.WithLabelValues("edit", metrics.Outcome(err)).Inc() }()

	old, err := s.repo.GetCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	series, err := catalog.ByIndex(old.CoinType)
	if err != nil {
		return nil, err
	}
	if req.CoinType != old.CoinType {
		return nil, fmt.Errorf("%w: series of %q cannot change", domain.ErrInvalidParameters, old.Name)
	}

	newName := strings.TrimSpace(req.Name)
	if newName == "" {
		newName = old.Name
	}
	if err := domain.ValidateCollectionName(newName); err != nil {
		return nil, err
	}

	current := old.Parameters(series.DeclaredKeys())
	p, err := resolve(series, current, req.Parameters)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx).With(zap.String("collection", old.Name))
	if sameParameters(current, p) {
		if newName != old.Name {
			if err := s.repo.RenameCollection(ctx, old.Name, newName); err != nil {
				return nil, err
			}
			log.Info("collection renamed", zap.String("to", newName))
		}
		return s.repo.GetCollection(ctx, newName)
	}

	previous, err := s.repo.GetCoinList(ctx, old.Name, true)
	if err != nil {
		return nil, err
	}
	slots, err := s.populate(ctx, series, p)
	if err != nil {
		return nil, err
	}
	carryAnnotations(slots, previous)

	meta = domain.NewCollectionMetadata(newName, series.Index, p, len(slots))
	meta.DisplayOrder = old.DisplayOrder
	meta.DisplayType = old.DisplayType
	if err := s.repo.ReplaceSlots(ctx, old.Name, meta, slots); err != nil {
		return nil, err
	}
	log.Info("collection regenerated",
		zap.String("name", newName),
		zap.Int("slots", len(slots)),
		zap.Int("previous", len(previous)))
	return s.repo.GetCollection(ctx, newName)
}

func sameParameters(a, b domain.SlotParameters) bool {
	return a.StartYear == b.StartYear && a.StopYear == b.StopYear &&
		a.MintMarkFlags() == b.MintMarkFlags() && a.CheckboxFlags() == b.CheckboxFlags()
}

// carryAnnotations copies user data into regenerated slots. Each previous slot is
// used at most once, so duplicated slots keep their own annotations.
func carryAnnotations(slots, previous []domain.CoinSlot) {
	byKey := make(map[string][]domain.CoinSlot, len(previous))
	for _, p := range previous {
		byKey[p.Key()] = append(byKey[p.Key()], p)
	}
	for i := range slots {
		k := slots[i].Key()
		if matches := byKey[k]; len(matches) > 0 {
			slots[i].CopyAnnotations(matches[0])
			byKey[k] = matches[1:]
		}
	}
}

func (s *CollectionService) DeleteCollection(ctx context.Context, name string) (err error) {
	defer func() { metrics.CollectionOps.WithLabelValues("delete", metrics.Outcome(err)).Inc() }()
	if err := s.repo.DropCollection(ctx, name); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("collection deleted", zap.String("collection", name))
	return nil
}

func (s *CollectionService) CopyCollection(ctx context.Context, source, target string) (meta *domain.CollectionMetadata, err error) {
	defer func() { metrics.CollectionOps.WithLabelValues("copy", metrics.Outcome(err)).Inc() }()
	target = strings.TrimSpace(target)
	if err := domain.ValidateCollectionName(target); err != nil {
		return nil, err
	}
	return s.repo.CopyCollection(ctx, source, target)
}

func (s *CollectionService) ReorderCollections(ctx context.Context, names []string) error {
	return s.repo.UpdateDisplayOrder(ctx, names)
}

func (s *CollectionService) SetDisplayType(ctx context.Context, name string, displayType int) error {
	if displayType != domain.DisplaySimple && displayType != domain.DisplayAdvanced {
		return fmt.Errorf("%w: display type %d", domain.ErrInvalidParameters, displayType)
	}
	return s.repo.UpdateDisplayType(ctx, name, displayType)
}

// Summary reports completion and the face value of the collection and of the owned coins.
func (s *CollectionService) Summary(ctx context.Context, name string) (*domain.Summary, error) {
	c, err := s.GetCollection(ctx, name)
	if err != nil {
		return nil, err
	}
	series, err := catalog.ByIndex(c.CoinType)
	if err != nil {
		return nil, err
	}
	owned := domain.CountOwned(c.CoinList)
	sum := &domain.Summary{
		Name:       c.Name,
		Series:     series.Name,
		Total:      len(c.CoinList),
		Collected:  owned,
		FaceValue:  series.FaceValue.Mul(decimal.NewFromInt(int64(len(c.CoinList)))),
		OwnedValue: series.FaceValue.Mul(decimal.NewFromInt(int64(owned))),
	}
	if sum.Total > 0 {
		sum.Percent = float64(owned) * 100 / float64(sum.Total)
	}
	return sum, nil
}

func (s *CollectionService) slotAt(ctx context.Context, name string, index int) (*catalog.Series, domain.CoinSlot, error) {
	meta, err := s.repo.GetCollection(ctx, name)
	if err != nil {
		return nil, domain.CoinSlot{}, err
	}
	series, err := catalog.ByIndex(meta.CoinType)
	if err != nil {
		return nil, domain.CoinSlot{}, err
	}
	slots, err := s.repo.GetCoinList(ctx, meta.Name, true)
	if err != nil {
		return nil, domain.CoinSlot{}, err
	}
	if index < 0 || index >= len(slots) {
		return nil, domain.CoinSlot{}, fmt.Errorf("%w: %d in %q of %d slots", domain.ErrInvalidIndex, index, meta.Name, len(slots))
	}
	return series, slots[index], nil
}

func (s *CollectionService) UpdateSlot(ctx context.Context, name string, index int, patch domain.SlotPatch) (*domain.CoinSlot, error) {
	series, slot, err := s.slotAt(ctx, name, index)
	if err != nil {
		return nil, err
	}
	if patch.ImageID != nil && (*patch.ImageID < domain.NoImage || *patch.ImageID >= len(series.Images)) {
		return nil, fmt.Errorf("%w: image id %d", domain.ErrInvalidParameters, *patch.ImageID)
	}
	patch.Apply(&slot)
	if err := s.repo.UpdateSlot(ctx, name, slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

// CopySlot inserts a fresh slot for the same coin directly after index.
func (s *CollectionService) CopySlot(ctx context.Context, name string, index int) error {
	_, slot, err := s.slotAt(ctx, name, index)
	if err != nil {
		return err
	}
	dup := domain.NewCoinSlot(slot.Identifier, slot.Mint, index+1, slot.ImageID)
	return s.repo.InsertSlotAt(ctx, name, dup)
}

func (s *CollectionService) DeleteSlot(ctx context.Context, name string, index int) error {
	return s.repo.DeleteSlotAt(ctx, name, index)
}

// Preview generates the slots a collection would get without saving anything.
func (s *CollectionService) Preview(ctx context.Context, seriesIndex int, params domain.SlotParameters) ([]domain.CoinSlot, error) {
	series, err := catalog.ByIndex(seriesIndex)
	if err != nil {
		return nil, err
	}
	p, err := resolve(series, series.DefaultParameters(), params)
	if err != nil {
		return nil, err
	}
	return catalog.Populate(series, p)
}

func (s *CollectionService) Export(ctx context.Context, w io.Writer) error {
	metas, err := s.repo.GetAllTables(ctx)
	if err != nil {
		return err
	}
	doc := &domain.Document{DatabaseVersion: domain.DatabaseVersion, Collections: make([]domain.Collection, 0, len(metas))}
	for _, m := range metas {
		slots, err := s.repo.GetCoinList(ctx, m.Name, true)
		if err != nil {
			return err
		}
		doc.Collections = append(doc.Collections, domain.Collection{CollectionMetadata: m, CoinList: slots})
	}
	logger.FromContext(ctx).Info("collections exported", zap.Int("collections", len(doc.Collections)))
	return domain.EncodeDocument(w, doc)
}

// Import replaces every collection with the contents of an interchange document.
// Entries with an unknown series, an invalid name or a name already taken by an
// earlier entry are skipped; out-of-range image ids are reset. Issues raised here
// carry no document position.
func (s *CollectionService) Import(ctx context.Context, r io.Reader) (res *domain.ImportResult, err error) {
	defer func() { metrics.CollectionOps.WithLabelValues("import", metrics.Outcome(err)).Inc() }()

	doc, issues, err := domain.DecodeDocument(r)
	if err != nil {
		return nil, err
	}
	res = &domain.ImportResult{Issues: issues}

	skip := func(c *domain.Collection, reason string) {
		res.Issues = append(res.Issues, domain.ImportIssue{Position: -1, Name: c.Name, Reason: reason, Skipped: true})
	}
	seen := make(map[string]bool, len(doc.Collections))
	kept := make([]domain.Collection, 0, len(doc.Collections))
	for i := range doc.Collections {
		c := doc.Collections[i]
		series, err := catalog.ByIndex(c.CoinType)
		if err != nil {
			skip(&c, err.Error())
			continue
		}
		if err := domain.ValidateCollectionName(c.Name); err != nil {
			skip(&c, err.Error())
			continue
		}
		folded := strings.ToLower(c.Name)
		if seen[folded] {
			skip(&c, "duplicate collection name")
			continue
		}
		seen[folded] = true

		repaired := 0
		for j := range c.CoinList {
			if id := c.CoinList[j].ImageID; id < domain.NoImage || id >= len(series.Images) {
				c.CoinList[j].ImageID = domain.NoImage
				repaired++
			}
		}
		if repaired > 0 {
			res.Issues = append(res.Issues, domain.ImportIssue{
				Position: -1,
				Name:     c.Name,
				Reason:   fmt.Sprintf("reset %d image ids outside the series image table", repaired),
			})
		}
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].DisplayOrder < kept[j].DisplayOrder })
	for i := range kept {
		kept[i].DisplayOrder = i
		res.Imported = append(res.Imported, kept[i].Name)
	}
	if err := s.repo.ReplaceAll(ctx, kept); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info("collections imported",
		zap.Int("imported", len(kept)),
		zap.Int("issues", len(res.Issues)))
	return res, nil
}

// ExtendToYear appends the slots for year to every collection that stops the year
// before and whose series is still minted. It returns the collections extended.
func (s *CollectionService) ExtendToYear(ctx context.Context, year int) ([]string, error) {
	metas, err := s.repo.GetAllTables(ctx)
	if err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)
	var extended []string
	for _, m := range metas {
		series, err := catalog.ByIndex(m.CoinType)
		if err != nil {
			log.Warn("skipping collection with unknown series", zap.String("collection", m.Name), zap.Error(err))
			continue
		}
		if !series.StillMinted() || m.StopYear != year-1 || year > series.StopYear {
			continue
		}
		slots, err := catalog.PopulateYear(series, m.Parameters(series.DeclaredKeys()), year)
		if err != nil {
			return extended, fmt.Errorf("extend %q: %w", m.Name, err)
		}
		generated(ctx, series, year, year, slots)
		if err := s.repo.AppendSlots(ctx, m.Name, year, slots); err != nil {
			return extended, fmt.Errorf("extend %q: %w", m.Name, err)
		}
		log.Info("collection extended", zap.String("collection", m.Name), zap.Int("year", year), zap.Int("slots", len(slots)))
		extended = append(extended, m.Name)
	}
	return extended, nil
}
