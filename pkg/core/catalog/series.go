package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

// StillInProduction is the last year covered by series that are still being struck.
const StillInProduction = 2025

// DisplayGroup orders series in the picker.
type DisplayGroup int

const (
	GroupBasic DisplayGroup = iota
	GroupAdvanced
	GroupMore
)

func (g DisplayGroup) String() string {
	switch g {
	case GroupBasic:
		return "basic"
	case GroupAdvanced:
		return "advanced"
	default:
		return "more"
	}
}

// Toggle is a user-selectable option of a series. For mint toggles Mark is the
// text written into generated slots.
type Toggle struct {
	Key     domain.OptionKey `json:"key"`
	Label   string           `json:"label"`
	Mark    string           `json:"mark,omitempty"`
	Default bool             `json:"default"`
}

// ImageEntry maps an image id to a displayable asset.
type ImageEntry struct {
	Label string `json:"label"`
	Asset string `json:"asset"`
}

// Series is the compiled-in definition of one coin series.
type Series struct {
	Index         int             `json:"index"`
	Name          string          `json:"name"`
	StartYear     int             `json:"startYear"`
	StopYear      int             `json:"stopYear"`
	EditableDates bool            `json:"editableDates"`
	FaceValue     decimal.Decimal `json:"faceValue"`
	Group         DisplayGroup    `json:"group"`
	Mints         []Toggle        `json:"mints,omitempty"`
	Checkboxes    []Toggle        `json:"checkboxes,omitempty"`
	Images        []ImageEntry    `json:"images,omitempty"`
	Obverse       string          `json:"obverse"`
	Reverse       string          `json:"reverse"`

	segments   []segment
	issues     []issue
	issueMints map[domain.OptionKey]window

	// Hand-written rules. prelude runs once before the first year; span is the
	// year range walked when the series has no year range of its own.
	prelude func(g *gen)
	years   yearRule
	span    [2]int
}

// YearBased reports whether slots are generated from a year range.
func (s *Series) YearBased() bool {
	return s.StopYear != 0
}

// StillMinted reports whether the series runs up to the current catalog year.
func (s *Series) StillMinted() bool {
	return s.StopYear == StillInProduction
}

// DeclaredKeys lists every toggle key the series understands, mints first.
func (s *Series) DeclaredKeys() []domain.OptionKey {
	keys := make([]domain.OptionKey, 0, len(s.Mints)+len(s.Checkboxes))
	for _, t := range s.Mints {
		keys = append(keys, t.Key)
	}
	for _, t := range s.Checkboxes {
		keys = append(keys, t.Key)
	}
	return keys
}

// DefaultParameters returns the parameters offered when a collection is created.
func (s *Series) DefaultParameters() domain.SlotParameters {
	p := domain.SlotParameters{
		StartYear: s.StartYear,
		StopYear:  s.StopYear,
		Options:   make(map[domain.OptionKey]bool),
	}
	for _, t := range s.Mints {
		p.Options[t.Key] = t.Default
	}
	for _, t := range s.Checkboxes {
		p.Options[t.Key] = t.Default
	}
	return p
}

// ImageIDs returns the image table slots index into.
func (s *Series) ImageIDs() []ImageEntry {
	return s.Images
}

// ImgID returns the image id for a label, or NoImage.
func (s *Series) ImgID(label string) int {
	for i, img := range s.Images {
		if img.Label == label {
			return i
		}
	}
	return domain.NoImage
}

// CoinSlotImage resolves the asset displayed for a slot. The slot's image id wins
// unless ignoreImageID is set or the id is unset; otherwise the asset is derived from
// the slot's identifier. An image id outside the table is a programming error.
func (s *Series) CoinSlotImage(slot domain.CoinSlot, ignoreImageID bool) string {
	if !ignoreImageID && slot.ImageID != domain.NoImage {
		if slot.ImageID < 0 || slot.ImageID >= len(s.Images) {
			panic(fmt.Sprintf("catalog: %s slot %q has image id %d outside table of %d",
				s.Name, slot.DisplayName(), slot.ImageID, len(s.Images)))
		}
		return s.Images[slot.ImageID].Asset
	}
	return s.defaultImage(slot)
}

func (s *Series) defaultImage(slot domain.CoinSlot) string {
	if s.years != nil {
		if img := s.ruleImage(slot); img >= 0 {
			return s.Images[img].Asset
		}
	}
	for _, is := range s.issues {
		if is.id == slot.Identifier && is.image >= 0 {
			return s.Images[is.image].Asset
		}
	}
	for _, img := range s.Images {
		if strings.HasPrefix(slot.Identifier, img.Label) || strings.HasSuffix(slot.Mint, img.Label) {
			return img.Asset
		}
	}
	if year, ok := leadingYear(slot.Identifier); ok {
		var match *segment
		for i := range s.segments {
			seg := &s.segments[i]
			if year < seg.start || year > seg.stop {
				continue
			}
			if match == nil || (seg.name != "" && strings.Contains(slot.Identifier, seg.name)) {
				match = seg
			}
		}
		if match != nil {
			if img := match.imageOf(year); img >= 0 && img < len(s.Images) {
				return s.Images[img].Asset
			}
		}
	}
	return s.Obverse
}

// ruleImage regenerates the year a slot belongs to with every toggle on and
// returns the image id of the matching slot.
func (s *Series) ruleImage(slot domain.CoinSlot) int {
	from, to := s.StartYear, s.StopYear
	if !s.YearBased() {
		from, to = s.span[0], s.span[1]
	}
	if year, ok := leadingYear(slot.Identifier); ok && year >= from && year <= to {
		from, to = year, year
	}
	p := domain.SlotParameters{ShowMintMarks: true}
	for _, k := range s.DeclaredKeys() {
		p.Set(k, true)
	}
	b := &builder{}
	g := &gen{s: s, p: p, b: b}
	for y := from; y <= to; y++ {
		s.years(g, y)
	}
	for _, c := range b.slots {
		if c.Key() == slot.Key() {
			return c.ImageID
		}
	}
	return domain.NoImage
}

func leadingYear(identifier string) (int, bool) {
	if len(identifier) < 4 {
		return 0, false
	}
	y, err := strconv.Atoi(identifier[:4])
	if err != nil {
		return 0, false
	}
	return y, true
}

func face(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// named builds an image table whose assets are derived from the labels.
func named(prefix string, labels ...string) []ImageEntry {
	out := make([]ImageEntry, len(labels))
	for i, l := range labels {
		out[i] = ImageEntry{Label: l, Asset: prefix + "_" + slug(l)}
	}
	return out
}

func slug(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore && b.Len() > 0:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}

// Standard mint toggles.
func mintP(mark string) Toggle {
	return Toggle{Key: domain.MintP, Label: "Philadelphia", Mark: mark, Default: true}
}

var (
	mintD  = Toggle{Key: domain.MintD, Label: "Denver", Mark: "D"}
	mintS  = Toggle{Key: domain.MintS, Label: "San Francisco", Mark: "S"}
	mintO  = Toggle{Key: domain.MintO, Label: "New Orleans", Mark: "O"}
	mintCC = Toggle{Key: domain.MintCC, Label: "Carson City", Mark: "CC"}
	mintW  = Toggle{Key: domain.MintW, Label: "West Point", Mark: "W"}
)

func byDefault(t Toggle) Toggle {
	t.Default = true
	return t
}

func check(key domain.OptionKey, label string, def bool) Toggle {
	return Toggle{Key: key, Label: label, Default: def}
}
