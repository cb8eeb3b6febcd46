package catalog

import (
	"errors"
	"reflect"
	"testing"

	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
)

func TestByIndex(t *testing.T) {
	tests := []struct {
		index int
		name  string
	}{
		{0, "Lincoln Cents"},
		{4, "State Quarters"},
		{10, "Presidential Dollars"},
		{21, "Morgan Dollars"},
		{33, "Clad Quarters"},
		{46, "Coin Sets"},
		{49, "Washington Quarters (Advanced)"},
	}
	for _, tt := range tests {
		s, err := ByIndex(tt.index)
		if err != nil {
			t.Fatalf("ByIndex(%d): %v", tt.index, err)
		}
		if s.Name != tt.name {
			t.Errorf("ByIndex(%d) = %q, want %q", tt.index, s.Name, tt.name)
		}
	}

	for _, bad := range []int{-1, Len(), 1000} {
		_, err := ByIndex(bad)
		if !errors.Is(err, domain.ErrUnknownSeries) {
			t.Errorf("ByIndex(%d) error = %v, want ErrUnknownSeries", bad, err)
		}
		var use *domain.UnknownSeriesError
		if !errors.As(err, &use) || use.Index != bad {
			t.Errorf("ByIndex(%d) error does not carry the index: %v", bad, err)
		}
	}
}

func TestIndexMatchesPosition(t *testing.T) {
	all := All()
	if len(all) != 50 {
		t.Fatalf("catalog has %d series, want 50", len(all))
	}
	for i, s := range all {
		if s.Index != i {
			t.Errorf("%s has index %d at position %d", s.Name, s.Index, i)
		}
	}
}

func TestByName(t *testing.T) {
	s, err := ByName("morgan dollars")
	if err != nil {
		t.Fatal(err)
	}
	if s.Index != 21 {
		t.Errorf("got index %d", s.Index)
	}
	if _, err := ByName("Gold Eagles"); !errors.Is(err, domain.ErrUnknownSeries) {
		t.Errorf("expected ErrUnknownSeries, got %v", err)
	}
}

func TestEverySeriesInOneGroup(t *testing.T) {
	seen := make(map[int]DisplayGroup)
	for _, g := range []DisplayGroup{GroupBasic, GroupAdvanced, GroupMore} {
		for _, s := range Group(g) {
			if prev, ok := seen[s.Index]; ok {
				t.Errorf("%s is in %s and %s", s.Name, prev, g)
			}
			seen[s.Index] = g
			if s.Group != g {
				t.Errorf("%s.Group = %s, want %s", s.Name, s.Group, g)
			}
		}
	}
	if len(seen) != Len() {
		t.Errorf("%d series grouped, want %d", len(seen), Len())
	}
}

func TestDefaultParametersRoundTrip(t *testing.T) {
	for _, s := range All() {
		keys := s.DeclaredKeys()
		variants := []func(i int) bool{
			func(int) bool { return true },
			func(int) bool { return false },
			func(i int) bool { return i%2 == 0 },
			func(i int) bool { return i%3 == 1 },
		}
		for vi, on := range variants {
			p := s.DefaultParameters()
			p.ShowMintMarks = vi%2 == 0
			for i, k := range keys {
				p.Set(k, on(i))
			}
			got := domain.ParametersFromFlags(keys, p.StartYear, p.StopYear, p.MintMarkFlags(), p.CheckboxFlags())
			if !reflect.DeepEqual(got, p) {
				t.Errorf("%s variant %d: round trip\n got %+v\nwant %+v", s.Name, vi, got, p)
			}
		}
	}
}

func TestCoinSlotImage(t *testing.T) {
	lincoln, _ := ByIndex(0)
	tests := []struct {
		slot domain.CoinSlot
		want string
	}{
		{domain.NewCoinSlot("1909", "", 0, domain.NoImage), "lincoln_wheat_ears"},
		{domain.NewCoinSlot("1975", "D", 0, domain.NoImage), "lincoln_lincoln_memorial"},
		{domain.NewCoinSlot("2010", "", 0, domain.NoImage), "lincoln_union_shield"},
		{domain.NewCoinSlot("2009", " D Presidency", 0, domain.NoImage), "lincoln_presidency"},
		{domain.NewCoinSlot("1990", "", 0, 6), "lincoln_union_shield"},
	}
	for _, tt := range tests {
		if got := lincoln.CoinSlotImage(tt.slot, false); got != tt.want {
			t.Errorf("CoinSlotImage(%q) = %q, want %q", tt.slot.DisplayName(), got, tt.want)
		}
	}

	// Ignoring the image id falls back to the derived asset.
	slot := domain.NewCoinSlot("1990", "", 0, 6)
	if got := lincoln.CoinSlotImage(slot, true); got != "lincoln_lincoln_memorial" {
		t.Errorf("ignored image id: got %q", got)
	}

	morgan, _ := ByIndex(21)
	if got := morgan.CoinSlotImage(domain.NewCoinSlot("1881", "CC", 0, domain.NoImage), false); got != morgan.Obverse {
		t.Errorf("series without images: got %q, want obverse", got)
	}

	states, _ := ByIndex(4)
	if got := states.CoinSlotImage(domain.NewCoinSlot("Washington", "P", 0, domain.NoImage), true); got != "state_quarter_washington" {
		t.Errorf("issue image: got %q", got)
	}

	clad, _ := ByIndex(33)
	small, _ := ByIndex(36)
	for _, tt := range []struct {
		s    *Series
		slot domain.CoinSlot
		want string
	}{
		{clad, domain.NewCoinSlot("1970", "D", 0, domain.NoImage), "quarter_eagle_reverse"},
		{clad, domain.NewCoinSlot("Washington", "S Proof", 0, domain.NoImage), "state_quarter_washington"},
		{small, domain.NewCoinSlot("2010 Abraham Lincoln", "D", 0, domain.NoImage), "presidential_dollar_abraham_lincoln"},
		{small, domain.NewCoinSlot("2012", "P", 0, domain.NoImage), "native_dollar_trade_routes"},
	} {
		if got := tt.s.CoinSlotImage(tt.slot, true); got != tt.want {
			t.Errorf("%s %q: got %q, want %q", tt.s.Name, tt.slot.DisplayName(), got, tt.want)
		}
	}
}

func TestCoinSlotImageOutOfRangePanics(t *testing.T) {
	lincoln, _ := ByIndex(0)
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range image id")
		}
	}()
	lincoln.CoinSlotImage(domain.NewCoinSlot("1990", "", 0, len(lincoln.Images)), false)
}

func TestImgID(t *testing.T) {
	parks, _ := ByIndex(5)
	if id := parks.ImgID("Yosemite"); id != 2 {
		t.Errorf("ImgID(Yosemite) = %d", id)
	}
	if id := parks.ImgID("Central Park"); id != domain.NoImage {
		t.Errorf("ImgID(Central Park) = %d", id)
	}
}
