package domain

import "testing"

func TestMetadataCopy(t *testing.T) {
	p := SlotParameters{StartYear: 1916, StopYear: 1945, ShowMintMarks: true}
	p.Set(MintD, true)
	m := NewCollectionMetadata("Mercury", 15, p, 77)
	m.DisplayOrder = 3
	m.DisplayType = DisplayAdvanced

	c := m.Copy("Mercury (copy)")
	if c.Name != "Mercury (copy)" || c.DisplayOrder != UnsetDisplayOrder {
		t.Errorf("copy = %+v", c)
	}
	if c.CoinType != 15 || c.MintMarkFlags != m.MintMarkFlags || c.DisplayType != DisplayAdvanced || c.Total != 77 {
		t.Errorf("copy lost fields: %+v", c)
	}
	if m.Name != "Mercury" || m.DisplayOrder != 3 {
		t.Errorf("source modified: %+v", m)
	}

	got := c.Parameters([]OptionKey{MintD, MintS})
	if !got.ShowMintMarks || !got.Enabled(MintD) || got.Enabled(MintS) || got.StartYear != 1916 {
		t.Errorf("Parameters = %+v", got)
	}
}

func TestSlotHelpers(t *testing.T) {
	tests := []struct {
		slot CoinSlot
		want string
	}{
		{NewCoinSlot("1921", "", 0, NoImage), "1921"},
		{NewCoinSlot("1921", "D", 0, NoImage), "1921 D"},
		{NewCoinSlot("1909", " VDB", 0, NoImage), "1909 VDB"},
	}
	for _, tt := range tests {
		if got := tt.slot.DisplayName(); got != tt.want {
			t.Errorf("DisplayName = %q, want %q", got, tt.want)
		}
	}

	slots := []CoinSlot{NewCoinSlot("a", "", 4, NoImage), NewCoinSlot("b", "", 9, NoImage)}
	if err := CheckOrdinals(slots); err == nil {
		t.Error("expected ordinal error")
	}
	Renumber(slots)
	if err := CheckOrdinals(slots); err != nil {
		t.Error(err)
	}

	owned, notes := true, "cleaned"
	s := slots[0]
	SlotPatch{Owned: &owned, Notes: &notes}.Apply(&s)
	if !s.Owned || s.Notes != "cleaned" || s.Grade != 0 {
		t.Errorf("patched slot = %+v", s)
	}

	var dst CoinSlot
	dst.CopyAnnotations(s)
	if !dst.Owned || dst.Notes != "cleaned" {
		t.Errorf("annotations not copied: %+v", dst)
	}
}
