package domain

import (
	"math/bits"
	"testing"
)

func TestBitTablesAreDistinct(t *testing.T) {
	for name, table := range map[string]map[OptionKey]int64{"mint": mintMarkBits, "checkbox": checkboxBits} {
		var seen int64
		for key, b := range table {
			if bits.OnesCount64(uint64(b)) != 1 {
				t.Errorf("%s key %s owns %b, want a single bit", name, key, b)
			}
			if seen&b != 0 {
				t.Errorf("%s key %s reuses bit %b", name, key, b)
			}
			seen |= b
		}
	}
}

func TestFlagsRoundTrip(t *testing.T) {
	declared := []OptionKey{MintP, MintD, MintS, CheckProofs, CheckTerritories}
	tests := []struct {
		name   string
		show   bool
		toggle map[OptionKey]bool
	}{
		{"all off", false, map[OptionKey]bool{}},
		{"mints only", true, map[OptionKey]bool{MintP: true, MintS: true}},
		{"checkboxes only", false, map[OptionKey]bool{CheckProofs: true}},
		{"everything", true, map[OptionKey]bool{MintP: true, MintD: true, MintS: true, CheckProofs: true, CheckTerritories: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SlotParameters{StartYear: 1950, StopYear: 1960, ShowMintMarks: tt.show}
			for _, k := range declared {
				p.Set(k, tt.toggle[k])
			}
			got := ParametersFromFlags(declared, 1950, 1960, p.MintMarkFlags(), p.CheckboxFlags())
			if got.ShowMintMarks != p.ShowMintMarks {
				t.Errorf("ShowMintMarks = %v, want %v", got.ShowMintMarks, p.ShowMintMarks)
			}
			for _, k := range declared {
				if got.Enabled(k) != p.Enabled(k) {
					t.Errorf("%s = %v, want %v", k, got.Enabled(k), p.Enabled(k))
				}
			}
		})
	}
}

func TestFlagsIgnoreUndeclaredBits(t *testing.T) {
	p := ParametersFromFlags([]OptionKey{MintP}, 0, 0, AllMintMarkMask, AllCheckboxMask)
	if len(p.Options) != 1 || !p.Enabled(MintP) {
		t.Errorf("got %+v", p.Options)
	}
	if !p.ShowMintMarks {
		t.Error("ShowMintMarks should follow bit 0")
	}
}

func TestMintAndCheckboxFlagsSeparate(t *testing.T) {
	p := SlotParameters{ShowMintMarks: true}
	p.Set(MintD, true)
	p.Set(CheckBurnished, true)
	if got, want := p.MintMarkFlags(), mintMarkBits[ShowMintMarks]|mintMarkBits[MintD]; got != want {
		t.Errorf("MintMarkFlags = %b, want %b", got, want)
	}
	if got, want := p.CheckboxFlags(), checkboxBits[CheckBurnished]; got != want {
		t.Errorf("CheckboxFlags = %b, want %b", got, want)
	}
}

func TestCloneIsDeep(t *testing.T) {
	p := SlotParameters{}
	p.Set(MintP, true)
	c := p.Clone()
	c.Set(MintP, false)
	if !p.Enabled(MintP) {
		t.Error("clone shares its options map")
	}
}
