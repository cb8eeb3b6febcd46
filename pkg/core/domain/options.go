package domain

import "maps"

// OptionKey names a boolean toggle a series can offer when a collection is created.
type OptionKey string

// Mint mark toggles. ShowMintMarks is the global switch; the others select mints.
const (
	ShowMintMarks OptionKey = "show_mint_marks"
	MintP         OptionKey = "include_p"
	MintD         OptionKey = "include_d"
	MintS         OptionKey = "include_s"
	MintO         OptionKey = "include_o"
	MintCC        OptionKey = "include_cc"
	MintW         OptionKey = "include_w"

	// Finish toggles share the mint table. Their slot text varies by series.
	MintSatin        OptionKey = "include_satin"
	MintProof        OptionKey = "include_s_proofs"
	MintSilverProof  OptionKey = "include_silver_proofs"
	MintReverseProof OptionKey = "include_reverse_proofs"
)

// Checkbox toggles.
const (
	CheckTerritories     OptionKey = "include_territories"
	CheckBurnished       OptionKey = "include_burnished"
	CheckProofs          OptionKey = "include_proofs"
	CheckSilver          OptionKey = "include_silver_coins"
	CheckNickel          OptionKey = "include_nickel_coins"
	CheckOlderDesigns    OptionKey = "include_old_designs"
	CheckBust            OptionKey = "include_bust"
	CheckSeated          OptionKey = "include_seated"
	CheckBarber          OptionKey = "include_barber"
	CheckMintSets        OptionKey = "include_mint_sets"
	CheckProofSets       OptionKey = "include_proof_sets"
	CheckSilverProofSets OptionKey = "include_silver_proof_sets"
	CheckVarieties       OptionKey = "include_varieties"
	CheckType2           OptionKey = "include_type_2"
	CheckDollarCoins     OptionKey = "include_dollar_coins"

	// Design toggles of the multi-design series.
	CheckFlyingEagle  OptionKey = "include_flying_eagle"
	CheckIndianHead   OptionKey = "include_indian_head"
	CheckWheat        OptionKey = "include_wheat"
	CheckMemorial     OptionKey = "include_memorial"
	CheckShield       OptionKey = "include_shield"
	CheckCoronet      OptionKey = "include_coronet"
	CheckLiberty      OptionKey = "include_liberty"
	CheckBuffalo      OptionKey = "include_buffalo"
	CheckJefferson    OptionKey = "include_jefferson"
	CheckMercury      OptionKey = "include_mercury"
	CheckRoosevelt    OptionKey = "include_roosevelt"
	CheckDraped       OptionKey = "include_draped_bust"
	CheckCapped       OptionKey = "include_capped_bust"
	CheckStanding     OptionKey = "include_standing_liberty"
	CheckWalking      OptionKey = "include_walking_liberty"
	CheckFranklin     OptionKey = "include_franklin"
	CheckKennedy      OptionKey = "include_kennedy"
	CheckClad         OptionKey = "include_clad"
	CheckWashington   OptionKey = "include_washington"
	CheckStates       OptionKey = "include_states"
	CheckParks        OptionKey = "include_parks"
	CheckWomen        OptionKey = "include_women"
	CheckMorgan       OptionKey = "include_morgan"
	CheckPeace        OptionKey = "include_peace"
	CheckEisenhower   OptionKey = "include_eisenhower"
	CheckSilverEagles OptionKey = "include_silver_eagles"
	CheckSBA          OptionKey = "include_sba"
	CheckSacagawea    OptionKey = "include_sacagawea"
	CheckPresidential OptionKey = "include_presidential"
	CheckInnovation   OptionKey = "include_innovation"
	CheckTrade        OptionKey = "include_trade"
)

// Bit positions are persisted in collection_info and in exported documents.
// Append new keys with the next free bit; never renumber.
var mintMarkBits = map[OptionKey]int64{
	ShowMintMarks: 1 << 0,
	MintP:         1 << 1,
	MintD:         1 << 2,
	MintS:         1 << 3,
	MintO:         1 << 4,
	MintCC:        1 << 5,
	MintW:         1 << 6,

	MintSatin:        1 << 7,
	MintProof:        1 << 8,
	MintSilverProof:  1 << 9,
	MintReverseProof: 1 << 10,
}

var checkboxBits = map[OptionKey]int64{
	CheckTerritories:     1 << 0,
	CheckBurnished:       1 << 1,
	CheckProofs:          1 << 2,
	CheckSilver:          1 << 3,
	CheckNickel:          1 << 4,
	CheckOlderDesigns:    1 << 5,
	CheckBust:            1 << 6,
	CheckSeated:          1 << 7,
	CheckBarber:          1 << 8,
	// 1 << 9 and 1 << 10 are retired.
	CheckMintSets:        1 << 11,
	CheckProofSets:       1 << 12,
	CheckSilverProofSets: 1 << 13,
	CheckVarieties:       1 << 14,
	CheckType2:           1 << 15,
	CheckDollarCoins:     1 << 16,

	CheckFlyingEagle:  1 << 17,
	CheckIndianHead:   1 << 18,
	CheckWheat:        1 << 19,
	CheckMemorial:     1 << 20,
	CheckShield:       1 << 21,
	CheckCoronet:      1 << 22,
	CheckLiberty:      1 << 23,
	CheckBuffalo:      1 << 24,
	CheckJefferson:    1 << 25,
	CheckMercury:      1 << 26,
	CheckRoosevelt:    1 << 27,
	CheckDraped:       1 << 28,
	CheckCapped:       1 << 29,
	CheckStanding:     1 << 30,
	CheckWalking:      1 << 31,
	CheckFranklin:     1 << 32,
	CheckKennedy:      1 << 33,
	CheckClad:         1 << 34,
	CheckWashington:   1 << 35,
	CheckStates:       1 << 36,
	CheckParks:        1 << 37,
	CheckWomen:        1 << 38,
	CheckMorgan:       1 << 39,
	CheckPeace:        1 << 40,
	CheckEisenhower:   1 << 41,
	CheckSilverEagles: 1 << 42,
	CheckSBA:          1 << 43,
	CheckSacagawea:    1 << 44,
	CheckPresidential: 1 << 45,
	CheckInnovation:   1 << 46,
	CheckTrade:        1 << 47,
}

// AllMintMarkMask and AllCheckboxMask cover every assigned bit.
var (
	AllMintMarkMask = orAll(mintMarkBits)
	AllCheckboxMask = orAll(checkboxBits)
)

func orAll(bits map[OptionKey]int64) int64 {
	var mask int64
	for _, b := range bits {
		mask |= b
	}
	return mask
}

// MintMarkBit returns the bit owned by a mint mark key.
func MintMarkBit(key OptionKey) (int64, bool) {
	b, ok := mintMarkBits[key]
	return b, ok
}

// CheckboxBit returns the bit owned by a checkbox key.
func CheckboxBit(key OptionKey) (int64, bool) {
	b, ok := checkboxBits[key]
	return b, ok
}

// SlotParameters drives slot generation for a series.
type SlotParameters struct {
	StartYear     int                `json:"startYear"`
	StopYear      int                `json:"stopYear"`
	ShowMintMarks bool               `json:"showMintMarks"`
	Options       map[OptionKey]bool `json:"options,omitempty"`
}

// Enabled reports whether a toggle is switched on. Missing keys are off.
func (p SlotParameters) Enabled(key OptionKey) bool {
	return p.Options[key]
}

// Set switches a toggle.
func (p *SlotParameters) Set(key OptionKey, on bool) {
	if p.Options == nil {
		p.Options = make(map[OptionKey]bool)
	}
	p.Options[key] = on
}

// Clone returns a deep copy.
func (p SlotParameters) Clone() SlotParameters {
	c := p
	c.Options = maps.Clone(p.Options)
	return c
}

// MintMarkFlags packs the enabled mint mark toggles into a bitmask.
func (p SlotParameters) MintMarkFlags() int64 {
	var flags int64
	if p.ShowMintMarks {
		flags |= mintMarkBits[ShowMintMarks]
	}
	for key, on := range p.Options {
		if b, ok := mintMarkBits[key]; ok && on {
			flags |= b
		}
	}
	return flags
}

// CheckboxFlags packs the enabled checkbox toggles into a bitmask.
func (p SlotParameters) CheckboxFlags() int64 {
	var flags int64
	for key, on := range p.Options {
		if b, ok := checkboxBits[key]; ok && on {
			flags |= b
		}
	}
	return flags
}

// ParametersFromFlags rebuilds the parameters a collection was generated with.
// Only the keys in declared are restored; bits owned by other keys are ignored.
func ParametersFromFlags(declared []OptionKey, startYear, stopYear int, mintFlags, checkboxFlags int64) SlotParameters {
	p := SlotParameters{
		StartYear:     startYear,
		StopYear:      stopYear,
		ShowMintMarks: mintFlags&mintMarkBits[ShowMintMarks] != 0,
		Options:       make(map[OptionKey]bool, len(declared)),
	}
	for _, key := range declared {
		if b, ok := mintMarkBits[key]; ok {
			p.Options[key] = mintFlags&b != 0
			continue
		}
		if b, ok := checkboxBits[key]; ok {
			p.Options[key] = checkboxFlags&b != 0
		}
	}
	return p
}
