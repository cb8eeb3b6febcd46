package domain

// Display types for a collection page.
const (
	DisplaySimple   = 0
	DisplayAdvanced = 1
)

// UnsetDisplayOrder is the placeholder order of a collection not yet placed in the list.
const UnsetDisplayOrder = -1

// CollectionMetadata describes a saved collection.
type CollectionMetadata struct {
	Name          string `json:"name"`
	CoinType      int    `json:"coinType"`
	StartYear     int    `json:"startYear"`
	StopYear      int    `json:"stopYear"`
	CheckboxFlags int64  `json:"checkboxFlags"`
	MintMarkFlags int64  `json:"mintMarkFlags"`
	DisplayOrder  int    `json:"displayOrder"`
	DisplayType   int    `json:"displayType"`
	Total         int    `json:"total"`
	Collected     int    `json:"collected"`
}

// NewCollectionMetadata packs the parameters used to populate a collection.
func NewCollectionMetadata(name string, coinType int, params SlotParameters, total int) *CollectionMetadata {
	return &CollectionMetadata{
		Name:          name,
		CoinType:      coinType,
		StartYear:     params.StartYear,
		StopYear:      params.StopYear,
		CheckboxFlags: params.CheckboxFlags(),
		MintMarkFlags: params.MintMarkFlags(),
		DisplayOrder:  UnsetDisplayOrder,
		DisplayType:   DisplaySimple,
		Total:         total,
	}
}

// Copy returns an identical record under a new name with an unset display order.
func (m CollectionMetadata) Copy(newName string) *CollectionMetadata {
	c := m
	c.Name = newName
	c.DisplayOrder = UnsetDisplayOrder
	return &c
}

// Parameters rebuilds the slot parameters for the keys a series declares.
func (m CollectionMetadata) Parameters(declared []OptionKey) SlotParameters {
	return ParametersFromFlags(declared, m.StartYear, m.StopYear, m.MintMarkFlags, m.CheckboxFlags)
}

// Collection is a collection with its slots.
type Collection struct {
	CollectionMetadata
	CoinList []CoinSlot `json:"coinList"`
}

// CountOwned returns how many slots are marked owned.
func CountOwned(slots []CoinSlot) int {
	n := 0
	for _, s := range slots {
		if s.Owned {
			n++
		}
	}
	return n
}
