package domain

import "fmt"

// NoImage marks a slot without an explicit image table entry.
const NoImage = -1

// CoinSlot is one physical coin tracked by a collection.
type CoinSlot struct {
	Identifier string `json:"name"`
	Mint       string `json:"mint"`
	Index      int    `json:"index"`
	ImageID    int    `json:"imageId"`
	Owned      bool   `json:"owned"`
	Grade      int    `json:"grade"`
	Quantity   int    `json:"quantity"`
	Notes      string `json:"note"`
}

// NewCoinSlot creates an unowned slot.
func NewCoinSlot(identifier, mint string, index, imageID int) CoinSlot {
	return CoinSlot{Identifier: identifier, Mint: mint, Index: index, ImageID: imageID}
}

// Key identifies a slot across regenerations of the same collection.
func (s CoinSlot) Key() string {
	return s.Identifier + "\x00" + s.Mint
}

// DisplayName joins identifier and mint mark the way the slot is labelled.
func (s CoinSlot) DisplayName() string {
	if s.Mint == "" {
		return s.Identifier
	}
	if s.Mint[0] == ' ' || s.Mint[0] == '\n' {
		return s.Identifier + s.Mint
	}
	return s.Identifier + " " + s.Mint
}

// CopyAnnotations copies the user-editable fields from another slot.
func (s *CoinSlot) CopyAnnotations(from CoinSlot) {
	s.Owned = from.Owned
	s.Grade = from.Grade
	s.Quantity = from.Quantity
	s.Notes = from.Notes
}

// Renumber assigns contiguous ordinals starting at 0.
func Renumber(slots []CoinSlot) {
	for i := range slots {
		slots[i].Index = i
	}
}

// CheckOrdinals verifies that ordinals are unique and contiguous from 0.
func CheckOrdinals(slots []CoinSlot) error {
	for i, s := range slots {
		if s.Index != i {
			return fmt.Errorf("slot %q at position %d has ordinal %d", s.DisplayName(), i, s.Index)
		}
	}
	return nil
}

// SlotPatch holds optional slot field updates.
type SlotPatch struct {
	Owned    *bool   `json:"owned,omitempty"`
	Grade    *int    `json:"grade,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
	Notes    *string `json:"note,omitempty"`
	ImageID  *int    `json:"imageId,omitempty"`
}

// Apply writes the set fields into the slot.
func (p SlotPatch) Apply(s *CoinSlot) {
	if p.Owned != nil {
		s.Owned = *p.Owned
	}
	if p.Grade != nil {
		s.Grade = *p.Grade
	}
	if p.Quantity != nil {
		s.Quantity = *p.Quantity
	}
	if p.Notes != nil {
		s.Notes = *p.Notes
	}
	if p.ImageID != nil {
		s.ImageID = *p.ImageID
	}
}
