package domain

import "github.com/shopspring/decimal"

// CollectionRequest asks for a collection of a series populated with parameters.
type CollectionRequest struct {
	Name       string         `json:"name"`
	CoinType   int            `json:"coinType"`
	Parameters SlotParameters `json:"parameters"`
}

// Summary reports progress on one collection.
type Summary struct {
	Name       string          `json:"name"`
	Series     string          `json:"series"`
	Total      int             `json:"total"`
	Collected  int             `json:"collected"`
	Percent    float64         `json:"percent"`
	FaceValue  decimal.Decimal `json:"faceValue"`
	OwnedValue decimal.Decimal `json:"ownedValue"`
}

// ImportResult reports what an import kept and what it skipped.
type ImportResult struct {
	Imported []string      `json:"imported"`
	Issues   []ImportIssue `json:"issues,omitempty"`
}
