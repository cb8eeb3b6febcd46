package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// DatabaseVersion is written into exported documents and checked on import.
const DatabaseVersion = 1

// Document is the JSON interchange form of every collection.
type Document struct {
	DatabaseVersion int          `json:"databaseVersion"`
	Collections     []Collection `json:"collections"`
}

// ImportIssue records a collection that was skipped or repaired while decoding.
type ImportIssue struct {
	Position int    `json:"position"`
	Name     string `json:"name,omitempty"`
	Reason   string `json:"reason"`
	Skipped  bool   `json:"skipped"`
}

type rawDocument struct {
	DatabaseVersion int               `json:"databaseVersion"`
	Collections     []json.RawMessage `json:"collections"`
}

type rawCollection struct {
	CollectionMetadata
	CoinList json.RawMessage `json:"coinList"`
}

// EncodeDocument writes the document as indented JSON.
func EncodeDocument(w io.Writer, doc *Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// DecodeDocument reads an interchange document. Each collection is decoded on its own:
// a malformed entry is reported as an issue and left out, the others are kept.
// Slot ordinals are normalised to be contiguous in their original order.
func DecodeDocument(r io.Reader) (*Document, []ImportIssue, error) {
	var raw rawDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("decode document: %w", err)
	}
	if raw.DatabaseVersion > DatabaseVersion {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, raw.DatabaseVersion)
	}

	doc := &Document{DatabaseVersion: raw.DatabaseVersion}
	var issues []ImportIssue
	for i, msg := range raw.Collections {
		c, err := decodeCollection(msg)
		if err != nil {
			issue := ImportIssue{Position: i, Reason: err.Error(), Skipped: true}
			if c != nil {
				issue.Name = c.Name
			}
			issues = append(issues, issue)
			continue
		}
		doc.Collections = append(doc.Collections, *c)
	}
	return doc, issues, nil
}

func decodeCollection(msg json.RawMessage) (*Collection, error) {
	var rc rawCollection
	if err := json.Unmarshal(msg, &rc); err != nil {
		return nil, fmt.Errorf("malformed collection: %w", err)
	}
	c := &Collection{CollectionMetadata: rc.CollectionMetadata}
	if c.Name == "" {
		return c, errors.New("collection has no name")
	}
	if len(rc.CoinList) == 0 || string(rc.CoinList) == "null" {
		return c, errors.New("collection has no coin list")
	}
	if err := json.Unmarshal(rc.CoinList, &c.CoinList); err != nil {
		return c, fmt.Errorf("malformed coin list: %w", err)
	}

	sort.SliceStable(c.CoinList, func(i, j int) bool {
		return c.CoinList[i].Index < c.CoinList[j].Index
	})
	Renumber(c.CoinList)
	c.Total = len(c.CoinList)
	c.Collected = CountOwned(c.CoinList)
	return c, nil
}
