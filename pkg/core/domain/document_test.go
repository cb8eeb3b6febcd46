package domain

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestDocumentEncodeDecode(t *testing.T) {
	doc := &Document{
		DatabaseVersion: DatabaseVersion,
		Collections: []Collection{{
			CollectionMetadata: CollectionMetadata{Name: "Morgans", CoinType: 21, StartYear: 1878, StopYear: 1921},
			CoinList: []CoinSlot{
				{Identifier: "1878", Mint: "", Index: 0, ImageID: NoImage, Owned: true, Notes: "VF"},
				{Identifier: "1878", Mint: "CC", Index: 1, ImageID: NoImage},
			},
		}},
	}
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{`"databaseVersion"`, `"coinList"`, `"mintMarkFlags"`, `"imageId"`, `"note"`} {
		if !strings.Contains(buf.String(), field) {
			t.Errorf("encoded document lacks %s", field)
		}
	}

	got, issues, err := DecodeDocument(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(issues) != 0 {
		t.Errorf("unexpected issues: %+v", issues)
	}
	c := got.Collections[0]
	if c.Total != 2 || c.Collected != 1 || c.CoinList[0].Notes != "VF" {
		t.Errorf("decoded = %+v", c)
	}
}

func TestDecodeDocumentSkipsBadCollections(t *testing.T) {
	input := `{"databaseVersion": 1, "collections": [
		{"name": "Good", "coinType": 0, "coinList": [
			{"name": "1910", "mint": "", "index": 7},
			{"name": "1909", "mint": "", "index": 3, "owned": true}
		]},
		{"name": "", "coinType": 0, "coinList": []},
		{"name": "No slots", "coinType": 0},
		{"name": "Bad slots", "coinType": 0, "coinList": [{"name": 12}]},
		"not an object"
	]}`
	doc, issues, err := DecodeDocument(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Collections) != 1 {
		t.Fatalf("kept %d collections, want 1", len(doc.Collections))
	}
	good := doc.Collections[0]
	if good.CoinList[0].Identifier != "1909" || good.CoinList[0].Index != 0 || good.CoinList[1].Index != 1 {
		t.Errorf("slots not normalised: %+v", good.CoinList)
	}
	if good.Collected != 1 {
		t.Errorf("Collected = %d", good.Collected)
	}

	if len(issues) != 4 {
		t.Fatalf("got %d issues, want 4: %+v", len(issues), issues)
	}
	if issues[1].Name != "No slots" || issues[1].Position != 2 || !issues[1].Skipped {
		t.Errorf("issue = %+v", issues[1])
	}
}

func TestDecodeDocumentErrors(t *testing.T) {
	if _, _, err := DecodeDocument(strings.NewReader(`{"databaseVersion": 1, "collections": [`)); err == nil {
		t.Error("expected error for truncated document")
	}
	_, _, err := DecodeDocument(strings.NewReader(`{"databaseVersion": 99, "collections": []}`))
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
}
