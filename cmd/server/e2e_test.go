package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/handler"
	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/coin-collection/pkg/config"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/services"
)

func TestIntegration(t *testing.T) {
	// 1. Setup DB
	repo, err := sqlite.NewSQLiteRepository("file:e2e?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}
	defer repo.Close()

	// 2. Setup Services
	service := services.NewCollectionService(repo)
	jobs := services.NewDispatcher(4)
	if err := jobs.Start(context.Background()); err != nil {
		t.Fatal(err)
	}
	defer jobs.Stop()

	// 3. Setup Router
	cfg := &config.Config{JWTSecret: "e2e-secret", FrontendURL: "http://localhost:5173/"}
	server := httptest.NewServer(handler.NewRouter(cfg, zap.NewNop(), service, jobs))
	defer server.Close()

	client := server.Client()
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Subject:   "collector@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		t.Fatal(err)
	}

	call := func(method, path string, payload any) *http.Response {
		t.Helper()
		var body io.Reader
		if payload != nil {
			data, _ := json.Marshal(payload)
			body = bytes.NewReader(data)
		}
		req, _ := http.NewRequest(method, server.URL+path, body)
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: signed})
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		return resp
	}

	// TEST 1: Create a State Quarters collection with territories
	resp := call("POST", "/api/v1/collections", domain.CollectionRequest{
		Name:     "States",
		CoinType: 4,
		Parameters: domain.SlotParameters{
			Options: map[domain.OptionKey]bool{domain.CheckTerritories: true},
		},
	})
	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("Expected 201, got %d: %s", resp.StatusCode, body)
	}
	var created domain.CollectionMetadata
	json.NewDecoder(resp.Body).Decode(&created)
	resp.Body.Close()
	if created.Total != 56 {
		t.Errorf("Expected 56 slots, got %d", created.Total)
	}

	// TEST 2: Mark the first quarter owned
	resp = call("PATCH", "/api/v1/collections/States/slots/0", map[string]any{"owned": true, "note": "from change"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Patch expected 200, got %d", resp.StatusCode)
	}

	// TEST 3: Get the collection
	resp = call("GET", "/api/v1/collections/States", nil)
	var got domain.Collection
	json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()
	if got.CoinList[0].Identifier != "Delaware" || !got.CoinList[0].Owned {
		t.Errorf("Unexpected first slot: %+v", got.CoinList[0])
	}

	// TEST 4: Export and import into a fresh database
	resp = call("GET", "/api/v1/export", nil)
	doc, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	other, err := sqlite.NewSQLiteRepository("file:e2e-import?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer other.Close()
	res, err := services.NewCollectionService(other).Import(context.Background(), bytes.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Imported) != 1 {
		t.Errorf("Expected 1 imported collection, got %v", res.Imported)
	}
	metas, err := other.GetAllTables(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(metas) != 1 || metas[0].Collected != 1 || metas[0].Total != 56 {
		t.Errorf("Imported metadata mismatch: %+v", metas)
	}

	// TEST 5: Logout redirects to the frontend
	resp, err = client.Get(server.URL + "/auth/logout")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTemporaryRedirect || resp.Header.Get("Location") != "http://localhost:5173/login" {
		t.Errorf("Logout: %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}
}
