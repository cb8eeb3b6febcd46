package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/services"
)

func newTestService(t *testing.T, dsn string) *services.CollectionService {
	t.Helper()
	repo, err := sqlite.NewSQLiteRepository(dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { repo.Close() })
	return services.NewCollectionService(repo)
}

func TestCommands(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, "file:cli?mode=memory&cache=shared")

	tests := []struct {
		cmd  string
		args []string
		want string
	}{
		{"create", []string{"-name", "Mercury", "-series", "15"}, `Created "Mercury" (Mercury Dimes) with 27 slots`},
		{"create", []string{"-name", "Mercury PD", "-series", "mercury dimes", "-mints", "p,d"}, "with 52 slots"},
		{"create", []string{"-name", "Cents", "-series", "0", "-stop", "2024"}, `Created "Cents"`},
		{"list", nil, "Mercury PD"},
		{"series", nil, "Morgan Dollars"},
		{"extend", []string{"-year", "2025"}, "Extended 1 collections to 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(ctx, svc, tt.cmd, tt.args, &out); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q does not contain %q", out.String(), tt.want)
			}
		})
	}

	if err := run(ctx, svc, "create", []string{"-name", "X", "-series", "15", "-mints", "Q"}, &bytes.Buffer{}); err == nil {
		t.Error("unknown mint mark should fail")
	}
	if err := run(ctx, svc, "bogus", nil, &bytes.Buffer{}); err == nil {
		t.Error("unknown command should fail")
	}
}

func TestExportImportFile(t *testing.T) {
	ctx := context.Background()
	src := newTestService(t, "file:cli-src?mode=memory&cache=shared")
	if err := run(ctx, src, "create", []string{"-name", "Mercury", "-series", "15"}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	file := filepath.Join(t.TempDir(), "coins.json")
	if err := run(ctx, src, "export", []string{"-out", file}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(file); err != nil || info.Size() == 0 {
		t.Fatalf("export file: %v", err)
	}

	dst := newTestService(t, "file:cli-dst?mode=memory&cache=shared")
	var out bytes.Buffer
	if err := run(ctx, dst, "import", []string{"-file", file}, &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Imported 1 collections") {
		t.Errorf("import output = %q", out.String())
	}
}
