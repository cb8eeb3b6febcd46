package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"go.uber.org/zap"

	"github.com/wadjakorntonsri/coin-collection/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/coin-collection/pkg/config"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/catalog"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/domain"
	"github.com/wadjakorntonsri/coin-collection/pkg/core/services"
	logpkg "github.com/wadjakorntonsri/coin-collection/pkg/logger"
)

const usage = "expected one of: export, import, list, series, create, extend"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger, err := logpkg.NewLogger("local", cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to db", zap.Error(err))
	}
	defer repo.Close()

	ctx := logpkg.ContextWithLogger(context.Background(), logger)
	svc := services.NewCollectionService(repo)
	if err := run(ctx, svc, os.Args[1], os.Args[2:], os.Stdout); err != nil {
		logger.Error("Command failed", zap.String("command", os.Args[1]), zap.Error(err))
		repo.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *services.CollectionService, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "export":
		fs := flag.NewFlagSet("export", flag.ExitOnError)
		file := fs.String("out", "", "write the document to this file instead of stdout")
		fs.Parse(args)
		return doExport(ctx, svc, *file, out)
	case "import":
		fs := flag.NewFlagSet("import", flag.ExitOnError)
		file := fs.String("file", "", "JSON document to import (replaces every collection)")
		fs.Parse(args)
		if *file == "" {
			fs.PrintDefaults()
			return fmt.Errorf("import: -file is required")
		}
		return doImport(ctx, svc, *file, out)
	case "list":
		return doList(ctx, svc, out)
	case "series":
		return doSeries(out)
	case "create":
		fs := flag.NewFlagSet("create", flag.ExitOnError)
		name := fs.String("name", "", "collection name")
		series := fs.String("series", "", "series index or name")
		start := fs.Int("start", 0, "first year (defaults to the series start)")
		stop := fs.Int("stop", 0, "last year (defaults to the series end)")
		mints := fs.String("mints", "", "comma separated mint marks to show, e.g. P,D,S")
		options := fs.String("options", "", "comma separated checkbox keys to switch on")
		fs.Parse(args)
		return doCreate(ctx, svc, *name, *series, *start, *stop, *mints, *options, out)
	case "extend":
		fs := flag.NewFlagSet("extend", flag.ExitOnError)
		year := fs.Int("year", time.Now().Year(), "year to add to running collections")
		fs.Parse(args)
		return doExtend(ctx, svc, *year, out)
	default:
		return fmt.Errorf("unknown command %q: %s", cmd, usage)
	}
}

func doExport(ctx context.Context, svc *services.CollectionService, file string, out io.Writer) error {
	if file == "" {
		return svc.Export(ctx, out)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := svc.Export(ctx, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func doImport(ctx context.Context, svc *services.CollectionService, file string, out io.Writer) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	res, err := svc.Import(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Imported %d collections\n", len(res.Imported))
	for _, is := range res.Issues {
		action := "repaired"
		if is.Skipped {
			action = "skipped"
		}
		fmt.Fprintf(out, "  %s %q: %s\n", action, is.Name, is.Reason)
	}
	return nil
}

func doList(ctx context.Context, svc *services.CollectionService, out io.Writer) error {
	metas, err := svc.ListCollections(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ORDER\tNAME\tSERIES\tYEARS\tCOLLECTED")
	for _, m := range metas {
		seriesName := "?"
		if s, err := catalog.ByIndex(m.CoinType); err == nil {
			seriesName = s.Name
		}
		years := "-"
		if m.StopYear != 0 {
			years = fmt.Sprintf("%d-%d", m.StartYear, m.StopYear)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d/%d\n", m.DisplayOrder, m.Name, seriesName, years, m.Collected, m.Total)
	}
	return tw.Flush()
}

func doSeries(out io.Writer) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tGROUP\tYEARS\tOPTIONS")
	for _, s := range catalog.All() {
		years := "-"
		if s.YearBased() {
			years = fmt.Sprintf("%d-%d", s.StartYear, s.StopYear)
		}
		var keys []string
		for _, k := range s.DeclaredKeys() {
			keys = append(keys, string(k))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", s.Index, s.Name, s.Group, years, strings.Join(keys, ","))
	}
	return tw.Flush()
}

// mintKeys maps mint marks typed on the command line to toggles.
var mintKeys = map[string]domain.OptionKey{
	"P":  domain.MintP,
	"D":  domain.MintD,
	"S":  domain.MintS,
	"O":  domain.MintO,
	"CC": domain.MintCC,
	"W":  domain.MintW,
}

func doCreate(ctx context.Context, svc *services.CollectionService, name, seriesArg string, start, stop int, mints, options string, out io.Writer) error {
	series, err := lookupSeries(seriesArg)
	if err != nil {
		return err
	}

	params := domain.SlotParameters{StartYear: start, StopYear: stop}
	if mints != "" || options != "" {
		params = series.DefaultParameters()
		if start != 0 {
			params.StartYear = start
		}
		if stop != 0 {
			params.StopYear = stop
		}
	}
	if mints != "" {
		params.ShowMintMarks = true
		for _, t := range series.Mints {
			params.Set(t.Key, false)
		}
		for _, m := range splitList(mints) {
			key, ok := mintKeys[strings.ToUpper(m)]
			if !ok {
				return fmt.Errorf("unknown mint mark %q", m)
			}
			params.Set(key, true)
		}
	}
	for _, o := range splitList(options) {
		params.Set(domain.OptionKey(o), true)
	}

	meta, err := svc.CreateCollection(ctx, domain.CollectionRequest{Name: name, CoinType: series.Index, Parameters: params})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Created %q (%s) with %d slots\n", meta.Name, series.Name, meta.Total)
	return nil
}

func lookupSeries(arg string) (*catalog.Series, error) {
	if index, err := strconv.Atoi(arg); err == nil {
		return catalog.ByIndex(index)
	}
	return catalog.ByName(arg)
}

func doExtend(ctx context.Context, svc *services.CollectionService, year int, out io.Writer) error {
	extended, err := svc.ExtendToYear(ctx, year)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Extended %d collections to %d\n", len(extended), year)
	for _, name := range extended {
		fmt.Fprintf(out, "  %s\n", name)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
