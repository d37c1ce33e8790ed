// encode2csv builds the denormalized ENCODE file table and exports it
// as CSV. Raw metadata tables come from a local SQLite cache
// (optionally refreshed from the ENCODE API first) or from a directory
// of per-table CSV files.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/carbocation/pfx"

	"github.com/ericfournier2/encodexplorer/cache"
	"github.com/ericfournier2/encodexplorer/extract"
	"github.com/ericfournier2/encodexplorer/resolve"
	"github.com/ericfournier2/encodexplorer/table"
)

func main() {
	var cachePath, csvDir, baseURL, outPrefix, mode string
	var fetch bool
	var preview int

	flag.StringVar(&cachePath, "cache", "", "Path to the SQLite cache of fetched metadata tables.")
	flag.BoolVar(&fetch, "fetch", false, "Refresh the cache from the ENCODE API before building.")
	flag.StringVar(&csvDir, "csvdir", "", "Directory with per-table CSV files (<table>.csv) to use instead of the cache.")
	flag.StringVar(&baseURL, "base", extract.DefaultBaseURL, "Base URL of the ENCODE-compatible endpoint.")
	flag.StringVar(&outPrefix, "out", "encode", "Output file prefix.")
	flag.StringVar(&mode, "mode", "lite", "Output mode: lite (curated columns), split (all four column groups), or full (single wide table).")
	flag.IntVar(&preview, "preview", 0, "Print the first N rows of the lite columns to the terminal.")
	flag.Parse()

	if cachePath == "" && csvDir == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(cachePath, csvDir, baseURL, outPrefix, mode, fetch, preview); err != nil {
		log.Fatalln(err)
	}
}

func run(cachePath, csvDir, baseURL, outPrefix, mode string, fetch bool, preview int) error {
	src, err := loadTables(cachePath, csvDir, baseURL, fetch)
	if err != nil {
		return err
	}

	resolved, err := resolve.Resolve(src, log.Default())
	if err != nil {
		return err
	}
	log.Printf("Resolved %d files across %d columns", resolved.NRows(), resolved.NCols())

	parts := resolve.Partition(resolved)

	switch mode {
	case "lite":
		if err := writeCSVFile(outPrefix+".csv", parts["lite"]); err != nil {
			return err
		}
	case "split":
		for _, g := range resolve.OutputGroups {
			if err := writeCSVFile(fmt.Sprintf("%s_%s.csv", outPrefix, g.Name), parts[g.Name]); err != nil {
				return err
			}
		}
		if err := writeCSVFile(fmt.Sprintf("%s_%s.csv", outPrefix, resolve.GroupOther), parts[resolve.GroupOther]); err != nil {
			return err
		}
	case "full":
		if err := writeCSVFile(outPrefix+".csv", resolved); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown -mode %q (want lite, split, or full)", mode)
	}

	if preview > 0 {
		fmt.Println(renderPreview(parts["lite"], preview))
	}

	return nil
}

// loadTables gathers the raw tables from whichever source the flags
// selected. CSV directories may omit tables; missing ones simply stay
// unresolved downstream.
func loadTables(cachePath, csvDir, baseURL string, fetch bool) (resolve.Tables, error) {
	if csvDir != "" {
		return loadCSVDir(csvDir)
	}

	db, err := cache.Open(cachePath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if fetch {
		client := &extract.Client{BaseURL: baseURL, Logger: log.Default()}
		src, err := client.FetchAll(context.Background())
		if err != nil {
			return nil, err
		}
		if err := db.StoreAll(src, time.Now()); err != nil {
			return nil, err
		}
		return src, nil
	}

	return db.LoadAll()
}

func loadCSVDir(dir string) (resolve.Tables, error) {
	src := make(resolve.Tables)
	for _, name := range resolve.TableNames {
		path := filepath.Join(dir, name+".csv")
		f, err := os.Open(path)
		if os.IsNotExist(err) {
			continue
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		tbl, err := table.ReadCSV(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %v", path, err)
		}
		src[name] = tbl
	}
	return src, nil
}

func writeCSVFile(path string, tbl *table.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	if err := table.WriteCSV(f, tbl); err != nil {
		return err
	}
	log.Printf("Wrote %d rows, %d columns to %s", tbl.NRows(), tbl.NCols(), path)
	return nil
}
