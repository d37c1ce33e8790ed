// encodedownloader downloads the data files listed in a resolved
// metadata CSV by their href column, with a bounded number of
// simultaneous downloads. Files already present in the output
// directory are skipped.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/ericfournier2/encodexplorer/extract"
	"github.com/ericfournier2/encodexplorer/table"
)

func main() {
	var csvPath, baseURL, outDir string
	var concurrency int

	flag.StringVar(&csvPath, "csv", "", "Path to a resolved metadata CSV with an href column.")
	flag.StringVar(&baseURL, "base", extract.DefaultBaseURL, "Base URL of the ENCODE-compatible endpoint.")
	flag.StringVar(&outDir, "out", ".", "Directory to download files into.")
	flag.IntVar(&concurrency, "concurrency", 5, "Number of simultaneous downloads.")
	flag.Parse()

	if csvPath == "" {
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatalln(err)
	}
	tbl, err := table.ReadCSV(f)
	f.Close()
	if err != nil {
		log.Fatalln(err)
	}

	hrefs := tbl.Col("href")
	if hrefs == nil {
		log.Fatalf("%s has no href column\n", csvPath)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		log.Fatalln(err)
	}

	log.Println("Using up to", concurrency, "simultaneous downloads")

	sem := make(chan bool, concurrency)

	for i, href := range hrefs {
		if !href.Valid {
			continue
		}

		dest := filepath.Join(outDir, path.Base(href.String))
		if _, err := os.Stat(dest); !os.IsNotExist(err) {
			log.Println(i, len(hrefs), "Already downloaded", dest)
			continue
		}

		log.Println(i, len(hrefs), "Downloading", dest)

		sem <- true
		go func(href, dest string) {
			defer func() { <-sem }()

			if err := download(baseURL+href, dest); err != nil {
				log.Println(fmt.Errorf("%s: %v", href, err))
			}
		}(href.String, dest)
	}

	for i := 0; i < cap(sem); i++ {
		sem <- true
	}
}

func download(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	out, err := os.Create(dest)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
