// Package extract fetches the raw metadata tables from the ENCODE
// repository's JSON search API and flattens them into tables the
// resolution pipeline consumes.
package extract

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/carbocation/pfx"

	"github.com/ericfournier2/encodexplorer/resolve"
	"github.com/ericfournier2/encodexplorer/table"
)

// DefaultBaseURL is the production ENCODE portal.
const DefaultBaseURL = "https://www.encodeproject.org"

// typeNames maps each pipeline table to the repository search type it
// is fetched as.
var typeNames = map[string]string{
	resolve.TableFile:          "File",
	resolve.TableAward:         "Award",
	resolve.TableLab:           "Lab",
	resolve.TablePlatform:      "Platform",
	resolve.TableReplicate:     "Replicate",
	resolve.TableAntibodyLot:   "AntibodyLot",
	resolve.TableAntibodyChar:  "AntibodyCharacterization",
	resolve.TableTreatment:     "Treatment",
	resolve.TableLibrary:       "Library",
	resolve.TableBiosample:     "Biosample",
	resolve.TableBiosampleType: "BiosampleType",
	resolve.TableDataset:       "Dataset",
	resolve.TableExperiment:    "Experiment",
	resolve.TableTarget:        "Target",
	resolve.TableOrganism:      "Organism",
	resolve.TableUser:          "User",
}

// Client fetches metadata tables from an ENCODE-compatible endpoint.
// The zero value uses the production portal and http.DefaultClient.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *log.Logger
}

type searchResponse struct {
	Graph []map[string]interface{} `json:"@graph"`
}

// FetchTable fetches every object of the search type behind the named
// table and flattens it. An empty-result response (the API answers 404
// when a search matches nothing) yields an empty table, not an error.
func (c *Client) FetchTable(ctx context.Context, name string) (*table.Table, error) {
	searchType, ok := typeNames[name]
	if !ok {
		return nil, fmt.Errorf("extract: unknown table %q", name)
	}

	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{}
	q.Set("type", searchType)
	q.Set("format", "json")
	q.Set("limit", "all")
	q.Set("frame", "object")
	endpoint := base + "/search/?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, pfx.Err(err)
	}
	req.Header.Set("Accept", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return table.New(), nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extract: %s: unexpected status %s", endpoint, resp.Status)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, pfx.Err(err)
	}

	return flattenObjects(decoded.Graph), nil
}

// FetchAll fetches every known table sequentially. Tables that fail to
// fetch are logged and skipped rather than failing the whole batch;
// downstream lookups against them degrade to missing values. An error
// is returned only when the file table itself cannot be fetched.
func (c *Client) FetchAll(ctx context.Context) (resolve.Tables, error) {
	out := make(resolve.Tables, len(resolve.TableNames))
	for _, name := range resolve.TableNames {
		tbl, err := c.FetchTable(ctx, name)
		if err != nil {
			if name == resolve.TableFile {
				return nil, err
			}
			if c.Logger != nil {
				c.Logger.Printf("extract: skipping table %s: %v", name, err)
			}
			continue
		}
		out[name] = tbl
	}
	return out, nil
}
