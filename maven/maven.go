// Package maven fetches the unicorn company snapshot published for the
// Maven Unicorn Challenge (March 2022 capture).
//
// The snapshot is a static CSV: it changes at most when the upstream
// repository re-publishes it, so every request goes through a disk cache
// where entries expire daily.
package maven

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/etnz/unicorn"
)

// DefaultURL is the pinned location of the cleaned dataset snapshot.
const DefaultURL = "https://raw.githubusercontent.com/katiehuangx/Maven-Unicorn-Challenge/main/unicorn_companies_clean.csv"

// Fetch downloads and decodes the snapshot at the given url (DefaultURL when
// empty). CSV and JSON exports are supported, selected by the url path.
func Fetch(url string) (*unicorn.Set, error) {
	return fetch(newDailyCachingClient(), url)
}

func fetch(client *http.Client, url string) (*unicorn.Set, error) {
	if url == "" {
		url = DefaultURL
	}

	body, err := wget(client, url)
	if err != nil {
		return nil, fmt.Errorf("could not download snapshot: %w", err)
	}
	defer body.Close()

	var set *unicorn.Set
	switch ext := strings.ToLower(path.Ext(strippedPath(url))); ext {
	case ".json":
		set, err = unicorn.DecodeJSON(body, unicorn.DefaultRecordsPath)
	default:
		// the published snapshot is CSV, default to it
		set, err = unicorn.DecodeCSV(body)
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot from %q: %w", url, err)
	}
	return set, nil
}

// strippedPath removes the query part so the extension test works on urls
// like ".../export.csv?raw=true".
func strippedPath(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}
