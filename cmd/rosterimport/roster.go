/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mikeb26/racquetclub-matchbot/internal"
)

// Entry is one row scraped from a published roster page.
type Entry struct {
	Name   string
	Rating float64
}

// fetchRoster retrieves the roster page and extracts player entries from
// its first table carrying Name and Rating columns.
func fetchRoster(client *http.Client, url string) ([]Entry, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating roster request: %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing roster HTTP GET: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected roster status %d: %s",
			resp.StatusCode, string(body))
	}

	return parseRoster(resp.Body)
}

// parseRoster parses roster HTML. Column order is discovered from the
// table header; a table without both a Name and a Rating column is
// skipped.
func parseRoster(body io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var entries []Entry

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		nameIdx, rateIdx := -1, -1
		table.Find("thead th").Each(func(i int, th *goquery.Selection) {
			switch strings.ToLower(strings.TrimSpace(th.Text())) {
			case "name", "player":
				nameIdx = i
			case "rating":
				rateIdx = i
			}
		})
		if nameIdx < 0 || rateIdx < 0 {
			return true // not a roster table, keep looking
		}

		table.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
			tds := row.Find("td")
			if tds.Length() <= nameIdx || tds.Length() <= rateIdx {
				return
			}
			name := internal.NormalizeName(
				strings.TrimSpace(tds.Eq(nameIdx).Text()))
			if name == "" {
				return
			}
			ratingStr := strings.TrimSpace(tds.Eq(rateIdx).Text())
			rating, err := strconv.ParseFloat(ratingStr, 64)
			if err != nil {
				// unrated entries get the default on merge
				rating = 0
			}
			entries = append(entries, Entry{Name: name, Rating: rating})
		})
		return false // found the roster table, stop
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no roster entries found in page")
	}
	return entries, nil
}
