// Package output serializes records for downstream consumers. The default
// shape is newline-delimited JSON; search results carry a count envelope.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/runnerr0/diascope/internal/record"
)

// PrintRecords writes one JSON object per line.
func PrintRecords(w io.Writer, records []record.Record) error {
	enc := json.NewEncoder(w)
	for i := range records {
		if err := enc.Encode(&records[i]); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	return nil
}

// PrintRecordsArray writes all records as a single JSON array.
func PrintRecordsArray(w io.Writer, records []record.Record) error {
	if records == nil {
		records = []record.Record{}
	}
	if err := json.NewEncoder(w).Encode(records); err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	return nil
}

// SearchResult is the envelope for ranked search output.
type SearchResult struct {
	Results []*record.Record `json:"results"`
	Count   int              `json:"count"`
}

// PrintSearchResult writes ranked results as a {"results": ..., "count": N}
// object, preserving the caller's ordering.
func PrintSearchResult(w io.Writer, results []*record.Record) error {
	if results == nil {
		results = []*record.Record{}
	}
	out := SearchResult{Results: results, Count: len(results)}
	if err := json.NewEncoder(w).Encode(out); err != nil {
		return fmt.Errorf("encoding search result: %w", err)
	}
	return nil
}

// PrintResultsArray writes ranked results as a plain JSON array.
func PrintResultsArray(w io.Writer, results []*record.Record) error {
	if results == nil {
		results = []*record.Record{}
	}
	if err := json.NewEncoder(w).Encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	return nil
}

// PrintTable renders ranked results as a human-readable table.
func PrintTable(w io.Writer, results []*record.Record) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Title", "URL", "Source", "Visits"})

	for i, r := range results {
		visits := ""
		if r.VisitCount != nil {
			visits = fmt.Sprintf("%d", *r.VisitCount)
		}
		t.AppendRow(table.Row{i + 1, r.Title, r.URL, r.Source.String(), visits})
	}

	t.Render()
	return nil
}
