// Package history reads visited pages out of a Chromium-format History
// database.
package history

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runnerr0/diascope/internal/record"
)

// chromiumEpochOffset is the distance in microseconds between the Chromium
// epoch (1601-01-01) and the Unix epoch.
const chromiumEpochOffset = 11644473600000000

// Load reads up to limit visible history rows, most recent first. The
// database is opened read-only with immutable=1 so a running browser
// holding the write lock cannot block or corrupt the read.
func Load(path string, limit int) ([]record.Record, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?immutable=1&mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("open history database %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT url, title, visit_count, last_visit_time
		FROM urls
		WHERE hidden = 0
		ORDER BY last_visit_time DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history database %s: %w", path, err)
	}
	defer rows.Close()

	entries := make([]record.Record, 0, limit)
	for rows.Next() {
		var (
			url          string
			title        sql.NullString
			visitCount   int64
			chromiumTime int64
		)
		if err := rows.Scan(&url, &title, &visitCount, &chromiumTime); err != nil {
			// A malformed row is skipped, not fatal.
			continue
		}
		if visitCount < 0 {
			visitCount = 0
		}
		entries = append(entries, record.NewHistory(
			url,
			title.String,
			uint64(visitCount),
			chromiumToUnixMS(chromiumTime),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read history rows: %w", err)
	}

	return entries, nil
}

// chromiumToUnixMS converts a Chromium timestamp (microseconds since 1601)
// to Unix epoch milliseconds.
func chromiumToUnixMS(t int64) int64 {
	return (t - chromiumEpochOffset) / 1000
}
