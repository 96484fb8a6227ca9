package history

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/diascope/internal/record"
)

func createHistoryDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "History")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE urls (
			url TEXT NOT NULL,
			title TEXT,
			visit_count INTEGER DEFAULT 0,
			last_visit_time INTEGER DEFAULT 0,
			hidden INTEGER DEFAULT 0
		)`)
	require.NoError(t, err)

	return path
}

func insertURL(t *testing.T, path, url string, title any, visits, lastVisitMS int64, hidden bool) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	h := 0
	if hidden {
		h = 1
	}
	chromiumTime := lastVisitMS*1000 + chromiumEpochOffset
	_, err = db.Exec(
		`INSERT INTO urls (url, title, visit_count, last_visit_time, hidden) VALUES (?, ?, ?, ?, ?)`,
		url, title, visits, chromiumTime, h)
	require.NoError(t, err)
}

func TestLoadOrdersMostRecentFirst(t *testing.T) {
	path := createHistoryDB(t)
	insertURL(t, path, "https://old.com", "Old", 1, 1000, false)
	insertURL(t, path, "https://new.com", "New", 2, 9000, false)
	insertURL(t, path, "https://mid.com", "Mid", 3, 5000, false)

	records, err := Load(path, 10)
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, "https://new.com", records[0].URL)
	assert.Equal(t, "https://mid.com", records[1].URL)
	assert.Equal(t, "https://old.com", records[2].URL)
}

func TestLoadAppliesLimit(t *testing.T) {
	path := createHistoryDB(t)
	insertURL(t, path, "https://a.com", "A", 1, 1000, false)
	insertURL(t, path, "https://b.com", "B", 1, 2000, false)
	insertURL(t, path, "https://c.com", "C", 1, 3000, false)

	records, err := Load(path, 2)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "https://c.com", records[0].URL)
}

func TestLoadExcludesHiddenEntries(t *testing.T) {
	path := createHistoryDB(t)
	insertURL(t, path, "https://visible.com", "Visible", 1, 1000, false)
	insertURL(t, path, "https://hidden.com", "Hidden", 1, 2000, true)

	records, err := Load(path, 10)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "https://visible.com", records[0].URL)
}

func TestLoadConvertsChromiumTimestamps(t *testing.T) {
	path := createHistoryDB(t)
	insertURL(t, path, "https://a.com", "A", 4, 1700000000000, false)

	records, err := Load(path, 10)
	require.NoError(t, err)

	require.Len(t, records, 1)
	got := records[0]
	assert.Equal(t, record.SourceHistory, got.Source)
	require.NotNil(t, got.LastVisit)
	assert.Equal(t, int64(1700000000000), *got.LastVisit)
	require.NotNil(t, got.VisitCount)
	assert.Equal(t, uint64(4), *got.VisitCount)
}

func TestLoadNullTitleBecomesEmpty(t *testing.T) {
	path := createHistoryDB(t)
	insertURL(t, path, "https://a.com", nil, 1, 1000, false)

	records, err := Load(path, 10)
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Title)
	assert.Equal(t, "", records[0].TitleNorm)
}

func TestLoadMissingDatabase(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope", "History"), 10)
	assert.Error(t, err)
}
