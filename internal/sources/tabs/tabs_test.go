package tabs

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/diascope/internal/logger"
)

// navigationPayload builds a pickled UpdateTabNavigation payload.
func navigationPayload(t *testing.T, tabID, index int32, url, title string) []byte {
	t.Helper()

	var body bytes.Buffer
	writeInt32 := func(v int32) {
		require.NoError(t, binary.Write(&body, binary.LittleEndian, v))
	}
	pad := func() {
		for body.Len()%4 != 0 {
			body.WriteByte(0)
		}
	}

	writeInt32(tabID)
	writeInt32(index)

	writeInt32(int32(len(url)))
	body.WriteString(url)
	pad()

	units := utf16.Encode([]rune(title))
	writeInt32(int32(len(units)))
	for _, u := range units {
		require.NoError(t, binary.Write(&body, binary.LittleEndian, u))
	}
	pad()

	var payload bytes.Buffer
	require.NoError(t, binary.Write(&payload, binary.LittleEndian, uint32(body.Len())))
	payload.Write(body.Bytes())
	return payload.Bytes()
}

// buildSNSS frames commands into an SNSS byte stream.
func buildSNSS(t *testing.T, version int32, commands ...snssCommand) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString(snssMagic)
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, version))

	for _, cmd := range commands {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, uint16(1+len(cmd.payload))))
		buf.WriteByte(cmd.id)
		buf.Write(cmd.payload)
	}

	return buf.Bytes()
}

func writeSessionFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadExtractsOpenTabs(t *testing.T) {
	dir := t.TempDir()
	data := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 0, "https://go.dev", "Go")},
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 2, 0, "https://pkg.go.dev", "Packages")},
	)
	writeSessionFile(t, dir, "Tabs_1000", data)

	records, err := Load(dir, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, "https://go.dev", records[0].URL)
	assert.Equal(t, "Go", records[0].Title)
	require.NotNil(t, records[0].TabID)
	assert.Equal(t, int32(1), *records[0].TabID)
	assert.Equal(t, "https://pkg.go.dev", records[1].URL)
}

func TestLoadKeepsHighestNavigationIndexPerTab(t *testing.T) {
	dir := t.TempDir()
	data := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 0, "https://first.com", "First")},
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 2, "https://current.com", "Current")},
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 1, "https://middle.com", "Middle")},
	)
	writeSessionFile(t, dir, "Tabs_1000", data)

	records, err := Load(dir, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "https://current.com", records[0].URL)
	assert.Equal(t, "Current", records[0].Title)
}

func TestLoadSkipsEmptyURLNavigations(t *testing.T) {
	dir := t.TempDir()
	data := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 0, "", "Blank")},
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 2, 0, "https://real.com", "Real")},
	)
	writeSessionFile(t, dir, "Tabs_1000", data)

	records, err := Load(dir, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "https://real.com", records[0].URL)
}

func TestLoadIgnoresUnrelatedCommands(t *testing.T) {
	dir := t.TempDir()
	data := buildSNSS(t, 3,
		snssCommand{id: 0, payload: []byte{1, 2, 3, 4}},
		snssCommand{id: commandUpdateTabNavigationSession, payload: navigationPayload(t, 7, 0, "https://a.com", "A")},
	)
	writeSessionFile(t, dir, "Session_1000", data)

	records, err := Load(dir, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, records, 1)
	require.NotNil(t, records[0].TabID)
	assert.Equal(t, int32(7), *records[0].TabID)
}

func TestLoadPrefersTabsFileOverSession(t *testing.T) {
	dir := t.TempDir()

	tabsData := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 0, "https://from-tabs.com", "T")},
	)
	sessionData := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationSession, payload: navigationPayload(t, 1, 0, "https://from-session.com", "S")},
	)

	tabsPath := writeSessionFile(t, dir, "Tabs_1000", tabsData)
	sessionPath := writeSessionFile(t, dir, "Session_2000", sessionData)

	// Even with a newer Session_ file, Tabs_ wins.
	old := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(tabsPath, old, old))
	require.NoError(t, os.Chtimes(sessionPath, time.Now(), time.Now()))

	records, err := Load(dir, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "https://from-tabs.com", records[0].URL)
}

func TestLoadPicksNewestOfSameKind(t *testing.T) {
	dir := t.TempDir()

	oldData := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 0, "https://stale.com", "Old")},
	)
	newData := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 0, "https://fresh.com", "New")},
	)

	oldPath := writeSessionFile(t, dir, "Tabs_1000", oldData)
	writeSessionFile(t, dir, "Tabs_2000", newData)

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	records, err := Load(dir, logger.NewNop())
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "https://fresh.com", records[0].URL)
}

func TestLoadCorruptSnapshotYieldsEmpty(t *testing.T) {
	dir := t.TempDir()
	writeSessionFile(t, dir, "Tabs_1000", []byte("not a session file"))

	records, err := Load(dir, logger.NewNop())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadMissingSessionsDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "Sessions"), logger.NewNop())
	assert.Error(t, err)
}

func TestLoadNoSessionFiles(t *testing.T) {
	_, err := Load(t.TempDir(), logger.NewNop())
	assert.Error(t, err)
}

func TestParseCommandsTruncatedTail(t *testing.T) {
	data := buildSNSS(t, 3,
		snssCommand{id: commandUpdateTabNavigationTabs, payload: navigationPayload(t, 1, 0, "https://a.com", "A")},
	)
	// A dangling size prefix with no body ends the stream cleanly.
	data = append(data, 0xFF, 0xFF)

	commands, err := parseCommands(data)
	require.NoError(t, err)
	assert.Len(t, commands, 1)
}

func TestParseCommandsRejectsUnknownVersion(t *testing.T) {
	data := buildSNSS(t, 9)
	_, err := parseCommands(data)
	assert.Error(t, err)
}

func TestDecodeTabNavigationNonASCIITitle(t *testing.T) {
	payload := navigationPayload(t, 3, 1, "https://example.jp", "日本語タイトル")

	nav, err := decodeTabNavigation(payload)
	require.NoError(t, err)
	assert.Equal(t, int32(3), nav.tabID)
	assert.Equal(t, int32(1), nav.index)
	assert.Equal(t, "https://example.jp", nav.url)
	assert.Equal(t, "日本語タイトル", nav.title)
}

func TestDecodeTabNavigationTruncatedPayload(t *testing.T) {
	payload := navigationPayload(t, 3, 1, "https://example.com", "T")
	_, err := decodeTabNavigation(payload[:6])
	assert.Error(t, err)
}
