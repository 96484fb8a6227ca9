package record

import "fmt"

// Source identifies which browser artifact produced a Record. The numeric
// order doubles as merge precedence: when two records collapse to the same
// page, only a strictly higher-precedence source may replace the title.
type Source int

const (
	SourceHistory Source = iota
	SourceBookmark
	SourceTab
)

func (s Source) String() string {
	switch s {
	case SourceHistory:
		return "history"
	case SourceBookmark:
		return "bookmark"
	case SourceTab:
		return "tab"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// MarshalJSON renders the source as its lowercase name.
func (s Source) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// Record is the canonical in-memory form of one browsing artifact: a page
// visited, bookmarked, or currently open in a tab. URLNorm, TitleNorm and
// MergeKey are stamped once at construction, used only for matching and
// deduplication, and never serialized.
type Record struct {
	URL        string  `json:"url"`
	Title      string  `json:"title"`
	Source     Source  `json:"source"`
	VisitCount *uint64 `json:"visit_count,omitempty"`
	LastVisit  *int64  `json:"last_visit,omitempty"`
	Folder     *string `json:"folder,omitempty"`
	TabID      *int32  `json:"tab_id,omitempty"`

	URLNorm   string `json:"-"`
	TitleNorm string `json:"-"`
	MergeKey  uint64 `json:"-"`
}

func newRecord(url, title string, source Source) Record {
	return Record{
		URL:       url,
		Title:     title,
		Source:    source,
		URLNorm:   Normalize(url),
		TitleNorm: Normalize(title),
		MergeKey:  MergeKey(url),
	}
}

// NewHistory builds a Record for a visited page. lastVisit is epoch
// milliseconds.
func NewHistory(url, title string, visitCount uint64, lastVisit int64) Record {
	r := newRecord(url, title, SourceHistory)
	r.VisitCount = &visitCount
	r.LastVisit = &lastVisit
	return r
}

// NewBookmark builds a Record for a saved bookmark. folder is the
// " / "-joined ancestor path, or nil for top-level bookmarks.
func NewBookmark(url, title string, folder *string) Record {
	r := newRecord(url, title, SourceBookmark)
	r.Folder = folder
	return r
}

// NewTab builds a Record for a currently-open tab.
func NewTab(url, title string, tabID int32) Record {
	r := newRecord(url, title, SourceTab)
	r.TabID = &tabID
	return r
}
