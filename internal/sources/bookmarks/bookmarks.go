// Package bookmarks flattens a Chromium-format Bookmarks file into records.
package bookmarks

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/runnerr0/diascope/internal/record"
)

// maxBookmarks bounds memory for pathological bookmark trees.
const maxBookmarks = 10000

type bookmarkFile struct {
	Roots bookmarkRoots `json:"roots"`
}

type bookmarkRoots struct {
	BookmarkBar *bookmarkNode `json:"bookmark_bar"`
	Other       *bookmarkNode `json:"other"`
	Synced      *bookmarkNode `json:"synced"`
}

type bookmarkNode struct {
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	URL      string         `json:"url"`
	Children []bookmarkNode `json:"children"`
}

// Load parses the Bookmarks JSON file at path and returns one record per
// bookmark, with folder ancestry joined by " / ". A profile without a
// Bookmarks file yields an empty slice, not an error.
func Load(path string) ([]record.Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open bookmarks at %s: %w", path, err)
	}
	defer f.Close()

	var parsed bookmarkFile
	if err := json.NewDecoder(bufio.NewReaderSize(f, 16*1024)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("parse bookmarks JSON at %s: %w", path, err)
	}

	entries := make([]record.Record, 0, 512)
	for _, root := range []*bookmarkNode{parsed.Roots.BookmarkBar, parsed.Roots.Other, parsed.Roots.Synced} {
		if root != nil {
			flatten(root, "", &entries)
		}
	}

	return entries, nil
}

func flatten(node *bookmarkNode, folderPath string, entries *[]record.Record) {
	if len(*entries) >= maxBookmarks {
		return
	}

	switch node.Type {
	case "url":
		if node.URL == "" {
			return
		}
		var folder *string
		if folderPath != "" {
			f := folderPath
			folder = &f
		}
		*entries = append(*entries, record.NewBookmark(node.URL, node.Name, folder))

	case "folder":
		path := folderPath
		if node.Name != "" {
			if path == "" {
				path = node.Name
			} else {
				path = path + " / " + node.Name
			}
		}
		for i := range node.Children {
			flatten(&node.Children[i], path, entries)
		}
	}
}
