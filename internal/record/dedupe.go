package record

import "math"

// Dedupe collapses records that share a merge key into one record each.
// The first occurrence of a key is retained structurally; later occurrences
// only refine it:
//
//   - Title (and TitleNorm) is replaced when the incoming record comes from
//     a strictly higher-precedence source and carries a non-empty title.
//   - VisitCount is the saturating sum of both sides, treating absent as 0;
//     it stays absent only when both sides are absent.
//   - LastVisit is adopted when the retained side has none, otherwise the
//     maximum of the two when the incoming side has one.
//   - URL, Folder and TabID are never merged: whatever the first occurrence
//     carried survives, even when a later source had a more relevant value.
//     This loses e.g. the bookmark folder of a page that first appeared as
//     a tab; an intentional trade of fidelity for a single simple policy.
//
// Output order is unspecified. Because "first occurrence" depends on input
// order, reordering the input can change which record survives structurally.
func Dedupe(records []Record) []Record {
	byKey := make(map[uint64]int, len(records))
	out := make([]Record, 0, len(records))

	for _, rec := range records {
		idx, seen := byKey[rec.MergeKey]
		if !seen {
			byKey[rec.MergeKey] = len(out)
			out = append(out, rec)
			continue
		}
		mergeInto(&out[idx], rec)
	}

	return out
}

func mergeInto(retained *Record, incoming Record) {
	if incoming.Source > retained.Source && incoming.Title != "" {
		retained.Title = incoming.Title
		retained.TitleNorm = Normalize(incoming.Title)
	}

	if incoming.VisitCount != nil {
		sum := *incoming.VisitCount
		if retained.VisitCount != nil {
			if sum > math.MaxUint64-*retained.VisitCount {
				sum = math.MaxUint64
			} else {
				sum += *retained.VisitCount
			}
		}
		retained.VisitCount = &sum
	}

	if retained.LastVisit == nil {
		retained.LastVisit = incoming.LastVisit
	} else if incoming.LastVisit != nil && *incoming.LastVisit > *retained.LastVisit {
		retained.LastVisit = incoming.LastVisit
	}
}
