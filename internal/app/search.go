package app

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// searchable is the slice of record behavior the ranking engine needs:
// the precomputed normalized index string and the display name used for
// tie-breaking.
type searchable interface {
	searchText() string
	displayName() string
}

type searchParams struct {
	minQueryLen  int
	defaultLimit int
	maxLimit     int
	collation    language.Tag
}

// clampLimit maps a caller-supplied limit into [1, maxLimit], where a
// non-positive value means "use the index default".
func (p searchParams) clampLimit(limit int) int {
	if limit <= 0 {
		limit = p.defaultLimit
	}
	if limit > p.maxLimit {
		limit = p.maxLimit
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

// rank keeps the records whose search index contains every query term,
// scores them, sorts by score descending with a localized case-insensitive
// name tie-break, and truncates to limit. The tie-break makes the ordering
// total, so equal inputs always produce the same output.
func rank[R searchable](recs []R, normQuery string, limit int, p searchParams, score func(R, string) int) []R {
	terms := strings.Fields(normQuery)

	type scored struct {
		rec   R
		score int
	}
	var matched []scored
	for _, r := range recs {
		text := r.searchText()
		ok := true
		for _, t := range terms {
			if !strings.Contains(text, t) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		matched = append(matched, scored{rec: r, score: score(r, normQuery)})
	}

	// collate.Collator is not safe for concurrent use, so build one per call
	coll := collate.New(p.collation, collate.IgnoreCase)
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		return coll.CompareString(matched[i].rec.displayName(), matched[j].rec.displayName()) < 0
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]R, len(matched))
	for i, m := range matched {
		out[i] = m.rec
	}
	return out
}
