// Package repository provides the in-memory implementations of the domain
// repository interfaces. Collections are copy-on-write: every mutation builds
// a new slice and swaps it in, so slices handed out earlier never change under
// the caller. State lives only in process memory; a restart reloads fixtures.
package repository

import (
	"strings"

	"github.com/oarslan/cinema-backoffice/internal/domain"
)

func maxID[T any](records []T, id func(T) int64) int64 {
	var max int64
	for _, r := range records {
		if id(r) > max {
			max = id(r)
		}
	}

	return max
}

func containsFold(s, term string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func paginate[T any](records []T, filters domain.Filters) ([]T, *domain.Metadata) {
	metadata := domain.NewMetadata(len(records), filters.Page, filters.PageSize)

	if filters.PageSize <= 0 {
		return records, metadata
	}

	start := filters.Offset()
	if start >= len(records) {
		return []T{}, metadata
	}

	end := min(start+filters.Limit(), len(records))

	return records[start:end], metadata
}
