package domain

import "slices"

type State string

const (
	StateActive  State = "active"
	StateDeleted State = "deleted"
)

// Lifecycle is the soft-delete wrapper embedded in every deletable entity.
// Records are never removed from a collection, only flagged; active views
// filter on the flag and listings order deleted records last.
type Lifecycle struct {
	Deleted bool `json:"deleted"`
}

func (l Lifecycle) State() State {
	if l.Deleted {
		return StateDeleted
	}

	return StateActive
}

func (l Lifecycle) IsDeleted() bool {
	return l.Deleted
}

func (l *Lifecycle) MarkDeleted() {
	l.Deleted = true
}

func (l *Lifecycle) Restore() {
	l.Deleted = false
}

type SoftDeletable interface {
	IsDeleted() bool
}

// ActiveOnly returns the non-deleted records, preserving order. The input is
// never mutated.
func ActiveOnly[T SoftDeletable](records []T) []T {
	active := make([]T, 0, len(records))

	for _, r := range records {
		if !r.IsDeleted() {
			active = append(active, r)
		}
	}

	return active
}

// SortDeletedLast returns a copy of records with deleted ones ordered after
// active ones. The relative order inside each group is preserved.
func SortDeletedLast[T SoftDeletable](records []T) []T {
	sorted := slices.Clone(records)

	slices.SortStableFunc(sorted, func(a, b T) int {
		switch {
		case a.IsDeleted() == b.IsDeleted():
			return 0
		case a.IsDeleted():
			return 1
		default:
			return -1
		}
	})

	return sorted
}
