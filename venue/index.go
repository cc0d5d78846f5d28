// Package venue builds the derived lookup structures over a loaded venue
// document: the seat-id index and the flattened navigation order.
package venue

import "seatmap-cli/model"

// Index is the flattened view of a venue document: every seat keyed by id
// with its section/row context attached, plus the deterministic traversal
// order (section order, then row order, then seat order within the row)
// used for keyboard navigation.
type Index struct {
	venueID string
	seats   map[string]model.SeatWithContext
	order   []string
}

// BuildIndex flattens sections, rows and seats in document order. A document
// with zero sections yields an empty index. Runs in time linear in the total
// seat count.
func BuildIndex(v *model.VenueData) *Index {
	idx := &Index{seats: map[string]model.SeatWithContext{}}
	if v == nil {
		return idx
	}
	idx.venueID = v.VenueId
	for _, section := range v.Sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				idx.seats[seat.Id] = model.SeatWithContext{
					Seat:         seat,
					SectionId:    section.Id,
					SectionLabel: section.Label,
					RowIndex:     row.Index,
				}
				idx.order = append(idx.order, seat.Id)
			}
		}
	}
	return idx
}

// VenueID returns the id of the document the index was built from.
func (i *Index) VenueID() string {
	return i.venueID
}

// Seat looks up a seat with its context by id.
func (i *Index) Seat(id string) (model.SeatWithContext, bool) {
	seat, ok := i.seats[id]
	return seat, ok
}

// Order returns the flattened navigation sequence. Callers must not mutate
// the returned slice.
func (i *Index) Order() []string {
	return i.order
}

// Len is the total seat count.
func (i *Index) Len() int {
	return len(i.order)
}

// Resolve maps seat ids to seats, silently dropping ids absent from the
// index. Stale ids persisted from a different venue disappear here instead
// of surfacing anywhere a seat is displayed.
func (i *Index) Resolve(ids []string) []model.SeatWithContext {
	resolved := make([]model.SeatWithContext, 0, len(ids))
	for _, id := range ids {
		if seat, ok := i.seats[id]; ok {
			resolved = append(resolved, seat)
		}
	}
	return resolved
}

// Cache memoizes the index for a venue document. The document pointer is the
// invalidation key: the index is rebuilt only when a different document is
// presented.
type Cache struct {
	doc   *model.VenueData
	index *Index
}

// IndexFor returns the memoized index for doc, rebuilding on identity change.
func (c *Cache) IndexFor(doc *model.VenueData) *Index {
	if c.index == nil || c.doc != doc {
		c.doc = doc
		c.index = BuildIndex(doc)
	}
	return c.index
}
