package venue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seatmap-cli/model"
)

func testVenue() *model.VenueData {
	venue := &model.VenueData{
		VenueId: "venue-1",
		Name:    "Test Hall",
		Map:     model.MapSize{Width: 1000, Height: 600},
	}
	for s := 1; s <= 2; s++ {
		section := model.Section{
			Id:    fmt.Sprintf("sec-%d", s),
			Label: fmt.Sprintf("Section %d", s),
		}
		for r := 1; r <= 2; r++ {
			row := model.Row{Index: r}
			for c := 1; c <= 3; c++ {
				row.Seats = append(row.Seats, model.Seat{
					Id:        fmt.Sprintf("s%d-r%d-c%d", s, r, c),
					Col:       c,
					X:         float64(c * 50),
					Y:         float64(r * 60),
					PriceTier: s,
					Status:    model.SeatAvailable,
				})
			}
			section.Rows = append(section.Rows, row)
		}
		venue.Sections = append(venue.Sections, section)
	}
	return venue
}

func TestBuildIndex_CountAndOrder(t *testing.T) {
	idx := BuildIndex(testVenue())

	assert.Equal(t, 12, idx.Len())
	require.Len(t, idx.Order(), 12)

	// Section order, then row order, then seat order within the row.
	assert.Equal(t, "s1-r1-c1", idx.Order()[0])
	assert.Equal(t, "s1-r1-c2", idx.Order()[1])
	assert.Equal(t, "s1-r2-c1", idx.Order()[3])
	assert.Equal(t, "s2-r1-c1", idx.Order()[6])
	assert.Equal(t, "s2-r2-c3", idx.Order()[11])
}

func TestBuildIndex_AttachesContext(t *testing.T) {
	idx := BuildIndex(testVenue())

	seat, ok := idx.Seat("s2-r1-c2")
	require.True(t, ok)
	assert.Equal(t, "sec-2", seat.SectionId)
	assert.Equal(t, "Section 2", seat.SectionLabel)
	assert.Equal(t, 1, seat.RowIndex)
	assert.Equal(t, 2, seat.Col)
}

func TestBuildIndex_EmptyVenue(t *testing.T) {
	idx := BuildIndex(&model.VenueData{VenueId: "empty"})

	assert.Zero(t, idx.Len())
	assert.Empty(t, idx.Order())

	idx = BuildIndex(nil)
	assert.Zero(t, idx.Len())
}

func TestResolve_FiltersUnknownIds(t *testing.T) {
	idx := BuildIndex(testVenue())

	resolved := idx.Resolve([]string{"s1-r1-c1", "ghost", "s2-r2-c3"})

	require.Len(t, resolved, 2)
	assert.Equal(t, "s1-r1-c1", resolved[0].Id)
	assert.Equal(t, "s2-r2-c3", resolved[1].Id)
}

func TestCache_MemoizesByDocumentIdentity(t *testing.T) {
	var cache Cache
	doc := testVenue()

	first := cache.IndexFor(doc)
	second := cache.IndexFor(doc)
	assert.Same(t, first, second)

	other := testVenue()
	third := cache.IndexFor(other)
	assert.NotSame(t, first, third)
	assert.Equal(t, first.Len(), third.Len())
}
