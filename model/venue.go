package model

// SeatStatus is the availability state a seat carries in the venue document.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "available"
	SeatReserved  SeatStatus = "reserved"
	SeatSold      SeatStatus = "sold"
	SeatHeld      SeatStatus = "held"
)

// Interactive reports whether a seat in this status can be focused by
// pointer or activated. Only available seats interact; every other value,
// including statuses outside the enum, is inert.
func (s SeatStatus) Interactive() bool {
	return s == SeatAvailable
}

type Seat struct {
	Id        string     `json:"id"`
	Col       int        `json:"col"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	PriceTier int        `json:"priceTier"`
	Status    SeatStatus `json:"status"`
}

type Row struct {
	Index int    `json:"index"`
	Seats []Seat `json:"seats"`
}

// Transform is the section layout offset/scale from the venue document.
// Informational only; seat coordinates are already in map space.
type Transform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

type Section struct {
	Id        string    `json:"id"`
	Label     string    `json:"label"`
	Transform Transform `json:"transform"`
	Rows      []Row     `json:"rows"`
}

type MapSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// VenueData is the static venue document loaded once at startup and treated
// as read-only for the rest of the session.
type VenueData struct {
	VenueId  string    `json:"venueId"`
	Name     string    `json:"name"`
	Map      MapSize   `json:"map"`
	Sections []Section `json:"sections"`
}

// SeatWithContext is a seat denormalized with its owning section and row,
// derived by the venue index for display and lookup.
type SeatWithContext struct {
	Seat
	SectionId    string
	SectionLabel string
	RowIndex     int
}
