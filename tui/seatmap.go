package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"seatmap-cli/model"
)

// Seat cell tokens. Selected wins over every status; the unknown-status arm
// falls back to the available token on purpose (documented default), the
// seat just stays non-interactive.
const (
	tokenAvailable = "[]"
	tokenSelected  = "<>"
	tokenReserved  = "//"
	tokenSold      = "XX"
	tokenHeld      = "??"
)

var (
	styleSelected  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	styleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleReserved  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Faint(true)
	styleSold      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Faint(true)
	styleHeld      = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Faint(true)

	styleSectionLabel = lipgloss.NewStyle().Bold(true).Faint(true)
)

// seatHit is the clickable cell span of one seat, in coordinates relative to
// the top-left of the rendered grid.
type seatHit struct {
	id     string
	x0, x1 int
	y      int
}

// seatMapView is the rendered seat grid plus the hitboxes that translate
// terminal cells back to seat ids.
type seatMapView struct {
	grid  []string
	hits  []seatHit
	width int
}

func (v seatMapView) seatAt(x, y int) (string, bool) {
	for _, hit := range v.hits {
		if hit.y == y && x >= hit.x0 && x <= hit.x1 {
			return hit.id, true
		}
	}
	return "", false
}

// renderSeatMap draws every seat of the document with its visual state. The
// output is a pure function of its inputs; rendering the same document,
// selection, focus, zoom and label toggle twice yields identical bytes.
func renderSeatMap(doc *model.VenueData, selected map[string]bool, focused string, zoom float64, showNumbers bool) seatMapView {
	if doc == nil || totalSeats(doc) == 0 {
		return seatMapView{grid: []string{"No seats in this venue."}, width: 23}
	}

	cellW := clampInt(int(math.Round(3*zoom)), 2, 7)
	rowWidth := rowLabelWidth(doc)
	globalMinX := minSeatX(doc)

	var view seatMapView
	for si, section := range doc.Sections {
		if section.Label != "" {
			view.grid = append(view.grid, styleSectionLabel.Render(section.Label))
			view.width = maxInt(view.width, len(section.Label))
		}
		for _, row := range section.Rows {
			if len(row.Seats) == 0 {
				continue
			}
			line, hits, width := renderRow(row, rowWidth, cellW, globalMinX, rowPitchX(doc, row), selected, focused, showNumbers, len(view.grid))
			view.grid = append(view.grid, line)
			view.hits = append(view.hits, hits...)
			view.width = maxInt(view.width, width)
		}
		if si < len(doc.Sections)-1 {
			view.grid = append(view.grid, "")
		}
	}
	return view
}

// renderRow lays one row out as "label  <indent> cell cell cell". The indent
// is derived from the leftmost seat x-coordinate so section offsets in map
// space survive the translation to terminal cells.
func renderRow(row model.Row, rowWidth, cellW int, globalMinX, pitchX float64, selected map[string]bool, focused string, showNumbers bool, y int) (string, []seatHit, int) {
	rowMinX := row.Seats[0].X
	for _, seat := range row.Seats {
		rowMinX = math.Min(rowMinX, seat.X)
	}
	indentCells := 0
	if pitchX > 0 {
		indentCells = clampInt(int(math.Round((rowMinX-globalMinX)/pitchX)), 0, 40)
	}

	var b strings.Builder
	label := strconv.Itoa(row.Index)
	b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
	cursor := rowWidth + 1 + indentCells*(cellW+1)
	b.WriteString(strings.Repeat(" ", indentCells*(cellW+1)))

	var hits []seatHit
	for i, seat := range row.Seats {
		text := seatToken(seat.Status, selected[seat.Id])
		if showNumbers {
			text = strconv.Itoa(seat.Col)
		}
		cell := padCell(text, cellW)
		style := seatStyle(seat.Status, selected[seat.Id])
		if seat.Id == focused {
			style = style.Reverse(true)
		}
		b.WriteString(style.Render(cell))
		hits = append(hits, seatHit{id: seat.Id, x0: cursor, x1: cursor + cellW - 1, y: y})
		cursor += cellW
		if i < len(row.Seats)-1 {
			b.WriteString(" ")
			cursor++
		}
	}
	return b.String(), hits, cursor
}

func seatToken(status model.SeatStatus, isSelected bool) string {
	if isSelected {
		return tokenSelected
	}
	switch status {
	case model.SeatReserved:
		return tokenReserved
	case model.SeatSold:
		return tokenSold
	case model.SeatHeld:
		return tokenHeld
	case model.SeatAvailable:
		return tokenAvailable
	default:
		// Out-of-contract status: render like available, stays inert.
		return tokenAvailable
	}
}

func seatStyle(status model.SeatStatus, isSelected bool) lipgloss.Style {
	if isSelected {
		return styleSelected
	}
	switch status {
	case model.SeatReserved:
		return styleReserved
	case model.SeatSold:
		return styleSold
	case model.SeatHeld:
		return styleHeld
	case model.SeatAvailable:
		return styleAvailable
	default:
		return styleAvailable
	}
}

func legendView(showNumbers bool) string {
	legend := fmt.Sprintf(
		"Legend: %s available • %s selected • %s reserved • %s sold • %s held",
		styleAvailable.Render(tokenAvailable),
		styleSelected.Render(tokenSelected),
		styleReserved.Render(tokenReserved),
		styleSold.Render(tokenSold),
		styleHeld.Render(tokenHeld),
	)
	if showNumbers {
		legend = "Legend: color shows status • numbers are seat columns"
	}
	return hint(legend) + "\n" + hint("dim = unavailable • reverse = focused")
}

type stageBlock struct {
	top string
	mid string
	bot string
}

// stageBar renders the stage marquee above the seat grid.
func stageBar(width int) string {
	block := stageBarBlock(width, "STAGE")
	stageStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	borderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	return borderStyle.Render(block.top) + "\n" +
		stageStyle.Render(block.mid) + "\n" +
		borderStyle.Render(block.bot)
}

func stageBarBlock(width int, label string) stageBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return stageBlock{top: border, mid: mid, bot: bottom}
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func totalSeats(doc *model.VenueData) int {
	count := 0
	for _, section := range doc.Sections {
		for _, row := range section.Rows {
			count += len(row.Seats)
		}
	}
	return count
}

func rowLabelWidth(doc *model.VenueData) int {
	width := 2
	for _, section := range doc.Sections {
		for _, row := range section.Rows {
			if l := len(strconv.Itoa(row.Index)); l > width {
				width = l
			}
		}
	}
	return width
}

func minSeatX(doc *model.VenueData) float64 {
	minX := math.MaxFloat64
	for _, section := range doc.Sections {
		for _, row := range section.Rows {
			for _, seat := range row.Seats {
				minX = math.Min(minX, seat.X)
			}
		}
	}
	return minX
}

// rowPitchX estimates the map-space distance between adjacent seats in a
// row, used to convert x offsets into whole cell indents.
func rowPitchX(doc *model.VenueData, row model.Row) float64 {
	if len(row.Seats) > 1 {
		minX, maxX := row.Seats[0].X, row.Seats[0].X
		for _, seat := range row.Seats {
			minX = math.Min(minX, seat.X)
			maxX = math.Max(maxX, seat.X)
		}
		if maxX > minX {
			return (maxX - minX) / float64(len(row.Seats)-1)
		}
	}
	if doc.Map.Width > 0 {
		return doc.Map.Width / 20
	}
	return 1
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
