package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"seatmap-cli/model"
	"seatmap-cli/store"
)

func shellVenue() *model.VenueData {
	return &model.VenueData{
		VenueId: "arena-1",
		Name:    "Metropolis Arena",
		Map:     model.MapSize{Width: 200, Height: 120},
		Sections: []model.Section{
			{
				Id:    "floor",
				Label: "Floor",
				Rows: []model.Row{
					{Index: 1, Seats: []model.Seat{
						{Id: "f-1-1", Col: 1, X: 10, Y: 10, PriceTier: 1, Status: model.SeatAvailable},
						{Id: "f-1-2", Col: 2, X: 20, Y: 10, PriceTier: 1, Status: model.SeatAvailable},
						{Id: "f-1-3", Col: 3, X: 30, Y: 10, PriceTier: 1, Status: model.SeatAvailable},
						{Id: "f-1-4", Col: 4, X: 40, Y: 10, PriceTier: 1, Status: model.SeatAvailable},
						{Id: "f-1-5", Col: 5, X: 50, Y: 10, PriceTier: 1, Status: model.SeatAvailable},
					}},
					{Index: 2, Seats: []model.Seat{
						{Id: "f-2-1", Col: 1, X: 10, Y: 20, PriceTier: 2, Status: model.SeatAvailable},
						{Id: "f-2-2", Col: 2, X: 20, Y: 20, PriceTier: 2, Status: model.SeatAvailable},
						{Id: "f-2-3", Col: 3, X: 30, Y: 20, PriceTier: 2, Status: model.SeatAvailable},
						{Id: "f-2-4", Col: 4, X: 40, Y: 20, PriceTier: 2, Status: model.SeatAvailable},
						{Id: "f-2-5", Col: 5, X: 50, Y: 20, PriceTier: 2, Status: model.SeatSold},
					}},
				},
			},
			{
				Id:    "balcony",
				Label: "Balcony",
				Rows: []model.Row{
					{Index: 1, Seats: []model.Seat{
						{Id: "b-1-1", Col: 1, X: 10, Y: 60, PriceTier: 3, Status: model.SeatAvailable},
						{Id: "b-1-2", Col: 2, X: 20, Y: 60, PriceTier: 3, Status: model.SeatReserved},
						{Id: "b-1-3", Col: 3, X: 30, Y: 60, PriceTier: 3, Status: model.SeatHeld},
					}},
				},
			},
		},
	}
}

func newShell() appModel {
	return appModel{
		state: stateReady,
		doc:   shellVenue(),
		sel:   store.OpenAt(""),
		zoom:  1.0,
		keys:  defaultKeyMap(),
	}
}

func press(t *testing.T, m appModel, msg tea.Msg) appModel {
	t.Helper()
	next, _ := m.Update(msg)
	shell, ok := next.(appModel)
	if !ok {
		t.Fatalf("Update returned %T, expected appModel", next)
	}
	return shell
}

func keyPress(key tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: key}
}

func runePress(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestEnterTogglesFocusedSeat(t *testing.T) {
	m := newShell()
	m.sel.SetFocusedSeat("f-1-2")

	m = press(t, m, keyPress(tea.KeyEnter))
	if !m.sel.IsSelected("f-1-2") {
		t.Fatal("expected the focused seat to be selected")
	}

	m = press(t, m, keyPress(tea.KeyEnter))
	if m.sel.IsSelected("f-1-2") {
		t.Fatal("expected the focused seat to be deselected on the second press")
	}
}

func TestEnterOnUnavailableSeatIsNoOp(t *testing.T) {
	m := newShell()
	for _, id := range []string{"f-2-5", "b-1-2", "b-1-3"} {
		m.sel.SetFocusedSeat(id)
		m = press(t, m, keyPress(tea.KeyEnter))
		if m.sel.IsSelected(id) {
			t.Fatalf("expected %s to stay unselected", id)
		}
		if m.showModal {
			t.Fatalf("expected no limit dialog for %s", id)
		}
	}
}

func TestSelectionLimitOpensDialog(t *testing.T) {
	m := newShell()
	full := []string{"f-1-1", "f-1-2", "f-1-3", "f-1-4", "f-1-5", "f-2-1", "f-2-2", "f-2-3"}
	for _, id := range full {
		m.sel.ToggleSeat(id)
	}
	if m.sel.Count() != store.MaxSelected {
		t.Fatalf("expected %d seats selected, got %d", store.MaxSelected, m.sel.Count())
	}

	m.sel.SetFocusedSeat("f-2-4")
	m = press(t, m, keyPress(tea.KeyEnter))
	if !m.showModal {
		t.Fatal("expected the limit dialog to open")
	}
	if m.sel.Count() != store.MaxSelected {
		t.Fatalf("expected the selection to stay at %d, got %d", store.MaxSelected, m.sel.Count())
	}

	// Deselecting while full still works.
	m.showModal = false
	m.sel.SetFocusedSeat("f-1-1")
	m = press(t, m, keyPress(tea.KeyEnter))
	if m.sel.IsSelected("f-1-1") {
		t.Fatal("expected f-1-1 to be deselected at the cap")
	}
	if m.showModal {
		t.Fatal("expected no dialog when deselecting at the cap")
	}
}

func TestDialogSwallowsInputUntilDismissed(t *testing.T) {
	m := newShell()
	m.showModal = true
	m.sel.SetFocusedSeat("f-1-1")

	m = press(t, m, keyPress(tea.KeyRight))
	if got := m.sel.FocusedSeat(); got != "f-1-1" {
		t.Fatalf("expected focus to stay on f-1-1 under the dialog, got %s", got)
	}
	if !m.showModal {
		t.Fatal("expected the dialog to stay open on arrow keys")
	}

	m = press(t, m, keyPress(tea.KeyEsc))
	if m.showModal {
		t.Fatal("expected esc to dismiss the dialog")
	}
}

func TestArrowClampsAtFirstSeat(t *testing.T) {
	m := newShell()
	m.sel.SetFocusedSeat("f-1-1")

	m = press(t, m, keyPress(tea.KeyLeft))
	if got := m.sel.FocusedSeat(); got != "f-1-1" {
		t.Fatalf("expected focus to stay on the first seat, got %s", got)
	}

	m = press(t, m, keyPress(tea.KeyUp))
	if got := m.sel.FocusedSeat(); got != "f-1-1" {
		t.Fatalf("expected the row jump to clamp at the first seat, got %s", got)
	}
}

func TestArrowsWithoutFocusDoNothing(t *testing.T) {
	m := newShell()
	m = press(t, m, keyPress(tea.KeyRight))
	if got := m.sel.FocusedSeat(); got != "" {
		t.Fatalf("expected no focus to appear, got %s", got)
	}
}

func TestRowJumpMovesFivePositions(t *testing.T) {
	m := newShell()
	m.sel.SetFocusedSeat("f-1-1")

	m = press(t, m, keyPress(tea.KeyDown))
	if got := m.sel.FocusedSeat(); got != "f-2-1" {
		t.Fatalf("expected focus on f-2-1 after the row jump, got %s", got)
	}
}

func TestZoomClampsAndResets(t *testing.T) {
	m := newShell()
	for i := 0; i < 12; i++ {
		m = press(t, m, runePress("+"))
	}
	if m.zoom != zoomMax {
		t.Fatalf("expected zoom clamped at %.1f, got %.1f", zoomMax, m.zoom)
	}

	m = press(t, m, runePress("0"))
	if m.zoom != 1.0 {
		t.Fatalf("expected zoom reset to 1.0, got %.1f", m.zoom)
	}

	for i := 0; i < 12; i++ {
		m = press(t, m, runePress("-"))
	}
	if m.zoom != zoomMin {
		t.Fatalf("expected zoom clamped at %.1f, got %.1f", zoomMin, m.zoom)
	}
}

func TestClearEmptiesSelectionKeepsFocus(t *testing.T) {
	m := newShell()
	m.sel.ToggleSeat("f-1-1")
	m.sel.ToggleSeat("f-1-2")
	m.sel.SetFocusedSeat("f-1-2")

	m = press(t, m, runePress("c"))
	if m.sel.Count() != 0 {
		t.Fatalf("expected an empty selection, got %d", m.sel.Count())
	}
	if got := m.sel.FocusedSeat(); got != "f-1-2" {
		t.Fatalf("expected focus to survive the clear, got %s", got)
	}
}

func TestViewShowsCountAndTotal(t *testing.T) {
	m := newShell()
	m.sel.ToggleSeat("f-1-1")
	m.sel.ToggleSeat("f-2-1")
	m.sel.ToggleSeat("b-1-1")

	view := m.View()
	if !strings.Contains(view, "3/8") {
		t.Fatal("expected the view to show the selection count")
	}
	if !strings.Contains(view, "$225.00") {
		t.Fatal("expected the view to show the subtotal")
	}
	if !strings.Contains(view, "$247.50") {
		t.Fatal("expected the view to show the total with fees")
	}
}

func TestMouseClickFocusesAndSelects(t *testing.T) {
	m := newShell()

	view := m.seatMapView()
	var target seatHit
	for _, hit := range view.hits {
		if hit.id == "f-1-3" {
			target = hit
			break
		}
	}
	if target.id == "" {
		t.Fatal("expected a hitbox for f-1-3")
	}

	m = press(t, m, tea.MouseMsg{
		X:      target.x0,
		Y:      target.y + headerLines + stageLines,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if got := m.sel.FocusedSeat(); got != "f-1-3" {
		t.Fatalf("expected the click to focus f-1-3, got %s", got)
	}
	if !m.sel.IsSelected("f-1-3") {
		t.Fatal("expected the click to select f-1-3")
	}
}

func TestMouseClickOnUnavailableSeatIsIgnored(t *testing.T) {
	m := newShell()

	view := m.seatMapView()
	for _, hit := range view.hits {
		if hit.id != "f-2-5" {
			continue
		}
		m = press(t, m, tea.MouseMsg{
			X:      hit.x0,
			Y:      hit.y + headerLines + stageLines,
			Action: tea.MouseActionPress,
			Button: tea.MouseButtonLeft,
		})
	}
	if got := m.sel.FocusedSeat(); got != "" {
		t.Fatalf("expected no focus on a sold seat, got %s", got)
	}
	if m.sel.Count() != 0 {
		t.Fatalf("expected no selection, got %d", m.sel.Count())
	}
}
