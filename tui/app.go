package tui

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"seatmap-cli/model"
	"seatmap-cli/service"
	"seatmap-cli/store"
	"seatmap-cli/venue"
)

type appState int

const (
	stateLoading appState = iota
	stateReady
	stateError
)

// Zoom is presentation only: it widens the seat cell pitch and nothing else.
const (
	zoomMin  = 0.5
	zoomMax  = 2.0
	zoomStep = 0.2
)

// Fixed line offsets of the ready view, used to translate mouse clicks into
// grid coordinates: three header lines plus a blank, then the stage bar.
const (
	headerLines = 4
	stageLines  = 3
)

type keyMap struct {
	Quit      key.Binding
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	Clear     key.Binding
	Numbers   key.Binding
	Dismiss   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Left:      key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous seat")),
		Right:     key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next seat")),
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "row back")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "row forward")),
		Select:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		ZoomIn:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		ZoomReset: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset zoom")),
		Clear:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Numbers:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "toggle numbers")),
		Dismiss:   key.NewBinding(key.WithKeys("esc", "enter", " "), key.WithHelp("esc", "dismiss")),
	}
}

type appModel struct {
	loader *service.Loader
	source string

	state appState
	err   error

	width  int
	height int

	doc   *model.VenueData
	cache venue.Cache
	sel   *store.Store

	zoom            float64
	showModal       bool
	showSeatNumbers bool

	keys    keyMap
	spinner spinner.Model
}

type venueMsg struct {
	doc *model.VenueData
	err error
}

// New builds the application shell. The venue document is requested once on
// Init; the selection set rehydrates from the persisted record.
func New(source string) tea.Model {
	m := appModel{
		loader: service.NewLoader(nil),
		source: source,
		state:  stateLoading,
		sel:    store.Open(),
		zoom:   1.0,
		keys:   defaultKeyMap(),
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	m.spinner = sp

	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loadVenueCmd(), m.spinner.Tick)
}

func (m appModel) loadVenueCmd() tea.Cmd {
	return func() tea.Msg {
		doc, err := m.loader.Load(context.Background(), m.source)
		return venueMsg{doc: doc, err: err}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.state == stateLoading {
			return m, cmd
		}
		return m, nil

	case venueMsg:
		if msg.err != nil {
			// A failed load is terminal for the session; reloading the
			// program is the only recovery.
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.doc = msg.doc
		m.cache.IndexFor(m.doc)
		m.state = stateReady
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.state != stateReady {
		return m, nil
	}

	// The limit dialog blocks everything underneath it.
	if m.showModal {
		if key.Matches(msg, m.keys.Dismiss) {
			m.showModal = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.stepFocus(-stepSeat)
	case key.Matches(msg, m.keys.Right):
		m.stepFocus(stepSeat)
	case key.Matches(msg, m.keys.Up):
		m.stepFocus(-stepRow)
	case key.Matches(msg, m.keys.Down):
		m.stepFocus(stepRow)
	case key.Matches(msg, m.keys.Select):
		m.activateSeat(m.sel.FocusedSeat())
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoom = clampZoom(m.zoom + zoomStep)
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoom = clampZoom(m.zoom - zoomStep)
	case key.Matches(msg, m.keys.ZoomReset):
		m.zoom = 1.0
	case key.Matches(msg, m.keys.Clear):
		m.sel.ClearSelection()
	case key.Matches(msg, m.keys.Numbers):
		m.showSeatNumbers = !m.showSeatNumbers
	}
	return m, nil
}

func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.state != stateReady {
		return m, nil
	}
	if m.showModal {
		m.showModal = false
		return m, nil
	}

	view := m.seatMapView()
	id, ok := view.seatAt(msg.X, msg.Y-headerLines-stageLines)
	if !ok {
		return m, nil
	}
	seat, found := m.index().Seat(id)
	if !found || !seat.Status.Interactive() {
		return m, nil
	}

	// Focus first so the detail panel updates, then run selection.
	m.sel.SetFocusedSeat(id)
	m.activateSeat(id)
	return m, nil
}

// stepFocus moves the focus along the flattened sequence. Without a current
// focus this is a no-op; focus is only ever seeded by a pointer click.
func (m *appModel) stepFocus(delta int) {
	next, ok := moveFocus(m.index().Order(), m.sel.FocusedSeat(), delta)
	if ok {
		m.sel.SetFocusedSeat(next)
	}
}

// activateSeat is the selection-limit enforcement point: the store stays
// agnostic, the shell decides whether ToggleSeat runs at all.
func (m *appModel) activateSeat(id string) {
	if id == "" {
		return
	}
	seat, ok := m.index().Seat(id)
	if !ok || !seat.Status.Interactive() {
		return
	}
	if !m.sel.IsSelected(id) && !m.sel.CanSelectMore() {
		m.showModal = true
		return
	}
	m.sel.ToggleSeat(id)
}

func (m appModel) index() *venue.Index {
	return m.cache.IndexFor(m.doc)
}

func (m appModel) selectedSet() map[string]bool {
	set := map[string]bool{}
	for _, id := range m.sel.Selected() {
		set[id] = true
	}
	return set
}

func (m appModel) seatMapView() seatMapView {
	return renderSeatMap(m.doc, m.selectedSet(), m.sel.FocusedSeat(), m.zoom, m.showSeatNumbers)
}

func (m appModel) View() string {
	switch m.state {
	case stateLoading:
		return m.headerView() + "\n\n" + fmt.Sprintf("%s Loading venue\n\n%s", m.spinner.View(), hint("Fetching venue document..."))
	case stateError:
		return m.headerView() + "\n\n" +
			lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render("Failed to load venue: "+m.err.Error()) +
			"\n\n" + hint("Press q to quit and reload to retry.")
	case stateReady:
		if m.showModal {
			return m.headerView() + "\n\n" + m.modalView()
		}
		return m.headerView() + "\n\n" + m.readyView()
	default:
		return m.headerView()
	}
}

// headerView is always exactly three lines; handleMouse depends on that.
func (m appModel) headerView() string {
	name := "Seat Map"
	if m.doc != nil && m.doc.Name != "" {
		name = m.doc.Name
	}
	title := lipgloss.NewStyle().Bold(true).Render(name)

	meta := fmt.Sprintf("%d/%d selected", m.sel.Count(), store.MaxSelected)
	if m.state == stateReady {
		meta += fmt.Sprintf(" • zoom %d%%", int(math.Round(m.zoom*100)))
		if m.doc != nil {
			meta += fmt.Sprintf(" • %d seats", m.index().Len())
		}
	}

	hints := "q quit"
	if m.state == stateReady {
		hints = "click/arrows focus • enter select • +/- zoom • 0 reset • n numbers • c clear • q quit"
	}
	return title + "\n" + hint(meta) + "\n" + hint(hints)
}

func (m appModel) readyView() string {
	view := m.seatMapView()

	mapBlock := stageBar(view.width) + "\n" +
		strings.Join(view.grid, "\n") + "\n\n" +
		legendView(m.showSeatNumbers)

	idx := m.index()
	var focusedSeat *model.SeatWithContext
	if id := m.sel.FocusedSeat(); id != "" {
		if seat, ok := idx.Seat(id); ok {
			focusedSeat = &seat
		}
	}
	sidebar := detailPanel(focusedSeat) + "\n" + summaryPanel(idx.Resolve(m.sel.Selected()))

	return lipgloss.JoinHorizontal(lipgloss.Top, mapBlock, "  ", sidebar)
}

func (m appModel) modalView() string {
	titleChip := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("3")).
		Padding(0, 2)

	content := strings.Join([]string{
		titleChip.Render("Selection Limit Reached"),
		"",
		fmt.Sprintf("You have already selected the maximum of %d seats.", store.MaxSelected),
		"Deselect a seat before selecting another one.",
		"",
		hint("enter/esc dismiss • click anywhere to close"),
	}, "\n")

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("3")).
		Render(content)
	if m.width > 0 {
		panel = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, panel)
	}
	return panel
}

func clampZoom(zoom float64) float64 {
	// Round to one decimal so repeated 0.2 steps land exactly on the bounds.
	zoom = math.Round(zoom*10) / 10
	if zoom < zoomMin {
		return zoomMin
	}
	if zoom > zoomMax {
		return zoomMax
	}
	return zoom
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}
