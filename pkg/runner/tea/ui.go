package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/spinner"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/whatson/pkg/app"
	"tableflip.dev/whatson/pkg/event"
	"tableflip.dev/whatson/pkg/logging"
	"tableflip.dev/whatson/pkg/timeutil"
)

// allCategories is the synthetic first entry of the category pane; selecting
// it requests the unscoped collection.
const allCategories = "all"

// statusRefreshInterval re-renders so window statuses track the clock.
const statusRefreshInterval = 30 * time.Second

// category item for the left list
type categoryItem struct{ name string }

func (c categoryItem) Title() string       { return c.name }
func (c categoryItem) Description() string { return "" }
func (c categoryItem) FilterValue() string { return c.name }

// row is one rendered line of the event pane. Headers come from the
// backend's partition; event rows carry the locally classified status so the
// label and any register action always agree within a render pass.
type row struct {
	header bool
	status event.Status
	count  int
	ev     event.Event
}

// Model owns all UI state: the fetched collection, the live query, the
// selected category, and the request sequencing that decides which response
// is authoritative.
type Model struct {
	svc    *app.Service
	clock  timeutil.Clock
	ctx    context.Context
	cancel context.CancelFunc

	catList list.Model
	query   textinput.Model
	spin    spinner.Model

	focus int // 0: categories, 1: events

	selectedCategory string
	collection       *event.Collection
	reqSeq           int
	loading          bool

	rows   []row
	cursor int

	status string

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a UI model backed by the Service. The clock is injectable so
// window classification stays deterministic in tests.
func New(svc *app.Service, clock timeutil.Clock) Model {
	if clock == nil {
		clock = timeutil.System()
	}

	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l := list.New([]list.Item{categoryItem{name: allCategories}}, dBlur, 24, 20)
	l.Title = "Categories"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "Filter by title, description, venue"
	ti.CharLimit = 128
	ti.Prompt = "/"

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		svc:      svc,
		clock:    clock,
		ctx:      ctx,
		cancel:   cancel,
		catList:  l,
		query:    ti,
		spin:     sp,
		focus:    1,
		cursor:   -1,
		status:   "h/l panes, j/k move, / filter, r refresh, q quit",
		focusDel: dFocus,
		blurDel:  dBlur,
	}
	m.updateFocusHeaders()
	return m
}

// Init fetches the category directory once and kicks off the initial
// (unscoped) collection load. The load itself is issued from Update so the
// sequence counter lives on the persisted model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCategories(),
		func() tea.Msg { return initialLoadMsg{} },
		m.spin.Tick,
		statusTick(),
	)
}

// messages
type initialLoadMsg struct{}
type errMsg struct{ err error }
type categoriesLoadedMsg struct{ names []string }
type eventsLoadedMsg struct {
	seq        int
	collection *event.Collection
}
type fetchFailedMsg struct {
	seq int
	err error
}
type statusTickMsg time.Time

func statusTick() tea.Cmd {
	return tea.Tick(statusRefreshInterval, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func (m *Model) loadCategories() tea.Cmd {
	return func() tea.Msg {
		names, err := m.svc.Categories(m.ctx)
		if err != nil {
			// The directory stays empty; only "all" remains selectable.
			return errMsg{err}
		}
		return categoriesLoadedMsg{names: names}
	}
}

// loadEvents issues one collection request tagged with the next sequence
// number. Only the response carrying the latest issued sequence number may
// replace the collection; anything older is discarded on receipt.
func (m *Model) loadEvents() tea.Cmd {
	m.reqSeq++
	seq := m.reqSeq
	category := m.selectedCategory
	m.loading = true
	return func() tea.Msg {
		col, err := m.svc.Events(m.ctx, category)
		if err != nil {
			return fetchFailedMsg{seq: seq, err: err}
		}
		return eventsLoadedMsg{seq: seq, collection: col}
	}
}

func (m *Model) selectedCategoryName() string {
	sel := m.catList.SelectedItem()
	if sel == nil {
		return ""
	}
	name := sel.(categoryItem).name
	if name == allCategories {
		return ""
	}
	return name
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()

	case initialLoadMsg:
		cmds = append(cmds, m.loadEvents())

	case errMsg:
		m.status = "ERR: " + msg.err.Error()
		logging.Error("category directory load failed", msg.err)

	case categoriesLoadedMsg:
		items := make([]list.Item, 0, len(msg.names)+1)
		items = append(items, categoryItem{name: allCategories})
		for _, n := range msg.names {
			items = append(items, categoryItem{name: n})
		}
		m.catList.SetItems(items)
		if m.catList.Index() < 0 {
			m.catList.Select(0)
		}

	case eventsLoadedMsg:
		if msg.seq != m.reqSeq {
			logging.Debug("stale response discarded", "seq", msg.seq, "latest", m.reqSeq)
			break
		}
		m.collection = msg.collection
		m.loading = false
		m.status = fmt.Sprintf("%d events", msg.collection.Count)
		m.rebuildRows()

	case fetchFailedMsg:
		if msg.seq != m.reqSeq {
			logging.Debug("stale failure discarded", "seq", msg.seq, "latest", m.reqSeq)
			break
		}
		// Keep whatever collection we already had.
		m.loading = false
		m.status = "ERR: " + msg.err.Error()
		logging.Error("event fetch failed", msg.err, "category", m.selectedCategory)

	case statusTickMsg:
		m.rebuildRows()
		cmds = append(cmds, statusTick())

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyPressMsg:
		if m.query.Focused() {
			switch msg.String() {
			case "enter", "esc":
				m.query.Blur()
			default:
				var cmd tea.Cmd
				m.query, cmd = m.query.Update(msg)
				cmds = append(cmds, cmd)
				// The query narrows in-memory data; no round trip.
				m.rebuildRows()
			}
			skipListRouting = true
			break
		}

		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			cmds = append(cmds, tea.Quit)
			skipListRouting = true

		case "/":
			if cmd := m.query.Focus(); cmd != nil {
				cmds = append(cmds, cmd)
			}
			cmds = append(cmds, textinput.Blink)
			skipListRouting = true

		case "h", "left":
			m.focus = 0
			m.updateFocusHeaders()
			skipListRouting = true
		case "l", "right":
			m.focus = 1
			m.updateFocusHeaders()
			skipListRouting = true

		case "j", "down":
			if m.focus == 0 {
				m.catList.CursorDown()
				m.applyCategorySelection(&cmds)
			} else {
				m.moveCursor(1)
			}
			skipListRouting = true
		case "k", "up":
			if m.focus == 0 {
				m.catList.CursorUp()
				m.applyCategorySelection(&cmds)
			} else {
				m.moveCursor(-1)
			}
			skipListRouting = true
		case "g":
			if m.focus == 0 {
				m.catList.Select(0)
				m.applyCategorySelection(&cmds)
			} else {
				m.cursor = -1
				m.moveCursor(1)
			}
			skipListRouting = true
		case "G":
			if m.focus == 0 {
				m.catList.Select(len(m.catList.Items()) - 1)
				m.applyCategorySelection(&cmds)
			} else {
				m.cursor = len(m.rows)
				m.moveCursor(-1)
			}
			skipListRouting = true

		case "r":
			cmds = append(cmds, m.loadEvents(), m.spin.Tick)
			skipListRouting = true
		}
	}

	if !skipListRouting && m.focus == 0 {
		prev := m.selectedCategoryName()
		var cmd tea.Cmd
		m.catList, cmd = m.catList.Update(msg)
		cmds = append(cmds, cmd)
		if m.selectedCategoryName() != prev {
			m.selectedCategory = m.selectedCategoryName()
			cmds = append(cmds, m.loadEvents(), m.spin.Tick)
		}
	}

	return m, tea.Batch(cmds...)
}

// applyCategorySelection reloads the collection when the pane selection
// changed. Switching category invalidates the current collection; the reload
// carries a fresh sequence number so any in-flight response goes stale.
func (m *Model) applyCategorySelection(cmds *[]tea.Cmd) {
	sel := m.selectedCategoryName()
	if sel == m.selectedCategory {
		return
	}
	m.selectedCategory = sel
	*cmds = append(*cmds, m.loadEvents(), m.spin.Tick)
}

// rebuildRows assembles the grouped presenter rows. A single instant from
// the clock classifies every event in the pass, so status labels and
// register availability cannot disagree with each other mid-render.
func (m *Model) rebuildRows() {
	now := m.clock.Now()
	m.rows = m.rows[:0]
	for _, s := range app.Sections(m.collection, m.query.Value()) {
		m.rows = append(m.rows, row{header: true, status: s.Status, count: len(s.Events)})
		for _, e := range s.Events {
			m.rows = append(m.rows, row{status: event.Classify(e, now), ev: e})
		}
	}
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if len(m.rows) == 0 {
		m.cursor = -1
		return
	}
	if m.cursor < 0 || m.cursor >= len(m.rows) || m.rows[m.cursor].header {
		m.cursor = -1
		m.moveCursor(1)
	}
}

// moveCursor advances to the next event row in the given direction, skipping
// section headers.
func (m *Model) moveCursor(delta int) {
	i := m.cursor
	for {
		i += delta
		if i < 0 || i >= len(m.rows) {
			return
		}
		if !m.rows[i].header {
			m.cursor = i
			return
		}
	}
}

func (m *Model) currentRow() *row {
	if m.cursor < 0 || m.cursor >= len(m.rows) || m.rows[m.cursor].header {
		return nil
	}
	return &m.rows[m.cursor]
}

// View renders the category pane, the grouped event pane, the query input,
// and a status line.
func (m Model) View() string {
	left := m.catList.View()
	right := m.renderEvents()

	gap := lipgloss.NewStyle().Padding(0, 1).Render
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, gap(" "), right)

	queryLine := m.query.View()
	statusLine := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.status)

	return body + "\n\n" + queryLine + "\n" + statusLine
}

func (m Model) renderEvents() string {
	header := lipgloss.NewStyle().Bold(true).Underline(true)
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	verified := lipgloss.NewStyle().Foreground(lipgloss.Color("35"))
	selected := lipgloss.NewStyle().Bold(true)

	var b strings.Builder

	title := "Events"
	if m.selectedCategory != "" {
		title = "Events: " + m.selectedCategory
	}
	if m.focus == 1 {
		title = "» " + title
	} else {
		title = "  " + title
	}
	b.WriteString(header.Render(title))
	b.WriteString("\n")
	if m.loading {
		b.WriteString(m.spin.View() + faint.Render("fetching…") + "\n")
	}
	b.WriteString("\n")

	if len(m.rows) == 0 {
		if m.collection == nil && m.loading {
			return b.String()
		}
		b.WriteString(faint.Render("  no events") + "\n")
		return b.String()
	}

	for i, r := range m.rows {
		if r.header {
			count := fmt.Sprintf(" - %d", r.count)
			b.WriteString("\n" + header.Render(r.status.Title()) + faint.Render(count) + "\n")
			continue
		}
		line := fmt.Sprintf("%s %s", r.status.Glyph().Symbol, r.ev.Title)
		if r.ev.OrgVerified {
			line += verified.Render(" ✔")
		}
		line += faint.Render("  " + r.ev.Venue)
		if i == m.cursor {
			line = selected.Render("→ ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	if r := m.currentRow(); r != nil {
		b.WriteString("\n" + m.renderDetail(*r))
	}
	return b.String()
}

// renderDetail shows the selected event; the register link is offered only
// while the window is not closed and a link exists, the poster link only
// when present.
func (m Model) renderDetail(r row) string {
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	lines := []string{
		faint.Render(fmt.Sprintf("%s · starts %s", r.status, r.ev.EventStart.Format("Jan 2 15:04"))),
	}
	if r.ev.Description != "" {
		lines = append(lines, faint.Render(r.ev.Description))
	}
	if r.ev.CanRegister(r.status) {
		lines = append(lines, "register: "+r.ev.GoogleFormURL)
	}
	if r.ev.HasPoster() {
		lines = append(lines, "poster: "+r.ev.PosterURL)
	}
	return strings.Join(lines, "\n")
}

// Run launches the interactive UI.
func Run(svc *app.Service, clock timeutil.Clock) error {
	p := tea.NewProgram(New(svc, clock), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// applySizes recalculates pane sizes from the terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	left := m.termWidth / 3
	if left < 20 {
		left = 20
	}
	if left > 32 {
		left = 32
	}
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.catList.SetSize(left, height)
}

func (m *Model) updateFocusHeaders() {
	const on = "» "
	const off = "  "
	if m.focus == 0 {
		m.catList.Title = on + "Categories"
		m.catList.SetDelegate(m.focusDel)
	} else {
		m.catList.Title = off + "Categories"
		m.catList.SetDelegate(m.blurDel)
	}
}
