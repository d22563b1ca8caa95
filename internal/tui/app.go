package tui

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/emojipick/internal/config"
	"github.com/jask/emojipick/internal/emoji"
	"github.com/jask/emojipick/internal/service"
	"github.com/jask/emojipick/internal/virtual"
)

// App is the emoji picker screen.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	keys     *KeyRegistry

	records    []emoji.Record
	categories []emoji.Category
	category   int

	search      textinput.Model
	focus       focusArea
	query       string // debounced query the filter runs on
	pending     string // latest typed value, possibly not yet applied
	debounceSeq int

	filtered []emoji.Record
	rows     [][]emoji.Record
	perRow   int
	cursor   int // index into filtered
	offset   int // grid scroll offset in lines

	width  int
	height int

	copied       string
	copiedSeq    int
	status       string
	statusErr    bool
	recent       []string
	confirmClear bool
	confirmSeq   int

	modifier string // "Ctrl+" or "⌘"
}

// Services are the side-effecting collaborators. Maintenance may be nil when
// history is disabled.
type Services struct {
	Copy        *service.CopyService
	Maintenance *service.MaintenanceService
}

type focusArea int

const (
	focusSearch focusArea = iota
	focusGrid
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minCellWidth  = 4
)

// New builds the picker over records. records must already be validated.
func New(ctx context.Context, cfg config.Config, records []emoji.Record, services Services) *App {
	ti := textinput.New()
	ti.Prompt = "🔍 "
	ti.Placeholder = "Search emojis by name or keyword.."
	ti.Focus()

	modifier := "Ctrl+"
	if runtime.GOOS == "darwin" {
		modifier = "⌘"
	}

	a := &App{
		ctx:        ctx,
		cfg:        config.Normalize(cfg),
		services:   services,
		keys:       NewKeyRegistry(),
		records:    records,
		categories: emoji.Categories(),
		search:     ti,
		modifier:   modifier,
	}
	a.refilter()
	return a
}

// SelectCategory makes id the active category tab. Unknown ids are ignored.
func (a *App) SelectCategory(id emoji.CategoryID) {
	for i, c := range a.categories {
		if c.ID == id {
			a.setCategory(i)
			return
		}
	}
}

// Category returns the active category tab.
func (a *App) Category() emoji.CategoryID {
	return a.activeCategory()
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.loadRecent())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.search.Width = max(10, m.Width-6)
		a.relayout()
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		return a.handleMouse(m)
	case debounceMsg:
		if m.seq == a.debounceSeq {
			a.applyQuery(m.query)
		}
		return a, nil
	case copiedExpiredMsg:
		if m.seq == a.copiedSeq {
			if a.status == copiedStatus(a.copied) {
				a.status = ""
			}
			a.copied = ""
		}
		return a, nil
	case copyDoneMsg:
		if m.err != nil {
			a.setError(m.err)
			return a, nil
		}
		return a, a.loadRecent()
	case recentMsg:
		a.recent = []string(m)
		a.relayout()
		return a, nil
	case confirmExpiredMsg:
		if m.seq == a.confirmSeq {
			a.confirmClear = false
		}
		return a, nil
	case historyClearedMsg:
		a.recent = nil
		a.status, a.statusErr = "history cleared", false
		a.relayout()
		return a, nil
	case errMsg:
		a.setError(m.error)
		return a, nil
	}

	if a.focus == focusSearch {
		var cmd tea.Cmd
		a.search, cmd = a.search.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := scopeGrid
	if a.focus == focusSearch {
		scope = scopeSearch
	}
	b := a.keys.Lookup(m.String(), scope)
	if b == nil {
		if a.focus == focusSearch {
			return a.updateSearch(m)
		}
		// Typing from the grid jumps back into the search field.
		if m.Type == tea.KeyRunes && !m.Alt {
			cmd := a.focusSearch()
			model, typed := a.updateSearch(m)
			return model, tea.Batch(cmd, typed)
		}
		return a, nil
	}

	switch b.Action {
	case actionQuit:
		return a, tea.Quit
	case actionFocusSearch:
		return a, a.focusSearch()
	case actionCopyFirst:
		if len(a.filtered) == 0 {
			return a, nil
		}
		return a, a.copyRecord(a.filtered[0])
	case actionNextCategory:
		a.setCategory(a.category + 1)
	case actionPrevCategory:
		a.setCategory(a.category - 1)
	case actionClearSearch:
		a.search.Reset()
		a.pending = ""
		a.debounceSeq++
		a.applyQuery("")
	case actionFocusGrid:
		if len(a.filtered) > 0 {
			a.focus = focusGrid
			a.search.Blur()
		}
	case actionBackToSearch:
		return a, a.focusSearch()
	case actionUp:
		a.moveCursor(-a.perRow)
	case actionDown:
		a.moveCursor(a.perRow)
	case actionLeft:
		a.moveCursor(-1)
	case actionRight:
		a.moveCursor(1)
	case actionPageUp:
		a.moveCursor(-a.perRow * a.pageRows())
	case actionPageDown:
		a.moveCursor(a.perRow * a.pageRows())
	case actionJumpTop:
		a.moveCursor(-len(a.filtered))
	case actionJumpBottom:
		a.moveCursor(len(a.filtered))
	case actionCopy:
		if rec, ok := a.current(); ok {
			return a, a.copyRecord(rec)
		}
	case actionCopyRecent:
		idx, err := strconv.Atoi(m.String())
		if err != nil || idx < 1 || idx > len(a.recent) {
			return a, nil
		}
		if rec, ok := a.lookupGlyph(a.recent[idx-1]); ok {
			return a, a.copyRecord(rec)
		}
	case actionClearHistory:
		return a, a.clearHistory()
	}
	return a, nil
}

func (a *App) updateSearch(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(m)
	value := a.search.Value()
	if value == a.pending {
		return a, cmd
	}
	a.pending = value
	a.debounceSeq++
	if a.cfg.UI.Debounce <= 0 {
		a.applyQuery(value)
		return a, cmd
	}
	return a, tea.Batch(cmd, debounceCmd(a.debounceSeq, value, a.cfg.UI.Debounce))
}

func (a *App) focusSearch() tea.Cmd {
	a.focus = focusSearch
	return a.search.Focus()
}

func (a *App) handleMouse(m tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.cfg.UI.Mouse {
		return a, nil
	}
	switch m.Button {
	case tea.MouseButtonWheelUp:
		a.scroll(-a.cfg.UI.RowHeight)
		return a, nil
	case tea.MouseButtonWheelDown:
		a.scroll(a.cfg.UI.RowHeight)
		return a, nil
	}
	if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
		return a, nil
	}
	idx, ok := a.cellAt(m.X, m.Y)
	if !ok {
		return a, nil
	}
	a.cursor = idx
	a.focus = focusGrid
	a.search.Blur()
	return a, a.copyRecord(a.filtered[idx])
}

// cellAt maps a screen position to an index into filtered.
func (a *App) cellAt(x, y int) (int, bool) {
	top := len(a.headerLines())
	line := y - top
	if line < 0 || line >= a.viewportHeight() || len(a.filtered) == 0 {
		return 0, false
	}
	abs := a.offset + line
	row := abs / a.cfg.UI.RowHeight
	if row >= len(a.rows) {
		return 0, false
	}
	col := x / a.cellWidth()
	if col < 0 || col >= len(a.rows[row]) {
		return 0, false
	}
	return row*a.perRow + col, true
}

func (a *App) setCategory(i int) {
	n := len(a.categories)
	a.category = ((i % n) + n) % n
	a.cursor = 0
	a.offset = 0
	a.refilter()
}

func (a *App) applyQuery(q string) {
	a.query = q
	a.cursor = 0
	a.offset = 0
	a.refilter()
}

func (a *App) activeCategory() emoji.CategoryID {
	return a.categories[a.category].ID
}

func (a *App) refilter() {
	a.filtered = emoji.Filter(a.records, a.query, a.activeCategory())
	if len(a.filtered) == 0 && a.focus == focusGrid {
		a.focus = focusSearch
		a.search.Focus()
	}
	a.relayout()
}

// relayout recomputes rows for the current width and keeps the cursor visible.
func (a *App) relayout() {
	a.perRow = a.cfg.UI.Tiers().ItemsPerRow(a.viewWidth())
	a.rows = emoji.Rows(a.filtered, a.perRow)
	if a.cursor >= len(a.filtered) {
		a.cursor = max(0, len(a.filtered)-1)
	}
	a.ensureCursorVisible()
}

func (a *App) window() virtual.Window {
	return virtual.Window{Count: len(a.rows), RowHeight: a.cfg.UI.RowHeight, Overscan: a.cfg.UI.Overscan}
}

func (a *App) ensureCursorVisible() {
	w := a.window()
	if a.perRow < 1 {
		return
	}
	a.offset = w.ScrollTo(a.cursor/a.perRow, a.offset, a.viewportHeight())
}

// scroll moves the viewport and pulls the cursor along into the rows now
// visible, so the next relayout or key press does not snap back.
func (a *App) scroll(delta int) {
	a.offset = a.window().ClampOffset(a.offset+delta, a.viewportHeight())
	if len(a.rows) == 0 || a.perRow < 1 {
		return
	}
	rh := a.cfg.UI.RowHeight
	first := (a.offset + rh - 1) / rh
	last := max(first, (a.offset+a.viewportHeight())/rh-1)
	last = min(last, len(a.rows)-1)
	first = min(first, last)
	row, col := a.cursor/a.perRow, a.cursor%a.perRow
	switch {
	case row < first:
		row = first
	case row > last:
		row = last
	default:
		return
	}
	a.cursor = min(row*a.perRow+col, len(a.filtered)-1)
}

func (a *App) moveCursor(delta int) {
	if len(a.filtered) == 0 {
		return
	}
	a.cursor = min(max(0, a.cursor+delta), len(a.filtered)-1)
	a.ensureCursorVisible()
}

func (a *App) pageRows() int {
	return max(1, a.viewportHeight()/a.cfg.UI.RowHeight)
}

func (a *App) current() (emoji.Record, bool) {
	if a.cursor < 0 || a.cursor >= len(a.filtered) {
		return emoji.Record{}, false
	}
	return a.filtered[a.cursor], true
}

func (a *App) lookupGlyph(glyph string) (emoji.Record, bool) {
	for _, r := range a.records {
		if r.Glyph == glyph {
			return r, true
		}
	}
	return emoji.Record{}, false
}

func (a *App) viewWidth() int {
	if a.width <= 0 {
		return defaultWidth
	}
	return a.width
}

func (a *App) viewHeight() int {
	if a.height <= 0 {
		return defaultHeight
	}
	return a.height
}

// viewportHeight is the number of grid lines between header and footer.
func (a *App) viewportHeight() int {
	return max(1, a.viewHeight()-len(a.headerLines())-footerLines)
}

func (a *App) cellWidth() int {
	return max(minCellWidth, (a.viewWidth()-1)/max(1, a.perRow))
}

func (a *App) setError(err error) {
	a.status = "error: " + err.Error()
	a.statusErr = true
}

// commands

func (a *App) copyRecord(rec emoji.Record) tea.Cmd {
	a.copiedSeq++
	a.copied = rec.Glyph
	a.status, a.statusErr = copiedStatus(rec.Glyph), false
	seq := a.copiedSeq
	return tea.Batch(a.copyCmd(rec), tea.Tick(a.cfg.UI.CopiedTimeout, func(time.Time) tea.Msg {
		return copiedExpiredMsg{seq: seq}
	}))
}

func (a *App) copyCmd(rec emoji.Record) tea.Cmd {
	return func() tea.Msg {
		if a.services.Copy == nil {
			return copyDoneMsg{}
		}
		return copyDoneMsg{err: a.services.Copy.Copy(a.ctx, rec)}
	}
}

func (a *App) loadRecent() tea.Cmd {
	if a.services.Copy == nil || !a.cfg.History.Enabled {
		return nil
	}
	return func() tea.Msg {
		recent, err := a.services.Copy.Recent(a.ctx, a.cfg.History.Limit)
		if err != nil {
			return errMsg{err}
		}
		return recentMsg(recent)
	}
}

func (a *App) clearHistory() tea.Cmd {
	if a.services.Maintenance == nil {
		return func() tea.Msg { return errMsg{fmt.Errorf("history is disabled")} }
	}
	if !a.confirmClear {
		a.confirmClear = true
		a.confirmSeq++
		a.status, a.statusErr = "press X again to clear history", false
		return confirmTimerCmd(a.confirmSeq)
	}
	a.confirmClear = false
	return func() tea.Msg {
		if err := a.services.Maintenance.ClearHistory(a.ctx); err != nil {
			return errMsg{err}
		}
		return historyClearedMsg{}
	}
}

func debounceCmd(seq int, query string, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq, query: query}
	})
}

// confirmTimerCmd returns a command that fires confirmExpiredMsg after 2 seconds.
func confirmTimerCmd(seq int) tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return confirmExpiredMsg{seq: seq}
	})
}

func copiedStatus(glyph string) string {
	return fmt.Sprintf("Copied %s to clipboard!", glyph)
}

type debounceMsg struct {
	seq   int
	query string
}

type copiedExpiredMsg struct{ seq int }

type copyDoneMsg struct{ err error }

type recentMsg []string

type historyClearedMsg struct{}

type confirmExpiredMsg struct{ seq int }

type errMsg struct{ error }
