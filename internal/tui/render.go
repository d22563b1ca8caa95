package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/emojipick/internal/emoji"
)

// footerLines is the status line plus the key help line.
const footerLines = 2

func (a *App) View() string {
	var b strings.Builder
	for _, line := range a.headerLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	for _, line := range a.gridLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(a.statusLine())
	b.WriteByte('\n')
	b.WriteString(a.helpLine())
	return b.String()
}

// headerLines renders everything above the grid. Its length is the grid's
// top row for mouse hit-testing.
func (a *App) headerLines() []string {
	width := a.viewWidth()
	clip := lipgloss.NewStyle().MaxWidth(width)

	title := titleStyle.Render("Emoji Picker") +
		hintStyle.Render(fmt.Sprintf("  %d of %d", len(a.filtered), len(a.records)))
	lines := []string{
		clip.Render(title),
		clip.Render(a.search.View()),
		clip.Render(hintStyle.Render(a.hintText())),
		clip.Render(a.renderTabs()),
	}
	if a.cfg.History.Enabled && len(a.recent) > 0 {
		lines = append(lines, clip.Render(a.renderRecent()))
	}
	return lines
}

func (a *App) hintText() string {
	if a.search.Value() == "" {
		return fmt.Sprintf("Press %sK to search", a.modifier)
	}
	return fmt.Sprintf("Press %sEnter to copy first emoji", a.modifier)
}

func (a *App) renderTabs() string {
	iconsOnly := a.viewWidth() < a.cfg.UI.Tiers().Small
	parts := make([]string, 0, len(a.categories))
	for i, c := range a.categories {
		label := c.Icon + " " + c.Name
		if iconsOnly {
			label = c.Icon
		}
		if i == a.category {
			parts = append(parts, activeTabStyle.Render(label))
			continue
		}
		parts = append(parts, tabStyle.Render(label))
	}
	return strings.Join(parts, "")
}

func (a *App) renderRecent() string {
	var b strings.Builder
	b.WriteString(recentLabelStyle.Render("Recent:"))
	for i, glyph := range a.recent {
		if i < 9 {
			b.WriteString(hintStyle.Render(fmt.Sprintf(" %d", i+1)))
		} else {
			b.WriteString(" ")
		}
		b.WriteString(glyph)
	}
	return b.String()
}

// gridLines renders exactly viewportHeight lines: the materialized rows
// cropped to the viewport with a scrollbar in the last column.
func (a *App) gridLines() []string {
	vh := a.viewportHeight()
	if len(a.filtered) == 0 {
		return a.emptyLines(vh)
	}

	w := a.window()
	offset := w.ClampOffset(a.offset, vh)
	cw := a.cellWidth()
	gridWidth := cw * a.perRow
	blank := strings.Repeat(" ", gridWidth)

	// A row's glyphs sit on its first line; the rest of its span is spacing.
	lines := make(map[int]string)
	for _, it := range w.Items(offset, vh) {
		lines[it.Start] = a.renderRow(it.Index, cw, gridWidth)
		for l := it.Start + 1; l < it.End(); l++ {
			lines[l] = blank
		}
	}

	bar := scrollbar(offset, vh, w.TotalSize())
	out := make([]string, vh)
	for i := 0; i < vh; i++ {
		line, ok := lines[offset+i]
		if !ok {
			line = blank
		}
		out[i] = line + bar[i]
	}
	return out
}

func (a *App) renderRow(row, cw, gridWidth int) string {
	var b strings.Builder
	for col, rec := range a.rows[row] {
		b.WriteString(a.cellStyleFor(row*a.perRow+col, rec).Width(cw).Align(lipgloss.Center).Render(rec.Glyph))
	}
	line := b.String()
	if pad := gridWidth - lipgloss.Width(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return line
}

func (a *App) cellStyleFor(idx int, rec emoji.Record) lipgloss.Style {
	switch {
	case rec.Glyph == a.copied:
		return copiedCellStyle
	case idx == a.cursor && a.focus == focusGrid:
		return cursorCellStyle
	case idx == a.cursor:
		return idleCursorStyle
	}
	return cellStyle
}

func scrollbar(offset, viewport, total int) []string {
	out := make([]string, viewport)
	if total <= viewport {
		for i := range out {
			out[i] = " "
		}
		return out
	}
	thumb := max(1, viewport*viewport/total)
	pos := offset * (viewport - thumb) / (total - viewport)
	for i := range out {
		if i >= pos && i < pos+thumb {
			out[i] = scrollThumbStyle.Render("┃")
			continue
		}
		out[i] = scrollTrackStyle.Render("│")
	}
	return out
}

func (a *App) emptyLines(viewport int) []string {
	width := a.viewWidth()
	block := []string{
		emptyTitleStyle.Render("No emojis found"),
		emptyHintStyle.Render("Try a different search term"),
	}
	inTab := emoji.Filter(a.records, "", a.activeCategory())
	if s := emoji.Suggest(inTab, a.query); s != "" {
		block = append(block, suggestStyle.Render(fmt.Sprintf("Did you mean %q?", s)))
	}
	out := make([]string, viewport)
	top := max(0, (viewport-len(block))/2)
	for i := range out {
		j := i - top
		if j >= 0 && j < len(block) {
			out[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, block[j])
		}
	}
	return out
}

func (a *App) statusLine() string {
	clip := lipgloss.NewStyle().MaxWidth(a.viewWidth())
	switch {
	case a.status != "" && a.statusErr:
		return clip.Render(errorStyle.Render(a.status))
	case a.status != "":
		return clip.Render(statusStyle.Render(a.status))
	}
	if rec, ok := a.current(); ok && a.focus == focusGrid {
		return clip.Render(descriptionStyle.Render(rec.Glyph + "  " + rec.Description))
	}
	return ""
}

func (a *App) helpLine() string {
	scope := scopeGrid
	if a.focus == focusSearch {
		scope = scopeSearch
	}
	bindings := append(a.keys.HelpBindings(scope), a.keys.HelpBindings(scopeGlobal)...)
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return lipgloss.NewStyle().MaxWidth(a.viewWidth()).Render(strings.Join(parts, footerDescStyle.Render(" · ")))
}
