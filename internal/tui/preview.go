package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/record"
)

const (
	previewRows  = 10
	maxCellWidth = 24
)

// copyToClipboard is swapped out in tests.
var copyToClipboard = clipboard.WriteAll

// previewModel shows the head of a generated dataset.
type previewModel struct {
	req     request
	dataset record.Dataset
	cursor  int
	flash   string
	isErr   bool
}

// writeMsg asks the root model to save the previewed dataset.
type writeMsg struct{}

// savedMsg reports the outcome of a write.
type savedMsg struct {
	text  string
	isErr bool
}

func newPreviewModel(req request, ds record.Dataset) previewModel {
	return previewModel{req: req, dataset: ds}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (previewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case savedMsg:
		m.flash = msg.text
		m.isErr = msg.isErr
		return m, clearFlashAfter()

	case flashMsg:
		m.flash = ""
		m.isErr = false
		return m, nil
	}

	return m, nil
}

func (m previewModel) handleKey(msg tea.KeyMsg) (previewModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, func() tea.Msg { return navigateMsg{view: viewForm} }
	}

	if key.Matches(msg, zstyle.KeyUp) {
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyDown) {
		if m.cursor < m.visible()-1 {
			m.cursor++
		}
		return m, nil
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		if len(m.dataset) == 0 {
			return m, nil
		}
		if err := copyToClipboard(recordText(m.dataset[m.cursor])); err != nil {
			return m.setFlash("copy: "+err.Error(), true), clearFlashAfter()
		}
		return m.setFlash("copied!", false), clearFlashAfter()
	}

	switch msg.String() {
	case "w":
		return m, func() tea.Msg { return writeMsg{} }
	case "r":
		req := m.req
		return m, func() tea.Msg { return generateMsg{req: req} }
	}

	return m, nil
}

func (m previewModel) setFlash(text string, isErr bool) previewModel {
	m.flash = text
	m.isErr = isErr
	return m
}

func (m previewModel) visible() int {
	return min(len(m.dataset), previewRows)
}

func recordText(r record.Record) string {
	var b strings.Builder
	for _, f := range r {
		fmt.Fprintf(&b, "%s: %s\n", f.Name, f.Value)
	}
	return b.String()
}

func (m previewModel) View() string {
	accentStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	s := "\n  " + zstyle.Subtitle.Render(m.req.spec.String()) + "  " +
		zstyle.MutedText.Render(fmt.Sprintf("%d records as %s", len(m.dataset), m.req.format)) + "\n\n"

	if len(m.dataset) == 0 {
		s += "  " + zstyle.MutedText.Render("no records") + "\n"
	} else {
		widths := m.columnWidths()
		s += "    " + accentStyle.Render(m.row(m.req.spec, widths)) + "\n"
		for i := range m.visible() {
			line := m.row(m.dataset[i].Values(), widths)
			if i == m.cursor {
				s += zstyle.Highlight.Render("  > "+line) + "\n"
			} else {
				s += "    " + line + "\n"
			}
		}
		if more := len(m.dataset) - m.visible(); more > 0 {
			s += "    " + zstyle.MutedText.Render(fmt.Sprintf("... %d more", more)) + "\n"
		}
	}

	s += "\n  " + zstyle.MutedText.Render("output ") + m.req.output + "\n\n"

	// always reserve a line for flash to prevent layout shift
	switch {
	case m.flash == "":
		s += "\n"
	case m.isErr:
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	default:
		s += "  " + zstyle.StatusOK.Render(m.flash) + "\n"
	}

	return s
}

func (m previewModel) columnWidths() []int {
	widths := make([]int, len(m.req.spec))
	for i, name := range m.req.spec {
		widths[i] = utf8.RuneCountInString(name)
	}
	for _, r := range m.dataset[:m.visible()] {
		for i, v := range r.Values() {
			if i < len(widths) {
				widths[i] = max(widths[i], utf8.RuneCountInString(v))
			}
		}
	}
	for i := range widths {
		widths[i] = min(widths[i], maxCellWidth)
	}
	return widths
}

func (m previewModel) row(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		var cell string
		if i < len(cells) {
			cell = clip(cells[i], w)
		}
		parts[i] = cell + strings.Repeat(" ", w-utf8.RuneCountInString(cell))
	}
	return strings.Join(parts, "  ")
}

// clip shortens s to at most n runes, marking the cut with "~".
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "~"
}
