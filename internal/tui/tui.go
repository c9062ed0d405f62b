// Package tui implements the root Bubble Tea model for zfake.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zfilesystem"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/cli"
	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/record"
)

type viewID int

const (
	viewForm viewID = iota
	viewPreview
)

var accent = lipgloss.Color("#5FD7AF")

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

// Model is the root TUI model.
type Model struct {
	version string
	gen     *record.Generator
	openFS  func(path string) (zfilesystem.ReadWriteFileFS, string, error)

	active  viewID
	form    formModel
	preview previewModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string, gen *record.Generator) Model {
	return Model{
		version: version,
		gen:     gen,
		openFS:  cli.OutputFS,
		active:  viewForm,
		form:    newFormModel(),
	}
}

func (m Model) Init() tea.Cmd {
	return m.form.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case navigateMsg:
		m.active = msg.view
		return m, nil

	case generateMsg:
		return m.handleGenerate(msg.req)

	case writeMsg:
		return m.handleWrite()
	}

	return m.updateActive(msg)
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.active {
	case viewForm:
		m.form, cmd = m.form.Update(msg)
	case viewPreview:
		m.preview, cmd = m.preview.Update(msg)
	}
	return m, cmd
}

func (m Model) handleGenerate(req request) (tea.Model, tea.Cmd) {
	ds, err := m.gen.Generate(context.Background(), req.spec, req.count)
	if err != nil {
		m.form.flash = err.Error()
		m.active = viewForm
		return m, clearFlashAfter()
	}

	m.preview = newPreviewModel(req, ds)
	m.active = viewPreview
	return m, m.preview.Init()
}

func (m Model) handleWrite() (tea.Model, tea.Cmd) {
	req := m.preview.req

	fsys, name, err := m.openFS(req.output)
	if err != nil {
		return m.updateActive(savedMsg{text: "write: " + err.Error(), isErr: true})
	}

	sum, err := export.Save(fsys, m.preview.dataset, req.format, name)
	if err != nil {
		return m.updateActive(savedMsg{text: "write: " + err.Error(), isErr: true})
	}
	sum.Path = req.output

	return m.updateActive(savedMsg{text: sum.String()})
}

func (m Model) View() string {
	var content string
	switch m.active {
	case viewForm:
		content = m.form.View()
	case viewPreview:
		content = m.preview.View()
	}

	header := renderHeader(m.version, viewTitle(m.active))
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

func renderHeader(version, title string) string {
	name := lipgloss.NewStyle().Foreground(accent).Bold(true).Render("zfake")
	return "  " + name + " " + zstyle.MutedText.Render(version) + "  " + zstyle.Subtitle.Render(title)
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewForm:
		return "New Dataset"
	case viewPreview:
		return "Preview"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewForm:
		return []zstyle.HelpPair{
			{Key: "tab", Desc: "next"},
			{Key: "shift+tab", Desc: "prev"},
			{Key: "j/k", Desc: "navigate"},
			{Key: "space", Desc: "toggle"},
			{Key: "enter", Desc: "generate"},
			{Key: "esc", Desc: "quit"},
		}
	case viewPreview:
		return []zstyle.HelpPair{
			{Key: "j/k", Desc: "navigate"},
			{Key: "enter", Desc: "copy record"},
			{Key: "w", Desc: "write"},
			{Key: "r", Desc: "regenerate"},
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}
