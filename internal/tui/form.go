package tui

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zfake/internal/cli"
	"github.com/zarlcorp/zfake/internal/export"
	"github.com/zarlcorp/zfake/internal/fake"
	"github.com/zarlcorp/zfake/internal/record"
)

const (
	focusFields = iota
	focusCount
	focusFormat
	focusOutput
	focusTargets
)

// maxCount caps the record count accepted from the form.
const maxCount = 1_000_000

// formModel collects the field spec, count, format and output path.
type formModel struct {
	names     []string
	selected  []string // selection order is field order
	cursor    int
	count     textinput.Model
	output    textinput.Model
	formats   []string
	formatIdx int
	focus     int
	flash     string
}

// generateMsg asks the root model to build a dataset.
type generateMsg struct {
	req request
}

// request is everything needed to generate and save one dataset.
type request struct {
	spec   record.Spec
	count  int
	format string
	output string
}

func newFormModel() formModel {
	count := textinput.New()
	count.Prompt = ""
	count.CharLimit = 7
	count.Width = 10
	count.SetValue(strconv.Itoa(cli.DefaultCount))

	output := textinput.New()
	output.Prompt = ""
	output.CharLimit = 256
	output.Width = 40

	m := formModel{
		names:    fake.Fields(),
		selected: record.ParseSpec(cli.DefaultFields),
		count:    count,
		output:   output,
		formats:  export.Formats(),
	}
	m.formatIdx = max(0, slices.Index(m.formats, cli.DefaultFormat))
	m.output.Placeholder = m.defaultOutput()
	return m
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyBack) {
		return m, tea.Quit
	}

	switch msg.String() {
	case "tab":
		return m.setFocus((m.focus + 1) % focusTargets)
	case "shift+tab":
		return m.setFocus((m.focus - 1 + focusTargets) % focusTargets)
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.submit()
	}

	switch m.focus {
	case focusFields:
		return m.handleFieldsKey(msg), nil
	case focusFormat:
		return m.handleFormatKey(msg), nil
	}

	return m.updateInput(msg)
}

func (m formModel) handleFieldsKey(msg tea.KeyMsg) formModel {
	switch {
	case key.Matches(msg, zstyle.KeyUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, zstyle.KeyDown):
		if m.cursor < len(m.names)-1 {
			m.cursor++
		}
	case msg.String() == " ":
		m.toggle(m.names[m.cursor])
	}
	return m
}

func (m formModel) handleFormatKey(msg tea.KeyMsg) formModel {
	switch msg.String() {
	case " ", "right", "l":
		m.formatIdx = (m.formatIdx + 1) % len(m.formats)
	case "left", "h":
		m.formatIdx = (m.formatIdx - 1 + len(m.formats)) % len(m.formats)
	default:
		return m
	}
	m.output.Placeholder = m.defaultOutput()
	return m
}

// toggle adds name to the end of the selection, or removes it.
func (m *formModel) toggle(name string) {
	if i := slices.Index(m.selected, name); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
		return
	}
	m.selected = append(m.selected, name)
}

func (m formModel) setFocus(focus int) (formModel, tea.Cmd) {
	m.count.Blur()
	m.output.Blur()
	m.focus = focus

	switch focus {
	case focusCount:
		m.count.Focus()
		return m, textinput.Blink
	case focusOutput:
		m.output.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

func (m formModel) updateInput(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusCount:
		m.count, cmd = m.count.Update(msg)
	case focusOutput:
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

func (m formModel) format() string {
	return m.formats[m.formatIdx]
}

func (m formModel) defaultOutput() string {
	return cli.Options{Format: m.format()}.OutputPath()
}

func (m formModel) submit() (formModel, tea.Cmd) {
	if len(m.selected) == 0 {
		m.flash = "select at least one field"
		return m, clearFlashAfter()
	}

	count, err := strconv.Atoi(strings.TrimSpace(m.count.Value()))
	if err != nil || count < 0 || count > maxCount {
		m.flash = fmt.Sprintf("count must be a number from 0 to %d", maxCount)
		return m, clearFlashAfter()
	}

	req := request{
		spec:   record.SpecFromNames(m.selected),
		count:  count,
		format: m.format(),
		output: cli.Options{Format: m.format(), Output: strings.TrimSpace(m.output.Value())}.OutputPath(),
	}
	return m, func() tea.Msg { return generateMsg{req: req} }
}

func (m formModel) View() string {
	s := "\n  " + zstyle.Title.Render("fields") + "  " +
		zstyle.MutedText.Render(fmt.Sprintf("%d selected", len(m.selected))) + "\n\n"

	for i, name := range m.names {
		mark := "[ ]"
		order := "  "
		if pos := slices.Index(m.selected, name); pos >= 0 {
			mark = "[x]"
			order = fmt.Sprintf("%2d", pos+1)
		}

		line := fmt.Sprintf("%s %s %s", mark, zstyle.MutedText.Render(order), name)
		if m.focus == focusFields && i == m.cursor {
			s += zstyle.Highlight.Render("  > "+line) + "\n"
		} else {
			s += "    " + line + "\n"
		}
	}

	s += "\n"
	s += m.row(focusCount, "count", m.count.View())
	s += m.row(focusFormat, "format", "< "+m.format()+" >")
	s += m.row(focusOutput, "output", m.output.View())
	s += "\n"

	// always reserve a line for flash to prevent layout shift
	if m.flash != "" {
		s += "  " + zstyle.StatusErr.Render(m.flash) + "\n"
	} else {
		s += "\n"
	}

	return s
}

func (m formModel) row(focus int, label, value string) string {
	cursor := "  "
	if m.focus == focus {
		cursor = "> "
	}
	return fmt.Sprintf("  %s%s %s\n", cursor, zstyle.MutedText.Render(fmt.Sprintf("%-8s", label)), value)
}
