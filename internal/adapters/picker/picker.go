package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"forkit/internal/logging"
	"forkit/internal/ports"
	"forkit/internal/theme"
)

// Picker implements ports.RootPicker with a huh select running in bubbletea
type Picker struct {
	input  io.Reader
	output io.Writer
}

// Compile-time interface verification
var _ ports.RootPicker = (*Picker)(nil)

// NewPicker creates a picker drawing on stderr so stdout stays clean
func NewPicker() *Picker {
	return &Picker{
		input:  os.Stdin,
		output: os.Stderr,
	}
}

// Pick shows the choice and blocks until the user selects or cancels
func (p *Picker) Pick(ctx context.Context, title string, items []ports.PickItem) (int, bool, error) {
	if len(items) == 0 {
		return 0, false, nil
	}

	logging.Logger.Debug("Showing picker", "title", title, "items", len(items))

	program := tea.NewProgram(
		newSelectModel(title, items),
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return 0, false, ctx.Err()
		}
		return 0, false, fmt.Errorf("failed to run picker: %w", err)
	}

	m, ok := final.(*selectModel)
	if !ok || m.cancelled {
		logging.Logger.Debug("Picker cancelled")
		return 0, false, nil
	}

	logging.Logger.Debug("Picker selection", "index", m.selected, "label", items[m.selected].Label)
	return m.selected, true, nil
}

type keyMap struct {
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// selectModel wraps a huh form so esc cancels instead of being swallowed
type selectModel struct {
	cancelled bool
	done      bool
	form      *huh.Form
	keys      keyMap
	selected  int
}

func newSelectModel(title string, items []ports.PickItem) *selectModel {
	m := &selectModel{keys: defaultKeyMap()}

	options := make([]huh.Option[int], 0, len(items))
	for i, item := range items {
		options = append(options, huh.NewOption(formatItem(item), i))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(theme.PickerTitleStyle.Render(title)).
				Options(options...).
				Value(&m.selected),
		),
	)

	return m
}

// formatItem renders "label  detail" with a muted detail
func formatItem(item ports.PickItem) string {
	if item.Detail == "" {
		return item.Label
	}
	return item.Label + "  " + theme.DetailStyle.Render(item.Detail)
}

func (m *selectModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, m.keys.Cancel) {
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.done = true
		return m, tea.Quit
	case huh.StateAborted:
		m.cancelled = true
		m.done = true
		return m, tea.Quit
	}

	return m, cmd
}

func (m *selectModel) View() string {
	if m.done {
		return ""
	}
	return m.form.View()
}
