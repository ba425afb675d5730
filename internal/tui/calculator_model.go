package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/coolroof/internal/calculator"
	"github.com/rshade/coolroof/internal/logging"
	"github.com/rshade/coolroof/internal/report"
)

// CalculatorState represents the current state of the calculator TUI.
type CalculatorState int

const (
	// CalculatorStateEditing is the normal state: navigating and editing inputs.
	CalculatorStateEditing CalculatorState = iota
	// CalculatorStateQuitting indicates the application is exiting.
	CalculatorStateQuitting
)

// Default dimensions for the calculator model.
const (
	calculatorDefaultWidth  = 100
	calculatorDefaultHeight = 40
	numberInputCharLimit    = 16
	numberInputWidth        = 16
)

// RecalculateFunc computes a report for a configuration.
type RecalculateFunc func(context.Context, calculator.Configuration, report.Options) (*report.Report, error)

// ExportFunc saves the current report and returns where it was written.
type ExportFunc func(context.Context, *report.Report) (string, error)

// Options configure a CalculatorModel.
type Options struct {
	Currency string
	// Charts supplies the manual axis overrides; AutoScale comes from Inputs.
	Charts      report.ChartSettings
	Recalculate RecalculateFunc
	Export      ExportFunc
}

// CalculatorModel is the Bubble Tea model for the interactive calculator.
// Every committed input change recomputes the full report.
type CalculatorModel struct {
	ctx context.Context

	inputs  Inputs
	focused Field

	editMode bool
	input    textinput.Model
	inputErr error

	currency string
	charts   report.ChartSettings
	report   *report.Report
	err      error
	status   string

	state  CalculatorState
	keys   keyMap
	help   help.Model
	width  int
	height int

	recalculateFn RecalculateFunc
	exportFn      ExportFunc
}

func defaultRecalculate(_ context.Context, cfg calculator.Configuration, opts report.Options) (*report.Report, error) {
	return report.New(cfg, opts)
}

// NewCalculatorModel creates a calculator and computes the initial report.
func NewCalculatorModel(ctx context.Context, inputs Inputs, opts Options) *CalculatorModel {
	ti := textinput.New()
	ti.CharLimit = numberInputCharLimit
	ti.Width = numberInputWidth
	ti.Prompt = ""

	m := &CalculatorModel{
		ctx:           ctx,
		inputs:        inputs,
		input:         ti,
		currency:      opts.Currency,
		charts:        opts.Charts,
		state:         CalculatorStateEditing,
		keys:          defaultKeyMap(),
		help:          help.New(),
		width:         calculatorDefaultWidth,
		height:        calculatorDefaultHeight,
		recalculateFn: opts.Recalculate,
		exportFn:      opts.Export,
	}
	if m.recalculateFn == nil {
		m.recalculateFn = defaultRecalculate
	}
	m.recalculate()
	return m
}

// Init initializes the model.
func (m *CalculatorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.editMode {
			return m.handleEditModeKey(msg)
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *CalculatorModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = CalculatorStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.focused > 0 {
			m.focused--
		}

	case key.Matches(msg, m.keys.Down):
		if m.focused < fieldCount-1 {
			m.focused++
		}

	case key.Matches(msg, m.keys.Prev):
		m.inputs.Cycle(m.focused, -1)
		m.recalculate()

	case key.Matches(msg, m.keys.Next):
		m.inputs.Cycle(m.focused, 1)
		m.recalculate()

	case key.Matches(msg, m.keys.Edit):
		if m.focused.numeric() {
			return m, m.startEdit()
		}
		m.inputs.Cycle(m.focused, 1)
		m.recalculate()

	case key.Matches(msg, m.keys.AutoScale):
		m.inputs.AutoScale = !m.inputs.AutoScale
		m.recalculate()

	case key.Matches(msg, m.keys.Export):
		m.export()

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *CalculatorModel) startEdit() tea.Cmd {
	m.editMode = true
	m.inputErr = nil
	m.input.SetValue(m.inputs.Value(m.focused))
	if m.focused == FieldCustomEER && !(m.inputs.CustomEER > 0) {
		m.input.SetValue("")
	}
	m.input.CursorEnd()
	return m.input.Focus()
}

//nolint:exhaustive // Only enter and esc end an edit; everything else goes to the text input.
func (m *CalculatorModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		raw := m.input.Value()
		if m.focused == FieldCustomEER && raw == "" {
			raw = "0"
		}
		if err := m.inputs.Set(m.focused, raw); err != nil {
			m.inputErr = err
			return m, nil
		}
		m.endEdit()
		m.recalculate()
		return m, nil

	case tea.KeyEsc:
		m.endEdit()
		return m, nil

	case tea.KeyCtrlC:
		m.state = CalculatorStateQuitting
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *CalculatorModel) endEdit() {
	m.editMode = false
	m.inputErr = nil
	m.input.Blur()
	m.input.SetValue("")
}

// recalculate recomputes the report from the current inputs. A configuration
// error clears the report: no partial results are shown.
func (m *CalculatorModel) recalculate() {
	unitCost := m.inputs.UnitCost
	charts := m.charts
	charts.AutoScale = m.inputs.AutoScale

	opts := report.Options{
		Currency: m.currency,
		UnitCost: &unitCost,
		Charts:   charts,
	}
	r, err := m.recalculateFn(m.ctx, m.inputs.Configuration(), opts)
	if err != nil {
		logging.FromContext(m.ctx).Debug().
			Str("component", "tui").
			Err(err).
			Msg("recalculation rejected configuration")
		m.report = nil
		m.err = err
		return
	}
	m.report = r
	m.err = nil
}

func (m *CalculatorModel) export() {
	if m.exportFn == nil {
		m.status = "export is not available"
		return
	}
	if m.report == nil {
		m.status = "nothing to export: fix the configuration first"
		return
	}
	path, err := m.exportFn(m.ctx, m.report)
	if err != nil {
		m.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	m.status = "exported to " + path
}

// Inputs returns the current form values.
func (m *CalculatorModel) Inputs() Inputs {
	return m.inputs
}

// Report returns the latest report, or nil when the configuration is invalid.
func (m *CalculatorModel) Report() *report.Report {
	return m.report
}

// Err returns the configuration error of the last recalculation.
func (m *CalculatorModel) Err() error {
	return m.err
}

// View renders the current view.
func (m *CalculatorModel) View() string {
	if m.state == CalculatorStateQuitting {
		return ""
	}
	return m.renderCalculatorView()
}
