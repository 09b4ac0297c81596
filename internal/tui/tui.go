// Package tui implements the interactive terminal front end: a single prompt
// that resolves URLs (or hex-encoded full hashes) against the local threat
// cache and renders the verdict.
package tui

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/MKhiriev/go-threat-cache/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Checker is the slice of the cache surface the TUI needs.
type Checker interface {
	Check(ctx context.Context, uriOrHash string, isHash bool) ([]models.Category, error)
}

// TUI owns the bubbletea program wrapping the check prompt.
type TUI struct {
	cache     Checker
	buildInfo models.AppBuildInfo
}

func New(cache Checker, buildInfo models.AppBuildInfo) *TUI {
	return &TUI{cache: cache, buildInfo: buildInfo}
}

// Run blocks until the user quits the prompt.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newModel(ctx, t.cache, t.buildInfo))
	_, err := program.Run()
	return err
}

type checkResult struct {
	input   string
	matches []models.Category
	err     error
}

type model struct {
	ctx       context.Context
	cache     Checker
	buildInfo models.AppBuildInfo

	input         textinput.Model
	checking      bool
	result        *checkResult
	notice        string
	showBuildInfo bool
}

func newModel(ctx context.Context, cache Checker, buildInfo models.AppBuildInfo) model {
	ti := textinput.New()
	ti.Placeholder = "https://example.com/path or 64 hex chars"
	ti.Prompt = "check> "
	ti.CharLimit = 2048
	ti.Focus()

	return model{ctx: ctx, cache: cache, buildInfo: buildInfo, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			query := strings.TrimSpace(m.input.Value())
			if query == "" || m.checking {
				return m, nil
			}
			m.checking = true
			m.notice = ""
			return m, m.check(query)

		case tea.KeyCtrlB:
			m.showBuildInfo = !m.showBuildInfo
			return m, nil

		case tea.KeyCtrlY:
			if m.result != nil {
				if err := clipboard.WriteAll(verdictText(m.result)); err != nil {
					m.notice = "clipboard unavailable"
				} else {
					m.notice = "verdict copied"
				}
			}
			return m, nil
		}

	case checkResult:
		m.checking = false
		m.result = &msg
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// check resolves the query off the update loop. A 64-character hex string is
// treated as a full hash, anything else as a URL.
func (m model) check(query string) tea.Cmd {
	return func() tea.Msg {
		matches, err := m.cache.Check(m.ctx, query, isFullHash(query))
		return checkResult{input: query, matches: matches, err: err}
	}
}

func isFullHash(s string) bool {
	if len(s) != models.FullHashSize*2 {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("threat cache"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.checking:
		b.WriteString(faintStyle.Render("checking..."))
	case m.result != nil:
		b.WriteString(renderVerdict(m.result))
	default:
		b.WriteString(faintStyle.Render("enter a URL or full hash and press enter"))
	}

	if m.notice != "" {
		b.WriteString("\n" + faintStyle.Render(m.notice))
	}
	if m.showBuildInfo {
		b.WriteString("\n\n" + renderBuildInfo(m.buildInfo))
	}
	b.WriteString("\n\n" + faintStyle.Render("enter: check | ctrl+y: copy verdict | ctrl+b: build info | esc: quit"))
	return b.String()
}
