// Package tui is the interactive menu: pick a transformation, answer the
// file prompts, view the before/after result and optionally save it.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/aayushbajaj/haikumator/internal/runner"
	"github.com/aayushbajaj/haikumator/internal/storage"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenMenu screen = iota
	screenPrompt
	screenResult
	screenSave
)

const (
	kindBatch  = "batch"
	kindSeason = "season"
	kindExit   = "exit"
)

type action struct {
	label string
	kind  string
}

var menu = []action{
	{"Synonymize Haiku", runner.Synonymize},
	{"Zen-ize Haiku", runner.Zenize},
	{"Lengthen Haiku", runner.Lengthen},
	{"Antonymize Haiku", runner.Antonymize},
	{"Batch Processing", kindBatch},
	{"Detect Season", kindSeason},
	{"Exit", kindExit},
}

type fieldKind int

const (
	fieldPoem fieldKind = iota
	fieldSynonyms
	fieldAntonyms
	fieldOutputDir
)

type field struct {
	prompt string
	errMsg string
	dir    bool
}

var fields = map[fieldKind]field{
	fieldPoem:      {"Select the Haiku you want to process", "File not found. Please enter a valid filename.", false},
	fieldSynonyms:  {"Select a synonym thesaurus", "File not found. Please enter a valid filename.", false},
	fieldAntonyms:  {"Select an antonym thesaurus", "File not found. Please enter a valid filename.", false},
	fieldOutputDir: {"Select an existing folder to store the batch processed haikus", "Folder not found. Please enter an existing directory.", true},
}

func fieldsFor(kind string) []fieldKind {
	switch {
	case kind == kindSeason:
		return []fieldKind{fieldPoem}
	case kind == kindBatch:
		return []fieldKind{fieldPoem, fieldSynonyms, fieldOutputDir}
	case runner.NeedsAntonyms(kind):
		return []fieldKind{fieldPoem, fieldSynonyms, fieldAntonyms}
	default:
		return []fieldKind{fieldPoem, fieldSynonyms}
	}
}

// Defaults are prefilled into the prompts until the user enters something
// else.
type Defaults struct {
	Synonyms  string
	Antonyms  string
	OutputDir string
}

type Model struct {
	runner  *runner.Runner
	screen  screen
	cursor  int
	current action
	steps   []fieldKind
	step    int
	values  map[fieldKind]string
	last    map[fieldKind]string
	input   textinput.Model
	running bool
	runID   int
	cancel  context.CancelFunc
	events  <-chan tea.Msg
	written int
	body    string
	result  string
	err     string
	notice  string
	width   int
}

// maxDots caps the batch progress line; the count beside it keeps going.
const maxDots = 60

type doneMsg struct {
	run    int
	body   string
	result string
	err    error
}

// progressMsg reports that variant index of a batch run was written.
type progressMsg struct {
	run   int
	index int
}

// waitForEvent delivers the next message from a running batch.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

// send hands msg to the UI unless the run was cancelled.
func send(ctx context.Context, events chan<- tea.Msg, msg tea.Msg) {
	if ctx.Err() != nil {
		return
	}
	select {
	case events <- msg:
	case <-ctx.Done():
	}
}

func New(r *runner.Runner, d Defaults) Model {
	return Model{
		runner: r,
		last: map[fieldKind]string{
			fieldSynonyms:  d.Synonyms,
			fieldAntonyms:  d.Antonyms,
			fieldOutputDir: d.OutputDir,
		},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > 8 {
			m.input.Width = m.width - 8
		}
		return m, nil

	case progressMsg:
		if !m.running || msg.run != m.runID {
			return m, nil
		}
		m.written = msg.index
		return m, waitForEvent(m.events)

	case doneMsg:
		if msg.run != m.runID {
			return m, nil
		}
		m.stopBatch()
		m.running = false
		m.screen = screenResult
		m.body, m.result, m.err = msg.body, msg.result, ""
		if msg.err != nil {
			m.err = fmt.Sprintf("An error occurred: %v", msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.stopBatch()
			return m, tea.Quit
		}
		if m.running {
			if msg.Type == tea.KeyEsc && m.cancel != nil {
				return m.cancelBatch(), nil
			}
			return m, nil
		}
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenPrompt:
			return m.updatePrompt(msg)
		case screenResult:
			return m.updateResult(msg)
		case screenSave:
			return m.updateSave(msg)
		}
	}

	if m.screen == screenPrompt || m.screen == screenSave {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(menu)-1 {
			m.cursor++
		}
	case "enter":
		return m.choose(menu[m.cursor])
	default:
		if len(key) == 1 && key[0] >= '1' && int(key[0]-'1') < len(menu) {
			m.cursor = int(key[0] - '1')
			return m.choose(menu[m.cursor])
		}
	}
	return m, nil
}

func (m Model) choose(a action) (tea.Model, tea.Cmd) {
	if a.kind == kindExit {
		return m, tea.Quit
	}
	m.current = a
	m.steps = fieldsFor(a.kind)
	m.step = 0
	m.values = make(map[fieldKind]string)
	m.err, m.notice = "", ""
	m.screen = screenPrompt
	m.input = m.newInput(m.last[m.steps[0]], "path/to/file")
	return m, textinput.Blink
}

func (m Model) newInput(value, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Width = 60
	if m.width > 8 {
		ti.Width = m.width - 8
	}
	ti.SetValue(value)
	ti.Focus()
	return ti
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenMenu
		m.err = ""
		return m, nil
	case tea.KeyEnter:
		kind := m.steps[m.step]
		f := fields[kind]
		value := strings.TrimSpace(m.input.Value())
		valid := storage.FileExists(value)
		if f.dir {
			valid = storage.DirExists(value)
		}
		if !valid {
			m.err = f.errMsg
			return m, nil
		}
		m.err = ""
		m.values[kind] = value
		m.last[kind] = value
		m.step++
		if m.step < len(m.steps) {
			m.input = m.newInput(m.last[m.steps[m.step]], "path/to/file")
			return m, textinput.Blink
		}
		return m.start()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// start launches the chosen action with the collected values. Batch runs
// get their own goroutine so progress and cancellation reach the UI.
func (m Model) start() (tea.Model, tea.Cmd) {
	m.running = true
	m.runID++
	m.written = 0

	in := runner.Inputs{
		Poem:     m.values[fieldPoem],
		Synonyms: m.values[fieldSynonyms],
		Antonyms: m.values[fieldAntonyms],
	}
	if m.current.kind == kindBatch {
		return m.startBatch(in, m.values[fieldOutputDir])
	}
	return m, m.run(in)
}

func (m Model) startBatch(in runner.Inputs, dir string) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg)
	m.cancel = cancel
	m.events = events

	r, run := m.runner, m.runID
	go func() {
		defer close(events)
		n, err := r.Batch(ctx, in, dir, func(index int) {
			send(ctx, events, progressMsg{run: run, index: index})
		})
		send(ctx, events, batchDone(run, n, err))
	}()
	return m, waitForEvent(events)
}

func batchDone(run, n int, err error) doneMsg {
	switch {
	case err != nil:
		return doneMsg{run: run, body: fmt.Sprintf("Batch stopped after %d permutations.", n), err: err}
	case n == 0:
		return doneMsg{run: run, body: "No replaceable words found in thesaurus."}
	default:
		return doneMsg{run: run, body: fmt.Sprintf("Batch processing completed with %d permutations", n)}
	}
}

// stopBatch cancels the running batch, if any.
func (m *Model) stopBatch() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// cancelBatch stops the batch and shows how far it got. Messages still in
// flight from the old run are dropped by their run id.
func (m Model) cancelBatch() Model {
	m.stopBatch()
	m.runID++
	m.running = false
	m.screen = screenResult
	m.body = fmt.Sprintf("Batch cancelled after %d permutations.", m.written)
	m.result, m.err = "", ""
	return m
}

// run performs a single-output action or the season report.
func (m Model) run(in runner.Inputs) tea.Cmd {
	r, kind, run := m.runner, m.current.kind, m.runID

	return func() tea.Msg {
		if kind == kindSeason {
			src, res, err := r.Season(in.Poem)
			if err != nil {
				return doneMsg{run: run, err: err}
			}
			body := poemBoxStyle.Render(originalStyle.Render(src.Render())) + "\n\n" + res.Report()
			return doneMsg{run: run, body: body, result: res.Report()}
		}

		out, err := r.Transform(kind, in)
		if err != nil {
			return doneMsg{run: run, err: err}
		}
		return doneMsg{run: run, body: renderOutcome(out), result: out.After.Render()}
	}
}

func renderOutcome(out runner.Outcome) string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("The Haiku before processing:"))
	b.WriteString("\n")
	b.WriteString(poemBoxStyle.Render(originalStyle.Render(out.Before.Render())))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(fmt.Sprintf("The %s Haiku after processing:", out.Label)))
	b.WriteString("\n")
	b.WriteString(poemBoxStyle.Render(changedStyle.Render(out.After.Render())))
	return b.String()
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		if m.result != "" {
			m.screen = screenSave
			m.notice, m.err = "", ""
			m.input = m.newInput("", "result.txt")
			return m, textinput.Blink
		}
	case "r":
		return m.choose(m.current)
	case "enter", "esc":
		m.screen = screenMenu
		m.notice, m.err = "", ""
	}
	return m, nil
}

func (m Model) updateSave(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.screen = screenResult
		m.notice = "Result not saved."
		return m, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		m.screen = screenResult
		if err := storage.SaveText(name, m.result); err != nil {
			m.err = fmt.Sprintf("Failed to save file: %v", err)
			return m, nil
		}
		m.notice = fmt.Sprintf("Result saved to %s", name)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("~ Haikumator - Haiku Generator ~"))
	b.WriteString("\n\n")

	switch m.screen {
	case screenMenu:
		b.WriteString(labelStyle.Render("Please select your choice:"))
		b.WriteString("\n\n")
		for i, a := range menu {
			line := fmt.Sprintf(" %d. %s ", i+1, a.label)
			if i == m.cursor {
				b.WriteString(selectedOptionStyle.Render(line))
			} else {
				b.WriteString(unselectedOptionStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("↑/↓: move • enter: select • 1-7: choose • q: quit"))

	case screenPrompt:
		b.WriteString(titleStyle.Render(m.current.label))
		b.WriteString("\n")
		// step runs one past the last prompt once the action has started
		b.WriteString(labelStyle.Render(fields[m.steps[min(m.step, len(m.steps)-1)]].prompt))
		b.WriteString("\n")
		b.WriteString(promptBoxStyle.Render(m.input.View()))
		if m.err != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.err))
		}
		if m.running {
			b.WriteString("\n\n")
			b.WriteString(labelStyle.Render("Processing..."))
			if m.current.kind == kindBatch {
				b.WriteString("\n")
				b.WriteString(changedStyle.Render(strings.Repeat(".", min(m.written, maxDots))))
				b.WriteString(labelStyle.Render(fmt.Sprintf(" %d written", m.written)))
			}
		}
		b.WriteString("\n")
		if m.running && m.cancel != nil {
			b.WriteString(helpStyle.Render("esc: cancel batch • ctrl+c: quit"))
		} else {
			b.WriteString(helpStyle.Render("enter: confirm • esc: back"))
		}

	case screenResult:
		if m.body != "" {
			b.WriteString(m.body)
			b.WriteString("\n")
		}
		if m.err != "" {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(m.err))
			b.WriteString("\n")
		}
		if m.notice != "" {
			b.WriteString("\n")
			b.WriteString(noticeStyle.Render(m.notice))
			b.WriteString("\n")
		}
		help := "r: try again • enter: menu • q: quit"
		if m.result != "" {
			help = "s: save • " + help
		}
		b.WriteString(helpStyle.Render(help))

	case screenSave:
		b.WriteString(labelStyle.Render("Enter filename to save to:"))
		b.WriteString("\n")
		b.WriteString(promptBoxStyle.Render(m.input.View()))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter: save • esc: cancel"))
	}

	return b.String()
}
