package repl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/oden/geom"
	"github.com/ardnew/oden/lang"
	"github.com/ardnew/oden/log"
)

// editDoneMsg carries the environment built from the edited source.
type editDoneMsg struct {
	env  *lang.Environment
	text string
}

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to edit again after an
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the editor could not be run.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode):

  help           Print this cruft
  list           List bindings with their kinds
  clear          Clear screen
  reset          Start over with a fresh environment
  export PATH    Write part to PATH as binary STL (export PATH ascii for text)
  edit           Edit the session source in $EDITOR and run it again
  quit           Exit REPL

Usage:
  Type statements to execute them; assignments print the bound value
  and method statements print the new value of their receiver
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Esc to toggle between eval and command modes
  Use Up/Down arrows for history navigation (mode switches automatically)
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	selectedStyle   = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// echo formats a submitted line with the prompt of its mode.
func echo(mode inputMode, input string) string {
	if mode == modeCtrl {
		return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
	}

	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// stash is the input saved while the other mode is active.
type stash struct {
	text   string
	cursor int
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc    func() context.Context
	input      textinput.Model
	env        *lang.Environment
	session    []string // executed source, one entry per submission
	logger     log.Logger
	history    *History
	historyIdx int
	matches    fuzzy.Matches
	wordStart  int
	wordEnd    int
	suggIdx    int
	cycling    bool  // whether the user is tab-cycling
	preCycle   stash // input before tab-cycling began
	saved      [2]stash
	width      int
	quitting   bool
	mode       inputMode
}

// Run starts the REPL. The statements of src, if any, are executed before
// the first prompt. History is kept in cacheDir.
func Run(
	ctx context.Context,
	src *lang.Source,
	cacheDir string,
	logger log.Logger,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(ctx, "repl start",
		slog.String("cache_dir", cacheDir),
		slog.Bool("has_source", src != nil),
	)

	env := lang.NewEnvironment()

	var session []string

	if src != nil {
		if env, err = load(ctx, src, logger); err != nil {
			return err
		}

		session = append(session, strings.TrimRight(src.Text, "\n"))
	}

	var history *History
	if cacheDir != "" {
		history = NewHistory(filepath.Join(cacheDir, baseHistory))
	} else {
		history = NewHistory("")
	}

	if err := history.Load(); err != nil {
		logger.WarnContext(ctx, "could not load history", slog.String("error", err.Error()))
	}

	logger.TraceContext(ctx, "repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, env, session, history, logger)

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	env *lang.Environment,
	session []string,
	history *History,
	logger log.Logger,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		env:        env,
		session:    session,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editDoneMsg:
		m.env = msg.env
		m.session = []string{strings.TrimRight(msg.text, "\n")}

		m.logger.TraceContext(m.ctxFunc(), "repl edit complete",
			slog.Int("binding_count", len(m.env.Names())),
		)

		return m, tea.Println(resultStyle.Render("✔ — session replaced"))

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("🗴 — edit cancelled."))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("🗴 — error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	return m.input.View() + "\n" + m.statusLine() + "\n"
}

// statusLine is the line under the input: the history position, a usage
// hint, the signature of the enclosing call or the completion candidates.
func (m model) statusLine() string {
	input := m.input.Value()

	if m.historyIdx < m.history.Len() {
		return hintStyle.Render(fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len(),
		))
	}

	if strings.TrimSpace(input) == "" {
		if m.mode == modeEval {
			return hintStyle.Render("Type a statement or press Esc for commands")
		}

		return hintStyle.Render("Type: " + strings.Join(ctrlCommands, ", ") + " (press Esc to return)")
	}

	if m.mode == modeEval && !m.cycling {
		site := detectCall(input, m.input.Position())
		if h, ok := signatureFor(m.env, input, site); ok {
			return h.render(site.argIndex)
		}
	}

	return renderCandidateBar(m.matches, m.suggIdx, m.cycling, m.width)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(m.ctxFunc(), "repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.cycling = false
		m.historyIdx = m.history.Len()
		m.refreshMatches(false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if m.cycling && len(m.matches) > 0 {
			// Accept the candidate without executing.
			m.cycling = false
			m.refreshMatches(true)

			return m, nil
		}

		return m.submit()

	case tea.KeyTab:
		return m.cycle(1), nil

	case tea.KeyShiftTab:
		return m.cycle(-1), nil

	case tea.KeyUp:
		return m.recall(m.historyIdx - 1), nil

	case tea.KeyDown:
		return m.recall(m.historyIdx + 1), nil

	case tea.KeyEsc:
		if m.cycling {
			m.cycling = false
			m.input.SetValue(m.preCycle.text)
			m.input.SetCursor(m.preCycle.cursor)
			m.refreshMatches(false)

			return m, nil
		}

		if m.mode == modeEval {
			return m.switchToMode(modeCtrl), nil
		}

		return m.switchToMode(modeEval), nil
	}

	typed := msg.Type == tea.KeyRunes
	if !typed || msg.String() == " " {
		m.cycling = false
	}

	var cmd tea.Cmd

	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	m.refreshMatches(typed)

	return m, cmd
}

// cycle moves the selected candidate by step and writes it into the input.
// A single candidate is accepted at once.
func (m model) cycle(step int) model {
	n := len(m.matches)
	if n == 0 {
		return m
	}

	if n == 1 {
		m.replaceWord(m.matches[0].Str)
		m.cycling = false
		m.suggIdx = -1
		m.matches = nil

		return m
	}

	if !m.cycling {
		m.cycling = true
		m.preCycle = stash{m.input.Value(), m.input.Position()}

		if step > 0 {
			m.suggIdx = 0
		} else {
			m.suggIdx = n - 1
		}
	} else {
		m.suggIdx = (m.suggIdx + step + n) % n
	}

	m.replaceWord(m.matches[m.suggIdx].Str)

	return m
}

// replaceWord substitutes text for the current word and moves the cursor
// after it.
func (m *model) replaceWord(text string) {
	input := m.input.Value()
	cursor := m.wordStart + len(text)

	m.input.SetValue(input[:m.wordStart] + text + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes the candidates for the current input. When
// accept is set and the word already equals the only candidate, the
// candidate is accepted so the bar disappears.
func (m *model) refreshMatches(accept bool) {
	m.matches, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.cycling {
		m.suggIdx = -1
	}

	if !accept || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.cycling = false
		m.suggIdx = -1
		m.matches = nil
	}
}

// recall shows history entry i, switching to its mode. Moving past the
// newest entry clears the input.
func (m model) recall(i int) model {
	if i < 0 {
		return m
	}

	entry, err := m.history.Entry(i)
	if err != nil {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		m.refreshMatches(false)

		return m
	}

	if entry.Mode != m.mode {
		m = m.switchToMode(entry.Mode)
	}

	m.historyIdx = i
	m.input.SetValue(entry.Line)
	m.input.SetCursor(len(entry.Line))
	m.refreshMatches(false)

	return m
}

// switchToMode saves the input of the current mode and restores that of
// mode.
func (m model) switchToMode(mode inputMode) model {
	m.saved[m.mode] = stash{m.input.Value(), m.input.Position()}
	m.mode = mode

	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
	}

	m.input.SetValue(m.saved[mode].text)
	m.input.SetCursor(m.saved[mode].cursor)
	m.refreshMatches(false)

	return m
}

// submit executes the input line in the current mode.
func (m model) submit() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	mode := m.mode

	m.saved = [2]stash{}
	m.input.SetValue("")
	m.cycling = false
	m.matches = nil

	if err := m.history.Add(input, mode); err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not save history",
			slog.String("error", err.Error()),
		)
	}

	m.historyIdx = m.history.Len()

	if mode == modeCtrl {
		m.logger.TraceContext(m.ctxFunc(), "repl command", slog.String("input", input))

		return m.command(input)
	}

	m.logger.TraceContext(m.ctxFunc(), "repl eval", slog.String("input", input))

	out, err := m.eval(input)
	if err != nil {
		return m, tea.Sequence(
			tea.Println(echo(mode, input)),
			tea.Println(errorStyle.Render(strings.TrimRight(lang.WrapError(err).Render(), "\n"))),
		)
	}

	cmds := []tea.Cmd{tea.Println(echo(mode, input))}
	for _, line := range out {
		cmds = append(cmds, tea.Println(resultStyle.Render(line)))
	}

	return m, tea.Sequence(cmds...)
}

// eval executes input against a copy of the environment, which replaces
// the current one only when every statement succeeds. It returns one line
// per binding that changed.
func (m *model) eval(input string) ([]string, error) {
	ctx := m.ctxFunc()
	env := m.env.Clone()

	stmts, err := lang.Parse(ctx, lang.NewSource("", input), lang.WithLogger(m.logger))
	if err != nil {
		return nil, err
	}

	var out []string

	for _, s := range stmts {
		if err := env.Execute(s); err != nil {
			return nil, err
		}

		var name string

		switch s.Kind {
		case lang.StatementAssignment:
			name = s.Name
		case lang.StatementExpr:
			name = s.Expr.Root().Name
		default:
			continue
		}

		v, _ := env.Get(name)
		out = append(out, name+" = "+v.String())
	}

	m.env = env
	m.session = append(m.session, input)

	return out, nil
}

// command runs a control-mode command.
func (m model) command(input string) (model, tea.Cmd) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return m, nil
	}

	name, args := fields[0], fields[1:]
	echoed := tea.Println(echo(modeCtrl, input))

	m.logger.TraceContext(m.ctxFunc(), "repl exec command",
		slog.String("command", name),
		slog.Any("args", args),
	)

	reply := func(style lipgloss.Style, text string) (model, tea.Cmd) {
		return m, tea.Sequence(echoed, tea.Println(style.Render(text)))
	}

	switch name {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echoed, tea.Quit)

	case "h", "help":
		return reply(lipgloss.NewStyle(), helpMessage())

	case "l", "list":
		return reply(lipgloss.NewStyle(), listBindings(m.env))

	case "c", "clear":
		return m, tea.ClearScreen

	case "r", "reset":
		m.env = lang.NewEnvironment()
		m.session = nil

		return reply(hintStyle, "environment reset")

	case "x", "export":
		path, err := m.export(args)
		if err != nil {
			return reply(errorStyle, strings.TrimRight(lang.WrapError(err).Render(), "\n"))
		}

		return reply(resultStyle, "✔ — wrote "+path)

	case "e", "edit":
		return m, tea.Sequence(echoed, m.edit())

	default:
		return m, tea.Println(
			errorStyle.Render("Unknown command: " + name + " (try 'help')"),
		)
	}
}

// export writes the accumulated part to the path in args. A second
// argument "ascii" selects the text format.
func (m model) export(args []string) (string, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", fmt.Errorf("%w: export PATH [ascii]", ErrUsage)
	}

	format := geom.FormatBinary
	if len(args) == 2 {
		if !strings.EqualFold(args[1], "ascii") {
			return "", fmt.Errorf("%w: export PATH [ascii]", ErrUsage)
		}

		format = geom.FormatASCII
	}

	if err := lang.Export(args[0], m.env.Part(), format); err != nil {
		return "", err
	}

	return args[0], nil
}

// edit opens the session source in the editor.
func (m model) edit() tea.Cmd {
	cmd := &editCommand{
		source:  strings.Join(m.session, "\n") + "\n",
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		switch {
		case errors.Is(err, ErrEditDeclined):
			return editDeclinedMsg{}
		case err != nil:
			return editErrorMsg{err: err}
		case cmd.env == nil:
			return editCancelledMsg{}
		default:
			return editDoneMsg{env: cmd.env, text: cmd.text}
		}
	})
}

// listBindings describes every binding of env, one per line.
func listBindings(env *lang.Environment) string {
	var b strings.Builder

	for _, name := range env.Names() {
		v, _ := env.Get(name)

		if v.Kind() == lang.KindType {
			fmt.Fprintf(&b, "  %s %s\n", name, hintStyle.Render(v.Builtin().Signature()))

			continue
		}

		fmt.Fprintf(&b, "  %s %s %s\n", name, v.Kind(), hintStyle.Render(v.String()))
	}

	return b.String()
}
