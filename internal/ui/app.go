package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/haru/internal/model"
	"github.com/idilsaglam/haru/internal/store/memstore"
)

// Options tune the app at startup.
type Options struct {
	Day    time.Time   // starting day; zero means today
	Logger *log.Logger // nil disables debug logging
}

// App is the Bubble Tea model. Two modes, the same split the inline add in a
// plain list UI has: entry mode owns the text input and the draft keys,
// browse mode owns the cursor, toggling, and day navigation.
type App struct {
	store *memstore.Store
	day   time.Time

	ti    textinput.Model
	draft Draft

	browsing bool
	cursor   int

	// derived display order, rebuilt when the store version moves
	visible []model.Item
	seenVer uint64
	stale   bool

	keys   keyMap
	help   help.Model
	logger *log.Logger

	width  int
	height int
}

func New(store *memstore.Store, opts Options) App {
	day := opts.Day
	if day.IsZero() {
		day = time.Now()
	}

	ti := textinput.New()
	ti.Prompt = "" // the draft gutter renders its own prefix
	ti.Placeholder = "할 일을 입력하세요..."
	ti.CharLimit = 200
	ti.Focus()

	return App{
		store:  store,
		day:    day,
		ti:     ti,
		draft:  NewDraft(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: opts.Logger,
		stale:  true,
	}
}

func (a App) Init() tea.Cmd { return textinput.Blink }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.browsing {
			return a.updateBrowse(msg)
		}
		return a.updateEntry(msg)
	}

	var cmd tea.Cmd
	a.ti, cmd = a.ti.Update(msg)
	return a, cmd
}

// updateEntry handles keys while the text input has focus. Tab/Shift+Tab and
// the arrows steer the draft; everything else is regular text editing.
func (a App) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Indent):
		a.draft.Indent()
		return a, nil

	case key.Matches(msg, a.keys.Outdent):
		a.draft.Outdent()
		return a, nil

	case key.Matches(msg, a.keys.RaisePrio):
		a.draft.Raise()
		return a, nil

	case key.Matches(msg, a.keys.LowerPrio):
		a.draft.Lower()
		return a, nil

	case key.Matches(msg, a.keys.Submit):
		it, ok := a.draft.Commit(a.ti.Value(), false)
		if !ok {
			return a, nil
		}
		a.store.Append(DayKey(a.day), it)
		a.ti.SetValue("")
		a.stale = true
		a.debugf("append", "id", it.ID, "depth", it.Depth, "priority", it.Priority.Label())
		return a, nil

	case key.Matches(msg, a.keys.Browse):
		a.browsing = true
		a.keys.browsing = true
		a.ti.Blur()
		return a, nil

	case msg.String() == "backspace":
		if a.draft.OutdentOnEmptyBackspace(a.ti.Value() == "") {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.ti, cmd = a.ti.Update(msg)
	return a, cmd
}

// updateBrowse handles keys while the cursor owns the board.
func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.CursorUp):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.CursorDown):
		if a.cursor < len(a.view())-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Toggle):
		view := a.view()
		if a.cursor >= 0 && a.cursor < len(view) {
			id := view[a.cursor].ID
			a.store.Toggle(DayKey(a.day), id)
			a.stale = true
			a.debugf("toggle", "id", id)
		}
		return a, nil

	case key.Matches(msg, a.keys.PrevDay):
		return a.gotoDay(PrevDay(a.day)), nil

	case key.Matches(msg, a.keys.NextDay):
		return a.gotoDay(NextDay(a.day)), nil

	case key.Matches(msg, a.keys.Today):
		return a.gotoDay(time.Now()), nil

	case key.Matches(msg, a.keys.Entry):
		a.browsing = false
		a.keys.browsing = false
		a.ti.Focus()
		return a, textinput.Blink
	}
	return a, nil
}

func (a App) gotoDay(day time.Time) App {
	a.day = day
	a.cursor = 0
	a.stale = true
	a.debugf("goto day", "day", DayKey(day))
	return a
}

// view returns the derived display order, rebuilding it only when the store
// or the shown day changed since the last build.
func (a *App) view() []model.Item {
	if a.stale || a.seenVer != a.store.Version() {
		a.visible = model.OrderForDisplay(a.store.Items(DayKey(a.day)))
		a.seenVer = a.store.Version()
		a.stale = false
		if a.cursor >= len(a.visible) {
			a.cursor = len(a.visible) - 1
		}
		if a.cursor < 0 {
			a.cursor = 0
		}
	}
	return a.visible
}

func (a App) View() string {
	var b strings.Builder

	done, pending := a.store.Stats(DayKey(a.day))
	b.WriteString(fmt.Sprintf("%s  %s   %s %d  %s %d\n\n",
		titleStyle.Render("하루"),
		headerStyle.Render(FormatLong(a.day)),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
	))

	view := a.view()
	if len(view) == 0 {
		b.WriteString(mutedStyle.Render("할 일이 없습니다") + "\n")
	}
	for i, it := range view {
		b.WriteString(a.renderItem(i, it))
		b.WriteByte('\n')
	}

	if !a.browsing {
		b.WriteByte('\n')
		b.WriteString(a.renderInput())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(helpStyle.Render(a.help.View(a.keys)))

	return panelStyle.Render(b.String())
}

// renderItem draws one board line: cursor, depth indent, priority dot,
// checkbox, text, priority label.
func (a App) renderItem(i int, it model.Item) string {
	prefix := "  "
	if a.browsing && i == a.cursor {
		prefix = selectedStyle.Render("> ")
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.Text
	if it.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}

	ps := priorityStyle(it.Priority)
	return fmt.Sprintf("%s%s%s %s %s %s",
		prefix,
		indent(it.Depth),
		ps.Render(dotMarker),
		box,
		text,
		ps.Render(it.Priority.Label()),
	)
}

// renderInput draws the entry line: the pending depth as indentation, the
// pending priority as a colored dot + label, then the text field.
func (a App) renderInput() string {
	ps := priorityStyle(a.draft.Priority)
	return fmt.Sprintf("  %s%s %s %s",
		indent(a.draft.Depth),
		ps.Render(dotMarker),
		ps.Render(a.draft.Priority.Label()),
		a.ti.View(),
	)
}

func (a App) debugf(msg string, kv ...any) {
	if a.logger != nil {
		a.logger.Debug(msg, kv...)
	}
}
