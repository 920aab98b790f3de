package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/haru/internal/store/memstore"
	"github.com/idilsaglam/haru/internal/ui"
)

const debugLogFile = "haru-debug.log"

// Options tune startup behavior from root flags.
type Options struct {
	Date  string // starting day, YYYY-MM-DD; empty means today
	Debug bool   // write debug events to haru-debug.log
}

// Run starts the board and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			PrintHelp()
			return 0
		}
		ui.Fail("unknown argument: " + args[0])
		fmt.Fprintln(os.Stderr)
		PrintHelp()
		return 2
	}

	day := time.Now()
	if opt.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", opt.Date, time.Local)
		if err != nil {
			ui.Fail("-date: want YYYY-MM-DD, got " + opt.Date)
			return 2
		}
		day = parsed
	}

	var logger *log.Logger
	if opt.Debug {
		f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			ui.Fail("open debug log: " + err.Error())
			return 1
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{
			Level:           log.DebugLevel,
			ReportTimestamp: true,
		})
		logger.Debug("session start", "day", ui.DayKey(day))
	}

	app := ui.New(memstore.New(), ui.Options{Day: day, Logger: logger})
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		ui.Fail("run: " + err.Error())
		return 1
	}
	return 0
}

func PrintHelp() {
	fmt.Printf(`haru - a daily todo board for one sitting

Usage:
  haru [flags]

The board is in-memory only: every run starts empty and nothing is
saved when you quit.

Flags:
  -date YYYY-MM-DD   Open on a specific day (default: today)
  -debug             Write debug events to %s

Keys (entry mode):
  enter              Add the typed item
  tab / shift+tab    Indent / outdent the next item (3 levels)
  up / down          Cycle the next item's priority
  backspace          On an empty field, outdent
  esc                Switch to browse mode

Keys (browse mode):
  up/down, k/j       Move the cursor
  space / enter      Toggle the item under the cursor
  left/right, h/l    Previous / next day
  t                  Jump to today
  a / i              Back to entry mode
  q                  Quit
`, debugLogFile)
}
