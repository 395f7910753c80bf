package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/idilsaglam/tododemo/internal/config"
	"github.com/idilsaglam/tododemo/internal/logging"
	"github.com/idilsaglam/tododemo/internal/model"
	"github.com/idilsaglam/tododemo/internal/store/memstore"
	"github.com/idilsaglam/tododemo/internal/store/seed"
	"github.com/idilsaglam/tododemo/internal/tui"
	"github.com/idilsaglam/tododemo/internal/ui"
)

// Options carry the merged config and the process streams.
type Options struct {
	Config *config.Config
	Logger *log.Logger // nil: built from Config

	Stdin          io.Reader
	Stdout, Stderr io.Writer

	// IsTerminal reports whether the TUI can run; nil checks stdin and stdout.
	IsTerminal func() bool
}

func (o *Options) defaults() {
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.IsTerminal == nil {
		o.IsTerminal = func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		}
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	ui.SetTheme(opt.Config.Theme)

	cmd, a := "ui", []string(nil)
	if len(args) > 0 {
		cmd, a = args[0], args[1:]
	}
	interactive := cmd == "ui" && opt.IsTerminal()

	if opt.Logger == nil {
		logger, closeLog, err := logging.Open(opt.Config, interactive)
		if err != nil {
			ui.Fail(opt.Stderr, "log: "+err.Error())
			return 1
		}
		defer closeLog()
		opt.Logger = logger
	}

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "ui":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: todo ui")
			return 2
		}
		if !interactive {
			opt.Logger.Debug("not a terminal, printing the list instead")
			return doList(opt, opt.Config.InitialFilter())
		}
		return doUI(opt)

	case "ls":
		f := opt.Config.InitialFilter()
		if len(a) > 1 {
			ui.Fail(opt.Stderr, "usage: todo ls [all|active|completed]")
			return 2
		}
		if len(a) == 1 {
			var err error
			if f, err = model.ParseFilter(a[0]); err != nil {
				ui.Fail(opt.Stderr, "ls: "+err.Error())
				return 2
			}
		}
		return doList(opt, f)

	case "replay":
		if len(a) != 1 {
			ui.Fail(opt.Stderr, "usage: todo replay <file|->")
			return 2
		}
		return doReplay(opt, a[0])
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `todo - an in-memory todo list

Usage:
  todo [flags] [subcommand] [args]

Subcommands:
  ui                 Interactive list (default; falls back to ls without a terminal)
  ls [filter]        Print the seeded list through all | active | completed
  replay <file|->    Apply scripted events to the seeded list and print it
  help               Show this help

Replay events, one per line (# starts a comment):
  type <text>        Set the entry buffer
  submit             Add the entry buffer as a new item
  add <text>         Add an item directly
  toggle <id>        Flip completed
  delete <id>        Remove an item
  filter <name>      all | active | completed

Flags:
  -config -theme -lang -seed -filter -log-level -log-format -log-file

Examples:
  todo -theme neon
  todo -seed demo.yaml ls active
  printf 'add buy milk\ntoggle 1\n' | todo replay -
`)
}

// -------------- subcommand impls ----------------

func newStore(opt Options, f model.Filter) (*memstore.Store, error) {
	items, err := seed.Resolve(opt.Config.SeedFile)
	if err != nil {
		return nil, err
	}
	return memstore.New(items, memstore.WithLogger(opt.Logger), memstore.WithFilter(f)), nil
}

func doUI(opt Options) int {
	s, err := newStore(opt, opt.Config.InitialFilter())
	if err != nil {
		ui.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}
	if err := tui.Run(s, ui.LabelsFor(opt.Config.Lang), opt.Logger); err != nil {
		ui.Fail(opt.Stderr, err.Error())
		return 1
	}
	return 0
}

func doList(opt Options, f model.Filter) int {
	s, err := newStore(opt, f)
	if err != nil {
		ui.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}
	fmt.Fprintln(opt.Stdout, ui.Panel(listLines(s, ui.LabelsFor(opt.Config.Lang))))
	return 0
}

func doReplay(opt Options, path string) int {
	var r io.Reader = opt.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			ui.Fail(opt.Stderr, "replay: "+err.Error())
			return 1
		}
		defer f.Close()
		r = f
	}

	s, err := newStore(opt, opt.Config.InitialFilter())
	if err != nil {
		ui.Fail(opt.Stderr, "seed: "+err.Error())
		return 1
	}

	sc := bufio.NewScanner(r)
	n, applied := 0, 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, err := memstore.ParseEvent(line)
		if err != nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("replay: line %d: %v", n, err))
			return 2
		}
		if err := s.Apply(ev); err != nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("replay: line %d: %v", n, err))
			return 2
		}
		applied++
	}
	if err := sc.Err(); err != nil {
		ui.Fail(opt.Stderr, "replay: read: "+err.Error())
		return 1
	}
	opt.Logger.Debug("replayed", "lines", n, "items", s.Len())

	fmt.Fprintln(opt.Stdout, ui.Panel(listLines(s, ui.LabelsFor(opt.Config.Lang))))
	ui.OK(opt.Stdout, fmt.Sprintf("replayed %d events", applied))
	return 0
}

// -------------- rendering helpers --------------

func listLines(s *memstore.Store, l ui.Labels) []string {
	t := ui.Current()
	c := s.Counts()

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render(l.Title),
		t.Success.Render(t.SymOK), c.Completed,
		t.Pending.Render(t.SymPending), c.Pending,
		t.Accent.Render(l.Total), c.Total,
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(l.Summary(c)))
	lines = append(lines, t.Muted.Render(ui.ProgressBar(c.Completed, c.Total, 28)))
	lines = append(lines, t.Accent.Render("["+l.FilterName(s.Filter())+"]"))
	lines = append(lines, "")
	lines = append(lines, itemLines(s.Visible(), l.Empty(s.Filter()))...)
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render(l.Footer))
	return lines
}

func itemLines(items []model.Item, empty string) []string {
	t := ui.Current()
	if len(items) == 0 {
		return []string{t.Muted.Render(empty)}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		id := fmt.Sprintf("%3d.", it.ID)
		box, style := t.BoxUnchecked, t.Muted
		if it.Completed {
			box, style = t.BoxChecked, t.Success
		}
		text := it.Text
		if r := []rune(text); len(r) > 80 {
			text = string(r[:77]) + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(id), style.Render(box), text))
	}
	return out
}
