package anchor

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const (
	Red     = color.FgRed
	Green   = color.FgGreen
	Yellow  = color.FgYellow
	Blue    = color.FgBlue
	Magenta = color.FgMagenta
	Cyan    = color.FgCyan
)

// Window is the terminal surface every routine logs to:
// plain lines scroll up, while the most recently active
// lot keeps a single status line redrawn in place
type Window struct {
	lock        sync.Mutex
	out         io.Writer
	interactive bool
	color       *color.Color
	lots        map[string]*Lot
	status      string
}

type Lot struct {
	window *Window
	name   string
}

func New(attribute color.Attribute) *Window {
	return &Window{
		out:         os.Stdout,
		interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
		color:       color.New(attribute),
		lots:        make(map[string]*Lot),
	}
}

// NewWriter builds a non-interactive window:
// lot status updates are not drawn, only closures are
func NewWriter(out io.Writer, attribute color.Attribute) *Window {
	window := New(attribute)
	window.out = out
	window.interactive = false
	return window
}

func (window *Window) Printf(format string, a ...interface{}) {
	window.lock.Lock()
	defer window.lock.Unlock()
	window.println(fmt.Sprintf(format, a...))
}

// AnchorPrintf prints a highlighted line,
// used to report failures
func (window *Window) AnchorPrintf(format string, a ...interface{}) {
	window.lock.Lock()
	defer window.lock.Unlock()
	window.println(window.color.Sprintf(format, a...))
}

func (window *Window) Lot(name string) *Lot {
	window.lock.Lock()
	defer window.lock.Unlock()
	if lot, ok := window.lots[name]; ok {
		return lot
	}
	lot := &Lot{window, name}
	window.lots[name] = lot
	return lot
}

// callers must hold the lock
func (window *Window) println(line string) {
	window.clear()
	fmt.Fprintln(window.out, line)
	window.draw()
}

func (window *Window) clear() {
	if !window.interactive || len(window.status) == 0 {
		return
	}
	cursor.ClearLine()
	cursor.StartOfLine()
}

func (window *Window) draw() {
	if !window.interactive || len(window.status) == 0 {
		return
	}
	fmt.Fprint(window.out, window.status)
}

func (window *Window) label(name string) string {
	return window.color.Sprint(name)
}

func (lot *Lot) Print(message string) {
	lot.window.lock.Lock()
	defer lot.window.lock.Unlock()
	lot.window.clear()
	lot.window.status = fmt.Sprintf("%s: %s", lot.window.label(lot.name), message)
	lot.window.draw()
}

func (lot *Lot) Printf(format string, a ...interface{}) {
	lot.Print(fmt.Sprintf(format, a...))
}

// Wipe clears the lot status line without
// leaving any trace of it
func (lot *Lot) Wipe() {
	lot.window.lock.Lock()
	defer lot.window.lock.Unlock()
	lot.window.clear()
	lot.window.status = ""
}

// Close terminates the lot, printing a final
// persistent line with the optional summary info
func (lot *Lot) Close(info ...string) {
	lot.window.lock.Lock()
	defer lot.window.lock.Unlock()
	lot.window.clear()
	lot.window.status = ""
	line := fmt.Sprintf("%s: done", lot.window.label(lot.name))
	if len(info) > 0 {
		line = fmt.Sprintf("%s (%s)", line, strings.Join(info, ", "))
	}
	fmt.Fprintln(lot.window.out, line)
	delete(lot.window.lots, lot.name)
}
