// Package linear provides a line-oriented front-end for non-interactive sessions such as CI or piped input.
package linear

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/planner/internal/core/domain"
	"go.trai.ch/planner/internal/core/ports"
	"go.trai.ch/planner/internal/engine/tasklist"
	"go.trai.ch/planner/internal/ui/output"
	"go.trai.ch/planner/internal/ui/style"
	"go.trai.ch/zerr"
)

const helpText = `commands:
  text <value>          set the task text
  time <value>          set the task time
  add                   add the task from text and time
  add <text> | <time>   set both fields and add
  rm <n>                remove the task in row n
  rm #<id>              remove the task with id
  list                  show all tasks
  help                  show this help
  quit                  end the session`

// Frontend implements ports.Frontend by reading one command per line.
// All store mutations happen on the goroutine started by Start.
type Frontend struct {
	store  *tasklist.Store
	title  string
	in     io.Reader
	out    io.Writer
	output *termenv.Output
	logger ports.Logger

	stop     chan struct{}
	stopOnce sync.Once
	done     chan error
}

// NewFrontend creates a line front-end reading commands from in and printing to out.
// Nil readers and writers default to stdin and stdout.
func NewFrontend(store *tasklist.Store, settings domain.Settings, logger ports.Logger, in io.Reader, out io.Writer) *Frontend {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	f := &Frontend{
		store:  store,
		title:  settings.Title,
		in:     in,
		out:    out,
		output: output.NewWithProfile(out, output.ColorProfileANSI),
		logger: logger,
		stop:   make(chan struct{}),
		done:   make(chan error, 1),
	}
	store.Subscribe(f.onStoreEvent)

	return f
}

// Start prints the header and begins reading commands in a background goroutine.
func (f *Frontend) Start(ctx context.Context) error {
	_, _ = fmt.Fprintln(f.out, f.output.String(f.title).Bold().String())

	go func() {
		f.done <- f.run(ctx)
	}()
	return nil
}

// Stop ends the session after the command in progress.
func (f *Frontend) Stop() error {
	f.stopOnce.Do(func() { close(f.stop) })
	return nil
}

// Wait blocks until input is exhausted, quit is read, or Stop is called.
func (f *Frontend) Wait() error {
	return <-f.done
}

func (f *Frontend) run(ctx context.Context) error {
	defer func() { _ = f.Stop() }()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		reader := bufio.NewReader(f.in)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case lines <- line:
				case <-f.stop:
					readErr <- nil
					return
				}
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				} else {
					err = zerr.Wrap(err, "failed to read commands")
				}
				readErr <- err
				return
			}
		}
	}()

	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			return nil
		case <-f.stop:
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-readErr
			}
			quit, err := f.exec(line)
			if err != nil {
				f.logger.Warn(fmt.Sprintf("line %d ignored: %v", n, err))
			}
			if quit {
				return nil
			}
		}
	}
}

// exec runs a single command line and reports whether the session should end.
func (f *Frontend) exec(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "text":
		f.store.UpdateDraftText(arg)
	case "time":
		f.store.UpdateDraftTime(arg)
	case "add":
		return false, f.add(arg)
	case "rm":
		return false, f.remove(arg)
	case "list":
		f.printList()
	case "help":
		_, _ = fmt.Fprintln(f.out, helpText)
	case "quit", "exit":
		return true, nil
	default:
		return false, zerr.With(domain.ErrUnknownCommand, "command", name)
	}
	return false, nil
}

func (f *Frontend) add(arg string) error {
	if arg != "" {
		text, tm, ok := strings.Cut(arg, "|")
		if !ok {
			return zerr.With(domain.ErrMissingArgument, "expected", "<text> | <time>")
		}
		f.store.UpdateDraftText(strings.TrimSpace(text))
		f.store.UpdateDraftTime(strings.TrimSpace(tm))
	}

	// A blank field leaves the drafts in place without a message, like the store.
	if f.store.CanSubmit() {
		f.store.Submit()
	}
	return nil
}

func (f *Frontend) remove(arg string) error {
	if arg == "" {
		return zerr.With(domain.ErrMissingArgument, "expected", "<n> or #<id>")
	}

	if idText, ok := strings.CutPrefix(arg, "#"); ok {
		id, err := strconv.ParseInt(idText, 10, 64)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidRow.Error()), "row", arg)
		}
		f.store.Remove(id)
		return nil
	}

	row, err := strconv.Atoi(arg)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidRow.Error()), "row", arg)
	}
	tasks := f.store.Tasks()
	if row < 1 || row > len(tasks) {
		return zerr.With(domain.ErrInvalidRow, "row", arg)
	}
	f.store.Remove(tasks[row-1].ID)
	return nil
}

func (f *Frontend) printList() {
	tasks := f.store.Tasks()
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(f.out, f.output.String("(no tasks)").Faint().String())
		return
	}
	for i, task := range tasks {
		_, _ = fmt.Fprintf(f.out, "%d. %s\n", i+1, f.formatTask(task))
	}
}

func (f *Frontend) onStoreEvent(e tasklist.Event) {
	switch e.Kind {
	case tasklist.EventTaskAdded:
		sign := f.output.String(style.Plus).Foreground(termenv.ANSIGreen).String()
		_, _ = fmt.Fprintf(f.out, "%s %s\n", sign, f.formatTask(e.Task))
	case tasklist.EventTaskRemoved:
		sign := f.output.String(style.Minus).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(f.out, "%s %s %s\n", sign, f.formatID(e.Task.ID), e.Task.Text)
	case tasklist.EventDraftChanged:
	}
}

func (f *Frontend) formatTask(task domain.Task) string {
	return fmt.Sprintf("%s %s @ %s", f.formatID(task.ID), task.Text, task.Time)
}

func (f *Frontend) formatID(id int64) string {
	return f.output.String(fmt.Sprintf("[%d]", id)).Faint().String()
}
