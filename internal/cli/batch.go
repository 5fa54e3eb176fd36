package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"studyorg/internal/items/data"
	"studyorg/internal/items/selection"
	"studyorg/internal/logs"
)

var (
	errUsage          = errors.New("invalid arguments")
	errUnknownCommand = errors.New("unknown command")
)

func newBatchCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Run a script of organizer commands",
		Long: `Reads one command per line from FILE, or stdin when FILE is omitted or "-".
Arguments may be quoted. Blank lines and lines starting with # are skipped.

Commands:
  add CATEGORY NAME [MONTH DAY | SCORE]
  import CATEGORY NAME DETAILS      DETAILS as listed, e.g. "Due: 11/15" or "91.00%"
  select CATEGORY N
  modify [name=..] [month=..] [day=..] [score=..]
  delete
  name STUDENT
  list
  average

Each command prints its status. The exit code is 1 if any command failed.`,
		Example: `  printf 'add grade "Quiz 2" 91\naverage\n' | studyorg batch`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(err, "opening batch script %s", args[0])
				}
				defer f.Close()
				in = f
			}

			failed, err := NewBatch(a.newController(), cmd.OutOrStdout()).Run(in)
			if err != nil {
				return err
			}
			if failed > 0 {
				return errors.Errorf("%d command(s) failed", failed)
			}
			return nil
		},
	}
}

// Batch feeds scripted commands to a controller, the same way the TUI does
// from key presses.
type Batch struct {
	ctrl *selection.Controller
	out  io.Writer
}

// NewBatch creates a runner printing statuses to out.
func NewBatch(ctrl *selection.Controller, out io.Writer) *Batch {
	return &Batch{ctrl: ctrl, out: out}
}

// Run executes every command in r and returns how many produced an error status.
func (b *Batch) Run(r io.Reader) (int, error) {
	log := logs.Component("batch")
	failed := 0
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		st := b.Exec(line)
		b.print(st)
		if st.IsError() {
			failed++
			log.Warn().Int("line", lineNo).Err(st.Err).Msg(st.Text)
		}
	}
	if err := scanner.Err(); err != nil {
		return failed, errors.Wrap(err, "reading batch script")
	}
	return failed, nil
}

// Exec runs a single command line.
func (b *Batch) Exec(line string) selection.Status {
	args, err := shellwords.Parse(line)
	if err != nil {
		return errorStatus(fmt.Sprintf("Cannot parse line: %v", err), errors.Wrap(errUsage, err.Error()))
	}
	if len(args) == 0 {
		return selection.Status{}
	}

	name, args := strings.ToLower(args[0]), args[1:]
	switch name {
	case "add":
		return b.add(args)
	case "import":
		return b.importItem(args)
	case "select":
		return b.selectItem(args)
	case "modify":
		return b.modify(args)
	case "delete":
		if len(args) != 0 {
			return usage("delete")
		}
		return b.ctrl.Delete()
	case "name":
		return b.ctrl.SetStudentName(strings.Join(args, " "))
	case "list":
		writeListing(b.out, b.ctrl, data.Categories)
		return selection.Status{}
	case "average":
		return selection.Status{Text: "Current Average Grade: " + b.ctrl.Average(), Level: selection.LevelInfo}
	}
	return errorStatus("Unknown command: "+name, errUnknownCommand)
}

func (b *Batch) add(args []string) selection.Status {
	if len(args) < 2 {
		return usage("add CATEGORY NAME [MONTH DAY | SCORE]")
	}
	c, err := data.ParseCategory(args[0])
	if err != nil {
		return errorStatus(fmt.Sprintf("Unknown item type %q.", args[0]), err)
	}

	form := selection.Form{Name: args[1]}
	detail := args[2:]
	if c.UsesDate() {
		if len(detail) > 2 {
			return usage("add " + strings.ToLower(c.String()) + " NAME MONTH DAY")
		}
		if len(detail) > 0 {
			form.Month = detail[0]
		}
		if len(detail) > 1 {
			form.Day = detail[1]
		}
	} else {
		if len(detail) > 1 {
			return usage("add grade NAME SCORE")
		}
		if len(detail) == 1 {
			form.Score = detail[0]
		}
	}

	_, st := b.ctrl.Add(c, form)
	return st
}

func (b *Batch) importItem(args []string) selection.Status {
	if len(args) != 3 {
		return usage("import CATEGORY NAME DETAILS")
	}
	c, err := data.ParseCategory(args[0])
	if err != nil {
		return errorStatus(fmt.Sprintf("Unknown item type %q.", args[0]), err)
	}
	_, st := b.ctrl.Import(c, args[1], args[2])
	return st
}

func (b *Batch) selectItem(args []string) selection.Status {
	if len(args) != 2 {
		return usage("select CATEGORY N")
	}
	c, err := data.ParseCategory(args[0])
	if err != nil {
		return errorStatus(fmt.Sprintf("Unknown item type %q.", args[0]), err)
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return usage("select CATEGORY N")
	}

	items := b.ctrl.Service().List(c)
	if n < 1 || n > len(items) {
		b.ctrl.ClearSelection()
		return errorStatus(fmt.Sprintf("No %s number %d.", strings.ToLower(c.String()), n), data.ErrNotFound)
	}
	_, st := b.ctrl.Select(items[n-1].ID)
	return st
}

func (b *Batch) modify(args []string) selection.Status {
	var form selection.Form
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return usage("modify [name=..] [month=..] [day=..] [score=..]")
		}
		switch strings.ToLower(key) {
		case "name":
			form.Name = value
		case "month":
			form.Month = value
		case "day":
			form.Day = value
		case "score":
			form.Score = value
		default:
			return usage("modify [name=..] [month=..] [day=..] [score=..]")
		}
	}
	_, st := b.ctrl.Modify(form)
	return st
}

func (b *Batch) print(st selection.Status) {
	if st.Text == "" {
		return
	}
	if st.IsError() {
		fmt.Fprintf(b.out, "error: %s\n", st.Text)
		return
	}
	fmt.Fprintln(b.out, st.Text)
}

func usage(form string) selection.Status {
	return errorStatus("Usage: "+form, errUsage)
}

func errorStatus(text string, err error) selection.Status {
	return selection.Status{Text: text, Level: selection.LevelError, Err: err}
}
