package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"studyorg/internal/config"
	"studyorg/internal/items/selection"
	"studyorg/internal/items/service"
	"studyorg/internal/logs"
	"studyorg/internal/tui"
)

// app carries the parsed flags and, once the root pre-run has loaded it,
// the resolved configuration shared by every subcommand.
type app struct {
	flags config.CLIFlags
	cfg   *config.Config
}

// Execute runs the command tree against os.Args and returns the exit code.
func Execute() int {
	defer logs.Close()

	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the studyorg command tree. With no subcommand it
// launches the interactive TUI.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "studyorg",
		Short:         "Keyboard organizer for assignments, exams and grades",
		Long:          `studyorg keeps three lists (assignments, exams, grades) and reports your current grade average.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTUI()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.ConfigPath, "config", "", "Config file (default ~/.config/studyorg/config.yaml)")
	pf.StringVar(&a.flags.StudentName, "name", "", "Student name shown in the greeting")
	pf.StringVar(&a.flags.Theme, "theme", "", "Colour theme: dark or light")
	pf.StringVar(&a.flags.DefaultTab, "tab", "", "Initial tab: assignments, exams or grades")
	pf.BoolVar(&a.flags.NoSeed, "no-seed", false, "Start without the demonstration items")

	root.AddCommand(
		newListCommand(a),
		newAverageCommand(),
		newBatchCommand(a),
		newReportCommand(a),
	)
	return root
}

// setup loads the configuration and points the logger at log_dir. The TUI
// falls back to the default state directory; subcommands only log when a
// directory is configured.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags)
	if err != nil {
		return errors.Wrap(err, "loading config")
	}
	a.cfg = cfg

	logDir := cfg.LogDir
	if logDir == "" && !cmd.HasParent() {
		if logDir, err = config.GetDefaultLogDir(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: no log directory: %v\n", err)
		}
	}
	if err := logs.Initialize(logDir, cfg.LogLevel); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not initialize logger: %v\n", err)
	}

	log := logs.Component("cli")
	log.Debug().Str("command", cmd.Name()).Str("config", cfg.ConfigPath).Msg("configured")
	return nil
}

// newController builds a seeded store and a controller greeting the configured student.
func (a *app) newController() *selection.Controller {
	ctrl := selection.NewController(service.NewSeededItemService(a.cfg.Seed()))
	if strings.TrimSpace(a.cfg.StudentName) != "" {
		ctrl.SetStudentName(a.cfg.StudentName)
	}
	return ctrl
}

func (a *app) runTUI() error {
	if err := config.EnsureConfigFile(a.cfg.ConfigPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config file: %v\n", err)
	}

	log := logs.Component("main")
	log.Info().Str("config", a.cfg.ConfigPath).Str("theme", a.cfg.Theme).Msg("starting app in TUI mode")

	p := tea.NewProgram(tui.NewAppModel(a.cfg, a.newController()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running program")
	}
	return nil
}
