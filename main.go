package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"

	"taskmenu/internal/config"
	"taskmenu/internal/launch"
	"taskmenu/internal/logging"
	"taskmenu/internal/menu"
	"taskmenu/internal/model"
	"taskmenu/internal/session"
	"taskmenu/internal/taskfile"
	"taskmenu/internal/terminal"
)

// openTerminal is swapped out by tests.
var openTerminal = terminal.Open

type options struct {
	global     bool
	configPath string
	backend    string
	tickRate   time.Duration
	filter     string
	print      bool
	list       bool
	output     string
	json       bool
	verbose    bool
	version    bool
	update     bool
	help       bool
}

func checkUpdate(w io.Writer, repo config.UpdateConfig, currentVer string, explicit bool) {
	owner, name, ok := repo.ReleaseRepo()
	if !ok {
		fmt.Fprintf(w, "No release repository configured. Set repo = \"owner/name\" under [update] in the settings file.\n")
		return
	}

	githubTag := &latest.GithubTag{
		Owner:      owner,
		Repository: name,
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Fprintf(w, "\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Fprintf(w, "👉 Download it from https://github.com/%s/%s/releases\n", owner, name)
	} else if explicit {
		fmt.Fprintf(w, "✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newFlagSet(opts *options, stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("taskmenu", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: taskmenu [options]\n\n")
		fmt.Fprintf(stderr, "taskmenu lists the tasks of the nearest Taskfile in a terminal menu\n")
		fmt.Fprintf(stderr, "and runs the one you pick with the task runner.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  taskmenu              # Pick a task from ./Taskfile.yml and run it\n")
		fmt.Fprintf(stderr, "  taskmenu -g           # Use the Taskfile in your home directory\n")
		fmt.Fprintf(stderr, "  taskmenu -f 'docs:*'  # Only list tasks matching a glob\n")
		fmt.Fprintf(stderr, "  taskmenu --list -v    # Print every task with its source lines\n")
		fmt.Fprintf(stderr, "  taskmenu --json       # Output tasks as JSON\n")
	}

	fs.BoolVarP(&opts.global, "global", "g", false, "Use the Taskfile in the home directory and run tasks with -g")
	fs.StringVarP(&opts.configPath, "config", "c", "", "Settings file (default $"+config.EnvPath+" or the user config dir)")
	fs.StringVarP(&opts.backend, "backend", "b", "", "Terminal backend: bubbletea or tcell")
	fs.DurationVarP(&opts.tickRate, "tick-rate", "t", 0, "How long each input poll waits (e.g. 250ms)")
	fs.StringVarP(&opts.filter, "filter", "f", "", "Only list tasks whose name matches this glob")
	fs.BoolVarP(&opts.print, "print", "p", false, "Print the chosen task name instead of running it")
	fs.BoolVarP(&opts.list, "list", "l", false, "Print a task report and exit")
	fs.StringVarP(&opts.output, "output", "o", "", "Save the report to the specified file (combined with --list)")
	fs.BoolVarP(&opts.json, "json", "j", false, "Output tasks as JSON and exit")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Include source line context in the report")
	fs.BoolVarP(&opts.version, "version", "V", false, "Print version information")
	fs.BoolVarP(&opts.update, "update", "u", false, "Check for a newer release")
	fs.BoolVarP(&opts.help, "help", "h", false, "Show this help message")
	return fs
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if opts.help {
		fs.Usage()
		return nil
	}

	if opts.version {
		fmt.Fprintf(stdout, "taskmenu version %s\n", model.Version)
		return nil
	}

	cfg, err := loadSettings(opts, fs)
	if err != nil {
		return err
	}

	if opts.update {
		checkUpdate(stdout, cfg.Update, model.Version, fs.Changed("update"))
		return nil
	}

	logger, err := logging.New(cfg.Logging, stderr, uuid.NewString())
	if err != nil {
		return err
	}
	defer logger.Close()

	tf, err := taskfile.Open(opts.global)
	if err != nil {
		return err
	}
	logger.Debug("taskfile loaded", "path", tf.Path, "version", tf.Version, "tasks", len(tf.Entries))

	if opts.filter != "" {
		entries, err := taskfile.Filter(tf.Entries, opts.filter)
		if err != nil {
			return err
		}
		tf.Entries = entries
	}

	switch {
	case opts.list:
		return runReportMode(stdout, tf, opts.output, opts.verbose)
	case opts.json:
		return taskfile.WriteJSON(stdout, tf)
	}

	outcome, err := interact(cfg, tf, logger)
	if err != nil {
		return err
	}
	logger.Debug("session ended", "outcome", outcome)
	if !outcome.IsConfirmed() {
		return nil
	}

	if opts.print || !cfg.Launch.Enabled {
		fmt.Fprintln(stdout, outcome.Task)
		return nil
	}
	return runTask(cfg, logger, outcome.Task, opts.global, stdout, stderr)
}

// loadSettings reads the settings file and applies command-line overrides.
func loadSettings(opts options, fs *pflag.FlagSet) (config.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
		path = p
	}

	cfg, err := config.Load(path, config.Default())
	if err != nil {
		return config.Config{}, fmt.Errorf("load settings %s: %w", path, err)
	}

	if fs.Changed("backend") {
		cfg.UI.Backend = opts.backend
	}
	if fs.Changed("tick-rate") {
		cfg.UI.TickRate = opts.tickRate.String()
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runReportMode(stdout io.Writer, tf model.Taskfile, outputFile string, verbose bool) error {
	report := taskfile.GenerateReport(tf, verbose)

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(report), 0o644); err != nil {
			return fmt.Errorf("writing report to %s: %w", outputFile, err)
		}
		fmt.Fprintf(stdout, "Report saved to %s\n", outputFile)
		return nil
	}
	fmt.Fprintln(stdout, report)
	return nil
}

// interact runs the menu until the user quits or confirms. The terminal is
// restored on return, on panic and on SIGTERM/SIGHUP.
func interact(cfg config.Config, tf model.Taskfile, logger *logging.Logger) (outcome session.Outcome, err error) {
	guard := terminal.NewGuard()
	guard.Install()
	defer guard.Stop()
	defer guard.Recover()

	term, err := openTerminal(cfg.UI.Backend)
	if err != nil {
		return session.Outcome{}, err
	}
	guard.Arm(term)

	logger.Mute()
	defer logger.Unmute()

	if err := term.Start(); err != nil {
		guard.Disarm()
		return session.Outcome{}, fmt.Errorf("%w: start: %w", session.ErrTerminalIO, err)
	}
	defer func() {
		if cerr := term.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close: %w", session.ErrTerminalIO, cerr)
		}
		guard.Disarm()
	}()

	loop := &session.Loop{
		Surface:  term,
		Input:    term,
		TickRate: cfg.TickDuration(),
		Logger:   logger.Logger,
	}
	return loop.Run(menu.New(tf.Entries))
}

// runTask hands name to the task runner. A task that fails on its own is not
// an error of taskmenu.
func runTask(cfg config.Config, logger *logging.Logger, name string, global bool, stdout, stderr io.Writer) error {
	shell, err := launch.DetectShell(runtime.GOOS, cfg.Launch.Shell)
	if err != nil {
		return err
	}

	var launcher launch.Launcher = &launch.ShellLauncher{
		Program: cfg.Launch.Program,
		Shell:   shell,
		Stdin:   os.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger.Logger,
	}

	err = launcher.Launch(context.Background(), name, global)
	var taskErr *launch.TaskError
	if errors.As(err, &taskErr) {
		return nil
	}
	return err
}
