package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kalsabot.dev/checker"
	"kalsabot.dev/checker/presenter"
	"kalsabot.dev/checker/scraper"
)

// deps are the process boundaries the command touches. Tests replace them.
type deps struct {
	stdout io.Writer
	stderr io.Writer
	clock  func(loc *time.Location) checker.Clock
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "slotcheck:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cmd := newRootCmd(deps{
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(d deps) *cobra.Command {
	registry := checker.DefaultRegistry()

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("slotcheck [%s]", strings.Join(registry.Names(), "|")),
		Short: "Check whether a court slot is free on avoinna24.fi",
		Long: "Check whether a court has a free slot ending at the given hour on the next\n" +
			"occurrence of the given weekday. Without a court argument every known\n" +
			"court is checked with its own default day and hour.",
		Args:          cobra.MaximumNArgs(1),
		ValidArgs:     registry.Names(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, registry, d)
		},
	}
	cmd.SetOut(d.stdout)
	cmd.SetErr(d.stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", checker.ErrInvalidArgument, err)
	})
	bindFlags(cmd.Flags())
	return cmd
}

func runCheck(cmd *cobra.Command, args []string, registry *checker.Registry, d deps) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.LogLevel, cfg.LogFile, d.stderr)
	if err != nil {
		return fmt.Errorf("%w: %v", checker.ErrInvalidArgument, err)
	}
	defer closeLog()

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	courts := registry.All()
	if len(args) == 1 {
		court, err := registry.Get(args[0])
		if err != nil {
			return err
		}
		courts = []checker.Court{court}
	}

	match, err := checker.ParseMatchStrategy(cfg.Match)
	if err != nil {
		return err
	}

	presenters := presenter.NewRegistry()
	for _, pr := range []presenter.Presenter{
		&presenter.Text{
			Color:    colorFor(d.stdout, cfg.NoColor),
			Verbose:  cfg.Verbose,
			Location: loc,
		},
		&presenter.JSON{Verbose: cfg.Verbose},
	} {
		if err := presenters.Register(pr); err != nil {
			return err
		}
	}
	p, err := presenters.Get(cfg.Format)
	if err != nil {
		return err
	}

	var clock checker.Clock = checker.SystemClock{Loc: loc}
	if d.clock != nil {
		clock = d.clock(loc)
	}

	avoinna := scraper.NewAvoinna(cfg.Timeout,
		scraper.WithBaseURL(cfg.BaseURL),
		scraper.WithLogger(logger.Named("avoinna")),
	)
	c := checker.NewChecker(avoinna, clock, logger.Named("checker"))
	c.Match = match

	logger.Debug("starting check",
		zap.Int("courts", len(courts)),
		zap.String("format", p.Format()),
		zap.String("match", match.Name()),
		zap.String("tz", loc.String()))

	return c.CheckCourts(cmd.Context(), courts, cfg.Override(), func(r checker.Result) error {
		return p.Present(d.stdout, r)
	})
}

func colorFor(w io.Writer, disabled bool) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return presenter.ColorEnabled(f, disabled)
}
