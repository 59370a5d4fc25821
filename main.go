package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"orgdir/internal/config"
	"orgdir/internal/directory"
	"orgdir/internal/eventbus"
	"orgdir/internal/logging"
	"orgdir/internal/ui"
)

type options struct {
	configPath string
	dataSource string
	locale     string
	logFile    string
	noClocks   bool
	initConfig bool
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("orgdir", pflag.ContinueOnError)
	fs.StringVarP(&opts.configPath, "config", "c", "", "Config file (default: user config dir)/orgdir/config.toml")
	fs.StringVarP(&opts.dataSource, "data", "d", "", "Organization list: a .json/.yaml/.toml file or an http(s) URL")
	fs.StringVar(&opts.locale, "locale", "", "Locale used to sort names, e.g. en or sv")
	fs.StringVar(&opts.logFile, "log-file", "", "Log file path")
	fs.BoolVar(&opts.noClocks, "no-clocks", false, "Hide the world clocks")
	fs.BoolVar(&opts.initConfig, "init-config", false, "Write the default config file and exit")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	// If no data source specified, check for remaining args
	if opts.dataSource == "" && fs.NArg() > 0 {
		opts.dataSource = fs.Arg(0)
	}
	return opts, nil
}

// apply lets command line flags override the config file
func (o options) apply(cfg *config.Config) {
	if o.dataSource != "" {
		cfg.DataSource = o.dataSource
	}
	if o.locale != "" {
		cfg.Locale = o.locale
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}
	if o.noClocks {
		cfg.UI.ShowClocks = false
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Create event bus; it logs through the global logger installed below
	bus := eventbus.New(nil)
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(opts.configPath, bus)

	if opts.initConfig {
		if err := configSvc.SaveToPath(config.DefaultConfig(), configSvc.Path()); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", configSvc.Path())
		return
	}

	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	opts.apply(cfg)

	// Set up logging
	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()
	logger.Info("starting", zap.String("config", configSvc.Path()), zap.String("source", cfg.DataSource))

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	uiModel := ui.NewModel(bus, cfg, logger)
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventDirectoryLoaded, forward)
	bus.Subscribe(eventbus.EventDirectoryLoadFailed, forward)
	bus.Subscribe(eventbus.EventRecordSelected, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RecordSelectedEvent); ok {
			logger.Info("record selected", zap.String("name", event.Name), zap.Bool("implicit", event.Implicit))
		}
	})

	// Read the data source once
	timeout := time.Duration(cfg.FetchTimeoutSeconds) * time.Second
	loader := directory.NewLoader(bus, logger, timeout)
	go loader.Start(ctx, cfg.DataSource)

	if os.Getenv("ORGDIR_E2E_TEST") == "1" {
		// e2e driver waits for this marker before typing
		fmt.Fprintln(os.Stderr, "__READY__")
	}

	// Run the UI
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program failed", zap.Error(err))
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	logger.Info("exited normally")
}
