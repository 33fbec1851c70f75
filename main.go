package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/eventbus"
	"storefront/internal/ui"
)

func main() {
	var (
		configPath string
		apiURL     string
		demo       bool
		initConfig bool
		logPath    string
	)
	flag.StringVar(&configPath, "config", "", "Path to config file (default: user config dir)")
	flag.StringVar(&apiURL, "api", "", "Catalog API base URL (overrides config)")
	flag.BoolVar(&demo, "demo", false, "Browse the built-in demo catalog instead of the API")
	flag.BoolVar(&initConfig, "init-config", false, "Write the effective config to disk and exit")
	flag.StringVar(&logPath, "log", "storefront.log", "Log file")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	config.LoadDotEnv(".env")

	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventFetchFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.FetchFailedEvent); ok {
			log.Printf("%s request #%d failed: %v", event.Source, event.Seq, event.Err)
		}
	})
	bus.Subscribe(eventbus.EventSearchCommitted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCommittedEvent); ok {
			log.Printf("Search %q committed, %d matches", event.Text, event.Matched)
		}
	})
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigSavedEvent); ok {
			log.Printf("Config saved to %s", event.Path)
		}
	})

	// Load configuration
	var configSvc config.ConfigService
	if configPath != "" {
		configSvc = config.NewConfigServiceAt(configPath)
	} else {
		configSvc = config.NewConfigService()
	}
	configSvc = config.WithBus(configSvc, bus)

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", configSvc.Path(), err)
		os.Exit(1)
	}
	if apiURL != "" {
		cfg.Catalog.BaseURL = apiURL
	}

	if initConfig {
		if err := configSvc.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", configSvc.Path())
		return
	}

	var fetcher catalog.Fetcher
	if demo {
		log.Printf("Using demo catalog")
		fetcher = catalog.DemoCatalog()
	} else {
		log.Printf("Using catalog at %s", cfg.Catalog.BaseURL)
		fetcher = catalog.NewClient(cfg.Catalog.BaseURL,
			catalog.WithProductsPath(cfg.Catalog.ProductsPath),
			catalog.WithTimeout(cfg.Catalog.RequestTimeout.Duration),
		)
	}

	uiModel := ui.NewModel(bus, cfg, fetcher)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}
