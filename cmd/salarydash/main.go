package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarydash/internal/client"
	"github.com/fr4nk3nst1ner/salarydash/internal/config"
	"github.com/fr4nk3nst1ner/salarydash/internal/dashboard"
	"github.com/fr4nk3nst1ner/salarydash/internal/dataset"
	"github.com/fr4nk3nst1ner/salarydash/internal/filter"
	"github.com/fr4nk3nst1ner/salarydash/internal/ui"
	"github.com/fr4nk3nst1ner/salarydash/internal/web"
)

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 SalaryDash Usage Examples 📋")
	fmt.Println("\n1. Serve the dashboard over the default dataset on port 8080:")
	fmt.Println("   salarydash -web")

	fmt.Println("\n2. Serve a local CSV on another port, protecting the API with basic auth:")
	fmt.Println("   WEB_USERNAME=admin WEB_PASSWORD=secret salarydash -web -data ./salaries.csv -port 9000")

	fmt.Println("\n3. Print a terminal summary of senior full-time salaries in 2023 and 2024:")
	fmt.Println("   salarydash -summary -years 2023,2024 -seniority senior -contract full_time")

	fmt.Println("\n4. Print a summary for small companies only, downloading through a proxy:")
	fmt.Println("   salarydash -summary -size S -proxy http://localhost:8080")

	fmt.Println("\n5. Load settings from a config file and silence the banner:")
	fmt.Println("   salarydash -web -config config.yaml -silence")

	fmt.Println("\nFor more information, visit: https://github.com/fr4nk3nst1ner/salarydash")
}

func main() {
	// Command line flags
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	dataSource := flag.String("data", "", "Dataset path or URL (overrides the config file)")
	proxyURL := flag.String("proxy", "", "Proxy URL to use when downloading the dataset")
	port := flag.Int("port", 0, "Port for the web dashboard (overrides the config file)")
	serve := flag.Bool("web", false, "Serve the interactive dashboard")
	summary := flag.Bool("summary", false, "Print a dashboard summary to the terminal")
	years := flag.String("years", "", "Comma-separated years for -summary (default: all)")
	seniority := flag.String("seniority", "", "Comma-separated seniority levels for -summary (default: all)")
	contract := flag.String("contract", "", "Comma-separated contract types for -summary (default: all)")
	size := flag.String("size", "", "Comma-separated company sizes for -summary (default: all)")
	debug := flag.Bool("debug", false, "Enable debug mode")
	examples := flag.Bool("examples", false, "Show usage examples")

	// Banner control flags (two aliases for the same functionality)
	silence := flag.Bool("silence", false, "Silence the banner")
	noBanner := flag.Bool("nobanner", false, "Silence the banner (alias for -silence)")

	flag.Parse()

	ui.PrintBanner(*silence || *noBanner)

	if *examples {
		printExamples()
		return
	}

	logger := pterm.DefaultLogger.WithWriter(os.Stderr)
	if *debug {
		logger = logger.WithLevel(pterm.LogLevelDebug)
	}

	if !*serve && !*summary {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("loading config", logger.Args("error", err))
	}
	if *dataSource != "" {
		cfg.Data.Source = *dataSource
	}
	if *proxyURL != "" {
		cfg.Data.Proxy = *proxyURL
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", logger.Args("error", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hc, err := client.NewHTTPClient(cfg.Data.Proxy)
	if err != nil {
		logger.Fatal("creating http client", logger.Args("error", err))
	}

	logger.Debug("loading dataset", logger.Args("source", cfg.Data.Source))
	store, err := dataset.Open(ctx, hc, cfg.Data.Source, os.Stderr)
	if err != nil {
		logger.Fatal("loading dataset", logger.Args("source", cfg.Data.Source, "error", err))
	}
	logger.Info("dataset loaded", logger.Args("records", store.Len()))

	if *summary {
		if err := printSummary(store, cfg, *years, *seniority, *contract, *size); err != nil {
			logger.Fatal("rendering summary", logger.Args("error", err))
		}
	}

	if *serve {
		if err := web.NewServer(store, cfg, logger).Run(ctx); err != nil {
			logger.Fatal("web server", logger.Args("error", err))
		}
	}
}

func printSummary(store *dataset.Store, cfg *config.AppConfig, years, seniority, contract, size string) error {
	domain := store.Domain()
	yearSet, err := filter.ParseYears(years, domain.Years)
	if err != nil {
		return fmt.Errorf("invalid -years: %w", err)
	}
	criteria := filter.Criteria{
		Years:        yearSet,
		Seniorities:  filter.ParseList(seniority, domain.Seniorities),
		Contracts:    filter.ParseList(contract, domain.Contracts),
		CompanySizes: filter.ParseList(size, domain.CompanySizes),
	}

	out, err := ui.RenderSummary(dashboard.Build(store, criteria, cfg.DashboardOptions()))
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
