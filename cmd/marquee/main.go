package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/marquee/internal/catalog"
	"github.com/mmcdole/marquee/internal/config"
	"github.com/mmcdole/marquee/internal/details"
	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/favorites"
	"github.com/mmcdole/marquee/internal/log"
	"github.com/mmcdole/marquee/internal/search"
	"github.com/mmcdole/marquee/internal/store"
	"github.com/mmcdole/marquee/internal/tmdb"
	"github.com/mmcdole/marquee/internal/tui"
	"github.com/mmcdole/marquee/internal/tui/styles"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	// Handle version flag
	var showVersion, reset bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&reset, "reset", false, "delete saved favorites and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("marquee %s\n", Version)
		return
	}

	if reset {
		if err := resetData(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	defer logger.Close()
	slog.SetDefault(logger.Logger)

	logger.Info("starting marquee", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		return runSetupFlow(cfg, logger.Logger)
	}

	// Open local storage
	db, err := store.NewBoltStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data store: %w", err)
	}
	defer db.Close()

	favoritesSvc := favorites.NewService(db, logger.Logger)
	loaded := favoritesSvc.Load()
	logger.Info("loaded favorites", "count", len(loaded))

	// Create catalog API client
	client := newClient(cfg, logger.Logger)

	// Create services
	fetcher := newFetcher(cfg, client, logger.Logger)
	searchSvc := search.NewService(client, search.Options{
		MinQueryLen:    cfg.Search.MinQueryLen,
		PersonTarget:   cfg.Search.PersonTarget,
		PersonMaxPages: cfg.Search.PersonMaxPages,
	}, logger.Logger)
	detailSvc := details.NewService(client, logger.Logger)

	// Create TUI model
	model := tui.NewModel(fetcher, searchSvc, detailSvc, favoritesSvc, logger.Logger)
	model.Inspector.SetImageBase(cfg.TMDB.ImageBaseURL)
	defer model.Close()

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// resetData removes the local favorites database
func resetData() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ClearData(cfg); err != nil {
		return err
	}
	fmt.Println("✓ Saved favorites deleted")
	return nil
}

func newClient(cfg *config.Config, logger *slog.Logger) *tmdb.Client {
	return tmdb.NewClient(tmdb.Options{
		BaseURL:  cfg.TMDB.BaseURL,
		APIKey:   cfg.TMDB.APIKey,
		Language: cfg.TMDB.Language,
		Timeout:  cfg.TMDB.Timeout,
	}, logger)
}

// newFetcher builds the catalog fetcher from the catalog section.
// Invalid settings are logged and replaced by their defaults.
func newFetcher(cfg *config.Config, repo domain.CatalogRepository, logger *slog.Logger) *catalog.Fetcher {
	src, err := catalog.ParseSource(cfg.Catalog.Source)
	if err != nil {
		logger.Warn("invalid catalog source, using discover", "error", err)
		src = catalog.SourceDiscover
	}

	policy, err := catalog.ParsePolicy(cfg.Catalog.FilterPolicy)
	if err != nil {
		logger.Warn("invalid filter policy, using strict", "error", err)
		policy = catalog.PolicyStrict
	}

	now := time.Now()
	filters := catalog.Filters{
		MinRating: cfg.Catalog.MinRating,
		MaxRating: cfg.Catalog.MaxRating,
		MinYear:   cfg.Catalog.MinYear,
		MaxYear:   cfg.Catalog.UpperYear(now),
	}
	if err := filters.Validate(now.Year()); err != nil {
		logger.Warn("invalid catalog filters, using defaults", "error", err)
		filters = catalog.Filters{
			MinRating: catalog.MinRatingBound,
			MaxRating: catalog.MaxRatingBound,
			MinYear:   catalog.MinYearBound,
			MaxYear:   now.Year(),
		}
	}

	return catalog.NewFetcher(repo, catalog.Options{
		Source:  src,
		Policy:  policy,
		Sort:    cfg.Catalog.DefaultSort,
		Filters: filters,
	}, logger)
}

// runSetupFlow asks for the TMDB API key when none is configured
func runSetupFlow(cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to Marquee!")
	fmt.Println()
	fmt.Println("Marquee needs a TMDB API key (v3 key or v4 read access token).")
	fmt.Println("Create one at https://www.themoviedb.org/settings/api")
	fmt.Println()

	for {
		apiKey, err := readAPIKey()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if apiKey == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		cfg.TMDB.APIKey = apiKey
		err = verifyKeyWithSpinner(newClient(cfg, logger))
		if errors.Is(err, domain.ErrAuthFailed) {
			fmt.Println("✗ TMDB rejected this key. Please try again.")
			fmt.Println()
			continue
		}
		if err != nil {
			// keep the key; the network may just be down
			logger.Warn("could not verify API key", "error", err)
			fmt.Printf("! Could not verify the key: %v\n", err)
		}
		break
	}

	if err := config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run marquee again to start the application.")

	return nil
}

// readAPIKey reads the key without echo when stdin is a terminal
func readAPIKey() (string, error) {
	fmt.Print("Enter your TMDB API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// verifyKeyWithSpinner requests one catalog page with a visual spinner
func verifyKeyWithSpinner(client *tmdb.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)

	// Start verification in background
	go func() {
		_, err := client.Popular(ctx, 1)
		resultCh <- err
	}()

	// Spinner animation
	frame := 0
	fmt.Printf("\r%s Checking API key...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if err == nil {
				fmt.Println("✓ API key accepted")
			}
			return err

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking API key...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("verification timed out")
		}
	}
}
