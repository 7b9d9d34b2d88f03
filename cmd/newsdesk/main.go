package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/fs"
	"github.com/fwojciec/newsdesk/goquery"
	"github.com/fwojciec/newsdesk/htmltomarkdown"
	ndhttp "github.com/fwojciec/newsdesk/http"
	"github.com/fwojciec/newsdesk/importer"
	ndslog "github.com/fwojciec/newsdesk/slog"
	"github.com/fwojciec/newsdesk/sqlite"
	"github.com/fwojciec/newsdesk/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). Overridden by --db.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	NewsService    newsdesk.NewsService
	ProjectService newsdesk.ProjectService

	// Fetcher overrides the HTTP fetcher used by the importer.
	Fetcher newsdesk.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("newsdesk"),
		kong.Description("Manage news and projects of the company site and import LinkedIn posts as news"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'newsdesk --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NEWSDESK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.NewsService = sqlite.NewNewsService(m.DB)
	m.ProjectService = sqlite.NewProjectService(m.DB)
	deps.DB = m.DB
	deps.News = m.NewsService
	deps.Projects = m.ProjectService
	deps.Images = fs.NewImageStore(cli.Media, cli.MediaURL)
	deps.Converter = htmltomarkdown.NewConverter()

	if commandName(kongCtx) == "import" {
		cfg, err := yaml.LoadConfig(cli.Config)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", newsdesk.ErrorMessage(err))
			return err
		}
		m.wireImporter(deps, cfg)
	}

	return kongCtx.Run(deps)
}

// wireImporter builds the import pipeline from cfg.
func (m *Main) wireImporter(deps *Dependencies, cfg *yaml.Config) {
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = ndhttp.NewFetcher()
	}
	fetcher = ndslog.NewLoggingFetcher(fetcher, deps.Logger)

	finders := ndslog.WrapImageFinders(goquery.NewOGImageFinders(fetcher, cfg.Mirrors...), deps.Logger)
	images := importer.NewImageResolver(finders...)
	images.Timeout = cfg.ImageTimeout
	images.Placeholder = cfg.Placeholder

	reconstructor := importer.NewReconstructor(cfg.NoisePatterns())
	reconstructor.EndMarkers = cfg.AllEndMarkers()

	imp := importer.NewImporter(fetcher, images, reconstructor)
	imp.ReaderURL = cfg.ReaderURL

	deps.Importer = ndslog.NewLoggingImporter(imp, deps.Logger)
	deps.Batch = importer.NewBatch(deps.Importer, cfg.Rate, cfg.Concurrency)
}

// commandName returns the top-level command selected by kongCtx.
func commandName(kongCtx *kong.Context) string {
	fields := strings.Fields(kongCtx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func defaultDBPath() string {
	if path := os.Getenv("NEWSDESK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "newsdesk.db"
	}
	dir := filepath.Join(home, ".newsdesk")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "newsdesk.db")
}
