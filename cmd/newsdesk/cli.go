package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/importer"
	"github.com/fwojciec/newsdesk/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	News      newsdesk.NewsService
	Projects  newsdesk.ProjectService
	Importer  newsdesk.Importer
	Batch     *importer.Batch
	Images    newsdesk.ImageStore
	Converter newsdesk.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB       string `name:"db" env:"NEWSDESK_DB" help:"SQLite database path"`
	Config   string `name:"config" env:"NEWSDESK_CONFIG" help:"Importer YAML config file"`
	Media    string `name:"media" env:"NEWSDESK_MEDIA" default:"public/media" help:"Directory for uploaded images"`
	MediaURL string `name:"media-url" env:"NEWSDESK_MEDIA_URL" default:"/media" help:"Public URL prefix of uploaded images"`
	Verbose  bool   `short:"v" help:"Log requests and image lookups"`

	Import  ImportCmd  `cmd:"" help:"Import LinkedIn posts as news drafts"`
	News    NewsCmd    `cmd:"" help:"Manage news items"`
	Project ProjectCmd `cmd:"" help:"Manage portfolio projects"`
	Export  ExportCmd  `cmd:"" help:"Export news and projects as Markdown"`
	Sitemap SitemapCmd `cmd:"" help:"Write sitemap.xml for the site"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URLs    []string `arg:"" name:"url" help:"LinkedIn post URLs"`
	Save    bool     `short:"s" help:"Save the reviewed draft as a news item"`
	JSON    bool     `help:"Print drafts as JSON"`
	Title   string   `help:"Replace the detected title (single URL)"`
	Excerpt string   `help:"Replace the generated excerpt (single URL)"`
	Image   string   `help:"Replace the image with a URL or a local file to upload (single URL)"`
}

// NewsCmd groups the news subcommands.
type NewsCmd struct {
	List   NewsListCmd   `cmd:"" help:"List news items"`
	Show   NewsShowCmd   `cmd:"" help:"Show a news item"`
	Delete NewsDeleteCmd `cmd:"" help:"Delete a news item"`
}

// NewsListCmd is the "news list" subcommand.
type NewsListCmd struct {
	Limit  int `default:"20" help:"Maximum number of items"`
	Offset int `help:"Number of items to skip"`
}

// NewsShowCmd is the "news show" subcommand.
type NewsShowCmd struct {
	ID       string `arg:"" help:"News item ID"`
	Markdown bool   `short:"m" help:"Print content as Markdown"`
}

// NewsDeleteCmd is the "news delete" subcommand.
type NewsDeleteCmd struct {
	ID    string `arg:"" help:"News item ID"`
	Force bool   `help:"Confirm deletion"`
}

// ProjectCmd groups the project subcommands.
type ProjectCmd struct {
	Add    ProjectAddCmd    `cmd:"" help:"Add a project"`
	List   ProjectListCmd   `cmd:"" help:"List projects"`
	Delete ProjectDeleteCmd `cmd:"" help:"Delete a project"`
}

// ProjectAddCmd is the "project add" subcommand.
type ProjectAddCmd struct {
	Title   string   `arg:"" help:"Project title"`
	Client  string   `help:"Client name"`
	Summary string   `help:"One-line summary"`
	Content string   `help:"Description; blank lines separate paragraphs, **bold** and *italic* are supported"`
	Image   string   `help:"Image URL or local file to upload"`
	Tags    []string `short:"t" name:"tag" help:"Tag (repeatable)"`
}

// ProjectListCmd is the "project list" subcommand.
type ProjectListCmd struct{}

// ProjectDeleteCmd is the "project delete" subcommand.
type ProjectDeleteCmd struct {
	Slug  string `arg:"" help:"Project slug"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir string `arg:"" help:"Output directory"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	BaseURL string `name:"base-url" required:"" env:"NEWSDESK_BASE_URL" help:"Public site URL"`
	Out     string `short:"o" help:"Output file (default stdout)"`
}
