// Package fs provides file-based storage: uploaded images and the Markdown
// export of the site content.
package fs

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/newsdesk"
	"gopkg.in/yaml.v3"
)

// Export directories under the writer's base directory.
const (
	NewsDir     = "news"
	ProjectsDir = "projects"
)

// newsFrontMatter is the YAML header of an exported news item.
type newsFrontMatter struct {
	Title     string `yaml:"title"`
	Slug      string `yaml:"slug"`
	Date      string `yaml:"date"`
	Author    string `yaml:"author,omitempty"`
	Excerpt   string `yaml:"excerpt,omitempty"`
	Image     string `yaml:"image,omitempty"`
	Source    string `yaml:"source,omitempty"`
	Hash      string `yaml:"hash,omitempty"`
	UpdatedAt string `yaml:"updated"`
}

// projectFrontMatter is the YAML header of an exported project.
type projectFrontMatter struct {
	Title   string   `yaml:"title"`
	Slug    string   `yaml:"slug"`
	Client  string   `yaml:"client,omitempty"`
	Summary string   `yaml:"summary,omitempty"`
	Image   string   `yaml:"image,omitempty"`
	Tags    []string `yaml:"tags,omitempty"`
	Updated string   `yaml:"updated"`
}

// FormatNewsItem renders a news item as Markdown with YAML front matter.
// body is the item's content already converted to Markdown.
func FormatNewsItem(item *newsdesk.NewsItem, body string) (string, error) {
	return formatDocument(newsFrontMatter{
		Title:     item.Title,
		Slug:      item.Slug,
		Date:      item.PublishedAt.Format(time.DateOnly),
		Author:    item.Author,
		Excerpt:   item.Excerpt,
		Image:     item.ImageURL,
		Source:    item.SourceURL,
		Hash:      item.ContentHash,
		UpdatedAt: item.UpdatedAt.Format(time.RFC3339),
	}, body)
}

// FormatProject renders a project as Markdown with YAML front matter.
func FormatProject(project *newsdesk.Project, body string) (string, error) {
	return formatDocument(projectFrontMatter{
		Title:   project.Title,
		Slug:    project.Slug,
		Client:  project.Client,
		Summary: project.Summary,
		Image:   project.ImageURL,
		Tags:    project.Tags,
		Updated: project.UpdatedAt.Format(time.RFC3339),
	}, body)
}

func formatDocument(frontMatter any, body string) (string, error) {
	var b bytes.Buffer
	b.WriteString("---\n")
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(frontMatter); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	b.WriteString("---\n")
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// Writer exports news items and projects as Markdown files for the static
// site generator.
type Writer struct {
	baseDir   string
	converter newsdesk.Converter
}

// NewWriter creates a new Writer that writes to the given base directory,
// converting stored HTML with converter.
func NewWriter(baseDir string, converter newsdesk.Converter) *Writer {
	return &Writer{baseDir: baseDir, converter: converter}
}

// WriteNewsItem writes news/<slug>.md and returns its path.
func (w *Writer) WriteNewsItem(ctx context.Context, item *newsdesk.NewsItem) (string, error) {
	if item.Slug == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "news item %q has no slug", item.Title)
	}
	body, err := w.markdown(item.Content)
	if err != nil {
		return "", err
	}
	content, err := FormatNewsItem(item, body)
	if err != nil {
		return "", err
	}
	return w.write(ctx, NewsDir, item.Slug, content)
}

// WriteProject writes projects/<slug>.md and returns its path.
func (w *Writer) WriteProject(ctx context.Context, project *newsdesk.Project) (string, error) {
	if project.Slug == "" {
		return "", newsdesk.Errorf(newsdesk.EINVALID, "project %q has no slug", project.Title)
	}
	body, err := w.markdown(project.Content)
	if err != nil {
		return "", err
	}
	content, err := FormatProject(project, body)
	if err != nil {
		return "", err
	}
	return w.write(ctx, ProjectsDir, project.Slug, content)
}

// markdown converts html, treating blank content as an empty body.
func (w *Writer) markdown(html string) (string, error) {
	if len(bytes.TrimSpace([]byte(html))) == 0 {
		return "", nil
	}
	return w.converter.Convert(html)
}

func (w *Writer) write(ctx context.Context, dir, slug, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, dir, slug+".md")
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
