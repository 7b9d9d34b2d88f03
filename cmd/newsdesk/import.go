package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/importer"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	if len(c.URLs) > 1 && (c.Title != "" || c.Excerpt != "" || c.Image != "") {
		fmt.Fprintln(deps.Stderr, "error: --title, --excerpt and --image apply to a single URL")
		return newsdesk.Errorf(newsdesk.EINVALID, "draft overrides require a single URL")
	}
	if len(c.URLs) == 1 {
		return c.importOne(deps)
	}
	return c.importMany(deps)
}

func (c *ImportCmd) importOne(deps *Dependencies) error {
	post, err := deps.Importer.Import(deps.Ctx, c.URLs[0])
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	if c.Title != "" {
		post.Title = c.Title
	}
	if c.Excerpt != "" {
		post.Excerpt = c.Excerpt
	}
	if c.Image != "" {
		url, err := resolveImage(deps, c.Image)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
			return err
		}
		post.ImageURL = url
	}

	if c.JSON {
		if err := writeJSON(deps, post); err != nil {
			return err
		}
	} else {
		printDraft(deps, post)
	}

	if !c.Save {
		fmt.Fprintln(deps.Stderr, "Draft not saved. Review it and run again with --save to publish.")
		return nil
	}
	return saveDraft(deps, post)
}

func (c *ImportCmd) importMany(deps *Dependencies) error {
	batch := deps.Batch
	if batch == nil {
		batch = &importer.Batch{Importer: deps.Importer}
	}

	results := batch.ImportAll(deps.Ctx, c.URLs, func(r importer.BatchResult) {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "FAIL  %s  %s\n", r.URL, newsdesk.ErrorMessage(r.Err))
			return
		}
		fmt.Fprintf(deps.Stderr, "ok    %s  %s\n", r.URL, r.Post.Title)
	})

	var posts []*newsdesk.ImportedPost
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		posts = append(posts, r.Post)
	}

	if c.JSON {
		if err := writeJSON(deps, posts); err != nil {
			return err
		}
	} else {
		for _, post := range posts {
			printDraft(deps, post)
			fmt.Fprintln(deps.Stdout)
		}
	}

	if c.Save {
		for _, post := range posts {
			if err := saveDraft(deps, post); err != nil && newsdesk.ErrorCode(err) != newsdesk.ECONFLICT {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d imports failed", failed, len(results))
	}
	return nil
}

// saveDraft stores post as a news item. Posts imported before are
// reported as conflicts.
func saveDraft(deps *Dependencies, post *newsdesk.ImportedPost) error {
	item := post.NewsItem()
	if err := deps.News.CreateNewsItem(deps.Ctx, item); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Saved news item %s (%s)\n", item.ID, item.Slug)
	return nil
}

func printDraft(deps *Dependencies, post *newsdesk.ImportedPost) {
	fmt.Fprintf(deps.Stdout, "Title:   %s\n", post.Title)
	if post.Author != "" {
		fmt.Fprintf(deps.Stdout, "Author:  %s\n", post.Author)
	}
	fmt.Fprintf(deps.Stdout, "Source:  %s\n", post.SourceURL)
	fmt.Fprintf(deps.Stdout, "Image:   %s\n", post.ImageURL)
	fmt.Fprintf(deps.Stdout, "Excerpt: %s\n", post.Excerpt)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, post.Content)
}

func writeJSON(deps *Dependencies, v any) error {
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// resolveImage returns value unchanged when it is an http(s) URL and
// otherwise uploads the local file it names.
func resolveImage(deps *Dependencies, value string) (string, error) {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value, nil
	}

	f, err := os.Open(value)
	if err != nil {
		return "", newsdesk.WrapError(newsdesk.EINVALID, err, "image %q is neither a URL nor a readable file", value)
	}
	defer f.Close()

	return deps.Images.SaveImage(deps.Ctx, filepath.Base(value), f)
}
