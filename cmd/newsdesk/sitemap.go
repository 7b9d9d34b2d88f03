package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/etree"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	w, err := etree.NewSitemapWriter(c.BaseURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	news, err := deps.News.FindNewsItems(deps.Ctx, newsdesk.NewsFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}
	projects, err := deps.Projects.FindProjects(deps.Ctx, newsdesk.ProjectFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	var out io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	if err := w.Write(out, news, projects); err != nil {
		return err
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "Wrote %d URLs to %s\n", len(w.Entries(news, projects)), c.Out)
	}
	return nil
}
