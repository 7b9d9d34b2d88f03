package main

import (
	"fmt"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
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

	w := fs.NewWriter(c.Dir, deps.Converter)
	for _, n := range news {
		if _, err := w.WriteNewsItem(deps.Ctx, n); err != nil {
			fmt.Fprintf(deps.Stderr, "error: news %q: %s\n", n.Slug, newsdesk.ErrorMessage(err))
			return err
		}
	}
	for _, p := range projects {
		if _, err := w.WriteProject(deps.Ctx, p); err != nil {
			fmt.Fprintf(deps.Stderr, "error: project %q: %s\n", p.Slug, newsdesk.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Exported %d news items and %d projects to %s\n", len(news), len(projects), c.Dir)
	return nil
}
