package main

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fwojciec/newsdesk"
)

var paragraphBreak = regexp.MustCompile(`\n\s*\n`)

// Run executes the project add command.
func (c *ProjectAddCmd) Run(deps *Dependencies) error {
	project := &newsdesk.Project{
		Title:   c.Title,
		Client:  c.Client,
		Summary: c.Summary,
		Content: paragraphsToHTML(c.Content),
		Tags:    c.Tags,
	}

	if c.Image != "" {
		url, err := resolveImage(deps, c.Image)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
			return err
		}
		project.ImageURL = url
	}

	if err := deps.Projects.CreateProject(deps.Ctx, project); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added project %q (%s)\n", project.Title, project.Slug)
	return nil
}

// Run executes the project list command.
func (c *ProjectListCmd) Run(deps *Dependencies) error {
	projects, err := deps.Projects.FindProjects(deps.Ctx, newsdesk.ProjectFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintln(deps.Stdout, "No projects found. Use 'newsdesk project add' to create one.")
		return nil
	}

	for _, p := range projects {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", p.Slug, p.Title, p.Client)
	}

	return nil
}

// Run executes the project delete command.
func (c *ProjectDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsdesk.Errorf(newsdesk.EINVALID, "use --force to confirm deletion")
	}

	projects, err := deps.Projects.FindProjects(deps.Ctx, newsdesk.ProjectFilter{Slug: &c.Slug})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	if len(projects) == 0 {
		fmt.Fprintf(deps.Stderr, "error: project %q not found. Use 'newsdesk project list' to see available projects.\n", c.Slug)
		return newsdesk.Errorf(newsdesk.ENOTFOUND, "project %q not found", c.Slug)
	}

	project := projects[0]
	if err := deps.Projects.DeleteProject(deps.Ctx, project.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted project %q\n", project.Title)
	return nil
}

// paragraphsToHTML converts text with blank-line separated paragraphs to
// HTML paragraphs joined by newlines.
func paragraphsToHTML(text string) string {
	var out []string
	for _, p := range paragraphBreak.Split(strings.TrimSpace(text), -1) {
		if strings.TrimSpace(p) == "" {
			continue
		}
		out = append(out, newsdesk.MarkdownToHTML(p))
	}
	return strings.Join(out, "\n")
}
