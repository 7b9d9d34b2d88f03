package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Run executes the news list command.
func (c *NewsListCmd) Run(deps *Dependencies) error {
	items, err := deps.News.FindNewsItems(deps.Ctx, newsdesk.NewsFilter{Limit: c.Limit, Offset: c.Offset})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(deps.Stdout, "No news items found. Use 'newsdesk import --save' to add one.")
		return nil
	}

	for _, n := range items {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", n.ID, n.PublishedAt.Format(time.DateOnly), n.Slug, n.Title)
	}

	return nil
}

// Run executes the news show command.
func (c *NewsShowCmd) Run(deps *Dependencies) error {
	item, err := deps.News.FindNewsItemByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	content := item.Content
	if c.Markdown {
		if content, err = deps.Converter.Convert(item.Content); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Title:     %s\n", item.Title)
	fmt.Fprintf(deps.Stdout, "Slug:      %s\n", item.Slug)
	fmt.Fprintf(deps.Stdout, "Published: %s\n", item.PublishedAt.Format(time.DateOnly))
	if item.Author != "" {
		fmt.Fprintf(deps.Stdout, "Author:    %s\n", item.Author)
	}
	if item.SourceURL != "" {
		fmt.Fprintf(deps.Stdout, "Source:    %s\n", item.SourceURL)
	}
	fmt.Fprintf(deps.Stdout, "Image:     %s\n", item.ImageURL)
	fmt.Fprintf(deps.Stdout, "Excerpt:   %s\n", item.Excerpt)
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, content)

	return nil
}

// Run executes the news delete command.
func (c *NewsDeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return newsdesk.Errorf(newsdesk.EINVALID, "use --force to confirm deletion")
	}

	item, err := deps.News.FindNewsItemByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	if err := deps.News.DeleteNewsItem(deps.Ctx, item.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", newsdesk.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted news item %q\n", item.Title)
	return nil
}
