package importer_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/importer"
	"github.com/fwojciec/newsdesk/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructor_Reconstruct(t *testing.T) {
	t.Parallel()

	t.Run("rebuilds title author and body from reader output", func(t *testing.T) {
		t.Parallel()

		raw := "Title: My Article | LinkedIn\n\n### Jane Doe\nSeguir\n\nMarkdown Content:\nHello world.\n\n**Bold** point here.\n\nMás artículos de Jane"

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct(raw)

		assert.Equal(t, "My Article", article.Title)
		assert.Equal(t, "Jane Doe", article.Author)
		assert.Equal(t, "<p>Hello world.</p>\n<p><strong>Bold</strong> point here.</p>", article.Content)
		assert.NotContains(t, article.Content, "Más artículos")
	})

	t.Run("uses default title when no title line exists", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("Markdown Content:\nSome text.")

		assert.Equal(t, importer.UntitledTitle, article.Title)
		assert.Equal(t, "<p>Some text.</p>", article.Content)
	})

	t.Run("treats the whole text as body without the content marker", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("Title: Plain post\nJust a line of text.\n\nAnother paragraph.")

		assert.Equal(t, "Plain post", article.Title)
		assert.Equal(t, "<p>Just a line of text.</p>\n<p>Another paragraph.</p>", article.Content)
	})

	t.Run("strips platform suffix case-insensitively", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("Title: Launch day |  linkedin \nMarkdown Content:\nBody.")

		assert.Equal(t, "Launch day", article.Title)
	})

	t.Run("drops noise lines and joins the remaining lines", func(t *testing.T) {
		t.Parallel()

		raw := "Markdown Content:\nHello world.\nSign in\nMore text.\n\nAgree & Join\n\nLast one."

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct(raw)

		assert.Equal(t, "<p>Hello world. More text.</p>\n<p>Last one.</p>", article.Content)
	})

	t.Run("drops paragraphs whose joined text is noise", func(t *testing.T) {
		t.Parallel()

		raw := "Markdown Content:\nIntro.\n\nCopy\nlink\n\nOutro."

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct(raw)

		assert.Equal(t, "<p>Intro.</p>\n<p>Outro.</p>", article.Content)
	})

	t.Run("content never contains a noise pattern", func(t *testing.T) {
		t.Parallel()

		raw := strings.Join([]string{
			"Title: Noisy | LinkedIn",
			"Markdown Content:",
			"Skip to main content",
			"Real opening line.",
			"See more",
			"",
			"Report this post",
			"Like Comment",
			"",
			"Privacy Policy",
			"Cookie Policy",
			"",
			"Closing thought.",
			"© 2024 LinkedIn Corporation",
		}, "\n")

		noise := newsdesk.DefaultNoisePatterns()
		article := importer.NewReconstructor(noise).Reconstruct(raw)

		lower := strings.ToLower(importer.PlainText(article.Content))
		excerpt := strings.ToLower(importer.Excerpt(article.Content))
		for _, p := range noise.Patterns() {
			assert.NotContains(t, lower, p)
			assert.NotContains(t, excerpt, p)
		}
		assert.Equal(t, "<p>Real opening line.</p>\n<p>Closing thought.</p>", article.Content)
	})

	t.Run("separators flush the paragraph and are dropped", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("Markdown Content:\nFirst\n---\nSecond\n=====\nThird")

		assert.Equal(t, "<p>First</p>\n<p>Second</p>\n<p>Third</p>", article.Content)
	})

	t.Run("drops images proxy headers and platform links", func(t *testing.T) {
		t.Parallel()

		raw := strings.Join([]string{
			"Title: Post",
			"URL Source: https://www.linkedin.com/posts/jane_abc",
			"Published Time: 2024-05-03T10:00:00Z",
			"Warning: This page may require login",
			"Markdown Content:",
			"![cover](https://media.licdn.com/cover.jpg)",
			"[![avatar](https://media.licdn.com/a.jpg)](https://www.linkedin.com/in/jane)",
			"https://www.linkedin.com/in/jane",
			"[Jane Doe](https://www.linkedin.com/in/jane)",
			"Actual content.",
		}, "\n")

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct(raw)

		assert.Equal(t, "<p>Actual content.</p>", article.Content)
	})

	t.Run("does not repeat the author heading in the body", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("### Jane Doe\nFirst words.")

		assert.Equal(t, "Jane Doe", article.Author)
		assert.Equal(t, "<p>First words.</p>", article.Content)
	})

	t.Run("accepts one to three hashes on the author heading", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		for _, raw := range []string{"# Jane Doe\nFirst words.", "## Jane Doe\nFirst words."} {
			article := r.Reconstruct(raw)

			assert.Equal(t, "Jane Doe", article.Author, raw)
			assert.Equal(t, "<p>First words.</p>", article.Content, raw)
		}
	})

	t.Run("keeps bullet lines on their own line", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("Markdown Content:\nWe shipped:\n- faster builds\n* smaller images\n• fewer bugs")

		assert.Equal(t, "<p>We shipped:<br>• faster builds<br>• smaller images<br>• fewer bugs</p>", article.Content)
	})

	t.Run("stops at login walls", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("Markdown Content:\nVisible.\n\nSign in to view more content\n\nHidden.")

		assert.Equal(t, "<p>Visible.</p>", article.Content)
	})

	t.Run("returns empty content when only noise remains", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		article := r.Reconstruct("Title: x\nMarkdown Content:\nSign in\nJoin now\n\nPrivacy Policy")

		assert.Empty(t, article.Content)
	})

	t.Run("renders each paragraph exactly once", func(t *testing.T) {
		t.Parallel()

		var calls []string
		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		r.Render = func(text string) string {
			calls = append(calls, text)
			return newsdesk.MarkdownToHTML(text)
		}

		article := r.Reconstruct("Markdown Content:\nOne\ntwo.\n\nThree.\n\nFour.")

		require.Len(t, calls, 3)
		assert.Equal(t, []string{"One two.", "Three.", "Four."}, calls)
		assert.Equal(t, "<p>One two.</p>\n<p>Three.</p>\n<p>Four.</p>", article.Content)
	})

	t.Run("uses the injected classifier", func(t *testing.T) {
		t.Parallel()

		noise := &mock.NoiseClassifier{
			IsNoiseFn: func(line string) bool {
				return line == "" || strings.Contains(line, "promo")
			},
		}
		article := importer.NewReconstructor(noise).Reconstruct("Markdown Content:\nKeep me.\nBuy our promo now.")

		assert.Equal(t, "<p>Keep me.</p>", article.Content)
	})

	t.Run("extra end markers end the body", func(t *testing.T) {
		t.Parallel()

		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		r.EndMarkers = append(importer.DefaultEndMarkers(), "Related posts")
		article := r.Reconstruct("Markdown Content:\nBody.\n\nRELATED POSTS\n\nOther.")

		assert.Equal(t, "<p>Body.</p>", article.Content)
	})

	t.Run("default end markers cannot be changed by callers", func(t *testing.T) {
		t.Parallel()

		markers := importer.DefaultEndMarkers()
		markers[0] = "hello"
		r := importer.NewReconstructor(newsdesk.DefaultNoisePatterns())
		r.EndMarkers[1] = "world"

		assert.NotContains(t, importer.DefaultEndMarkers(), "hello")
		assert.NotContains(t, importer.DefaultEndMarkers(), "world")
		article := importer.NewReconstructor(newsdesk.DefaultNoisePatterns()).Reconstruct("Markdown Content:\nhello world.")
		assert.Equal(t, "<p>hello world.</p>", article.Content)
	})
}

func TestReconstructor_Author(t *testing.T) {
	t.Parallel()

	t.Run("detects a byline followed by a publication marker", func(t *testing.T) {
		t.Parallel()

		raw := "Title: Post\nJane Doe, Directora de Ingeniería\nPublicado el 3 de mayo\nMarkdown Content:\nText."

		article := importer.NewReconstructor(newsdesk.DefaultNoisePatterns()).Reconstruct(raw)

		assert.Equal(t, "Jane Doe", article.Author)
	})

	t.Run("detects a byline followed by a follow button", func(t *testing.T) {
		t.Parallel()

		raw := "John Smith, Senior Engineer\nFollow\nMarkdown Content:\nText."

		article := importer.NewReconstructor(newsdesk.DefaultNoisePatterns()).Reconstruct(raw)

		assert.Equal(t, "John Smith", article.Author)
	})

	t.Run("ignores a byline without a marker on the next line", func(t *testing.T) {
		t.Parallel()

		raw := "Jane Doe, Directora de Ingeniería\nSomething else\nMarkdown Content:\nText."

		article := importer.NewReconstructor(newsdesk.DefaultNoisePatterns()).Reconstruct(raw)

		assert.Empty(t, article.Author)
	})

	t.Run("first match wins", func(t *testing.T) {
		t.Parallel()

		raw := "### First Author\nJohn Smith, Senior Engineer\nFollow\nMarkdown Content:\nText."

		article := importer.NewReconstructor(newsdesk.DefaultNoisePatterns()).Reconstruct(raw)

		assert.Equal(t, "First Author", article.Author)
	})

	t.Run("only scans the page header", func(t *testing.T) {
		t.Parallel()

		lines := make([]string, 0, 40)
		for range 35 {
			lines = append(lines, "filler")
		}
		lines = append(lines, "### Late Heading", "Text.")

		article := importer.NewReconstructor(newsdesk.DefaultNoisePatterns()).Reconstruct(strings.Join(lines, "\n"))

		assert.Empty(t, article.Author)
	})
}
