package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/newsdesk"
	"github.com/fwojciec/newsdesk/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts imported paragraphs", func(t *testing.T) {
		t.Parallel()

		html := newsdesk.MarkdownToHTML("Hello world.") + "\n" + newsdesk.MarkdownToHTML("**Bold** point here.")

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "Hello world.\n\n**Bold** point here.", md)
	})

	t.Run("keeps links opened in a new tab", func(t *testing.T) {
		t.Parallel()

		html := newsdesk.MarkdownToHTML("Read [the report](https://example.com/report).")

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[the report](https://example.com/report)")
	})

	t.Run("converts italic", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p>An <em>important</em> note.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "*important*")
	})

	t.Run("turns imported bullets into a list", func(t *testing.T) {
		t.Parallel()

		html := newsdesk.MarkdownToHTML("We shipped:\n- faster builds\n- fewer bugs")

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "We shipped:\n\n- faster builds\n- fewer bugs", md)
	})

	t.Run("keeps bullets that open a paragraph", func(t *testing.T) {
		t.Parallel()

		html := newsdesk.MarkdownToHTML("- one\n- two") + "\n" + newsdesk.MarkdownToHTML("After.")

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Equal(t, "- one\n- two\n\nAfter.", md)
	})

	t.Run("converts project lists", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<ul><li>Design</li><li>Supervision</li></ul>`)

		require.NoError(t, err)
		assert.Contains(t, md, "- Design")
		assert.Contains(t, md, "- Supervision")
	})

	t.Run("converts strikethrough", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<p><del>Old</del> new</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "~~Old~~")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Phase</th><th>Year</th></tr></thead>
<tbody><tr><td>Design</td><td>2023</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Phase")
		assert.Contains(t, md, "Design")
		assert.Contains(t, md, "|")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("  ")

		require.Error(t, err)
		assert.Equal(t, newsdesk.EINVALID, newsdesk.ErrorCode(err))
	})
}
