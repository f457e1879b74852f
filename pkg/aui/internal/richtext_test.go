package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRichText(t *testing.T) {
	rt, err := ParseRichText(`<h1>Title</h1><p>Line one<br>line two</p><p></p><p>   </p><ul><li>a</li><li>b</li></ul>`)
	require.NoError(t, err)
	assert.Equal(t, []string{"Title", "Line one", "line two", "", "• a", "• b"}, rt.Lines)
	assert.Empty(t, rt.Links)
}

func TestParseRichTextLinks(t *testing.T) {
	rt, err := ParseRichText(`<p>Read <a href="https://example.org/help">the   online  help</a> or <a name="anchor">this</a>.</p>`)
	require.NoError(t, err)
	assert.Equal(t, []Link{{Text: "the online help", Href: "https://example.org/help"}}, rt.Links)
	assert.Equal(t, []string{"Read the online help or this."}, rt.Lines)
}

func TestPlainLines(t *testing.T) {
	assert.Equal(t, []string{"a", "", "b"}, PlainLines("a\r\n\nb"))
	assert.Nil(t, PlainLines(""))
}
