package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageObject matches page dictionaries but not the page tree.
var pageObject = regexp.MustCompile(`/Type\s*/Page\b`)

func TestDocumentPages(t *testing.T) {
	style := DefaultStyle()
	doc := NewDocument(style.Width, style.Height)

	for i := 0; i < 3; i++ {
		c, err := Build(sampleSeries(), style)
		require.NoError(t, err)
		doc.AddPage(c)
	}
	assert.Equal(t, 3, doc.Pages())

	var buf bytes.Buffer
	_, err := doc.WriteTo(&buf)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
	assert.Len(t, pageObject.FindAll(buf.Bytes(), -1), 3)
}

func TestDocumentSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Plot_site.pdf")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))

	style := DefaultStyle()
	doc := NewDocument(style.Width, style.Height)
	c, err := Build(sampleSeries(), style)
	require.NoError(t, err)
	doc.AddPage(c)

	require.NoError(t, doc.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestDocumentIsRepeatable(t *testing.T) {
	render := func() []byte {
		style := DefaultStyle()
		doc := NewDocument(style.Width, style.Height)
		for i := 0; i < 2; i++ {
			c, err := Build(sampleSeries(), style)
			require.NoError(t, err)
			doc.AddPage(c)
		}
		var buf bytes.Buffer
		_, err := doc.WriteTo(&buf)
		require.NoError(t, err)
		return buf.Bytes()
	}

	first := render()
	time.Sleep(1100 * time.Millisecond)
	second := render()

	assert.True(t, bytes.Equal(first, second), "identical documents differ")
}
