package web

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatting(t *testing.T) {
	require.Equal(t, "10.50", Money(10.5))
	require.Equal(t, "70.71%", Percent(70.710678))
	require.Equal(t, "1.5", Quantity(1.5))
	require.Equal(t, "2", Quantity(2))
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	require.NotNil(t, tmpl.Lookup("index.html"))
}

func TestStaticHasStylesheet(t *testing.T) {
	raw, err := fs.ReadFile(Static(), "app.css")
	require.NoError(t, err)
	require.True(t, bytes.Contains(raw, []byte("--reveal-delay")))
}
