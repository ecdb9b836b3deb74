package jsonl_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/glyphgrad/jsonl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("one record per line", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := jsonl.NewWriter(&buf)

		require.NoError(t, w.Write(jsonl.Record{Line: 0, Glyphs: []string{"a", " ", "<"}, Colors: []string{"#ff0000", "#0000ff"}}))
		require.NoError(t, w.Write(jsonl.Record{Line: 1}))

		assert.Equal(t,
			`{"line":0,"glyphs":["a"," ","<"],"colors":["#ff0000","#0000ff"]}`+"\n"+
				`{"line":1,"glyphs":[],"colors":[]}`+"\n",
			buf.String())
	})
}

func TestSaver_Save(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "colors.jsonl")

		err := jsonl.NewSaver().Save(path, []jsonl.Record{{Line: 0, Glyphs: []string{"x"}, Colors: []string{"#000000"}}})

		require.NoError(t, err)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), `"colors":["#000000"]`)
	})

	t.Run("appends to existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "colors.jsonl")
		saver := jsonl.NewSaver()

		require.NoError(t, saver.Save(path, []jsonl.Record{{Line: 0}}))
		require.NoError(t, saver.Save(path, []jsonl.Record{{Line: 1}, {Line: 2}}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(string(content)), "\n")
		assert.Len(t, lines, 3)
		assert.Contains(t, lines[2], `"line":2`)
	})
}
