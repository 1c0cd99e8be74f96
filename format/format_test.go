package format

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/safeseq"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) *safeseq.Array[string] {
	t.Helper()
	arr, err := safeseq.From(4, "a", "bb", "ccc")
	require.NoError(t, err)
	return arr
}

func TestConsoleMarksCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "safeseq")
	defer teardown()
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()
	//
	arr := sample(t)
	it := arr.Begin()
	require.NoError(t, it.Advance(2))
	var out strings.Builder
	cfg := &Config{LineWidth: 80, Context: uax11.LatinContext}
	err := Console(&out, arr, cfg, MarkOf("it", it), Mark{Label: "e", Position: 4})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, cellsOfLine(lines[0]))
	assert.Equal(t, "| a   | bb  | ccc |     | end |", lines[1])
	assert.Equal(t, "|     |     | it  |     | e   |", lines[2])
	for _, l := range lines {
		assert.Equal(t, width(lines[1], uax11.LatinContext), width(l, uax11.LatinContext), l)
	}
}

func cellsOfLine(line string) []string {
	return strings.Fields(strings.ReplaceAll(line, "|", " "))
}

func TestCellWidthOfWideCharacters(t *testing.T) {
	assert.Equal(t, 4, width("日本", uax11.LatinContext))
	assert.Equal(t, 0, width("", uax11.LatinContext))
	assert.Equal(t, " 日本 ", pad("日本", 6, uax11.LatinContext))
}

func TestConsoleWrapsLines(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()
	//
	arr, err := safeseq.New[int](10)
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, Console(&out, arr, &Config{LineWidth: 20}))
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// index labels are measured in console positions, like items
	ctx := uax11.LatinContext
	cw := max(width("10", ctx), width("end", ctx)) + 2
	perLine := max(1, 19/(cw+1))
	blocks := (11 + perLine - 1) / perLine
	require.Len(t, lines, 2*blocks)
	for i := 0; i < len(lines); i += 2 {
		assert.LessOrEqual(t, width(lines[i], ctx), 20, lines[i])
		assert.Equal(t, width(lines[i], ctx), width(lines[i+1], ctx), lines[i+1])
	}
	last := cellsOfLine(lines[len(lines)-2])
	assert.Equal(t, "10", last[len(last)-1])
	assert.Equal(t, "end", cellsOfLine(lines[len(lines)-1])[len(last)-1])
}

func TestMarksOutOfRange(t *testing.T) {
	arr := sample(t)
	var out strings.Builder
	err := Console(&out, arr, &Config{LineWidth: 40}, Mark{Label: "x", Position: 5})
	assert.ErrorIs(t, err, safeseq.ErrIteratorBounds)
	assert.ErrorIs(t, Dot(&out, arr, Mark{Label: "x", Position: -1}), safeseq.ErrIteratorBounds)
	assert.ErrorIs(t, HTML[int](&out, nil), safeseq.ErrNullDereference)
	assert.Empty(t, out.String())
}

func TestDot(t *testing.T) {
	arr := sample(t)
	var out strings.Builder
	require.NoError(t, Dot(&out, arr, Mark{Label: "it", Position: 1}))
	dot := out.String()
	assert.True(t, strings.HasPrefix(dot, "strict digraph {\n"))
	assert.Contains(t, dot, "\"s1\" [label=\"1\\n“bb”\"")
	assert.Contains(t, dot, "\"s4\" [label=\"end\"")
	assert.Contains(t, dot, "\"s3\" -> \"s4\";")
	assert.Contains(t, dot, "\"m0\" -> \"s1\" [style=dashed];")
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestHTML(t *testing.T) {
	arr, err := safeseq.From(2, "<a>", "b")
	require.NoError(t, err)
	var out strings.Builder
	require.NoError(t, HTML(&out, arr, Mark{Label: "it", Position: 0}))
	want := `<table class="safeseq">` +
		`<tr><th>0</th><th>1</th><th>2</th></tr>` +
		`<tr><td class="mark">&lt;a&gt;</td><td>b</td><td>end</td></tr>` +
		`<tr><td>it</td><td></td><td></td></tr>` +
		`</table>`
	assert.Equal(t, want, out.String())
}
