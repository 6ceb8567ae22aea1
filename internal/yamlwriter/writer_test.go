package yamlwriter

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

func row(pairs ...string) types.Row {
	var r types.Row
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Set(pairs[i], pairs[i+1])
	}
	return r
}

func TestFormat_URLExample(t *testing.T) {
	rows := []types.Row{row("url", "http://x"), row("url", "http://y")}

	want := "input0:\n" +
		"  url: \"http://x\"\n" +
		"input1:\n" +
		"  url: \"http://y\""
	assert.Equal(t, want, Format(rows, []string{"url"}))
}

func TestFormat_OneHeaderPerRowInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 3, 12} {
		t.Run(fmt.Sprintf("%d rows", n), func(t *testing.T) {
			rows := make([]types.Row, n)
			for i := range rows {
				rows[i] = row("id", fmt.Sprint(i))
			}

			out := Format(rows, []string{"id"})

			var headers []string
			for _, line := range strings.Split(out, "\n") {
				if !strings.HasPrefix(line, " ") && line != "" {
					headers = append(headers, line)
				}
			}
			require.Len(t, headers, n)
			for i, header := range headers {
				assert.Equal(t, fmt.Sprintf("input%d:", i), header)
			}
		})
	}
}

func TestFormat_EmptyRows(t *testing.T) {
	assert.Equal(t, "", Format(nil, []string{"url"}))
}

func TestFormat_MissingKeyRendersEmpty(t *testing.T) {
	rows := []types.Row{
		row("a", "1", "b", "2"),
		row("b", "3", "c", "4"),
	}

	want := "input0:\n" +
		"  a: \"1\"\n" +
		"  b: \"2\"\n" +
		"  c: \"\"\n" +
		"input1:\n" +
		"  a: \"\"\n" +
		"  b: \"3\"\n" +
		"  c: \"4\""
	assert.Equal(t, want, Format(rows, []string{"a", "b", "c"}))
}

func TestFormat_KeyOrderFollowsArgument(t *testing.T) {
	rows := []types.Row{row("a", "1", "b", "2")}

	assert.Equal(t, "input0:\n  b: \"2\"\n  a: \"1\"", Format(rows, []string{"b", "a"}))
}

func TestFormat_NoKeys(t *testing.T) {
	rows := []types.Row{row("a", "1"), row("a", "2")}

	assert.Equal(t, "input0:\ninput1:", Format(rows, nil))
}

func TestQuoteValue(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "http://x", `"http://x"`},
		{"empty", "", `""`},
		{"whitespace only", "   ", `""`},
		{"trimmed", "  padded\t", `"padded"`},
		{"escapes backslash before quote", `He said "hi"\there`, `"He said \"hi\"\\there"`},
		{"leading quote only", `"partial`, `"partial"`},
		{"trailing quote only", `partial'`, `"partial"`},
		{"wrapped double", `"wrapped"`, `"wrapped"`},
		{"wrapped single", `'wrapped'`, `"wrapped"`},
		{"mismatched pair", `'mixed"`, `"mixed"`},
		{"only one quote stripped per side", `""twice""`, `"\"twice\""`},
		{"lone quote", `"`, `""`},
		{"trim before strip", `  "spaced"  `, `"spaced"`},
		{"inner whitespace kept", `" inner "`, `" inner "`},
		{"backslash run", `a\\b`, `"a\\\\b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, QuoteValue(tt.raw))
		})
	}
}

func TestFormatValue_AcceptsSequences(t *testing.T) {
	want := "input0:\n  url: \"http://x\"\ninput1:\n  url: \"\""

	tests := []struct {
		name string
		in   any
	}{
		{"rows", []types.Row{row("url", "http://x"), {}}},
		{"string maps", []map[string]string{{"url": "http://x"}, {}}},
		{"any maps", []map[string]any{{"url": "http://x"}, {"url": nil}}},
		{"any items", []any{map[string]any{"url": "http://x"}, "not a mapping"}},
		{"mixed items", []any{row("url", "http://x"), nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := FormatValue(tt.in, []string{"url"})
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}
}

func TestFormatValue_AnyScalarsAsText(t *testing.T) {
	out, err := FormatValue([]map[string]any{{"port": 8080, "tls": true}}, []string{"port", "tls"})
	require.NoError(t, err)

	assert.Equal(t, "input0:\n  port: \"8080\"\n  tls: \"true\"", out)
}

func TestFormatValue_RejectsNonSequences(t *testing.T) {
	inputs := []any{
		nil,
		"input0",
		42,
		map[string]string{"url": "http://x"},
		row("url", "http://x"),
		struct{}{},
	}

	for _, in := range inputs {
		t.Run(fmt.Sprintf("%T", in), func(t *testing.T) {
			out, err := FormatValue(in, []string{"url"})
			require.Error(t, err)

			assert.True(t, errors.Is(err, types.KindType))
			assert.Empty(t, out)
		})
	}
}
