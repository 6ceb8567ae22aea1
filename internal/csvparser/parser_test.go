package csvparser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/config"
)

func TestParseReader_KeysFollowHeaderOrder(t *testing.T) {
	data, err := ParseReader(strings.NewReader("url,name\nhttp://x,X\nhttp://y,Y\n"), config.CSVSettings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"url", "name"}, data.Headers)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"url", "name"}, data.Rows[0].Keys())
	assert.Equal(t, "http://x", data.Rows[0].Value("url"))
	assert.Equal(t, "Y", data.Rows[1].Value("name"))
}

func TestParseReader_RaggedRecords(t *testing.T) {
	data, err := ParseReader(strings.NewReader("a,b,c\n1\n1,2,3,4\n"), config.CSVSettings{})
	require.NoError(t, err)
	require.Len(t, data.Rows, 2)

	_, ok := data.Rows[0].Get("b")
	assert.False(t, ok, "short record must not carry missing columns")
	assert.Equal(t, []string{"a"}, data.Rows[0].Keys())
	assert.Equal(t, []string{"a", "b", "c"}, data.Rows[1].Keys())
}

func TestParseReader_KeepsBlankRecordsByDefault(t *testing.T) {
	input := "a,b\n1,2\n,\n3,4\n"

	data, err := ParseReader(strings.NewReader(input), config.CSVSettings{})
	require.NoError(t, err)
	require.Len(t, data.Rows, 3)

	assert.Equal(t, []string{"a", "b"}, data.Rows[1].Keys())
	assert.Equal(t, "", data.Rows[1].Value("a"))
	assert.Equal(t, "3", data.Rows[2].Value("a"))
}

func TestParseReader_SkipEmptyRows(t *testing.T) {
	input := "a,b\n1,2\n,\n3,4\n"

	data, err := ParseReader(strings.NewReader(input), config.CSVSettings{SkipEmptyRows: true})
	require.NoError(t, err)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "3", data.Rows[1].Value("a"))
}

func TestParseReader_HeaderCleanup(t *testing.T) {
	data, err := ParseReader(strings.NewReader("\ufeff id , ,name\n1,2,3\n"), config.CSVSettings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "Column_2", "name"}, data.Headers)
}

func TestParseReader_DelimiterAndComment(t *testing.T) {
	input := "# exported\nurl|note\nhttp://x|\"quoted, with comma\"\n"

	data, err := ParseReader(strings.NewReader(input), config.CSVSettings{Delimiter: "pipe", Comment: "#"})
	require.NoError(t, err)
	require.Len(t, data.Rows, 1)

	assert.Equal(t, "quoted, with comma", data.Rows[0].Value("note"))
}

func TestParseReader_EmptyInput(t *testing.T) {
	data, err := ParseReader(strings.NewReader(""), config.CSVSettings{})
	require.NoError(t, err)

	assert.Empty(t, data.Headers)
	assert.Empty(t, data.Rows)
}

func TestParseReader_HeaderOnly(t *testing.T) {
	data, err := ParseReader(strings.NewReader("url\n"), config.CSVSettings{})
	require.NoError(t, err)

	assert.Equal(t, []string{"url"}, data.Headers)
	assert.Empty(t, data.Rows)
}

func TestParse_TSVDefaultsToTab(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.tsv")
	require.NoError(t, os.WriteFile(path, []byte("a\tb\n1\t2\n"), 0644))

	data, err := Parse(path, config.CSVSettings{})
	require.NoError(t, err)

	assert.Equal(t, path, data.SourceFile)
	assert.Equal(t, []string{"a", "b"}, data.Headers)
	assert.Equal(t, "2", data.Rows[0].Value("b"))
}

func TestParse_MissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "nope.csv"), config.CSVSettings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}
