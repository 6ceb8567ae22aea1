// =============================================================================
// CSV to YAML Converter - Records Source
// =============================================================================
//
// This module loads the rows to convert. The parser is chosen by the input
// file extension:
//
//   .csv .txt        -> csvparser (configured delimiter, comma by default)
//   .tsv             -> csvparser (tab by default)
//   .xlsx .xlsm      -> xlsxparser
//   .yaml .yml .json -> yaml.go (a top-level sequence of mappings)
//
// Every failure is returned as a types.Error of kind KindSourceRead, except a
// YAML/JSON document whose root is not a sequence, which is KindType.
//
// =============================================================================

package records

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/config"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/csvparser"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/xlsxparser"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/pkg/utils"
)

// Format identifies a records file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatYAML Format = "yaml"
)

// Records is the loaded input.
type Records struct {
	// Source is the path the rows were read from.
	Source string

	// Format is the parser that was used.
	Format Format

	// Rows are the records in file order.
	Rows []types.Row
}

// DetectFormat maps a file name to its records format. Unknown extensions
// are read as CSV.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".yaml", ".yml", ".json":
		return FormatYAML
	default:
		return FormatCSV
	}
}

// Load reads all rows from path. A path that does not exist fails before
// any parser runs, with the same error for every format.
func Load(path string, cfg *config.Config) (*Records, error) {
	if !utils.FileExists(path) {
		return nil, &types.Error{
			Kind: types.KindSourceRead,
			Op:   "input file not found",
			Path: path,
			Err:  fs.ErrNotExist,
		}
	}

	format := DetectFormat(path)
	recs := &Records{Source: path, Format: format}

	var err error
	switch format {
	case FormatXLSX:
		var data *xlsxparser.SheetData
		data, err = xlsxparser.Parse(path, cfg.XLSXSettings)
		if err == nil {
			recs.Rows = data.Rows
		}
	case FormatYAML:
		recs.Rows, err = LoadYAML(path)
	default:
		var data *csvparser.CSVData
		data, err = csvparser.Parse(path, cfg.CSVSettings)
		if err == nil {
			recs.Rows = data.Rows
		}
	}

	if err != nil {
		if types.KindOf(err) != types.KindUnknown {
			return nil, err
		}
		return nil, &types.Error{
			Kind: types.KindSourceRead,
			Op:   fmt.Sprintf("failed to read %s file", format),
			Path: path,
			Err:  err,
		}
	}

	return recs, nil
}
