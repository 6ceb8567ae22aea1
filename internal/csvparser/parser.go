// =============================================================================
// CSV to YAML Converter - CSV Parser Module
// =============================================================================
//
// This module reads CSV files into rows. The first record is the header;
// every following record becomes a types.Row keyed by header name, in
// header order.
//
// FEATURES:
//   - Configurable delimiter (comma, tab, pipe, semicolon, any single rune)
//   - Comment lines
//   - Ragged records: a short record yields a row without the missing
//     columns, extra cells past the header are dropped
//   - UTF-8 byte order mark on the header is ignored
//   - Every record yields a row, blank ones included, unless
//     skip_empty_rows is set
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/config"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
)

// =============================================================================
// CSV DATA STRUCTURE
// =============================================================================

// CSVData represents the parsed CSV file.
type CSVData struct {
	// Headers contains the cleaned column headers.
	Headers []string

	// Rows contains the data rows, keyed by header.
	Rows []types.Row

	// SourceFile is the path to the source CSV file.
	SourceFile string
}

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// Parse reads a CSV file and returns the parsed data.
//
// PARAMETERS:
//   - filePath: The path to the CSV file.
//   - settings: The CSV parsing settings.
//
// RETURNS:
//   - A pointer to the CSVData struct containing the parsed data.
//   - An error if the file cannot be read or parsed.
//
// A .tsv file defaults to a tab delimiter when none is configured.
func Parse(filePath string, settings config.CSVSettings) (*CSVData, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fallback := ','
	if strings.EqualFold(filepath.Ext(filePath), ".tsv") {
		fallback = '\t'
	}

	data, err := parse(bufio.NewReader(file), settings, fallback)
	if err != nil {
		return nil, err
	}
	data.SourceFile = filePath

	return data, nil
}

// ParseReader reads CSV records from r.
func ParseReader(r io.Reader, settings config.CSVSettings) (*CSVData, error) {
	return parse(r, settings, ',')
}

func parse(r io.Reader, settings config.CSVSettings, fallback rune) (*CSVData, error) {
	csvReader := csv.NewReader(r)
	if err := configureReader(csvReader, settings, fallback); err != nil {
		return nil, err
	}

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		// An empty file has no header and no rows.
		return &CSVData{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	headers := cleanHeaders(header)
	data := &CSVData{Headers: headers}

	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		if settings.SkipEmptyRows && isRowEmpty(record) {
			continue
		}

		data.Rows = append(data.Rows, types.NewRow(headers, record))
	}

	return data, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings, fallback rune) error {
	delimiter, err := config.ParseDelimiter(settings.Delimiter, fallback)
	if err != nil {
		return err
	}
	reader.Comma = delimiter

	if settings.Comment != "" {
		reader.Comment = []rune(settings.Comment)[0]
	}

	// Allow variable number of fields per row.
	reader.FieldsPerRecord = -1

	// Allow lazy quotes (quotes that don't follow strict CSV rules).
	reader.LazyQuotes = true

	reader.TrimLeadingSpace = settings.TrimsLeadingSpace()

	return nil
}

// cleanHeaders trims header names, strips a UTF-8 byte order mark and names
// empty headers Column_<n>.
func cleanHeaders(headers []string) []string {
	cleaned := make([]string, len(headers))

	for i, header := range headers {
		if i == 0 {
			header = strings.TrimPrefix(header, "\ufeff")
		}
		header = strings.TrimSpace(header)

		if header == "" {
			header = fmt.Sprintf("Column_%d", i+1)
		}

		cleaned[i] = header
	}

	return cleaned
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
