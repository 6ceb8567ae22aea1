// =============================================================================
// CSV to YAML Converter - Converter Module
// =============================================================================
//
// This module contains the core conversion logic. It orchestrates the whole
// pipeline for one input file, from reading the records to writing the YAML.
//
// CONVERSION PIPELINE:
//   1. Load the records (CSV, XLSX or YAML/JSON)
//   2. Discover the keys in first-seen order
//   3. Select the keys to render (checklist, preset or all)
//   4. Render one input<i> block per row
//   5. Optionally verify the rendered YAML
//   6. Write the output atomically (or to stdout)
//
// Each step fails with a classified types.Error, so the command can map the
// failure to an exit code.
//
// =============================================================================

package converter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/config"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/keys"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/records"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/types"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/internal/yamlwriter"
	"github.com/ginjaninja78/CSV-to-YAML-inputs/pkg/utils"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of one conversion.
type Result struct {
	// RunID identifies the run in log lines.
	RunID string

	// InputFile is the records file that was read.
	InputFile string

	// OutputFile is where the YAML was written ("-" for stdout).
	OutputFile string

	// Keys are the rendered keys, in discovery order.
	Keys []string

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the processing.
type ProcessingStats struct {
	// RowsProcessed is the number of rows read, and the number of blocks
	// written.
	RowsProcessed int

	// KeysDiscovered is the number of distinct keys across all rows.
	KeysDiscovered int

	// KeysSelected is the number of keys rendered per block.
	KeysSelected int

	// BytesWritten is the size of the rendered YAML.
	BytesWritten int

	// ProcessingTime is the time taken by the whole pipeline.
	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// KeySelector chooses which of the discovered keys are rendered. It returns
// the chosen keys in discovery order.
type KeySelector interface {
	Select(ctx context.Context, keys []string) ([]string, error)
}

// Converter converts one records file to YAML inputs.
type Converter struct {
	cfg      *config.Config
	selector KeySelector
	logger   *slog.Logger

	// stdout receives the YAML when the output file is "-".
	stdout io.Writer
}

// =============================================================================
// CONSTRUCTOR
// =============================================================================

// New creates a new Converter.
//
// PARAMETERS:
//   - cfg: The resolved configuration (input, output, verify, parser settings).
//   - selector: Chooses the keys to render.
//   - logger: Receives step logging. Nil discards it.
//
// RETURNS:
//   - A new Converter instance.
func New(cfg *config.Config, selector KeySelector, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Converter{
		cfg:      cfg,
		selector: selector,
		logger:   logger,
	}
}

// SetStdout sets where "-" output goes. Nil means os.Stdout.
func (c *Converter) SetStdout(w io.Writer) {
	c.stdout = w
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline.
//
// RETURNS:
//   - The Result on success.
//   - A types.Error classifying the failure otherwise. Nothing is written
//     unless every step before the write succeeded.
func (c *Converter) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	result := &Result{
		RunID:      uuid.New().String(),
		InputFile:  c.cfg.InputFile,
		OutputFile: utils.GenerateOutputFileName(c.cfg.OutputFile, c.cfg.InputFile),
	}
	log := c.logger.With("run_id", result.RunID)

	// =========================================================================
	// STEP 1: LOAD RECORDS
	// =========================================================================

	log.Debug("Loading records", "input", result.InputFile)

	recs, err := records.Load(result.InputFile, c.cfg)
	if err != nil {
		return nil, err
	}

	result.Stats.RowsProcessed = len(recs.Rows)
	log.Debug("Loaded records", "format", recs.Format, "rows", len(recs.Rows))

	// =========================================================================
	// STEP 2: DISCOVER KEYS
	// =========================================================================

	discovered := keys.Discover(recs.Rows)
	if len(discovered) == 0 {
		return nil, &types.Error{
			Kind: types.KindEmptySchema,
			Op:   "no keys found in records",
			Path: result.InputFile,
		}
	}

	result.Stats.KeysDiscovered = len(discovered)
	log.Debug("Discovered keys", "keys", discovered)

	// =========================================================================
	// STEP 3: SELECT KEYS
	// =========================================================================

	selected, err := c.selector.Select(ctx, discovered)
	if err != nil {
		if types.KindOf(err) != types.KindUnknown {
			return nil, err
		}
		return nil, fmt.Errorf("failed to select keys: %w", err)
	}
	if len(selected) == 0 {
		return nil, types.NewError(types.KindEmptySelection, "no keys selected", nil)
	}

	result.Keys = selected
	result.Stats.KeysSelected = len(selected)
	log.Debug("Selected keys", "keys", selected)

	// =========================================================================
	// STEP 4: RENDER YAML
	// =========================================================================

	text := yamlwriter.Format(recs.Rows, selected)
	result.Stats.BytesWritten = len(text)

	// =========================================================================
	// STEP 5: VERIFY OUTPUT
	// =========================================================================

	// A failed check means the output is never persisted.
	if c.cfg.Verify {
		if err := yamlwriter.Verify(text, recs.Rows, selected); err != nil {
			return nil, &types.Error{
				Kind: types.KindSinkWrite,
				Op:   "output verification failed",
				Path: result.OutputFile,
				Err:  err,
			}
		}
		log.Debug("Verified rendered YAML")
	}

	// =========================================================================
	// STEP 6: WRITE OUTPUT
	// =========================================================================

	if err := ctx.Err(); err != nil {
		return nil, types.NewError(types.KindAborted, "conversion cancelled", err)
	}

	if err := utils.WriteOutput(result.OutputFile, text, c.stdout); err != nil {
		return nil, &types.Error{
			Kind: types.KindSinkWrite,
			Op:   "failed to write output",
			Path: result.OutputFile,
			Err:  err,
		}
	}

	result.Stats.ProcessingTime = time.Since(startTime)
	log.Info("Conversion complete",
		"input", result.InputFile,
		"output", result.OutputFile,
		"rows", result.Stats.RowsProcessed,
		"keys", result.Stats.KeysSelected,
		"duration", result.Stats.ProcessingTime)

	return result, nil
}

// =============================================================================
// KEY LISTING
// =============================================================================

// DiscoverKeys loads path and returns its keys in discovery order. A file
// with no keys is a KindEmptySchema error.
func DiscoverKeys(path string, cfg *config.Config) ([]string, error) {
	recs, err := records.Load(path, cfg)
	if err != nil {
		return nil, err
	}

	discovered := keys.Discover(recs.Rows)
	if len(discovered) == 0 {
		return nil, &types.Error{
			Kind: types.KindEmptySchema,
			Op:   "no keys found in records",
			Path: path,
		}
	}
	return discovered, nil
}
