// =============================================================================
// Purchase Order Generator - Generator Module
// =============================================================================
//
// This module orchestrates one purchase order run, from the order export to
// the PDF on disk.
//
// PIPELINE:
//   1. Load settings (contact blocks, logo, saved vendors)
//   2. Apply CLI overrides (saved vendor, logo)
//   3. Load and aggregate the order export
//   4. Select products
//   5. Validate the request
//   6. Compose the document
//   7. Write the PDF
//   8. Save the settings that were used
//
// Recoverable conditions (skipped rows, missing columns, logo problems,
// validation warnings, a settings file that could not be saved) are logged
// and the run carries on.
//
// =============================================================================

package generator

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ginjaninja78/po-generator/internal/composer"
	"github.com/ginjaninja78/po-generator/internal/config"
	"github.com/ginjaninja78/po-generator/internal/orders"
	"github.com/ginjaninja78/po-generator/internal/pdfwriter"
	"github.com/ginjaninja78/po-generator/internal/settings"
	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/ginjaninja78/po-generator/internal/validation"
	"github.com/ginjaninja78/po-generator/pkg/utils"
	"go.uber.org/zap"
)

// ErrNoProducts is returned when there is nothing to put on the order.
var ErrNoProducts = errors.New("no products selected")

// =============================================================================
// OPTIONS AND RESULT
// =============================================================================

// Options describes one generation run.
type Options struct {
	// InputFile overrides the configured order export.
	InputFile string

	// Products are base product names, in the order they should appear.
	Products []string

	// All selects every product in the export, sorted by name.
	All bool

	// OutputPath is the PDF path. When empty, a name is generated in the
	// configured output directory.
	OutputPath string

	// LogoPath overrides the logo from the settings.
	LogoPath string

	// Vendor selects a saved vendor by name.
	Vendor string

	// SaveSettings writes the settings used back to the settings file.
	SaveSettings bool

	// Now is the order timestamp. The zero value means time.Now().
	Now time.Time
}

// Result represents the outcome of one run.
type Result struct {
	// InputFile is the export that was read.
	InputFile string

	// OutputFile is the PDF written. Empty if the run failed.
	OutputFile string

	// Success indicates whether the PDF was written.
	Success bool

	// Error contains the error if the run failed.
	Error error

	// Products are the product names on the order, in order.
	Products []string

	// Warnings are the validation warnings that did not stop the run.
	Warnings []*validation.ValidationError

	// LogoStatus reports what happened to the logo.
	LogoStatus composer.LogoStatus

	// Stats contains processing statistics.
	Stats ProcessingStats
}

// ProcessingStats contains statistics about the run.
type ProcessingStats struct {
	// RowsRead is the number of data rows in the export.
	RowsRead int

	// RowsSkipped is the number of malformed rows dropped.
	RowsSkipped int

	// ProductsAvailable is the number of products in the export.
	ProductsAvailable int

	// UnitsOrdered is the total quantity across the selected products.
	UnitsOrdered int

	// ProcessingTime is the time taken for the run.
	ProcessingTime time.Duration
}

// =============================================================================
// GENERATOR
// =============================================================================

// Generator runs the purchase order pipeline.
type Generator struct {
	config *config.MainConfig
	logger *zap.Logger
	writer *pdfwriter.Writer
}

// New creates a Generator. A nil logger discards log output.
func New(cfg *config.MainConfig, logger *zap.Logger) *Generator {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		config: cfg,
		logger: logger,
		writer: pdfwriter.New(pdfwriter.DefaultOptions()),
	}
}

// LoadOptions builds order loading options from the configuration.
func (g *Generator) LoadOptions() (orders.LoadOptions, error) {
	names, err := orders.NewTransformer(g.config.NameRules)
	if err != nil {
		return orders.LoadOptions{}, err
	}
	return orders.LoadOptions{
		NameColumn:     g.config.NameColumn,
		QuantityColumn: g.config.QuantityColumn,
		CSV:            g.config.CSV,
		Names:          names,
	}, nil
}

// LoadOrders loads and aggregates an export, logging anything unusual.
// An empty path means the configured input file.
func (g *Generator) LoadOrders(path string) (orders.LoadResult, error) {
	if path == "" {
		path = g.config.InputFile
	}

	opts, err := g.LoadOptions()
	if err != nil {
		return orders.LoadResult{Orders: orders.Aggregated{}}, fmt.Errorf("failed to prepare name rules: %w", err)
	}

	loaded := orders.Load(path, opts)
	log := g.logger.With(zap.String("input", path))

	switch loaded.Status {
	case orders.SourceMissing:
		log.Warn("order export not found", zap.Error(loaded.Err))
	case orders.SourceUnreadable:
		log.Error("order export could not be read", zap.Error(loaded.Err))
	default:
		if len(loaded.MissingColumns) > 0 {
			log.Warn("order export is missing required columns", zap.Strings("columns", loaded.MissingColumns))
		}
		if loaded.Skipped > 0 {
			log.Info("skipped malformed rows", zap.Int("skipped", loaded.Skipped), zap.Int("rows", loaded.Rows))
		}
		log.Debug("loaded order export", zap.Int("rows", loaded.Rows), zap.Int("products", len(loaded.Orders)))
	}

	return loaded, nil
}

// LoadSettings reads the settings file. A file that cannot be parsed is
// logged and the defaults are used.
func (g *Generator) LoadSettings() *settings.Settings {
	s, err := settings.Load(g.config.SettingsFile)
	if err != nil {
		g.logger.Warn("using default settings", zap.String("settings", g.config.SettingsFile), zap.Error(err))
	}
	return s
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the pipeline.
//
// RETURNS:
//   - A Result struct containing the outcome of the run.
func (g *Generator) Run(opts Options) Result {
	startTime := time.Now()
	now := opts.Now
	if now.IsZero() {
		now = startTime
	}

	input := opts.InputFile
	if input == "" {
		input = g.config.InputFile
	}
	result := Result{InputFile: input}
	fail := func(err error) Result {
		result.Error = err
		result.Stats.ProcessingTime = time.Since(startTime)
		g.logger.Error("purchase order not generated", zap.String("input", input), zap.Error(err))
		return result
	}

	// =========================================================================
	// STEP 1-2: SETTINGS AND OVERRIDES
	// =========================================================================

	s := g.LoadSettings()
	if opts.Vendor != "" && !s.UseVendor(opts.Vendor) {
		return fail(fmt.Errorf("no saved vendor named %q", opts.Vendor))
	}
	if opts.LogoPath != "" {
		s.LogoPath = opts.LogoPath
	}

	// =========================================================================
	// STEP 3: LOAD ORDERS
	// =========================================================================

	loaded, err := g.LoadOrders(input)
	if err != nil {
		return fail(err)
	}
	if loaded.Status != orders.SourceOK {
		return fail(fmt.Errorf("failed to load orders: %w", loaded.Err))
	}
	result.Stats.RowsRead = loaded.Rows
	result.Stats.RowsSkipped = loaded.Skipped
	result.Stats.ProductsAvailable = len(loaded.Orders)

	// =========================================================================
	// STEP 4: SELECT PRODUCTS
	// =========================================================================

	products, err := SelectProducts(loaded.Orders, opts.Products, opts.All)
	if err != nil {
		return fail(err)
	}
	for _, p := range products {
		result.Products = append(result.Products, p.Name)
		result.Stats.UnitsOrdered += p.Total()
	}

	req := composer.Request{
		Products: products,
		Issuer:   s.CompanyInfo,
		Vendor:   s.VendorInfo,
		ShipTo:   s.ShipToInfo,
		LogoPath: s.LogoPath,
		Now:      now,
	}

	// =========================================================================
	// STEP 5: VALIDATE
	// =========================================================================

	validated := validation.NewValidator().ValidateRequest(req)
	if !validated.IsValid {
		return fail(fmt.Errorf("invalid purchase order:\n%s", validation.FormatErrors(validated.Errors)))
	}
	result.Warnings = validated.Warnings()
	for _, w := range result.Warnings {
		g.logger.Warn(w.Message, zap.String("field", w.Field), zap.String("value", w.Value))
	}

	// =========================================================================
	// STEP 6: COMPOSE
	// =========================================================================

	doc := composer.Compose(req)
	result.LogoStatus = doc.LogoStatus
	if doc.LogoStatus == composer.LogoError {
		g.logger.Warn("logo could not be decoded, using a placeholder", zap.String("logo", s.LogoPath), zap.Error(doc.LogoErr))
	}

	// =========================================================================
	// STEP 7: WRITE OUTPUT
	// =========================================================================

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = g.outputPath(result.Products, now)
	}
	if err := utils.EnsureParentDir(outputPath); err != nil {
		return fail(err)
	}
	if err := g.writer.WriteFile(doc, outputPath); err != nil {
		return fail(fmt.Errorf("failed to write purchase order: %w", err))
	}
	result.OutputFile = outputPath
	result.Success = true

	// =========================================================================
	// STEP 8: SAVE SETTINGS
	// =========================================================================

	if opts.SaveSettings {
		if err := s.Save(g.config.SettingsFile); err != nil {
			g.logger.Warn("settings not saved", zap.String("settings", g.config.SettingsFile), zap.Error(err))
		}
	}

	result.Stats.ProcessingTime = time.Since(startTime)
	g.logger.Info("generated purchase order",
		zap.String("output", outputPath),
		zap.Strings("products", result.Products),
		zap.Int("units", result.Stats.UnitsOrdered),
		zap.Duration("elapsed", result.Stats.ProcessingTime),
	)

	return result
}

// outputPath builds the default PDF path in the output directory.
func (g *Generator) outputPath(products []string, now time.Time) string {
	name := utils.GenerateOutputFileName(
		g.config.OutputNameFormat,
		now,
		map[string]string{"product": utils.ProductLabel(products)},
		".pdf",
	)
	return filepath.Join(g.config.OutputDir, name)
}

// =============================================================================
// PRODUCT SELECTION
// =============================================================================

// SelectProducts picks products from an aggregation.
//
// PARAMETERS:
//   - agg: The aggregated orders.
//   - names: Product names in the order they should appear. Duplicates are
//     ignored.
//   - all: Select every product, sorted by name, ignoring names.
//
// RETURNS:
//   - The selected products.
//   - ErrNoProducts if the selection is empty, or an error naming the first
//     product the export does not contain.
func SelectProducts(agg orders.Aggregated, names []string, all bool) ([]types.Product, error) {
	if all {
		products := agg.Products()
		if len(products) == 0 {
			return nil, ErrNoProducts
		}
		return products, nil
	}

	seen := make(map[string]bool, len(names))
	var products []types.Product
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := agg[name]; !ok {
			return nil, fmt.Errorf("product %q not found in orders", name)
		}
		products = append(products, agg.Product(name))
	}

	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	return products, nil
}
