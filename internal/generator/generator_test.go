package generator

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ginjaninja78/po-generator/internal/composer"
	"github.com/ginjaninja78/po-generator/internal/config"
	"github.com/ginjaninja78/po-generator/internal/orders"
	"github.com/ginjaninja78/po-generator/internal/pdfwriter"
	"github.com/ginjaninja78/po-generator/internal/settings"
	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const shopExport = "Name,Lineitem quantity,Lineitem name\n" +
	"#1001,3,Gi - A2\n" +
	"#1002,2,Gi - A2\n" +
	"#1003,5,Rashguard\n" +
	"#1004,three,Belt\n" +
	"#1005,1,Board Shorts / M\n"

var orderTime = time.Date(2024, time.January, 15, 14, 30, 22, 0, time.UTC)

type fixture struct {
	dir  string
	cfg  *config.MainConfig
	logs *observer.ObservedLogs
	gen  *Generator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	input := filepath.Join(dir, "orders_export.csv")
	require.NoError(t, os.WriteFile(input, []byte(shopExport), 0o644))

	cfg := config.Default()
	cfg.InputFile = input
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.SettingsFile = filepath.Join(dir, "settings.yaml")

	core, logs := observer.New(zapcore.DebugLevel)
	return &fixture{dir: dir, cfg: cfg, logs: logs, gen: New(cfg, zap.New(core))}
}

func TestRun_SingleProduct(t *testing.T) {
	f := newFixture(t)

	result := f.gen.Run(Options{Products: []string{"Gi"}, Now: orderTime})

	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, filepath.Join(f.cfg.OutputDir, "PO_Gi_20240115_143022.pdf"), result.OutputFile)
	assert.Equal(t, []string{"Gi"}, result.Products)
	assert.Equal(t, 5, result.Stats.RowsRead)
	assert.Equal(t, 1, result.Stats.RowsSkipped)
	assert.Equal(t, 3, result.Stats.ProductsAvailable)
	assert.Equal(t, 5, result.Stats.UnitsOrdered)
	assert.Equal(t, composer.LogoNone, result.LogoStatus)

	summary, err := pdfwriter.Inspect(result.OutputFile)
	require.NoError(t, err)
	assert.True(t, summary.Contains("20240115_143022"))

	assert.Equal(t, 1, f.logs.FilterMessage("generated purchase order").Len())
	assert.Equal(t, 1, f.logs.FilterMessage("skipped malformed rows").Len())
}

func TestRun_AllProducts(t *testing.T) {
	f := newFixture(t)

	result := f.gen.Run(Options{All: true, Now: orderTime})

	require.NoError(t, result.Error)
	assert.Equal(t, []string{"Board Shorts", "Gi", "Rashguard"}, result.Products)
	assert.Equal(t, "PO_Multiple_Items_20240115_143022.pdf", filepath.Base(result.OutputFile))
	assert.FileExists(t, result.OutputFile)
}

func TestRun_ExplicitOutputAndSelectionOrder(t *testing.T) {
	f := newFixture(t)
	out := filepath.Join(f.dir, "custom", "order.pdf")

	result := f.gen.Run(Options{Products: []string{"Rashguard", "Gi", "Rashguard"}, OutputPath: out, Now: orderTime})

	require.NoError(t, result.Error)
	assert.Equal(t, out, result.OutputFile)
	assert.Equal(t, []string{"Rashguard", "Gi"}, result.Products)
	assert.FileExists(t, out)
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*fixture, *Options)
		wantErr string
	}{
		{
			name:    "unknown product",
			mutate:  func(_ *fixture, o *Options) { o.Products = []string{"Kimono"} },
			wantErr: `product "Kimono" not found in orders`,
		},
		{
			name:    "nothing selected",
			mutate:  func(_ *fixture, o *Options) { o.Products = nil },
			wantErr: ErrNoProducts.Error(),
		},
		{
			name: "missing export",
			mutate: func(f *fixture, o *Options) {
				o.InputFile = filepath.Join(f.dir, "nope.csv")
			},
			wantErr: "failed to load orders",
		},
		{
			name:    "unknown saved vendor",
			mutate:  func(_ *fixture, o *Options) { o.Vendor = "Nobody" },
			wantErr: `no saved vendor named "Nobody"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			opts := Options{Products: []string{"Gi"}, Now: orderTime}
			tt.mutate(f, &opts)

			result := f.gen.Run(opts)

			assert.False(t, result.Success)
			require.Error(t, result.Error)
			assert.Contains(t, result.Error.Error(), tt.wantErr)
			assert.Empty(t, result.OutputFile)
			assert.NoDirExists(t, f.cfg.OutputDir)
		})
	}
}

func TestRun_UnwritableOutput(t *testing.T) {
	f := newFixture(t)
	blocker := filepath.Join(f.dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	result := f.gen.Run(Options{Products: []string{"Gi"}, OutputPath: filepath.Join(blocker, "po.pdf")})

	assert.False(t, result.Success)
	assert.Error(t, result.Error)
}

func TestRun_SavesSettingsAndVendor(t *testing.T) {
	f := newFixture(t)

	s := settings.Default()
	s.VendorInfo = types.Vendor{Name: "Mat Supply Co", Phone: "555-9999"}
	s.ShipToInfo.Attn = "Receiving"
	require.NoError(t, s.Save(f.cfg.SettingsFile))

	s.VendorInfo = types.Vendor{Name: "Belt Works"}
	require.NoError(t, s.Save(f.cfg.SettingsFile))

	result := f.gen.Run(Options{Products: []string{"Gi"}, Vendor: "Mat Supply Co", SaveSettings: true, Now: orderTime})
	require.NoError(t, result.Error)
	assert.Empty(t, result.Warnings)

	saved, err := settings.Load(f.cfg.SettingsFile)
	require.NoError(t, err)
	assert.Equal(t, "Mat Supply Co", saved.VendorInfo.Name)
	assert.Equal(t, []string{"Mat Supply Co", "Belt Works"}, saved.VendorNames())
}

func TestRun_DefaultsProduceWarningsNotFailure(t *testing.T) {
	f := newFixture(t)

	result := f.gen.Run(Options{Products: []string{"Gi"}, Now: orderTime})

	require.True(t, result.Success)
	// default settings keep the vendor and attention placeholders
	assert.Len(t, result.Warnings, 2)
	assert.NoFileExists(t, f.cfg.SettingsFile)
	assert.GreaterOrEqual(t, f.logs.FilterLevelExact(zapcore.WarnLevel).Len(), 2)
}

func TestRun_LogoOverride(t *testing.T) {
	f := newFixture(t)
	logo := filepath.Join(f.dir, "logo.png")
	require.NoError(t, os.WriteFile(logo, []byte("not a png"), 0o644))

	result := f.gen.Run(Options{Products: []string{"Gi"}, LogoPath: logo, Now: orderTime})

	require.True(t, result.Success)
	assert.Equal(t, composer.LogoError, result.LogoStatus)
	assert.Equal(t, 1, f.logs.FilterMessage("logo could not be decoded, using a placeholder").Len())
}

func TestLoadOrders_MissingColumnsLogged(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.dir, "renamed.csv")
	require.NoError(t, os.WriteFile(path, []byte("Item,Qty\nGi - A2,1\n"), 0o644))

	loaded, err := f.gen.LoadOrders(path)

	require.NoError(t, err)
	assert.True(t, loaded.Empty())
	assert.Equal(t, 1, f.logs.FilterMessage("order export is missing required columns").Len())
}

func TestLoadOrders_InvalidNameRule(t *testing.T) {
	f := newFixture(t)
	f.cfg.NameRules = []config.TransformationRule{{Type: "regex_replace", Find: "("}}

	_, err := f.gen.LoadOrders("")
	assert.Error(t, err)
}

func TestSelectProducts(t *testing.T) {
	agg := orders.Aggregated{"Gi": {"A2": 5}, "Belt": {orders.NoSize: 1}}

	products, err := SelectProducts(agg, nil, true)
	require.NoError(t, err)
	assert.Equal(t, "Belt", products[0].Name)

	_, err = SelectProducts(orders.Aggregated{}, nil, true)
	assert.True(t, errors.Is(err, ErrNoProducts))

	products, err = SelectProducts(agg, []string{"Gi"}, false)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 5, products[0].Total())
}
