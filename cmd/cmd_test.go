package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/po-generator/internal/settings"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const shopExport = "Name,Lineitem quantity,Lineitem name\n" +
	"#1001,3,Gi - A2\n" +
	"#1002,2,Gi - A2\n" +
	"#1003,5,Rashguard\n" +
	"#1004,1,Rashguard / XL\n"

type workspace struct {
	dir      string
	config   string
	settings string
	output   string
}

func newWorkspace(t *testing.T) *workspace {
	t.Helper()
	dir := t.TempDir()
	w := &workspace{
		dir:      dir,
		config:   filepath.Join(dir, "config.yaml"),
		settings: filepath.Join(dir, "settings.yaml"),
		output:   filepath.Join(dir, "out"),
	}

	input := filepath.Join(dir, "orders_export.csv")
	require.NoError(t, os.WriteFile(input, []byte(shopExport), 0o644))

	cfg := fmt.Sprintf("input_file: %s\noutput_dir: %s\nsettings_file: %s\nlog_file: %s\n",
		input, w.output, w.settings, filepath.Join(dir, "pogen.log"))
	require.NoError(t, os.WriteFile(w.config, []byte(cfg), 0o644))
	return w
}

// resetFlags clears flag state left over from earlier executions.
func resetFlags() {
	generateProduct = nil
	vendorFlags.Name, vendorFlags.Website, vendorFlags.Address, vendorFlags.City, vendorFlags.Phone = "", "", "", "", ""

	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		c.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Value.Type() != "stringArray" {
				_ = f.Value.Set(f.DefValue)
			}
			f.Changed = false
		})
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

func (w *workspace) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", w.config}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	w := newWorkspace(t)

	out, err := w.run(t, "list")
	require.NoError(t, err)
	assert.Equal(t, "Gi (5 units)\nRashguard (6 units)\n", out)

	out, err = w.run(t, "list", "--sizes")
	require.NoError(t, err)
	assert.Contains(t, out, "    XL         1\n")
	assert.Contains(t, out, "    No Size    5\n")
}

func TestList_MissingExport(t *testing.T) {
	w := newWorkspace(t)

	out, err := w.run(t, "list", "--input", filepath.Join(w.dir, "missing.csv"))
	require.NoError(t, err)
	assert.Equal(t, "No products found in orders file.\n", out)
}

func TestGenerate(t *testing.T) {
	w := newWorkspace(t)

	out, err := w.run(t, "generate", "--product", "Gi", "--product", "Rashguard")
	require.NoError(t, err)
	assert.Contains(t, out, "PO generated: ")
	assert.Contains(t, out, "Products:     2 (11 units)")

	matches, err := filepath.Glob(filepath.Join(w.output, "PO_Multiple_Items_*.pdf"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// settings are saved by default
	assert.FileExists(t, w.settings)
}

func TestGenerate_NoSave(t *testing.T) {
	w := newWorkspace(t)
	pdf := filepath.Join(w.dir, "po.pdf")

	_, err := w.run(t, "generate", "--all", "--output", pdf, "--no-save")
	require.NoError(t, err)
	assert.FileExists(t, pdf)
	assert.NoFileExists(t, w.settings)

	out, err := w.run(t, "inspect", pdf)
	require.NoError(t, err)
	assert.Contains(t, out, "Pages: 1")
}

func TestGenerate_Errors(t *testing.T) {
	w := newWorkspace(t)

	_, err := w.run(t, "generate")
	assert.EqualError(t, err, "select products with --product or use --all")

	_, err = w.run(t, "generate", "--product", "Kimono")
	assert.ErrorContains(t, err, `product "Kimono" not found`)

	_, err = w.run(t, "generate", "--product", "Gi", "--all")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	w := newWorkspace(t)
	path := filepath.Join(w.dir, "summary.xlsx")

	out, err := w.run(t, "export", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(5 rows)")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Summary")
	require.NoError(t, err)
	assert.Len(t, rows, 6)

	_, err = w.run(t, "export")
	assert.EqualError(t, err, "--output is required")
}

func TestVendorCommands(t *testing.T) {
	w := newWorkspace(t)

	out, err := w.run(t, "vendor", "list")
	require.NoError(t, err)
	assert.Equal(t, "No saved vendors.\n", out)

	_, err = w.run(t, "vendor", "save", "--name", "Mat Supply Co", "--phone", "555-9999")
	require.NoError(t, err)
	_, err = w.run(t, "vendor", "save", "--name", "Belt Works")
	require.NoError(t, err)

	out, err = w.run(t, "vendor", "list")
	require.NoError(t, err)
	assert.Equal(t, "  Mat Supply Co\n* Belt Works\n", out)

	_, err = w.run(t, "vendor", "use", "Mat Supply Co")
	require.NoError(t, err)

	s, err := settings.Load(w.settings)
	require.NoError(t, err)
	assert.Equal(t, "555-9999", s.VendorInfo.Phone)

	_, err = w.run(t, "vendor", "use", "Nobody")
	assert.Error(t, err)

	_, err = w.run(t, "vendor", "save")
	assert.EqualError(t, err, "--name is required")
}

func TestSettingsShow(t *testing.T) {
	w := newWorkspace(t)

	out, err := w.run(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "company_info:\n  name: BJJ Super Deals\n")
	assert.Contains(t, out, "saved_vendors: []\n")
}

func TestVersion(t *testing.T) {
	w := newWorkspace(t)

	out, err := w.run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Purchase Order Generator\nVersion:    "+Version)
}
