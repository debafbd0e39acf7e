package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.Equal(t, "BJJ Super Deals", s.CompanyInfo.Name)
	assert.Equal(t, VendorPlaceholder, s.VendorInfo.Name)
	assert.Equal(t, AttnPlaceholder, s.ShipToInfo.Attn)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
company_info:
  phone: 555-7777
vendor_info:
  name: Mat Supply Co
  website: www.matsupply.example
logo_path: logo.png
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "BJJ Super Deals", s.CompanyInfo.Name)
	assert.Equal(t, "555-7777", s.CompanyInfo.Phone)
	assert.Equal(t, "Mat Supply Co", s.VendorInfo.Name)
	assert.Equal(t, "www.matsupply.example", s.VendorInfo.Website)
	assert.Equal(t, "BJJ Super Deals Warehouse", s.ShipToInfo.Company)
	assert.Equal(t, "logo.png", s.LogoPath)
	assert.NotNil(t, s.SavedVendors)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company_info: [unclosed"), 0o644))

	s, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, Default(), s)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s := Default()
	s.VendorInfo = types.Vendor{Name: "Mat Supply Co", City: "Austin, TX", Phone: "555-9999"}
	s.ShipToInfo.Website = "warehouse.example"
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
	assert.Equal(t, []string{"Mat Supply Co"}, loaded.VendorNames())
	assert.Equal(t, "warehouse.example", loaded.ShipToInfo.Website)

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSave_UnwritableDirectory(t *testing.T) {
	err := Default().Save(filepath.Join(t.TempDir(), "missing", "settings.yaml"))
	assert.Error(t, err)
}

func TestSaveVendor(t *testing.T) {
	s := Default()

	assert.False(t, s.SaveVendor(types.Vendor{Name: VendorPlaceholder}))
	assert.False(t, s.SaveVendor(types.Vendor{Name: "   "}))
	assert.Empty(t, s.SavedVendors)

	assert.True(t, s.SaveVendor(types.Vendor{Name: "Mat Supply Co", Phone: "1"}))
	assert.True(t, s.SaveVendor(types.Vendor{Name: "Belt Works"}))
	assert.False(t, s.SaveVendor(types.Vendor{Name: "Mat Supply Co", Phone: "1"}))

	// upsert by name keeps position
	assert.True(t, s.SaveVendor(types.Vendor{Name: " Mat Supply Co ", Phone: "2"}))
	assert.Equal(t, []string{"Mat Supply Co", "Belt Works"}, s.VendorNames())

	v, ok := s.FindVendor("Mat Supply Co")
	require.True(t, ok)
	assert.Equal(t, "2", v.Phone)
}

func TestUseVendor(t *testing.T) {
	s := Default()
	s.SaveVendor(types.Vendor{Name: "Belt Works", Website: "belts.example"})

	assert.False(t, s.UseVendor("Nope"))
	assert.Equal(t, VendorPlaceholder, s.VendorInfo.Name)

	assert.True(t, s.UseVendor("Belt Works"))
	assert.Equal(t, "belts.example", s.VendorInfo.Website)
}
