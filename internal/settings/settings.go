// =============================================================================
// Purchase Order Generator - Settings Store
// =============================================================================
//
// Settings hold the contact details and logo that go on every purchase
// order, plus a list of saved vendors. They live in a YAML file next to the
// main configuration:
//
//   company_info:
//     name: BJJ Super Deals
//     address: 123 Jiu Jitsu Way
//     city: Los Angeles, CA 90001
//     phone: 555-0123
//     fax: ""
//   vendor_info:
//     name: Mat Supply Co
//     ...
//   ship_to_info:
//     attn: Receiving
//     company: BJJ Super Deals Warehouse
//     ...
//   logo_path: logo.png
//   saved_vendors:
//     - name: Mat Supply Co
//       ...
//
// Keys missing from the file keep their default values.
//
// =============================================================================

package settings

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/po-generator/internal/types"
	"gopkg.in/yaml.v3"
)

// VendorPlaceholder is the default vendor name. A vendor carrying it is
// never added to the saved list.
const VendorPlaceholder = "[VENDOR NAME]"

// AttnPlaceholder is the default ship-to attention line.
const AttnPlaceholder = "[ATTN NAME]"

// Settings is the persisted purchase order setup.
type Settings struct {
	CompanyInfo types.Issuer `yaml:"company_info"`
	VendorInfo  types.Vendor `yaml:"vendor_info"`
	ShipToInfo  types.ShipTo `yaml:"ship_to_info"`

	// LogoPath is an optional image for the document header.
	LogoPath string `yaml:"logo_path"`

	// SavedVendors are unique by name.
	SavedVendors []types.Vendor `yaml:"saved_vendors"`
}

// Default returns the settings used when no file exists.
func Default() *Settings {
	return &Settings{
		CompanyInfo: types.Issuer{
			Name:    "BJJ Super Deals",
			Address: "123 Jiu Jitsu Way",
			City:    "Los Angeles, CA 90001",
			Phone:   "555-0123",
		},
		VendorInfo: types.Vendor{
			Name: VendorPlaceholder,
		},
		ShipToInfo: types.ShipTo{
			Attn:    AttnPlaceholder,
			Company: "BJJ Super Deals Warehouse",
		},
		SavedVendors: []types.Vendor{},
	}
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads settings from a YAML file.
//
// PARAMETERS:
//   - path: The settings file. A missing file is not an error.
//
// RETURNS:
//   - *Settings: never nil; defaults fill anything the file leaves out.
//   - error: the file exists but could not be read or parsed. The defaults
//     are still returned so callers can carry on.
func Load(path string) (*Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings file: %w", err)
	}
	if s.SavedVendors == nil {
		s.SavedVendors = []types.Vendor{}
	}

	return s, nil
}

// Save remembers the current vendor (see SaveVendor) and writes the settings
// to path.
func (s *Settings) Save(path string) error {
	s.SaveVendor(s.VendorInfo)

	data, err := s.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".settings-*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	return nil
}

// Marshal returns the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal settings: %w", err)
	}
	return buf.Bytes(), nil
}

// =============================================================================
// SAVED VENDORS
// =============================================================================

// SaveVendor adds a vendor to the saved list, replacing any saved vendor of
// the same name. Vendors with a blank name or the placeholder name are
// ignored.
//
// RETURNS:
//   - true if the list changed.
func (s *Settings) SaveVendor(v types.Vendor) bool {
	name := strings.TrimSpace(v.Name)
	if name == "" || name == VendorPlaceholder {
		return false
	}
	v.Name = name

	for i, saved := range s.SavedVendors {
		if saved.Name == name {
			if saved == v {
				return false
			}
			s.SavedVendors[i] = v
			return true
		}
	}

	s.SavedVendors = append(s.SavedVendors, v)
	return true
}

// FindVendor looks up a saved vendor by exact name.
func (s *Settings) FindVendor(name string) (types.Vendor, bool) {
	for _, v := range s.SavedVendors {
		if v.Name == name {
			return v, true
		}
	}
	return types.Vendor{}, false
}

// UseVendor makes a saved vendor the current one.
//
// RETURNS:
//   - false if no vendor of that name is saved.
func (s *Settings) UseVendor(name string) bool {
	v, ok := s.FindVendor(name)
	if ok {
		s.VendorInfo = v
	}
	return ok
}

// VendorNames returns the saved vendor names in saved order.
func (s *Settings) VendorNames() []string {
	names := make([]string, len(s.SavedVendors))
	for i, v := range s.SavedVendors {
		names[i] = v.Name
	}
	return names
}
