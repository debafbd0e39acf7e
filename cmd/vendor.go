package cmd

import (
	"errors"
	"fmt"

	"github.com/ginjaninja78/po-generator/internal/generator"
	"github.com/ginjaninja78/po-generator/internal/types"
	"github.com/spf13/cobra"
)

var vendorFlags types.Vendor

// vendorCmd groups the saved vendor commands.
var vendorCmd = &cobra.Command{
	Use:   "vendor",
	Short: "Manage saved vendors",
}

var vendorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved vendors",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := generator.New(appConfig, logger).LoadSettings()
		out := cmd.OutOrStdout()

		names := s.VendorNames()
		if len(names) == 0 {
			fmt.Fprintln(out, "No saved vendors.")
			return nil
		}
		for _, name := range names {
			marker := " "
			if name == s.VendorInfo.Name {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %s\n", marker, name)
		}
		return nil
	},
}

var vendorSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a vendor and make it the current one",
	Example: `  pogen vendor save --name "Mat Supply Co" --website www.matsupply.example \
    --address "1 Canvas Rd" --city "Austin, TX 78701" --phone 555-9999`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if vendorFlags.Name == "" {
			return errors.New("--name is required")
		}

		s := generator.New(appConfig, logger).LoadSettings()
		s.VendorInfo = vendorFlags
		if err := s.Save(appConfig.SettingsFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Vendor saved: %s\n", vendorFlags.Name)
		return nil
	},
}

var vendorUseCmd = &cobra.Command{
	Use:   "use NAME",
	Short: "Make a saved vendor the current one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s := generator.New(appConfig, logger).LoadSettings()
		if !s.UseVendor(args[0]) {
			return fmt.Errorf("no saved vendor named %q", args[0])
		}
		if err := s.Save(appConfig.SettingsFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Current vendor: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(vendorCmd)
	vendorCmd.AddCommand(vendorListCmd, vendorSaveCmd, vendorUseCmd)

	flags := vendorSaveCmd.Flags()
	flags.StringVar(&vendorFlags.Name, "name", "", "Vendor name")
	flags.StringVar(&vendorFlags.Website, "website", "", "Vendor website")
	flags.StringVar(&vendorFlags.Address, "address", "", "Street address")
	flags.StringVar(&vendorFlags.City, "city", "", "City, ST ZIP")
	flags.StringVar(&vendorFlags.Phone, "phone", "", "Phone number")
}
