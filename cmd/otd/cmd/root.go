package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/profile"
)

var (
	// Global flags
	verbose      bool
	profilesFile string
)

var rootCmd = &cobra.Command{
	Use:   "otd",
	Short: "OpenTraceDRC - PCB design rule checker",
	Long: `OpenTraceDRC (otd) verifies canonical PCB board files against
configurable rule profiles and reports every violation with location,
severity, and remediation guidance.

Examples:
  otd check board.json --profile jlc_standard    # Run checks
  otd check board.json --recommend               # Pick a profile automatically
  otd profiles list                              # List available profiles
  otd profiles show hv_power                     # Show profile thresholds`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&profilesFile, "profiles-file", "", "YAML file with additional custom profiles")
}

// newLogger builds the CLI logger: human-readable when verbose,
// errors-only JSON otherwise.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	return cfg.Build()
}

// newLibrary builds the profile library, merging in any custom
// profiles requested on the command line.
func newLibrary() (*profile.Library, error) {
	lib := profile.NewLibrary()
	if profilesFile != "" {
		n, err := profile.LoadFile(lib, profilesFile)
		if err != nil {
			return nil, err
		}
		if verbose {
			fmt.Printf("Loaded %d custom profile(s) from %s\n", n, profilesFile)
		}
	}
	return lib, nil
}
