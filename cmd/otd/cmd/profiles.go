package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/profile"
)

var (
	profilesType string
	profilesTag  string

	recommendLayers  int
	recommendVoltage float64
	recommendBudget  string
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Rule profile catalog operations",
	Long:  `Commands for inspecting the rule profile catalog`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available rule profiles",
	RunE:  runProfilesList,
}

var profilesShowCmd = &cobra.Command{
	Use:   "show <profile_id>",
	Short: "Show full thresholds for one profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfilesShow,
}

var profilesRecommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend a profile for board characteristics",
	Long: `Picks a rule profile from layer count, operating voltage and budget.
Voltage above 100V always selects the high-voltage profile regardless of
layer count: safety overrides layout-density defaults.`,
	RunE: runProfilesRecommend,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.AddCommand(profilesShowCmd)
	profilesCmd.AddCommand(profilesRecommendCmd)

	profilesListCmd.Flags().StringVarP(&profilesType, "type", "t", "", "filter by type (board_tech, standard, manufacturer, custom)")
	profilesListCmd.Flags().StringVar(&profilesTag, "tag", "", "filter by tag")

	profilesRecommendCmd.Flags().IntVar(&recommendLayers, "layers", 2, "copper layer count")
	profilesRecommendCmd.Flags().Float64Var(&recommendVoltage, "voltage", 0, "maximum operating voltage")
	profilesRecommendCmd.Flags().StringVar(&recommendBudget, "budget", "medium", "budget (low, medium, high)")
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	lib, err := newLibrary()
	if err != nil {
		return err
	}

	var profiles []profile.Profile
	if profilesTag != "" {
		profiles = lib.ByTag(profilesTag)
	} else {
		profiles = lib.List(profile.Type(profilesType))
	}

	if len(profiles) == 0 {
		fmt.Println("No matching profiles")
		return nil
	}

	fmt.Printf("%-22s %-14s %-8s %s\n", "ID", "TYPE", "COST", "NAME")
	for _, p := range profiles {
		fmt.Printf("%-22s %-14s %-8s %s\n", p.ID, p.Type, p.CostLevel, p.Name)
	}
	return nil
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	lib, err := newLibrary()
	if err != nil {
		return err
	}

	summary, err := lib.Summarize(args[0])
	if err != nil {
		return fmt.Errorf("unknown profile %q (see 'otd profiles list')", args[0])
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(summary)
}

func runProfilesRecommend(cmd *cobra.Command, args []string) error {
	lib, err := newLibrary()
	if err != nil {
		return err
	}

	rec, err := lib.Recommend(recommendLayers, recommendVoltage, recommendBudget)
	if err != nil {
		return err
	}

	fmt.Printf("Recommended: %s\n", rec.ID)
	fmt.Printf("  %s - %s\n", rec.Name, rec.Description)
	fmt.Printf("  min trace %g%s, min via %g%s, cost %s\n",
		rec.MinTraceWidth.Value, rec.MinTraceWidth.Unit,
		rec.MinViaDiameter.Value, rec.MinViaDiameter.Unit,
		rec.CostLevel)
	return nil
}
