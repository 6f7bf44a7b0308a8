package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/board"
	"github.com/OpenTraceLab/OpenTraceDRC/pkg/drc"
)

var (
	checkProfile   string
	checkRecommend bool
	checkBudget    string
	checkOutput    string
	checkFailOn    string
)

var checkCmd = &cobra.Command{
	Use:   "check <board.json>",
	Short: "Run design rule checks on a board",
	Long: `Runs the full design rule check catalog against a canonical board
file and prints a violation report.

The board file is the JSON emitted by a CAD format bridge. Select a rule
profile explicitly with --profile, or let --recommend pick one from the
board's layer count and highest net voltage.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&checkProfile, "profile", "p", "ipc2221_generic", "rule profile id")
	checkCmd.Flags().BoolVar(&checkRecommend, "recommend", false, "pick a profile from board characteristics")
	checkCmd.Flags().StringVar(&checkBudget, "budget", "medium", "budget for --recommend (low, medium, high)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "write JSON report to file instead of stdout")
	checkCmd.Flags().StringVar(&checkFailOn, "fail-on", "error", "minimum severity that causes a non-zero exit (critical, error, warning, info)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	b, err := board.LoadFile(args[0])
	if err != nil {
		return err
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}

	lib, err := newLibrary()
	if err != nil {
		return err
	}

	profileID := checkProfile
	if checkRecommend {
		voltage := 0.0
		for _, net := range b.Nets {
			if net.Voltage > voltage {
				voltage = net.Voltage
			}
		}
		rec, err := lib.Recommend(b.LayerCount(), voltage, checkBudget)
		if err != nil {
			return fmt.Errorf("recommending profile: %w", err)
		}
		profileID = rec.ID
		fmt.Printf("Recommended profile: %s (%s)\n", rec.ID, rec.Name)
	}

	engine := drc.New(lib, drc.WithLogger(log))
	report, err := engine.RunChecks(cmd.Context(), b, profileID)
	if err != nil {
		if errors.Is(err, drc.ErrProfileNotFound) {
			return fmt.Errorf("unknown profile %q (see 'otd profiles list')", profileID)
		}
		return err
	}

	if checkOutput != "" {
		f, err := os.Create(checkOutput)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer f.Close()
		if err := report.WriteJSON(f); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report written to %s\n", checkOutput)
	} else if err := report.WriteJSON(os.Stdout); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%s: %d violations (%d critical, %d errors, %d warnings, %d info)\n",
		report.Status, report.Summary.Total, report.Summary.Critical,
		report.Summary.Errors, report.Summary.Warnings, report.Summary.Info)

	if exceedsFailOn(report, checkFailOn) {
		os.Exit(2)
	}
	return nil
}

// exceedsFailOn reports whether the report's worst severity reaches the
// configured failure threshold.
func exceedsFailOn(report *drc.Report, threshold string) bool {
	t := drc.Severity(threshold).Rank()
	if t == 0 {
		t = drc.SeverityError.Rank()
	}
	return report.WorstSeverity().Rank() >= t
}
