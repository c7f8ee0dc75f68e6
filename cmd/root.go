package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/org-builder/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	orgFile string
	orgDB   string
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "org-builder",
	Short: "Explore and reshape an org chart through conversation",
	Long: `A CLI tool for exploring a company org chart and sketching what-if
reorganizations through a conversational interface.

The baseline organization is loaded from a built-in sample, a YAML org
file, or a read-only SQLite HR snapshot. Changes are applied to derived
scenarios; the baseline is never modified.

Quick Start:
  org-builder show                 # Render the org tree
  org-builder chat                 # Start a conversational editing session
  org-builder health               # Structural health report
  org-builder export --format md   # Export the org as Markdown

Chat commands look like:
  "Create a new Marketing team under the COO with 3 people"
  "Add a Product Manager position under the CTO"
  "Move VP of Sales under the CEO"
  "Remove the Director of DevOps position"`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&orgFile, "org", "", "Path to a YAML org file to load as the baseline")
	rootCmd.PersistentFlags().StringVar(&orgDB, "db", "", "Path to a SQLite HR snapshot to load as the baseline")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// loadBaseline builds the baseline scenario from --org, --db, or the
// built-in sample, in that precedence order.
func loadBaseline() (*internal.Scenario, error) {
	if orgFile != "" && orgDB != "" {
		return nil, fmt.Errorf("use either --org or --db, not both")
	}

	if orgFile != "" {
		return internal.LoadOrgFile(orgFile)
	}

	if orgDB != "" {
		db, err := internal.OpenDatabase(orgDB)
		if err != nil {
			return nil, err
		}
		defer func() { _ = db.Close() }()
		return internal.LoadOrgDatabase(db, orgDB)
	}

	internal.LogDebug("No org source given, using built-in sample organization")
	return internal.SeedBaselineScenario(), nil
}
