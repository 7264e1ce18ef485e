package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/quantmind-br/sections-go/internal/app"
	"github.com/quantmind-br/sections-go/internal/config"
	"github.com/quantmind-br/sections-go/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile    string
	dataFile   string
	riverNames string
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sections",
	Short: "Convert river section survey data to per-river CSV files",
	Long: `Sections reads a DAT survey file describing river cross-sections,
validates it, enriches each cross-section point with Manning's roughness
coefficients, and writes one CSV file per river.

River numbers are mapped to output file names through an INI file with
SHORT_RIVERNAME<digit>=<name> entries.`,
	Version:      version.Short(),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.sections/config.yaml)")
	rootCmd.Flags().StringVarP(&dataFile, "data", "d", "", "DAT file with river section data")
	rootCmd.Flags().StringVarP(&riverNames, "river-names", "r", "", "INI file containing short river name mappings")
	rootCmd.Flags().StringP("output-dir", "o", ".", "Output directory for csv data")
	rootCmd.Flags().String("mannings", "", "JSON or YAML file overriding Manning's coefficients")
	rootCmd.Flags().Bool("dry-run", false, "Process without writing files")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	_ = rootCmd.MarkFlagRequired("data")
	_ = rootCmd.MarkFlagRequired("river-names")

	_ = viper.BindPFlag("output.directory", rootCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("output.dry_run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("mannings.file", rootCmd.Flags().Lookup("mannings"))

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	orchestrator, err := app.NewOrchestrator(app.OrchestratorOptions{
		Config:   cfg,
		Verbose:  verbose,
		Progress: verbose,
	})
	if err != nil {
		return err
	}

	summary, err := orchestrator.Run(dataFile, riverNames)
	if err != nil {
		return err
	}

	return printSummary(cmd, summary)
}

// printSummary writes the per-river section count summary as JSON to stdout.
func printSummary(cmd *cobra.Command, summary app.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}
