package main

import (
	"os"

	"github.com/spf13/cobra"
)

type options struct {
	mode          string
	referenceFile string
	json          bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "dormarea",
		Short:        "Dormitory floor-area program calculator",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.mode, "mode", "Recommended", "Calculation mode (Recommended or Basic)")
	rootCmd.PersistentFlags().StringVar(&opts.referenceFile, "reference-file", "", "YAML reference area table (built-in table when empty)")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "Print JSON instead of a text report")

	rootCmd.AddCommand(areaCmd(opts))
	rootCmd.AddCommand(residentsCmd(opts))
	rootCmd.AddCommand(compareCmd(opts))
	rootCmd.AddCommand(referenceCmd(opts))

	return rootCmd
}

func areaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "area [residents]",
		Short: "Compute the floor-area program for a headcount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cmd.OutOrStdout(), opts, args[0])
		},
	}
}

func residentsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "residents [target-gross-area]",
		Short: "Find the largest headcount that fits a target gross area",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResidents(cmd.OutOrStdout(), opts, args[0])
		},
	}
}

func compareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [residents]",
		Short: "Compare the program for a headcount with the reference area table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.OutOrStdout(), opts, args[0])
		},
	}
}

func referenceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Show the reference area table grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReference(cmd.OutOrStdout(), opts)
		},
	}
}
