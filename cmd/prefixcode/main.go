package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var version string = "devel" // Replaced by linker
var log = logrus.New()

func newRootCmd() *cobra.Command {
	var verbose bool

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version of prefixcode",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:           "prefixcode",
		Short:         "Build Huffman and Shannon-Fano prefix codes for an alphabet",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debugging information")
	rootCmd.AddCommand(newBuildCmd(), newCompareCmd(), newDemoCmd(), cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%s", err)
	}
}
