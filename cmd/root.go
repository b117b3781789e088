package cmd

import (
	"fmt"
	"os"

	"github.com/routesim/gaorex/core"
	"github.com/spf13/cobra"
)

var (
	relationshipsPath string
	announcementsPath string
	rovASNsPath       string
	verbose           bool
)

var rootCmd = &cobra.Command{
	Use:   "gaorex",
	Short: "Simulate Gao-Rexford BGP route propagation over a static AS graph",
	Long: `gaorex loads an AS relationship graph and a set of prefix
announcements, propagates routes under the Gao-Rexford export policy and
local-preference decision process, and writes each AS's chosen route per
prefix to a RIB CSV file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := core.NewLogger(verbose)
		return core.Run(core.Options{
			RelationshipsPath: relationshipsPath,
			AnnouncementsPath: announcementsPath,
			ROVASNsPath:       rovASNsPath,
			Verbose:           verbose,
		}, log)
	},
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.Flags().StringVar(&relationshipsPath, "relationships", "", "path to the AS relationships file (CAIDA format)")
	rootCmd.Flags().StringVar(&announcementsPath, "announcements", "", "path to the announcements CSV file")
	rootCmd.Flags().StringVar(&rovASNsPath, "rov-asns", "", "path to the ROV-enabled ASNs file (optional)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("relationships")
	_ = rootCmd.MarkFlagRequired("announcements")
}
