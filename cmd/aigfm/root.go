// SPDX-License-Identifier: MIT
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     = defaultConfig()
	log     = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "aigfm",
	Short: "Parse AIGER circuits and bipartition them with Fiduccia-Mattheyses",
	Long: `aigfm parses an AIGER ASCII ("aag") file, lifts it into a gate-level
netlist, flattens the netlist into a hypergraph, and bipartitions it with
the Fiduccia-Mattheyses heuristic.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		log.SetLevel(parseLevel(cfg.LogLevel))
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to an aigfm.ini config file")
	rootCmd.AddCommand(partitionCmd)
}
