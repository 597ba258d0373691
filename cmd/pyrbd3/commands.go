package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/shakthij98/PyRBD3/config"
)

var (
	cfgPath   string
	cfg       config.Config
	probsPath string
	parallel  bool
	srcID     int
	dstID     int
)

var rootCmd = &cobra.Command{
	Use:   "pyrbd3",
	Short: "Evaluate two-terminal availability of a reliability block diagram",
	Long: `pyrbd3 evaluates the two-terminal availability of a reliability
block diagram from minimal cut sets, minimal path sets, or a true sum of
disjoint products, given a per-component probability map.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cfgPath == "" {
			p, err := config.DefaultPath()
			if err != nil {
				slog.Error("could not resolve default config path", "error", err)
				return
			}
			cfgPath = p
		}
		loaded, err := config.Load(cfgPath)
		if err != nil {
			slog.Error("failed to load config", "path", cfgPath, "error", err)
			return
		}
		cfg = loaded
		slog.Debug("configuration loaded", "path", cfgPath, "sdp_parallel_threshold", cfg.SDPParallelThreshold)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config.yaml (defaults to ~/.pyrbd3/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&probsPath, "probs", "", "path to the probability map file (\"id probability\" per line)")
	rootCmd.PersistentFlags().BoolVar(&parallel, "parallel", false, "use the parallel evaluator")

	rootCmd.AddCommand(evalMCSCmd, evalPathSetCmd, evalSDPCmd, evalTopoCmd)

	evalMCSCmd.Flags().IntVar(&srcID, "src", 0, "source node id")
	evalMCSCmd.Flags().IntVar(&dstID, "dst", 0, "destination node id")
	evalPathSetCmd.Flags().IntVar(&srcID, "src", 0, "source node id")
	evalPathSetCmd.Flags().IntVar(&dstID, "dst", 0, "destination node id")
	evalSDPCmd.Flags().IntVar(&srcID, "src", 0, "source node id")
	evalSDPCmd.Flags().IntVar(&dstID, "dst", 0, "destination node id")
}
