package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shakthij98/PyRBD3/ioformat"
	"github.com/shakthij98/PyRBD3/rbd"
)

var evalMCSCmd = &cobra.Command{
	Use:   "eval-mcs <cutsets-file>",
	Short: "Evaluate availability from a collection of minimal cut sets",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvalMCS,
}

func runEvalMCS(cmd *cobra.Command, args []string) error {
	pm, err := openProbabilityMap()
	if err != nil {
		return err
	}
	cutSets, err := openTermList(args[0])
	if err != nil {
		return err
	}

	avail, err := rbd.EvalAvailMCS(rbd.NodeID(srcID), rbd.NodeID(dstID), pm, cutSets)
	if err != nil {
		return fmt.Errorf("eval-mcs: %w", err)
	}
	slog.Info("evaluated availability", "algorithm", "mcs", "src", srcID, "dst", dstID, "availability", avail)
	fmt.Fprintf(os.Stdout, "%g\n", avail)
	return nil
}

func openProbabilityMap() (*rbd.ProbabilityMap, error) {
	if probsPath == "" {
		return nil, fmt.Errorf("eval: --probs is required")
	}
	f, err := os.Open(probsPath)
	if err != nil {
		return nil, fmt.Errorf("eval: opening probability map: %w", err)
	}
	defer f.Close()
	return ioformat.ReadProbabilityMap(f)
}

func openTermList(path string) (rbd.TermList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eval: opening %s: %w", path, err)
	}
	defer f.Close()
	return ioformat.ReadTermList(f)
}
