package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shakthij98/PyRBD3/rbd"
)

var evalPathSetCmd = &cobra.Command{
	Use:   "eval-pathset <pathsets-file>",
	Short: "Evaluate availability from a collection of minimal path sets",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvalPathSet,
}

func runEvalPathSet(cmd *cobra.Command, args []string) error {
	pm, err := openProbabilityMap()
	if err != nil {
		return err
	}
	pathSets, err := openTermList(args[0])
	if err != nil {
		return err
	}

	avail, err := rbd.EvalAvailPathSet(rbd.NodeID(srcID), rbd.NodeID(dstID), pm, pathSets)
	if err != nil {
		return fmt.Errorf("eval-pathset: %w", err)
	}
	slog.Info("evaluated availability", "algorithm", "pathset", "src", srcID, "dst", dstID, "availability", avail)
	fmt.Fprintf(os.Stdout, "%g\n", avail)
	return nil
}
