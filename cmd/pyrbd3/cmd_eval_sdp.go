package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shakthij98/PyRBD3/rbd"
)

var evalSDPCmd = &cobra.Command{
	Use:   "eval-sdp <pathsets-file>",
	Short: "Evaluate availability as a true sum of disjoint products",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvalSDP,
}

func runEvalSDP(cmd *cobra.Command, args []string) error {
	pm, err := openProbabilityMap()
	if err != nil {
		return err
	}
	pathSets, err := openTermList(args[0])
	if err != nil {
		return err
	}

	var avail float64
	if parallel {
		avail, err = rbd.EvalAvailSDPParallel(rbd.NodeID(srcID), rbd.NodeID(dstID), pm, pathSets, cfg.SDPParallelThreshold, cfg.WorkerPoolSize)
	} else {
		avail, err = rbd.EvalAvailSDP(rbd.NodeID(srcID), rbd.NodeID(dstID), pm, pathSets)
	}
	if err != nil {
		return fmt.Errorf("eval-sdp: %w", err)
	}
	slog.Info("evaluated availability", "algorithm", "sdp", "src", srcID, "dst", dstID, "availability", avail, "parallel", parallel)
	fmt.Fprintf(os.Stdout, "%g\n", avail)
	return nil
}
