// Command softselect selects the k smallest of a generated sequence with a
// soft heap and compares the result against exact heap selection.
package main

import (
	"fmt"
	"io"
	"os"

	alog "github.com/apex/log"

	"github.com/Khighness/softkit/internal/dataset"
	"github.com/Khighness/softkit/internal/logging"
	"github.com/Khighness/softkit/selection"
	"github.com/Khighness/softkit/softheap"
)

// @Author KHighness
// @Update 2026-10-18

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logging.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg, log, os.Stdout); err != nil {
		log.WithError(err).Error("selection failed")
		os.Exit(1)
	}
}

// report summarizes one run.
type report struct {
	selected  []int
	corrupted int
	reported  int
	misplaced int
}

func run(cfg config, log logging.Logger, out io.Writer) error {
	input := dataset.Ints(cfg.Seed, cfg.Elements, cfg.Bound)
	log.Debugf("generated %d elements with seed %d", len(input), cfg.Seed)

	h, err := softheap.FromSlice(cfg.InverseEpsilon, input)
	if err != nil {
		return err
	}
	log.WithFields(alog.Fields{
		"size":  h.Size(),
		"rank":  h.Rank(),
		"trees": h.NumTrees(),
	}).Info("soft heap built")

	rep, err := selectK(h, input, cfg.K)
	if err != nil {
		return err
	}
	log.WithFields(alog.Fields{
		"k":         cfg.K,
		"epsilon":   h.Epsilon(),
		"corrupted": rep.corrupted,
		"reported":  rep.reported,
		"misplaced": rep.misplaced,
		"digest":    fmt.Sprintf("%016x", dataset.Digest(rep.selected)),
	}).Info("selection done")

	if rep.corrupted > cfg.Elements/cfg.InverseEpsilon {
		log.Warnf("%d corrupted keys exceed epsilon*n = %d", rep.corrupted, cfg.Elements/cfg.InverseEpsilon)
	}
	if cfg.Dump {
		h.Dump(out)
	}
	return nil
}

// selectK extracts k elements from h and counts those missing from the exact selection.
func selectK(h *softheap.SoftHeap[int], input []int, k int) (report, error) {
	exact, err := selection.StandardHeapSelectionVector(append([]int(nil), input...), k)
	if err != nil {
		return report{}, err
	}
	want := make(map[int]int, k)
	for _, e := range exact {
		want[e]++
	}

	rep := report{selected: make([]int, 0, k)}
	for i := 0; i < k; i++ {
		e, corrupted, err := h.ExtractMinC()
		if err != nil {
			return report{}, err
		}
		rep.selected = append(rep.selected, e)
		rep.reported += len(corrupted)
		if want[e] > 0 {
			want[e]--
		} else {
			rep.misplaced++
		}
	}
	rep.corrupted = h.NumCorruptedKeys()
	return rep, nil
}
