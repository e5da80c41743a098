package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/morph-ui/morph/pkg/dom"
	"github.com/morph-ui/morph/pkg/vdom"
)

type shuffleConfig struct {
	Rows   int
	Cycles int
	Seed   int64
}

func shuffleCmd() *cobra.Command {
	cfg := shuffleConfig{}

	cmd := &cobra.Command{
		Use:   "shuffle",
		Short: "Benchmark keyed-list reconciliation under random permutations",
		Long: `shuffle renders a keyed list of rows, then repeatedly permutes it and
patches the host tree, reporting cycle throughput and per-kind host
operation counts. With stable keys no row is ever recreated; every
cycle should cost only moves.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShuffle(cfg)
		},
	}

	cmd.Flags().IntVar(&cfg.Rows, "rows", 1000, "number of keyed rows")
	cmd.Flags().IntVar(&cfg.Cycles, "cycles", 100, "number of shuffle/patch cycles")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", 1, "PRNG seed for the permutations")
	return cmd
}

func runShuffle(cfg shuffleConfig) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	api := dom.NewHTML()
	rec := dom.NewRecorder(api)
	eng := vdom.New(rec)

	doc := api.NewDocument()
	root := api.CreateElement("div")
	api.AppendChild(doc, root)

	order := make([]int, cfg.Rows)
	for i := range order {
		order[i] = i
	}

	vnode := eng.PatchElement(root, renderRows(order))
	mountOps := len(rec.Ops())
	rec.Reset()

	rng := rand.New(rand.NewSource(cfg.Seed))
	start := time.Now()
	for c := 0; c < cfg.Cycles; c++ {
		rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
		vnode = eng.Patch(vnode, renderRows(order))
	}
	elapsed := time.Since(start)

	logger.Info("shuffle complete",
		"rows", cfg.Rows,
		"cycles", cfg.Cycles,
		"mount_ops", mountOps,
		"elapsed", elapsed,
		"cycles_per_sec", float64(cfg.Cycles)/elapsed.Seconds(),
	)
	fmt.Printf("createElement: %d (0 expected with stable keys)\n", rec.Count(dom.OpCreateElement))
	fmt.Printf("insertBefore:  %d\n", rec.Count(dom.OpInsertBefore))
	fmt.Printf("removeChild:   %d\n", rec.Count(dom.OpRemoveChild))
	return nil
}

func renderRows(order []int) *vdom.VNode {
	rows := make([]*vdom.VNode, len(order))
	for i, n := range order {
		key := strconv.Itoa(n)
		rows[i] = vdom.H("li", &vdom.VNodeData{Key: key}, "row "+key)
	}
	return vdom.H("div", vdom.H("ul", rows))
}
