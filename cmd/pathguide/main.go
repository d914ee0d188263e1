package main

import (
	"fmt"
	"net/http"
	"os"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/kuandriy/pathguide"
	"github.com/kuandriy/pathguide/internal/config"
	"github.com/kuandriy/pathguide/internal/demogen"
)

func main() {
	// Wrap everything in recovery so a ContractViolation panic from the
	// library prints as a diagnostic instead of a raw Go stack trace.
	defer func() {
		if r := recover(); r != nil {
			if cv, ok := r.(*pathguide.ContractViolation); ok {
				fmt.Fprintf(os.Stderr, "pathguide: contract violation: %v\n", cv)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "pathguide: panic: %v\n", r)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pathguide: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "pathguide",
		Short: "Drive a decision-tree guide against a demo generator",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "pathguide.json", "path to the run config file")

	root.AddCommand(newExploreCmd(&configPath))
	root.AddCommand(newInspectCmd())
	return root
}

func newExploreCmd(configPath *string) *cobra.Command {
	var maxTraversals int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Run a demo generator against the configured guide until exhaustion or a traversal cap",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			r, err := runExplore(cfg, maxTraversals)
			if err != nil {
				return err
			}
			writeReport(cfg.ReportPath, r)
			if jsonOut {
				out, err := renderJSON(r)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, out)
				return nil
			}
			fmt.Fprint(os.Stdout, renderText(r))
			return nil
		},
	}
	cmd.Flags().IntVar(&maxTraversals, "max-traversals", 100000, "safety cap on traversals for open-ended guides")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var reportPath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the most recent run report",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadReport(reportPath)
			if err != nil {
				return err
			}
			if jsonOut {
				out, err := renderJSON(r)
				if err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, out)
				return nil
			}
			fmt.Fprint(os.Stdout, renderText(r))
			return nil
		},
	}
	cmd.Flags().StringVar(&reportPath, "report", "pathguide-report.json", "path to a previously written report")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the report as JSON")
	return cmd
}

func runExplore(cfg config.Config, maxTraversals int) (Report, error) {
	runName := petname.Generate(2, "-")

	var reg *prometheus.Registry
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
		go serveMetrics(cfg.MetricsAddr, reg)
	}

	var opts []pathguide.Option
	if reg != nil {
		opts = append(opts, pathguide.WithRegistry(reg))
	}
	trace := pathguide.NewTrace(cfg.TraceSize)
	opts = append(opts, pathguide.WithTrace(trace))

	guide, err := buildGuide(cfg, opts)
	if err != nil {
		return Report{}, err
	}

	leaves := map[string]bool{}
	traversals := 0
	exhausted := false

	for traversals < maxTraversals {
		c, ok := guide.MakeChooser()
		if !ok {
			exhausted = true
			break
		}
		var path []int
		if len(cfg.Weights) > 0 {
			path = demogen.WeightedArity(c, cfg.Depth, cfg.Weights)
		} else {
			path = demogen.FixedArity(c, cfg.Depth, cfg.Arity)
		}
		leaves[fmt.Sprint(path)] = true
		c.Commit()
		traversals++
	}

	r := Report{
		RunName:        runName,
		Guide:          guideKindString(cfg.Guide),
		Seed:           cfg.Seed,
		Traversals:     traversals,
		NodeCount:      guide.NodeCount(),
		Exhausted:      exhausted,
		DistinctLeaves: len(leaves),
	}
	if b, ok := guide.(*pathguide.BFSGuide); ok {
		r.MaxFullyExploredLvl = b.MaxFullyExploredLevel()
	}
	return r, nil
}

func buildGuide(cfg config.Config, opts []pathguide.Option) (pathguide.Guide, error) {
	switch cfg.Guide {
	case config.GuideDefault:
		return pathguide.NewDefault(cfg.SeedPtr(), opts...), nil
	case config.GuideBFS:
		return pathguide.NewBFS(cfg.SeedPtr(), opts...), nil
	case config.GuideWeighted:
		return pathguide.NewWeighted(cfg.SeedPtr(), opts...), nil
	default:
		return nil, fmt.Errorf("unknown guide kind %q", cfg.Guide)
	}
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		fmt.Fprintf(os.Stderr, "pathguide: metrics server: %v\n", err)
	}
}
