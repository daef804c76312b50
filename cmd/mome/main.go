// Command mome runs a Multi-Objective MAP-Elites search on a named
// benchmark problem and reports archive occupancy, the global Pareto
// front, and IGD/GD quality against the problem's true front.
//
// Configuration precedence: flags > environment (MOME_*) > config file
// (--config, YAML) > problem defaults.
//
// Usage:
//
//	mome --problem zdt6 --generations 200 --png zdt6.png
//	mome --problem kursawe --csv front.csv -v
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/mome/archive"
	"github.com/katalvlaran/mome/benchmark"
	"github.com/katalvlaran/mome/evolve"
	"github.com/katalvlaran/mome/metrics"
	"github.com/katalvlaran/mome/viz"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "mome: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("mome", pflag.ContinueOnError)

	flags.String("problem", "zdt6", "benchmark problem: "+strings.Join(benchmark.Names(), ", "))
	flags.String("config", "", "optional YAML config file")
	flags.Int("dimensions", 0, "decision vector length (0 = problem default)")
	flags.Int("bins", 20, "behavior grid resolution per axis")
	flags.Int("generations", 100, "number of generations")
	flags.Int("evals-per-gen", 500, "evaluations per generation")
	flags.Int("initial-random", 200, "random seed individuals")
	flags.Float64("sigma", 0.05, "Gaussian mutation std dev")
	flags.Int("max-per-cell", 8, "per-cell Pareto set capacity")
	flags.Int64("seed", 0, "RNG seed (0 = fixed default stream)")
	flags.String("csv", "", "write the found front to this CSV file")
	flags.String("true-csv", "", "write the true front to this CSV file")
	flags.String("png", "", "write a true-vs-found overlay to this image file")
	verbosity := flags.IntP("verbose", "v", 0, "log verbosity (0 = summary only)")

	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix("MOME")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if cfg := v.GetString("config"); cfg != "" {
		v.SetConfigFile(cfg)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	stdr.SetVerbosity(*verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.Ltime))

	problem, err := benchmark.ByName(v.GetString("problem"))
	if err != nil {
		return fmt.Errorf("%w: %q (known: %s)", err, v.GetString("problem"),
			strings.Join(benchmark.Names(), ", "))
	}

	opts := evolve.Options{
		Dimensions:               problem.Dims,
		NumObjectives:            2,
		BinsPerDim:               v.GetInt("bins"),
		Bounds:                   problem.Bounds,
		EvaluationsPerGeneration: v.GetInt("evals-per-gen"),
		Generations:              v.GetInt("generations"),
		InitialRandom:            v.GetInt("initial-random"),
		MutationSigma:            v.GetFloat64("sigma"),
		MaxPerCell:               v.GetInt("max-per-cell"),
		Seed:                     v.GetInt64("seed"),
	}
	if dims := v.GetInt("dimensions"); dims > 0 {
		opts.Dimensions = dims
	}
	opts.Observer = progressObserver(logger)

	logger.Info("starting run",
		"problem", problem.Name,
		"dimensions", opts.Dimensions,
		"bins", opts.BinsPerDim,
		"generations", opts.Generations,
		"evalsPerGen", opts.EvaluationsPerGeneration,
		"seed", opts.Seed,
	)

	arch, err := evolve.Run(problem.Eval, opts)
	if err != nil {
		return fmt.Errorf("run %s: %w", problem.Name, err)
	}

	return report(logger, problem, arch,
		v.GetString("csv"), v.GetString("true-csv"), v.GetString("png"))
}

// progressObserver logs per-generation occupancy at verbosity 1.
func progressObserver(logger logr.Logger) evolve.Observer {
	return func(gen int, s archive.Summary) {
		phase := "evolving"
		if gen < 0 {
			phase = "seeding"
		}
		logger.V(1).Info(phase,
			"generation", gen,
			"cells", s.OccupiedCells,
			"individuals", s.Individuals,
		)
	}
}

// report prints the archive summary and quality metrics, then writes
// the optional CSV/PNG artifacts.
func report(logger logr.Logger, problem benchmark.Problem, arch *archive.Archive, csvPath, trueCSVPath, pngPath string) error {
	summary := arch.Summary()
	approx := arch.FrontPoints()
	truePF := problem.TrueFront()

	fmt.Printf("=== MO-ME archive summary ===\n")
	fmt.Printf("problem:          %s\n", problem.Name)
	fmt.Printf("occupied cells:   %d\n", summary.OccupiedCells)
	fmt.Printf("individuals:      %d\n", summary.Individuals)
	fmt.Printf("mean per cell:    %.2f (max: %d)\n", summary.MeanPerCell, summary.MaxPerCell)
	fmt.Printf("global front:     %d points\n", len(approx))
	fmt.Printf("IGD:              %.6f\n", metrics.IGD(truePF, approx))
	fmt.Printf("GD:               %.6f\n", metrics.GD(approx, truePF))
	if len(approx) > 0 {
		fmt.Printf("first front point: (%.4f, %.4f)\n", approx[0][0], approx[0][1])
	}

	if csvPath != "" {
		if err := metrics.WriteCSVFile(csvPath, approx); err != nil {
			return err
		}
		logger.Info("wrote found front", "path", csvPath)
	}
	if trueCSVPath != "" {
		if err := metrics.WriteCSVFile(trueCSVPath, truePF); err != nil {
			return err
		}
		logger.Info("wrote true front", "path", trueCSVPath)
	}
	if pngPath != "" {
		title := fmt.Sprintf("%s: true front vs global Pareto found", problem.Name)
		if err := viz.SaveOverlayPNG(pngPath, title, truePF, approx, 9*vg.Inch, 6*vg.Inch); err != nil {
			return err
		}
		logger.Info("wrote overlay plot", "path", pngPath)
	}

	return nil
}
