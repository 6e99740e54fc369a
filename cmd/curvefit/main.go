// Command curvefit generates noisy sin(2πx) samples, sweeps polynomial
// degree and ridge strength on a train/validation split, and reports the
// held-out test error of the best setting.
package main

import (
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/YuminosukeSato/curvefit/dataset"
	"github.com/YuminosukeSato/curvefit/pkg/errors"
	"github.com/YuminosukeSato/curvefit/pkg/log"
	"github.com/YuminosukeSato/curvefit/report"
	"github.com/YuminosukeSato/curvefit/selection"
)

type outputs struct {
	plotDir string
	npyDir  string
}

func main() {
	config := flag.String("config", "", "a JSON config file; built-in defaults are used when empty")
	logLevel := flag.String("log-level", "info", "one of debug, info, warn, error")
	plotDir := flag.String("plot", "", "directory for fit.png and error_curve.png")
	npyDir := flag.String("npy", "", "directory for sweep.npy and coefficients.npy")
	seed := flag.Uint64("seed", 0, "random seed; overrides the config when non-zero")
	flag.Parse()

	if _, err := log.ParseLevel(*logLevel); err != nil {
		log.GetLogger().Error("bad flag", log.ErrAttrKey, err)
		os.Exit(2)
	}
	log.SetupLogger(*logLevel)
	logger := log.GetLoggerWithName("curvefit")

	cfg := defaultConfig()
	if *config != "" {
		if err := decodeConfig(*config, &cfg); err != nil {
			slog.Error("config", log.ErrAttr(err))
			os.Exit(1)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	if err := run(cfg, outputs{plotDir: *plotDir, npyDir: *npyDir}, logger); err != nil {
		slog.Error("run failed", log.ErrAttr(err))
		os.Exit(1)
	}
}

func run(cfg Config, out outputs, logger log.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	samples := dataset.Sinusoidal(cfg.Samples, cfg.Noise, rng)
	train, validation, test, err := dataset.Split(samples, cfg.Train, cfg.Validation, rng)
	if err != nil {
		return err
	}

	grid := selection.Grid{Degrees: cfg.Degrees, Lambdas: selection.LogLambdas(cfg.LogLambdas...)}
	result, err := selection.Sweep(train, validation, grid, selection.WithLogger(logger))
	if err != nil {
		return err
	}

	best := result.Best()
	testRMS, err := selection.Evaluate(best, test)
	if err != nil {
		return err
	}
	logger.Info("best model",
		log.RandomSeedKey, cfg.Seed,
		log.DegreeKey, best.Degree,
		log.RegularizationKey, best.Lambda,
		log.TrainRMSKey, best.TrainRMS,
		log.ValidationRMSKey, best.ValidationRMS,
		log.TestRMSKey, testRMS,
		log.CoefNormKey, best.Coefficients.Norm(),
	)

	if out.plotDir != "" {
		if err := writePlots(out.plotDir, result, best, train, test); err != nil {
			return err
		}
	}
	if out.npyDir != "" {
		if err := writeNpy(out.npyDir, result, best); err != nil {
			return err
		}
	}
	return nil
}

func writePlots(dir string, result *selection.Result, best selection.Point, train, test dataset.SampleSet) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}

	snap := selection.Snapshot{
		Params:       best.Params,
		Coefficients: best.Coefficients,
		TrainRMS:     best.TrainRMS,
		EvalRMS:      best.ValidationRMS,
	}
	fit, err := report.FitPlot([]report.Series{{Name: "train", Data: train}, {Name: "test", Data: test}}, snap)
	if err != nil {
		return err
	}
	if err := report.Save(fit, filepath.Join(dir, "fit.png")); err != nil {
		return err
	}

	curve, err := report.ErrorCurvePlot(result)
	if err != nil {
		return err
	}
	return report.Save(curve, filepath.Join(dir, "error_curve.png"))
}

func writeNpy(dir string, result *selection.Result, best selection.Point) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create %s", dir)
	}
	if err := writeFile(filepath.Join(dir, "sweep.npy"), func(f *os.File) error {
		return report.WriteSweepNpy(f, result)
	}); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, "coefficients.npy"), func(f *os.File) error {
		return report.WriteCoefficientsNpy(f, best.Coefficients)
	})
}

func writeFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return write(f)
}
