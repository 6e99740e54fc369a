package main

import (
	"encoding/json"
	"os"

	"github.com/YuminosukeSato/curvefit/pkg/errors"
)

// Config describes one run of the experiment. Fields left out of the JSON
// file keep the values from defaultConfig.
type Config struct {
	Samples    int       `json:"samples"`
	Noise      float64   `json:"noise"`
	Train      int       `json:"train"`
	Validation int       `json:"validation"`
	Degrees    []int     `json:"degrees"`
	LogLambdas []float64 `json:"log_lambdas"`
	Seed       uint64    `json:"seed"`
}

func defaultConfig() Config {
	return Config{
		Samples:    110,
		Noise:      0.3,
		Train:      10,
		Validation: 50,
		Degrees:    []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		Seed:       1,
	}
}

func decodeConfig(srcConfig string, out *Config) (err error) {
	file, err := os.Open(srcConfig)
	if err != nil {
		return errors.Wrapf(err, "open config %s", srcConfig)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return errors.Wrapf(err, "decode config %s", srcConfig)
	}
	return nil
}

func (c Config) validate() error {
	if c.Samples < 2 {
		return errors.NewInvalidParameterError("samples", "must be at least 2", c.Samples)
	}
	if c.Noise < 0 {
		return errors.NewInvalidParameterError("noise", "must be non-negative", c.Noise)
	}
	if len(c.Degrees) == 0 {
		return errors.NewInvalidParameterError("degrees", "must not be empty", c.Degrees)
	}
	if c.Train+c.Validation >= c.Samples {
		return errors.NewInvalidParameterError("train+validation", "must leave at least one test sample", c.Train+c.Validation)
	}
	return nil
}
