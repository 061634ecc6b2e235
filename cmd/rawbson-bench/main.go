// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// Command rawbson-bench loads a BSON document once and repeatedly
// exercises New, Get, and Iter against it, reporting per-operation
// timings. It is the ad hoc companion to the package's testing.B
// benchmarks, for profiling against a caller-supplied document rather
// than the synthetic fixture the test suite builds.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jcdyer/rawbson"
	"github.com/peterbourgon/ff/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Fatal("rawbson-bench failed")
	}
}

func run(args []string) error {
	flagset := flag.NewFlagSet("rawbson-bench", flag.ExitOnError)
	flPath := flagset.String("file", "", "path to a file containing a single BSON document (required)")
	flIterations := flagset.Int("iterations", 100000, "number of times to repeat each operation")
	flKey := flagset.String("key", "", "key to pass to Get; if empty, only New and Iter are timed")

	if err := ff.Parse(flagset, args, ff.WithEnvVarPrefix("RAWBSON_BENCH")); err != nil {
		return err
	}
	if *flPath == "" {
		flagset.Usage()
		return fmt.Errorf("rawbson-bench: -file is required")
	}

	data, err := os.ReadFile(*flPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", *flPath, err)
	}

	logger := logrus.New()
	n := *flIterations

	newElapsed := timeit(n, func() error {
		_, err := rawbson.New(data)
		return err
	})
	logger.WithFields(logrus.Fields{
		"op":            "New",
		"iterations":    n,
		"total":         newElapsed,
		"per_operation": newElapsed / time.Duration(n),
	}).Info("benchmark complete")

	doc, err := rawbson.New(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", *flPath, err)
	}

	iterElapsed := timeit(n, func() error {
		it := doc.Iter()
		for {
			if _, ok := it.Next(); !ok {
				break
			}
		}
		return it.Err()
	})
	logger.WithFields(logrus.Fields{
		"op":            "Iter",
		"iterations":    n,
		"total":         iterElapsed,
		"per_operation": iterElapsed / time.Duration(n),
	}).Info("benchmark complete")

	if *flKey != "" {
		getElapsed := timeit(n, func() error {
			_, _, err := doc.Get(*flKey)
			return err
		})
		logger.WithFields(logrus.Fields{
			"op":            "Get",
			"key":           *flKey,
			"iterations":    n,
			"total":         getElapsed,
			"per_operation": getElapsed / time.Duration(n),
		}).Info("benchmark complete")
	}

	return nil
}

func timeit(n int, fn func() error) time.Duration {
	start := time.Now()
	for i := 0; i < n; i++ {
		if err := fn(); err != nil {
			logrus.WithError(err).Fatal("operation failed mid-benchmark")
		}
	}
	return time.Since(start)
}
