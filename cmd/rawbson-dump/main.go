// Copyright 2013 Seth Bunce. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// Command rawbson-dump reads a single BSON document from a file or stdin
// and prints its top-level keys, wire types, and decoded values in document
// order. With -materialize it prints only keys and values, in Go map
// iteration order. Flag
// parsing follows the launcher cmd's flag.FlagSet-plus-ff.Parse
// convention so every flag doubles as an environment variable.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jcdyer/rawbson"
	"github.com/peterbourgon/ff/v3"
	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		logrus.WithError(err).Fatal("rawbson-dump failed")
	}
}

func run(args []string) error {
	flagset := flag.NewFlagSet("rawbson-dump", flag.ExitOnError)
	flPath := flagset.String("file", "", "path to a file containing a single BSON document (default: stdin)")
	flVerbose := flagset.Bool("verbose", false, "log each key as it is visited")
	flMaterialize := flagset.Bool("materialize", false, "fully decode the document before printing instead of walking it lazily")

	if err := ff.Parse(flagset, args, ff.WithEnvVarPrefix("RAWBSON_DUMP")); err != nil {
		return err
	}

	logger := logrus.New()
	if *flVerbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	data, err := readInput(*flPath)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	doc, err := rawbson.New(data)
	if err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}
	logger.WithField("bytes", doc.Len()).Debug("parsed outer frame")

	if *flMaterialize {
		return dumpMaterialized(logger, doc)
	}
	return dumpLazy(logger, doc)
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func dumpLazy(logger *logrus.Logger, doc *rawbson.Document) error {
	it := doc.Iter()
	for {
		el, ok := it.Next()
		if !ok {
			break
		}
		logger.WithFields(logrus.Fields{
			"key": el.Key(),
			"tag": el.Tag().String(),
		}).Debug("visiting element")
		v, err := el.Materialize()
		if err != nil {
			return fmt.Errorf("decoding %q: %w", el.Key(), err)
		}
		fmt.Printf("%s (%s): %v\n", el.Key(), el.Tag(), v)
	}
	return it.Err()
}

func dumpMaterialized(logger *logrus.Logger, doc *rawbson.Document) error {
	m, err := doc.Materialize()
	if err != nil {
		return err
	}
	logger.WithField("keys", len(m)).Debug("materialized document")
	for k, v := range m {
		fmt.Printf("%s: %v\n", k, v)
	}
	return nil
}
