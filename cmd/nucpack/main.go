// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

/*
nucpack packs ACGT sequences into 2-bit words and prints them as hex, or
with -unpack decodes hex words back into bases.

Usage:

	nucpack ACGT acggtt
	cat seqs.txt | nucpack
	nucpack -unpack -length 4 0xe4
*/

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/grailbio/nucpack"
)

var (
	unpack = flag.Bool("unpack", false, "Decode hex-encoded packed words instead of packing sequences")
	length = flag.Int("length", 0, "Number of bases to decode per packed word; required with -unpack")
	gc     = flag.Bool("gc", false, "Also print GC content per sequence")
)

func nucpackUsage() {
	fmt.Printf("Usage: %s [OPTIONS] [sequence or hex word]...\n", os.Args[0])
	fmt.Printf("With no positional arguments, inputs are read from stdin, one per line.\n")
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = nucpackUsage
	shutdown := grail.Init()
	defer shutdown()

	process := packOne
	if *unpack {
		process = unpackOne
	}
	args := flag.Args()
	if len(args) > 0 {
		for _, arg := range args {
			if err := process(arg); err != nil {
				log.Fatalf("%v", err)
			}
		}
		return
	}
	log.Debug.Printf("no arguments; reading from stdin")
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			if err := process(line); err != nil {
				log.Fatalf("%v", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("%v", errors.Wrap(err, "reading stdin"))
	}
}

func packOne(seq string) error {
	packed, err := nucpack.Pack([]byte(seq))
	if err != nil {
		return errors.Wrapf(err, "packing %q", seq)
	}
	if *gc {
		frac, err := nucpack.GCContent(packed, len(seq))
		if err != nil {
			return err
		}
		fmt.Printf("%s\t0x%016x\t%.4f\n", seq, packed, frac)
		return nil
	}
	fmt.Printf("%s\t0x%016x\n", seq, packed)
	return nil
}

func unpackOne(word string) error {
	packed, err := strconv.ParseUint(word, 0, 64)
	if err != nil {
		return errors.Wrapf(err, "parsing %q as a packed word", word)
	}
	seq, err := nucpack.Unpack(packed, *length)
	if err != nil {
		return errors.Wrapf(err, "unpacking %q", word)
	}
	fmt.Printf("%s\t%s\n", word, seq)
	return nil
}
