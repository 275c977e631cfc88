// Command noisedb loads a noise database configuration against a static
// anode description and reports what it resolved to.
//
// Usage:
//
//	noisedb -geometry anode.yaml noisedb.yaml
//	noisedb -geometry anode.yaml -json noisedb.yaml
//	noisedb -geometry anode.yaml -dump 42 -kind response -o resp.wav noisedb.yaml
//
// With -dump the time-domain kernel of one channel filter is written as a
// 32-bit mono WAV file sampled at the configured tick.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	noisedb "github.com/tphakala/go-channel-noisedb"
)

const (
	minRequiredArgs = 1
	noDump          = -1
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	geometryPath := flag.String("geometry", "", "Anode description file (YAML or JSON)")
	asJSON := flag.Bool("json", false, "Print the summary as JSON")
	dump := flag.Int("dump", noDump, "Channel whose filter kernel is written to -o")
	kindName := flag.String("kind", "rcrc", "Filter to dump: rcrc, config, noise, response")
	outputPath := flag.String("o", "kernel.wav", "Output file for -dump")
	verbose := flag.Bool("v", false, "Verbose output")
	cpuprofile := flag.String("cpuprofile", "", "Write CPU profile to file")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs || *geometryPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -geometry anode.yaml [options] noisedb.yaml\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}

	kind, ok := noisedb.ParseFilterKind(*kindName)
	if !ok {
		return fmt.Errorf("unknown filter kind %q", *kindName)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	configPath := args[0]
	if *verbose {
		log.Printf("Config: %s", configPath)
		log.Printf("Geometry: %s", *geometryPath)
	}

	db, err := openDatabase(configPath, *geometryPath, *verbose)
	if err != nil {
		return err
	}

	if err := writeSummary(os.Stdout, buildSummary(db), *asJSON); err != nil {
		return err
	}

	if *dump != noDump {
		n, err := dumpFilter(db, *dump, kind, *outputPath)
		if err != nil {
			return err
		}
		if *verbose {
			log.Printf("Wrote %d-sample %s kernel of channel %d to %s", n, kind, *dump, *outputPath)
		}
	}
	return nil
}
