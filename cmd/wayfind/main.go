// Command wayfind answers shortest-route questions over a road map file.
//
// Usage:
//
//	wayfind [flags] START DEST [MAPFILE]
//	wayfind -dump [MAPFILE]
//
// START and DEST are location labels exactly as they appear in the map file
// (quote them if they contain blanks). MAPFILE may be omitted when the
// config file supplies map_file.
//
// Exit status is 1 when either location is not on the map or the map cannot
// be loaded; 0 otherwise — including the "you can't get there" verdict.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wayfind/config"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/mapfile"
	"github.com/katalvlaran/wayfind/route"
	"github.com/katalvlaran/wayfind/search"
)

func main() {
	cfgPath := flag.String("config", "", "path to YAML config file")
	logLevel := flag.String("log-level", "", "debug|info|warn|error (overrides config)")
	strategy := flag.String("strategy", "", "heap|queue search work list (overrides config)")
	showPath := flag.Bool("show-path", false, "print the whole route, not just the distance")
	dump := flag.Bool("dump", false, "print the parsed road network and exit")
	flag.Parse()

	log := logrus.New()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("unknown log level %q", cfg.LogLevel)
	}
	log.SetLevel(level)

	args := flag.Args()

	if *dump {
		net := load(log, pick(args, 0, cfg.MapFile))
		if err = net.Dump(os.Stdout); err != nil {
			log.Fatal(err)
		}

		return
	}

	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: wayfind [flags] START DEST [MAPFILE]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	start, dest := args[0], args[1]
	net := load(log, pick(args, 2, cfg.MapFile))

	// Per-label validation, both reported before exiting.
	onMap := true
	if !net.Has(start) {
		fmt.Printf("Start place %q is not on the map\n", start)
		onMap = false
	}
	if !net.Has(dest) {
		fmt.Printf("Destination %q is not on the map\n", dest)
		onMap = false
	}
	if !onMap {
		os.Exit(1)
	}

	res, err := route.Query(net, start, dest, search.WithStrategy(parseStrategy(log, cfg.Strategy)))
	if err != nil {
		log.Fatal(err)
	}

	if !res.Reachable {
		fmt.Printf("You can't get from %s to %s\n", start, dest)

		return
	}
	if *showPath {
		fmt.Printf("Distance from %s to %s is %g (via %s)\n",
			start, dest, res.Distance, strings.Join(res.Via, " -> "))

		return
	}
	fmt.Printf("Distance from %s to %s is %g\n", start, dest, res.Distance)
}

// pick returns args[i] when present, otherwise the configured fallback.
// An empty result is fatal: there is no map to load.
func pick(args []string, i int, fallback string) string {
	if len(args) > i {
		return args[i]
	}

	return fallback
}

// load reads the map file into a network, exiting on any failure.
func load(log *logrus.Logger, path string) *core.Network {
	if path == "" {
		fmt.Fprintln(os.Stderr, "wayfind: no map file given (argument or config map_file)")
		os.Exit(2)
	}

	net, err := mapfile.LoadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(logrus.Fields{
		"map":         path,
		"locations":   net.Order(),
		"connections": net.ConnectionCount(),
	}).Debug("map loaded")

	return net
}

// parseStrategy maps the configured name onto a search.Strategy.
func parseStrategy(log *logrus.Logger, name string) search.Strategy {
	switch name {
	case "", "heap":
		return search.StrategyHeap
	case "queue":
		return search.StrategyQueue
	default:
		log.Fatalf("unknown strategy %q", name)
	}

	return search.StrategyHeap
}
