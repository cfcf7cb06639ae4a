// Command tupledump is a small demonstration harness for the tuple
// codec: it loads a config file (or the defaults), packs a handful of
// example tuples, and prints them using the codec's informational
// debug-print format.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/colakv/colakv/config"
	"github.com/colakv/colakv/logging"
	"github.com/colakv/colakv/tuple"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tupledump: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := logging.NewLogger(cfg.LogLevel)
	defer log.Sync()

	examples := []tuple.Tuple{
		tuple.New("users"),
		tuple.New("users", int64(42)),
		tuple.New("users", int64(42), "email"),
		tuple.New(true, -1, "hi"),
	}

	for _, t := range examples {
		packed := tuple.Pack(t)
		log.Debugw("packed tuple", "bytes", len(packed))
		fmt.Printf("%s => % x\n", tuple.String(t), packed)
	}
}
