package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/voyagen/tvm3u/internal/config"
	"github.com/voyagen/tvm3u/internal/logger"
	"github.com/voyagen/tvm3u/internal/service"
)

func main() {
	configPath := flag.String("config", "", "Optional config file path (YAML)")
	dir := flag.String("dir", "", "Directory that relative input/output paths are resolved against")
	input := flag.String("in", config.DefaultInput, "Channel JSON file")
	output := flag.String("out", config.DefaultOutput, "M3U playlist to write")
	debug := flag.Bool("debug", false, "Log skipped channels")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
	}
	// Explicit flags override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dir":
			cfg.Dir = *dir
		case "in":
			cfg.Input = *input
		case "out":
			cfg.Output = *output
		case "debug":
			cfg.Debug = *debug
		}
	})

	log := logger.New(os.Stdout, cfg.Debug)

	sum, err := service.Generate(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("conversion failed")
		os.Exit(1)
	}

	fmt.Printf("M3U playlist written: %s\n", sum.Output)
	if sum.Stats == nil {
		fmt.Println("warning: playlist could not be read back after writing")
		return
	}
	fmt.Printf("size:  %d bytes (%s)\n", sum.Stats.Size, humanize.Bytes(uint64(sum.Stats.Size)))
	fmt.Printf("lines: %d\n", sum.Stats.Lines)
}
