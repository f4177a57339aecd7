/*
anvil prints what the format registry knows about Vulkan formats.

	anvil [-config file [-watch]] [format...]

Formats are given by name, with or without the VK_FORMAT_ prefix. Without
arguments every registered format is listed. With -watch the tool keeps
running and prints the formats again each time the config file changes.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/spaghettifunk/anvil/engine/core"
)

func main() {
	configPath := flag.String("config", "", "optional TOML configuration file")
	watch := flag.Bool("watch", false, "reload the configuration file when it changes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-config file [-watch]] [format...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := core.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = core.LoadConfig(*configPath); err != nil {
			core.LogFatal("%s", err)
		}
	}
	if err := cfg.Apply(); err != nil {
		core.LogFatal("%s", err)
	}

	formats, err := selectFormats(flag.Args())
	if err != nil {
		core.LogFatal("%s", err)
	}
	core.LogDebug("describing %d formats", len(formats))

	if err := describeAll(os.Stdout, formats); err != nil {
		core.LogFatal("%s", err)
	}

	if !*watch {
		return
	}
	if *configPath == "" {
		core.LogFatal("-watch needs -config")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	core.LogInfo("watching %s", *configPath)
	err = core.WatchConfig(ctx, *configPath, func(cfg *core.Config) {
		if err := reload(os.Stdout, cfg, formats); err != nil {
			core.LogWarn("config reload failed: %s", err)
		}
	})
	if err != nil {
		core.LogFatal("%s", err)
	}
}
