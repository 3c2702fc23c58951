package main

import (
	"errors"
	"os"

	"github.com/scott-cotton/cli"
)

func xjMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return convertReader(cfg, cc.Out, cc.In)
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		// no subcommand, args are files to convert
		return convertFiles(cfg, cc.Out, args)
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
