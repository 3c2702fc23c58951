package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "depth",
			Description: "max element nesting depth",
			Type:        cli.NamedFuncOpt(cfg.depthOpt, "(n)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xj").
		WithSynopsis("xj [opts] [command [opts]] [files]").
		WithDescription("xj converts XML documents to JSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xjMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ListCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g", "ge").
		WithSynopsis("get <objectpath> [files]").
		WithDescription("get elements of converted documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("list").
		WithAliases("l", "ls").
		WithSynopsis("list <objectpath> [files]").
		WithDescription("list all elements of converted documents matching a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
	cfg.List = cmd
	return cmd
}
