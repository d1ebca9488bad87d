package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func MainCommand(ctx context.Context) *cli.Command {
	cfg := &MainConfig{ctx: ctx}
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: toml/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "explodesh").
		WithSynopsis("explodesh [opts] command [opts]").
		WithDescription("explodesh turns TOML documents into directory trees and back.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return explodeshMain(cfg, cc, args)
		}).
		WithSubs(
			ExplodeCommand(cfg),
			ImplodeCommand(cfg),
			CheckCommand(cfg),
			DiffCommand(cfg))
}

func ExplodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExplodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Explode, "explode").
		WithAliases("x", "ex").
		WithSynopsis("explode [opts] <source.toml> <dest>").
		WithDescription(explodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return explodeCmd(cfg, cc, args)
		})
}

const explodeDescription = `explode writes a TOML document as a directory tree.

Tables and arrays become directories and scalars become files holding their
TOML text. Array elements are named by index: 0, 1, 2 ...

<source.toml> may be '-' for standard input. <dest> must not exist or be an
empty directory.

With -order a file named .keys.toml is written into every table directory
with two or more keys, recording the key order of the document. Tables with
a digit-only key get one too, so they implode as tables and not arrays.`

func ImplodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ImplodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Implode, "implode").
		WithAliases("i", "im").
		WithSynopsis("implode [opts] <source> [<dest.toml>]").
		WithDescription(implodeDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return implodeCmd(cfg, cc, args)
		})
}

const implodeDescription = `implode reads a directory tree and prints the TOML document it describes.

Files are scalars. A directory whose entries are exactly 0 .. N-1 is an
array, any other directory is a table. Table keys are sorted unless the
directory holds a .keys.toml file.

Directories that nearly look like arrays, for example with entries 0 and 2,
are read as tables with a warning, or rejected with -strict.

<dest.toml> defaults to '-', standard output. Its extension selects the
output format unless -O is given.`

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [opts] <source.toml>...").
		WithDescription("check that documents survive an explode and implode round trip").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [opts] <a> <b>").
		WithDescription("diff TOML files or exploded trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
