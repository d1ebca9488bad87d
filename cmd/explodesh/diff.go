package main

import (
	"fmt"

	"github.com/explodesh/explodesh"
	"github.com/explodesh/explodesh/implode"
	"github.com/explodesh/explodesh/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	tool := explodesh.DefaultTool()
	tool.ImplodeOpts = []implode.ImplodeOption{
		implode.Warn(warnAmbiguity),
		implode.WithLogger(theLog),
	}
	a, err := tool.Load(cfg.ctx, args[0])
	if err != nil {
		return err
	}
	b, err := tool.Load(cfg.ctx, args[1])
	if err != nil {
		return err
	}
	if cfg.Merge {
		patch, err := libdiff.MergePatch(a, b)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", patch)
		return err
	}
	diffs := explodesh.Diff(a, b)
	if !libdiff.Changed(diffs) {
		return nil
	}
	if err := libdiff.WriteLines(cc.Out, diffs, cfg.Context, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
