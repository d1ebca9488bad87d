package main

import (
	"fmt"

	"github.com/explodesh/explodesh"
	"github.com/explodesh/explodesh/explode"
	"github.com/explodesh/explodesh/implode"
	"github.com/explodesh/explodesh/libdiff"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one file", cli.ErrUsage)
	}
	tool := explodesh.DefaultTool()
	tool.ExplodeOpts = []explode.ExplodeOption{
		explode.WithKeyOrder(cfg.Order),
		explode.WithLogger(theLog),
	}
	tool.ImplodeOpts = []implode.ImplodeOption{
		implode.Strict(cfg.Strict),
		implode.Warn(warnAmbiguity),
		implode.WithLogger(theLog),
	}
	failed := 0
	for _, arg := range args {
		res, err := tool.Check(cfg.ctx, arg)
		if err != nil {
			return err
		}
		if res.Equal {
			theLog.Info("ok", "file", arg)
			continue
		}
		failed++
		theLog.Error("round trip changed the document", "file", arg)
		if err := libdiff.WriteLines(cc.Out, res.Diff, 3, cfg.useColor(cc.Out)); err != nil {
			return err
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
