package main

import (
	"fmt"
	"io"
	"os"

	"github.com/explodesh/explodesh"

	"github.com/scott-cotton/cli"
)

func explodeCmd(cfg *ExplodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Explode.Parse(cc, args)
	if err != nil {
		cfg.Explode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: explode requires <source> and <dest>, got %v", cli.ErrUsage, args)
	}
	src, dest := args[0], args[1]
	tool := explodesh.DefaultTool()
	tool.ExplodeOpts = cfg.explodeOpts()
	var r io.Reader
	if src == "-" {
		r = cc.In
	} else {
		f, err := os.Open(src)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := tool.Explode(cfg.ctx, r, dest); err != nil {
		return fmt.Errorf("error exploding %s into %s: %w", src, dest, err)
	}
	theLog.Debug("exploded", "source", src, "dest", dest)
	return nil
}
