package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/explodesh/explodesh"

	"github.com/scott-cotton/cli"
)

func implodeCmd(cfg *ImplodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Implode.Parse(cc, args)
	if err != nil {
		cfg.Implode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 && len(args) != 2 {
		return fmt.Errorf("%w: implode requires <source> [<dest>], got %v", cli.ErrUsage, args)
	}
	src, dest := args[0], cfg.Out
	if len(args) == 2 {
		dest = args[1]
	}
	var w io.Writer = cc.Out
	if dest != "" && dest != "-" && dest != cfg.Out {
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	tool := explodesh.DefaultTool()
	tool.ImplodeOpts = cfg.implodeOpts()
	tool.EncodeOpts = cfg.encOpts(w, dest)
	bw := bufio.NewWriter(w)
	if err := tool.ImplodeTo(cfg.ctx, src, bw); err != nil {
		return err
	}
	return bw.Flush()
}
