package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/explodesh/explodesh/encode"
	"github.com/explodesh/explodesh/explode"
	"github.com/explodesh/explodesh/format"
	"github.com/explodesh/explodesh/implode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log every entry read or written'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	ctx context.Context
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// colorOpt reports whether -color was given explicitly, and its value.
func (cfg *MainConfig) colorOpt() (set, v bool) {
	if cfg.Color {
		return true, true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		return opt.Value != nil, false
	}
	return false, false
}

// useColor decides whether output to w is colored.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if set, v := cfg.colorOpt(); set {
		return v
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// encOpts returns the encoding options for writing to w. path names the
// destination and selects the format when -O is absent.
func (cfg *MainConfig) encOpts(w io.Writer, path string) []encode.EncodeOption {
	fmat := format.TOMLFormat
	if path != "" && path != "-" {
		fmat = format.FromPath(path)
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if fmat.IsTOML() && cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ExplodeConfig struct {
	*MainConfig
	Order bool `cli:"name=order desc='write .keys.toml key order manifests'"`

	Explode *cli.Command
}

func (cfg *ExplodeConfig) explodeOpts() []explode.ExplodeOption {
	return []explode.ExplodeOption{
		explode.WithKeyOrder(cfg.Order),
		explode.WithLogger(theLog),
	}
}

type ImplodeConfig struct {
	*MainConfig
	Strict    bool `cli:"name=strict desc='fail on directories that are neither clearly arrays nor tables'"`
	Bare      bool `cli:"name=bare desc='read file content that is not a TOML value as a string'"`
	Canonical bool `cli:"name=canonical desc='rewrite scalars in canonical form'"`

	Implode *cli.Command
}

func (cfg *ImplodeConfig) implodeOpts() []implode.ImplodeOption {
	return []implode.ImplodeOption{
		implode.Strict(cfg.Strict),
		implode.Bare(cfg.Bare),
		implode.Canonical(cfg.Canonical),
		implode.Warn(warnAmbiguity),
		implode.WithLogger(theLog),
	}
}

func warnAmbiguity(a *implode.Ambiguity) {
	theLog.Warn("directory read as table", "path", a.Path, "names", a.Names, "mixed", a.Mixed)
}

type CheckConfig struct {
	*MainConfig
	Order  bool `cli:"name=order desc='check with key order manifests'"`
	Strict bool `cli:"name=strict desc='fail on ambiguous directories'"`

	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Merge   bool `cli:"name=merge desc='print a JSON merge patch instead of a line diff'"`
	Context int  `cli:"name=U desc='lines of context around changes (-1 for all)'"`

	Diff *cli.Command
}
