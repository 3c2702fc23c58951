package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/signadot/xj/encode"
	"github.com/signadot/xj/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color     bool `cli:"name=color desc='encode with color'"`
	WireOut   bool `cli:"name=wire desc='output in compact format'"`
	Y         bool `cli:"name=y aliases=yaml desc='output yaml'"`
	KeepSpace bool `cli:"name=keep-space desc='keep surrounding whitespace in text'"`

	Depth int

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) depthOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("%w: invalid depth %q", cli.ErrUsage, a)
	}
	cfg.Depth = n
	return n, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.KeepSpace {
		res = append(res, parse.KeepSpace())
	}
	if cfg.Depth != 0 {
		res = append(res, parse.MaxDepth(cfg.Depth))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat := encode.JSONFormat
	if cfg.Y {
		fmat = encode.YAMLFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}
