package main

import (
	"fmt"
	"io"
	"os"

	"github.com/confindent/go-confindent/encode"
	"github.com/confindent/go-confindent/format"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
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

// encOpts selects encoding options for w.  Output is colorized when
// -color is given or, if the flag is absent, when w is a terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Delim string `cli:"name=d desc='key path delimiter' default=/"`
	Node  bool   `cli:"name=n desc='print the whole subtree at the path'"`
	Get   *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write results back to the source files'"`
	Diff  bool `cli:"name=d desc='display diffs instead of rewriting files'"`
	List  bool `cli:"name=l desc='list files whose formatting differs'"`
	Fmt   *cli.Command
}

type ExportConfig struct {
	*MainConfig
	OutFormat format.Format
	Export    *cli.Command
}

func (cfg *ExportConfig) fmtOpt(_ *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = f
	return f, nil
}

type QueryConfig struct {
	*MainConfig
	Expr  string `cli:"name=e desc='selection expression'"`
	Node  bool   `cli:"name=n desc='print matching subtrees'"`
	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='JSON patch file (RFC 6902)'"`
	Patch     *cli.Command
}
