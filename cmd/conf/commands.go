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
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "conf").
		WithSynopsis("conf [opts] command [opts] [files...]").
		WithDescription(
			`conf works with indented key-value configuration, the style of
ssh_config.  Files named "-", or no files at all, read standard input.`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return confMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			CheckCommand(cfg),
			FmtCommand(cfg),
			ExportCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files...]").
		WithDescription("view parses conf input and prints it normalized.").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg, Delim: "/"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-d delim] [-n] <path> [files...]").
		WithDescription(
			`get prints the value at a key path, or with -n the whole subtree.
A file with no node at the path is an error.`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithSynopsis("check [files...]").
		WithDescription(
			"check parses the inputs and reports syntax errors with positions.").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithSynopsis("fmt [-w|-d|-l] [files...]").
		WithDescription(
			`fmt normalizes conf formatting: tab indentation, one space between
key and value.  By default the result goes to stdout.`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtRun(cfg, cc, args)
		})
}

func ExportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExportConfig{MainConfig: mainCfg}
	opts := []*cli.Opt{
		{
			Name:        "f",
			Aliases:     []string{"fmt"},
			Description: "output format: conf/c, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtOpt, "(format)"),
		},
	}
	return cli.NewCommandAt(&cfg.Export, "export").
		WithAliases("x").
		WithSynopsis("export [-f format] [files...]").
		WithDescription("export re-encodes conf input in another format.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return export(cfg, cc, args)
		})
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query -e <expr> [-n] [files...]").
		WithDescription(
			`query evaluates an expression against every node and prints the
matches.  The expression sees key, value, hasValue, path, depth and
nchildren, for example

	conf query -e 'key == "Host" && nchildren > 0' ~/.ssh/config`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithSynopsis("patch -p <patchfile> [files...]").
		WithDescription(
			`patch applies an RFC 6902 JSON patch to the document tree and
prints the result.  Pointer paths address the JSON projection, so
"/0/value" is the value of the first root node and "/0/children/1"
its second child.`).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchRun(cfg, cc, args)
		})
}
