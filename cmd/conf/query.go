package main

import (
	"fmt"

	confindent "github.com/confindent/go-confindent"
	"github.com/confindent/go-confindent/encode"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: query requires an expression (-e)", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		doc, err := parseInput(file)
		if err != nil {
			return err
		}
		nodes, err := confindent.Select(doc, cfg.Expr)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		for _, n := range nodes {
			if cfg.Node {
				if err := encode.EncodeNode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
					return fmt.Errorf("error encoding %s: %w", file, err)
				}
				continue
			}
			if n.HasValue() {
				fmt.Fprintf(cc.Out, "%s = %s\n", n.Path(), n.ValueOr(""))
			} else {
				fmt.Fprintf(cc.Out, "%s\n", n.Path())
			}
		}
	}
	return nil
}
