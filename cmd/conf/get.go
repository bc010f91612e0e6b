package main

import (
	"fmt"

	"github.com/confindent/go-confindent/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a key path argument", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: empty key path", cli.ErrUsage)
	}
	for _, file := range inputs(args[1:]) {
		doc, err := parseInput(file)
		if err != nil {
			return err
		}
		n := doc.FindDelim(path, cfg.Delim)
		if n == nil {
			return fmt.Errorf("%s: no node at %q", file, path)
		}
		if cfg.Node {
			if err := encode.EncodeNode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return fmt.Errorf("error encoding %s: %w", file, err)
			}
			continue
		}
		if n.HasValue() {
			fmt.Fprintf(cc.Out, "%s\n", n.ValueOr(""))
		}
	}
	return nil
}
