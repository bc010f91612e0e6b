package main

import (
	"fmt"

	"github.com/confindent/go-confindent/encode"

	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		return err
	}
	for i, file := range inputs(args) {
		if i > 0 && cfg.OutFormat.IsConf() {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		doc, err := parseInput(file)
		if err != nil {
			return err
		}
		opts := append(cfg.encOpts(cc.Out), encode.EncodeFormat(cfg.OutFormat))
		if err := encode.Encode(doc, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
