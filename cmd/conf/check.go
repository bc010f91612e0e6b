package main

import (
	"fmt"

	"github.com/confindent/go-confindent/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args) {
		data, err := readInput(file)
		if err != nil {
			return err
		}
		if _, err := parse.Parse(data); err != nil {
			fmt.Fprintf(cc.Out, "%s: %v\n", file, err)
			failed++
		}
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
