package main

import (
	"fmt"
	"os"

	confindent "github.com/confindent/go-confindent"
	"github.com/confindent/go-confindent/encode"

	"github.com/scott-cotton/cli"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: patch requires a patch file (-p)", cli.ErrUsage)
	}
	patchData, err := os.ReadFile(cfg.PatchFile)
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", cfg.PatchFile, err)
	}
	for i, file := range inputs(args) {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
		doc, err := parseInput(file)
		if err != nil {
			return err
		}
		res, err := confindent.Patch(doc, patchData)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
