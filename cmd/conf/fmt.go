package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/confindent/go-confindent/encode"
	"github.com/confindent/go-confindent/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func fmtRun(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	data, err := readInput(file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(data)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}
	var buf bytes.Buffer
	if err := encode.Encode(doc, &buf); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if bytes.Equal(buf.Bytes(), data) {
		if !cfg.Write && !cfg.Diff && !cfg.List {
			_, err := cc.Out.Write(buf.Bytes())
			return err
		}
		return nil
	}
	switch {
	case cfg.List:
		fmt.Fprintf(cc.Out, "%s\n", file)
	case cfg.Diff:
		writeDiff(cc.Out, string(data), buf.String())
	case cfg.Write:
		if file == "-" {
			return fmt.Errorf("%w: cannot write stdin in place", cli.ErrUsage)
		}
		if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("could not rewrite %q: %w", file, err)
		}
	default:
		if _, err := cc.Out.Write(buf.Bytes()); err != nil {
			return err
		}
	}
	return nil
}

func writeDiff(w io.Writer, from, to string) {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed, color.CrossedOut).SprintFunc()
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprint(w, ins(d.Text))
		case diffpatch.DiffDelete:
			fmt.Fprint(w, del(d.Text))
		case diffpatch.DiffEqual:
			fmt.Fprint(w, d.Text)
		}
	}
}
