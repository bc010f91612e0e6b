package main

import (
	"fmt"
	"io"
	"os"

	"github.com/confindent/go-confindent/parse"
	"github.com/confindent/go-confindent/tree"
)

// inputs returns the file arguments, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return data, nil
}

func parseInput(file string) (*tree.Document, error) {
	data, err := readInput(file)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return doc, nil
}
