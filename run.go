package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/jwhear/zig-minifier/driver"
	"github.com/peterh/liner"
)

var history = filepath.Join(xdg.DataHome, "zig-minifier", ".history")

// RunPrompt minifies each entered line. Every line is its own run with fresh
// rename state.
func RunPrompt() error {
	line := liner.NewLiner()
	defer func() {
		if err := os.MkdirAll(filepath.Dir(history), os.ModePerm); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		if f, err := os.Create(history); err == nil {
			defer f.Close()
			if _, err := line.WriteHistory(f); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}
		line.Close()
	}()

	if f, err := os.Open(history); err == nil {
		defer f.Close()
		if _, err := line.ReadHistory(f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	for {
		input, err := line.Prompt("> ")
		if err != nil {
			return err
		}
		line.AppendHistory(input)

		out, err := driver.Minify(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)

			continue
		}
		fmt.Println(out)
	}
}

// RunFile minifies one file to outPath, or stdout when outPath is empty.
func RunFile(path, outPath string) error {
	out, err := driver.MinifyFile(path)
	if err != nil {
		return err
	}

	if outPath == "" {
		fmt.Println(out)

		return nil
	}

	return os.WriteFile(outPath, []byte(out), 0o644)
}
