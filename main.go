package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	const (
		inputUsage  = "input file path"
		outputUsage = "output file path (default: stdout)"
	)
	var inputPath, outputPath string
	flag.StringVar(&inputPath, "input", "", inputUsage)
	flag.StringVar(&inputPath, "i", "", inputUsage+" (shorthand)")
	flag.StringVar(&outputPath, "output", "", outputUsage)
	flag.StringVar(&outputPath, "o", "", outputUsage+" (shorthand)")

	flag.Parse()

	if inputPath == "" {
		if err := RunPrompt(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		if err := RunFile(inputPath, outputPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
