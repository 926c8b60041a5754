package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func printSuccess(msg string) {
	fmt.Printf("%s %s\n", green("✓"), msg)
}

func printError(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", red("✗"), msg)
}

func printInfo(msg string) {
	fmt.Printf("%s %s\n", cyan("ℹ"), msg)
}

// defaultOutputPath derives the output file name from the input file and
// the target language, e.g. "movie.ass" + "ar" -> "movie_ar.ass".
func defaultOutputPath(input, targetLang string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_" + targetLang + ext
}
