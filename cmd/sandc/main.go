// Command sandc parses a Sand source file and reports how many statements
// it holds and the diagnostics found in it.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/mosfetlang/sand/parsers"
)

func main() {
	log.SetFlags(0)

	ignoreLeadingZeroes := flag.Bool("ignore-leading-zeroes", false, "suppress leading-zero warnings")
	ignoreTrailingZeroes := flag.Bool("ignore-trailing-zeroes", false, "suppress trailing-zero warnings")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: sandc [flags] <file>")
	}
	filePath := flag.Arg(0)

	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("cannot read file: %v", err)
	}

	ignore := parsers.ParserIgnoreConfig{
		NumberLeadingZeroes:  *ignoreLeadingZeroes,
		NumberTrailingZeroes: *ignoreTrailingZeroes,
	}
	context := parsers.NewParserContext(&filePath, ignore)
	input := parsers.NewInput(string(content), context)

	result := parsers.ParseModule(input)
	reportWarnings(context)

	if result.IsErrored() {
		reportError(result.Err)
		os.Exit(1)
	}

	log.Printf("parsed %d statement(s) from %s", len(result.Value.Statements()), filePath)
}

func reportWarnings(context *parsers.ParserContext) {
	for _, warning := range context.Warnings() {
		log.Printf("warning: %s", warning.Log.Title)
	}
}

func reportError(err *parsers.ParserError) {
	log.Printf("error: %s", err.Error())
	for _, highlight := range err.Log.Highlights {
		if highlight.Message != "" {
			log.Printf("  at %d..%d: %s", highlight.Start, highlight.End, highlight.Message)
		}
	}
}
