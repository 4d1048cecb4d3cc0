package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/TheLime1/esprit-empty-class/internal/pdf"
)

// pdf-cut carves a page selection out of a schedule export into a new
// PDF, handy for sharing or debugging a single class page.

func main() {
	input := pflag.StringP("input", "i", "last.pdf", "Source PDF file")
	pages := pflag.StringP("pages", "p", "217", "Pages to extract, e.g. '1,3,5-7'")
	output := pflag.StringP("output", "o", "", "Output PDF file (default page_<pages>.pdf)")
	count := pflag.Bool("count", false, "Print the page count and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s: [flags]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExtracts pages from a PDF into a new file\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if err := run(*input, *pages, *output, *count); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, pageSpec, output string, countOnly bool) error {
	cutter := pdf.NewCutter()

	total, err := cutter.PageCount(input)
	if err != nil {
		return err
	}
	if countOnly {
		fmt.Printf("%s: %d pages\n", input, total)
		return nil
	}

	selected, err := pdf.ParsePageSpec(pageSpec, total)
	if err != nil {
		return err
	}
	if output == "" {
		output = fmt.Sprintf("page_%s.pdf", pageSpec)
	}

	if err := cutter.ExtractPages(input, selected, output); err != nil {
		return err
	}
	fmt.Printf("extracted %d page(s) from %s to %s\n", len(selected), input, output)
	return nil
}
