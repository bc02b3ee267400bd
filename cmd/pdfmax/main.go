// Command pdfmax prints the largest numeric value found in a PDF document,
// both as the largest bare literal and as the largest value after applying
// magnitude qualifiers like "in millions".
//
// Usage:
//
//	pdfmax report.pdf
//	pdfmax --pages 1-10 --workers 4 report.pdf
//	PDF_PATH=report.pdf pdfmax
//
// Flags take precedence over environment variables; a .env file in the
// working directory is loaded first.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tsawler/pdfmax"
)

var (
	flagPages              string
	flagWorkers            int
	flagQualifiers         string
	flagIncludePageNumbers bool
	flagLogLevel           string
)

func main() {
	root := &cobra.Command{
		Use:   "pdfmax [file.pdf]",
		Short: "Find the largest numeric value in a PDF document",
		Long: "pdfmax scans a PDF page by page for numeric values and magnitude\n" +
			"phrases like \"in millions\", and reports the largest bare literal and\n" +
			"the largest value after magnitude scaling.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	root.Flags().StringVar(&flagPages, "pages", "", "pages to scan, e.g. 1,3,5 or 2-10 (default all)")
	root.Flags().IntVar(&flagWorkers, "workers", 0, "concurrent page workers (0 = automatic)")
	root.Flags().StringVar(&flagQualifiers, "qualifiers", "", "YAML file with a custom magnitude table")
	root.Flags().BoolVar(&flagIncludePageNumbers, "include-page-numbers", false, "count footer and \"page N\" integers as values")
	root.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error (default from LOG_LEVEL or info)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	setupLogging()

	path := os.Getenv("PDF_PATH")
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no PDF given: pass a file argument or set PDF_PATH")
	}

	ext := pdfmax.Open(path)
	if flagWorkers > 0 {
		ext = ext.Workers(flagWorkers)
	}
	if flagQualifiers != "" {
		ext = ext.QualifiersFromFile(flagQualifiers)
	}
	if flagIncludePageNumbers {
		ext = ext.IncludePageNumbers()
	}
	if flagPages != "" {
		pages, err := parsePages(flagPages)
		if err != nil {
			return err
		}
		ext = ext.Pages(pages...)
	}

	log.WithField("file", path).Info("scanning document")

	result, warnings, err := ext.Result()
	for _, w := range warnings {
		log.Warn(w.String())
	}
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"pages":        result.PagesProcessed,
		"pages_with":   result.PagesWithNumbers,
		"tokens_found": result.TokensFound,
	}).Debug("scan complete")

	p := message.NewPrinter(language.English)
	p.Printf("Largest Number: %.2f; Found on Page: %d\n", result.MaxRaw, result.MaxRawPage)
	p.Printf("Contextualized Largest Number: %.2f; Found on Page: %d\n", result.MaxScaled, result.MaxScaledPage)

	return nil
}

// setupLogging configures logrus from the --log-level flag, falling back to
// the LOG_LEVEL environment variable, then to info.
func setupLogging() {
	levelName := flagLogLevel
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	if levelName == "" {
		levelName = "info"
	}

	level, err := log.ParseLevel(strings.ToLower(levelName))
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

// parsePages parses a page selection like "1,3,5" or "2-10" or a mix of
// both into a list of 1-based page numbers.
func parsePages(spec string) ([]int, error) {
	var pages []int
	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if start, end, ok := strings.Cut(part, "-"); ok {
			lo, err := strconv.Atoi(strings.TrimSpace(start))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			hi, err := strconv.Atoi(strings.TrimSpace(end))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			if lo > hi {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			for i := lo; i <= hi; i++ {
				pages = append(pages, i)
			}
			continue
		}

		page, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		pages = append(pages, page)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("empty page selection %q", spec)
	}
	return pages, nil
}
