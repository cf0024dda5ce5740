// Package main provides the CLI entry point for sheetpreview.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/sheetpreview-go/pkg/preview"
	"golang.org/x/text/language"
)

var (
	outputPath string
	format     string
	pretty     bool
	sheetName  string
	maxRows    int
	maxCols    int
	locale     string
	dateLayout string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sheetpreview",
		Short: "Render bounded HTML previews of Excel workbooks",
		Long: `sheetpreview renders the top-left window of a worksheet as an HTML
table with cell styling and semantic classes, either for a single file
or behind a caching HTTP endpoint.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	renderCmd := &cobra.Command{
		Use:   "render [input.xlsx]",
		Short: "Render one workbook to HTML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().StringVar(&format, "format", "html", "Output format: html, json")
	renderCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	renderCmd.Flags().AddFlagSet(renderFlags())

	rootCmd.AddCommand(renderCmd, newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// renderFlags holds the options shared by every command that renders.
func renderFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("render", pflag.ContinueOnError)
	fs.StringVar(&sheetName, "sheet", "", "Worksheet to render (default: first sheet)")
	fs.IntVar(&maxRows, "max-rows", preview.DefaultMaxRows, "Maximum rows to render")
	fs.IntVar(&maxCols, "max-cols", preview.DefaultMaxCols, "Maximum columns to render")
	fs.StringVar(&locale, "locale", "en-US", "Locale for number grouping")
	fs.StringVar(&dateLayout, "date-layout", "", "Go time layout for date cells (default: 1/2/2006)")
	return fs
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level: %s", level)
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func runRender(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if format != "html" && format != "json" {
		return fmt.Errorf("invalid format: %s (must be html or json)", format)
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	logger, err := newLogger(logLevel)
	if err != nil {
		return err
	}

	opts := preview.DefaultOptions()
	opts.Locale = tag
	opts.DateLayout = dateLayout
	opts.Logger = logger

	provider := preview.ProviderFunc(func(ctx context.Context, _ string) ([]byte, error) {
		return os.ReadFile(inputPath)
	})
	svc := preview.NewService(provider, nil, opts)

	resp, err := svc.Preview(cmd.Context(), preview.Request{
		DocumentID: inputPath,
		SheetName:  sheetName,
		MaxRows:    maxRows,
		MaxCols:    maxCols,
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	var data []byte
	if format == "json" {
		if pretty {
			data, err = json.MarshalIndent(resp.Result, "", "  ")
		} else {
			data, err = json.Marshal(resp.Result)
		}
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		data = append(data, '\n')
	} else {
		data = []byte(resp.Result.HTML)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(data)
	return err
}
