package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"portal/internal/config"
	"portal/internal/portal"
	"portal/pkg/extraction"
	"portal/pkg/textract"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric/noop"
)

// classifyInput reads path, or stdin for "-", and guesses its media type
// from the extension.
func classifyInput(stdin io.Reader, path string) ([]byte, string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, "", fmt.Errorf("could not read stdin: %w", err)
		}

		return data, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if filepath.Ext(path) == ".md" {
		contentType = "text/markdown"
	}

	return data, contentType, nil
}

// classify extracts the text of data and classifies it.
func classify(ctx context.Context,
	classifier *extraction.ProviderClassifier,
	contentType string,
	data []byte,
	keywords []string) (*portal.ExtractResult, error) {
	text, err := textract.Extract(ctx, contentType, data)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	entities, source := classifier.ClassifyWithSource(ctx, text, keywords)

	return &portal.ExtractResult{Text: text, Entities: entities, Source: source}, nil
}

// classifyCommand constructs the 'classify' subcommand that prints the
// entities of a document as JSON. It needs no database.
func classifyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Extracts entities from a PDF, HTML, Markdown or text file (stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			keywords, _ := cmd.Flags().GetStringSlice("keywords")
			offline, _ := cmd.Flags().GetBool("offline")
			contentType, _ := cmd.Flags().GetString("content-type")
			withText, _ := cmd.Flags().GetBool("text")

			var path string
			if len(args) > 0 {
				path = args[0]
			}
			data, guessed, err := classifyInput(cmd.InOrStdin(), path)
			if err != nil {
				return err
			}
			if contentType == "" {
				contentType = guessed
			}

			classifier := getClassifier(ctx, cfg, noop.NewMeterProvider().Meter("portal"), offline)
			res, err := classify(ctx, classifier, contentType, data, keywords)
			if err != nil {
				return err
			}
			if !withText {
				res.Text = ""
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(res) //nolint: wrapcheck
		},
	}

	cmd.Flags().StringSlice("keywords", nil, "Author keywords, comma separated")
	cmd.Flags().Bool("offline", false, "Skip the annotation provider")
	cmd.Flags().String("content-type", "", "Media type of the input; sniffed when empty")
	cmd.Flags().Bool("text", false, "Include the extracted text in the output")

	return cmd
}
