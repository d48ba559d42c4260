package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nurpe/nomina-settlement/internal/model"
	"github.com/nurpe/nomina-settlement/internal/service"
	"github.com/nurpe/nomina-settlement/internal/settlement"
)

func newComputeCmd(a *app) *cobra.Command {
	var (
		file    string
		formatS string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a settlement from a YAML or JSON request file",
		Example: `  nomina compute --file turno.yaml
  nomina compute --file turno.yaml --format pdf --out desprendible.pdf
  cat turno.json | nomina compute --file - --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := service.ParseFormat(formatS)
			if err != nil {
				return err
			}
			req, err := readRequest(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			svc, err := a.settlements(cmd.Context())
			if err != nil {
				return err
			}

			doc, err := svc.Render(cmd.Context(), req, format)
			if err != nil {
				var fieldErr *settlement.FieldError
				if errors.As(err, &fieldErr) {
					for _, e := range svc.Validate(req) {
						fmt.Fprintf(cmd.ErrOrStderr(), "  %s: %s\n", e.Field, e.Message)
					}
					return fmt.Errorf("request is invalid: %w", err)
				}
				return err
			}

			if out == "" && (format == service.FormatPDF || format == service.FormatXLSX) {
				out = doc.FileName
			}
			if out == "" {
				_, err := cmd.OutOrStdout().Write(doc.Content)
				return err
			}
			if err := os.WriteFile(out, doc.Content, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(doc.Content))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Request file (YAML or JSON), - for stdin")
	cmd.Flags().StringVar(&formatS, "format", "text", "Output format: text, json, pdf or xlsx")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output path (pdf and xlsx default to a generated file name)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// readRequest accepts JSON as well, since it parses as YAML.
func readRequest(stdin io.Reader, path string) (model.Request, error) {
	var (
		raw []byte
		err error
	)
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return model.Request{}, fmt.Errorf("read request: %w", err)
	}

	var req model.Request
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return model.Request{}, fmt.Errorf("parse request: %w", err)
	}
	return req, nil
}
