package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bher20/ecoagua/internal/consumption"
	"github.com/bher20/ecoagua/internal/intake"
)

func reportCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "report [request-file]",
		Short: "Compute a report from a YAML or JSON request and optionally export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := readRequest(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), "console")
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.reports.Generate(cmd.Context(), req)
			if err != nil {
				return err
			}
			printFields(cmd.OutOrStdout(), res.Fields)

			if out == "" {
				return nil
			}
			if format == "" {
				format = formatFromPath(out)
			}
			data, _, err := a.reports.Render(res, format)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "report %s written to %s\n", res.ID, out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "document format: pdf, xlsx or txt (default from --out extension)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write the rendered document to this path")
	return cmd
}

// readRequest decodes a request file. JSON input is accepted since it is
// valid YAML.
func readRequest(path string) (intake.Request, error) {
	var req intake.Request
	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read request: %w", err)
	}
	if err := yaml.Unmarshal(data, &req); err != nil {
		return req, fmt.Errorf("parse request %s: %w", path, err)
	}
	return req, nil
}

func printFields(w io.Writer, fields []consumption.Field) {
	for _, f := range fields {
		fmt.Fprintf(w, "%s: %s\n", f.Label, f.Value)
	}
}

func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "pdf"
	}
	return ext
}
