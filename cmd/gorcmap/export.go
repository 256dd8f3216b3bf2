package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/gorcmap/correlation"
	"github.com/c360studio/gorcmap/export"
)

// stdoutTarget sends an export to standard output instead of a file.
const stdoutTarget = "-"

func exportCmd(global *globalOptions) *cobra.Command {
	var (
		taxonomy string
		kind     string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a workbook or CSV export",
		Long: `Export writes one artifact to --out, named the way the HTTP download
would be named. Use --out - to write the artifact to standard output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, *global)
			if err != nil {
				return err
			}
			if taxonomy == "" {
				taxonomy = cfg.Export.DefaultTaxonomy
			}

			req, err := export.ParseRequest(taxonomy, kind)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, logger)
			if err != nil {
				return err
			}
			art, err := engine.Export(cmd.Context(), req)
			if err != nil {
				return err
			}

			if out == stdoutTarget {
				_, err := cmd.OutOrStdout().Write(art.Data)
				return err
			}

			if err := os.MkdirAll(out, 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			path := filepath.Join(out, art.Filename)
			if err := os.WriteFile(path, art.Data, 0644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			logger.Info("Export written",
				"taxonomy", art.Taxonomy,
				"kind", art.Kind,
				"path", path,
				"bytes", len(art.Data))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&taxonomy, "taxonomy", "t", "", "Taxonomy (original, revised); defaults to config")
	cmd.Flags().StringVarP(&kind, "kind", "k", string(export.KindWorkbook), kindUsage())
	cmd.Flags().StringVarP(&out, "out", "o", ".", "Output directory, or - for stdout")
	return cmd
}

// kindUsage lists the export kinds with their descriptions.
func kindUsage() string {
	var sb strings.Builder
	sb.WriteString("Export kind:")
	for _, k := range export.Kinds() {
		info, _ := export.GetKindInfo(k)
		fmt.Fprintf(&sb, "\n  %-12s %s", k, info.Description)
	}
	return sb.String()
}

func dataCmd(global *globalOptions) *cobra.Command {
	var taxonomy string

	cmd := &cobra.Command{
		Use:   "data",
		Short: "Print the correlation data view as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd, *global)
			if err != nil {
				return err
			}
			if taxonomy == "" {
				taxonomy = cfg.Export.DefaultTaxonomy
			}

			id, err := correlation.ParseTaxonomyID(taxonomy)
			if err != nil {
				return fmt.Errorf("%w: %q", export.ErrInvalidTaxonomy, taxonomy)
			}
			t, err := correlation.Lookup(id)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(t.View())
		},
	}

	cmd.Flags().StringVarP(&taxonomy, "taxonomy", "t", "", "Taxonomy (original, revised); defaults to config")
	return cmd
}
