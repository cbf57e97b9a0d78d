package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"donorjourney/internal/articulation"
	"donorjourney/internal/dashboard"
	"donorjourney/internal/logging"

	"github.com/spf13/cobra"
)

func (c *cli) catalogCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the campaigns recommendations are drawn from",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(cat.All())
			}
			fmt.Fprint(out, renderMarkdown(articulation.Catalog(cat.All())))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print campaigns as JSON")
	return cmd
}

func (c *cli) dashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "NGO analytics dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(articulation.Dashboard(dashboard.Sample())))
			return nil
		},
	}

	var format, outPath string
	export := &cobra.Command{
		Use:   "export",
		Short: "Export the dashboard datasets as JSON or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := dashboard.Sample()

			var (
				write    func(w io.Writer) error
				filename string
			)
			switch format {
			case "json":
				write = func(w io.Writer) error { return d.WriteJSON(w) }
				filename = dashboard.ExportFilename
			case "xlsx":
				write = func(w io.Writer) error { return d.WriteXLSX(w) }
				filename = dashboard.XLSXFilename
			default:
				return fmt.Errorf("unknown export format %q (valid: json, xlsx)", format)
			}

			if outPath == "-" {
				return write(cmd.OutOrStdout())
			}
			if outPath == "" {
				outPath = filename
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outPath, err)
			}
			if err := write(f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			logging.Dashboard("Exported %s dashboard to %s", format, outPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}
	export.Flags().StringVarP(&format, "format", "f", "json", "Export format: json or xlsx")
	export.Flags().StringVarP(&outPath, "out", "o", "", "Output path (default: the download filename; \"-\" for stdout)")

	cmd.AddCommand(export)
	return cmd
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s)\n", c.cfg.Name, c.cfg.Version, c.cfg.LLM.Provider, c.cfg.LLM.Model)
			return nil
		},
	}
}
