// Package main provides the tabconv command, which detects the format of a
// table read from a file or stdin and converts it.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bjaus/tabconv"
	"github.com/bjaus/tabconv/internal/config"
	"github.com/bjaus/tabconv/internal/logging"
)

var errLegacyWorkbook = errors.New("legacy .xls workbooks are not supported; save as .xlsx")

type options struct {
	to       string
	border   string
	download string
	detect   bool
	preview  bool
}

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tabconv [file]",
		Short: "Detect and convert tabular text",
		Long: `tabconv reads a JSON array, HTML table, tab-separated paste, Markdown
table, CSV text or the first sheet of an .xlsx workbook, detects which
it is, and converts it to another format.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err := run(cmd, args, opts, logger); err != nil {
				logger.Debug("conversion failed", "error", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
				return err
			}
			return nil
		},
	}

	formats := make([]string, 0, len(tabconv.Formats()))
	for _, f := range tabconv.Formats() {
		formats = append(formats, f.String())
	}
	cmd.Flags().StringVarP(&opts.to, "to", "t", cfg.Output.Format, "Output format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVar(&opts.border, "border", cfg.Output.Border, "Border style for the table format: rounded, none, ascii, heavy, double")
	cmd.Flags().StringVarP(&opts.download, "download", "d", "", "Write the output under its default filename in this directory")
	cmd.Flags().BoolVar(&opts.detect, "detect", false, "Print the detected input format and exit")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Print the HTML preview and the detected format")
	return cmd
}

func run(cmd *cobra.Command, args []string, opts *options, logger *slog.Logger) error {
	raw, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	det := tabconv.NewDetector(logger)
	out := cmd.OutOrStdout()

	switch {
	case opts.detect:
		d := det.Detect(raw)
		if d.Format == tabconv.Unknown {
			return tabconv.ErrUndetected
		}
		_, err := fmt.Fprintln(out, d.Label())
		return err
	case opts.preview:
		p, err := det.Render(raw)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, p.HTML); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Rendered %s table to HTML\n", p.Label())
		return err
	}

	f, err := tabconv.ParseFormat(opts.to)
	if err != nil {
		return err
	}
	if opts.download != "" {
		return download(cmd, det, raw, f, opts.download)
	}
	if f == tabconv.Pretty {
		border, err := tabconv.ParseBorder(opts.border)
		if err != nil {
			return err
		}
		if err := tabconv.WriteTable(out, det.Detect(raw).Table, border); err != nil {
			return noContent(f, err)
		}
		_, err = fmt.Fprintln(out)
		return err
	}
	s, err := det.Convert(raw, f)
	if err != nil {
		return noContent(f, err)
	}
	_, err = fmt.Fprintln(out, s)
	return err
}

func download(cmd *cobra.Command, det *tabconv.Detector, raw string, f tabconv.Format, dir string) error {
	d, err := det.NewDownload(raw, f)
	if err != nil {
		return noContent(f, err)
	}
	path := filepath.Join(dir, d.Filename)
	if err := os.WriteFile(path, d.Content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %s (%s)\n", path, d.MIMEType)
	return err
}

// noContent words ErrNoContent the way each action reports it.
func noContent(f tabconv.Format, err error) error {
	if !errors.Is(err, tabconv.ErrNoContent) {
		return err
	}
	if f == tabconv.JSON || f == tabconv.YAML {
		return fmt.Errorf("%w: header and data rows required for %s", err, f)
	}
	return fmt.Errorf("%w: no table found for %s", err, f)
}

func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 0 {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	path := args[0]
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		return "", errLegacyWorkbook
	case ".xlsx":
		file, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()
		return tabconv.ReadWorkbook(file)
	default:
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(b), nil
	}
}
