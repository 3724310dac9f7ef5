package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cristianadrielbraun/qrgen/internal/config"
	"github.com/cristianadrielbraun/qrgen/internal/export"
	"github.com/cristianadrielbraun/qrgen/internal/logging"
	"github.com/cristianadrielbraun/qrgen/internal/qr"
	"github.com/cristianadrielbraun/qrgen/internal/studio"
)

type encodeOptions struct {
	output  string
	size    string
	border  int
	format  string
	preview int
	styled  bool
}

func newEncodeCmd() *cobra.Command {
	var opts encodeOptions
	cmd := &cobra.Command{
		Use:   "encode [text|-]",
		Short: "Write a QR code image for text",
		Long: "Encode text as a QR code image. With no argument or \"-\" the text is read from stdin.\n" +
			"Without -o the image is written to stdout.",
		Example: "  qrgen encode https://example.com -o example.png\n" +
			"  echo 'WIFI:T:WPA;S:home;P:secret;;' | qrgen encode - --size Large --format svg > wifi.svg",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd, args, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.StringVar(&opts.size, "size", qr.DefaultSize.Label, "module size label: Small, Medium, Large, Extra Large")
	f.IntVar(&opts.border, "border", studio.DefaultBorder, "quiet zone width in modules (1-10)")
	f.StringVar(&opts.format, "format", "", "image format: png, jpg, bmp, svg (default from output extension, else png)")
	f.IntVar(&opts.preview, "preview", 0, "rescale raster output to this side in pixels")
	f.BoolVar(&opts.styled, "styled", false, "render PNG through the library's image writer")
	return cmd
}

func runEncode(cmd *cobra.Command, args []string, opts encodeOptions) error {
	text, err := readPayload(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	size, ok := qr.LookupSize(opts.size)
	if !ok {
		return fmt.Errorf("unknown size %q", opts.size)
	}
	if opts.border < studio.MinBorder || opts.border > studio.MaxBorder {
		return fmt.Errorf("border must be between %d and %d, got %d", studio.MinBorder, studio.MaxBorder, opts.border)
	}
	format := export.ParseFormat(opts.format)
	if opts.format == "" && opts.output != "" {
		format = export.ParseFormat(strings.TrimPrefix(filepath.Ext(opts.output), "."))
	}

	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: "text",
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	engine, err := qr.EngineByName(cfg.QR.Engine)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	req := qr.Request{Payload: text, ModuleSize: size.ModuleSize, Border: opts.border}
	if opts.styled {
		if err := qr.WriteStyled(&buf, req); err != nil {
			return err
		}
	} else {
		bmp, err := qr.NewEncoder(engine, logger).EncodeRequest(req)
		if err != nil {
			return err
		}
		if err := export.Write(&buf, bmp, export.Scale(bmp, opts.preview), format); err != nil {
			return err
		}
	}

	if opts.output == "" {
		if _, err := buf.WriteTo(cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.WithField("file", opts.output).Info("qr code written")
	return nil
}

// readPayload returns the argument, or stdin when it is absent or "-".
// A single trailing newline from stdin is dropped.
func readPayload(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
	return text, nil
}
