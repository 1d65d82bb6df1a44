package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mobil-koeln/oledview/internal/layout"
	"github.com/mobil-koeln/oledview/internal/models"
	"github.com/mobil-koeln/oledview/internal/output"
	"github.com/mobil-koeln/oledview/internal/raster"
	"github.com/mobil-koeln/oledview/internal/viewer"
)

var version = "0.1.0"

// outputFile is replaced on every run
const outputFile = "oled_preview.png"

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oledview",
	Short: "Preview the 128x64 OLED navigation layout",
	Long: `oledview renders the ESP32 navigation overlay without uploading to hardware.

It prints an ASCII preview of the 128x64 display to the terminal and writes
a 4x upscaled PNG (` + outputFile + `) to the current directory, then tries
to open it in the default image viewer.

The rendered values come from SampleState in internal/models/navigation.go.
Edit them to try different layouts.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPreview,
}

var (
	flagColor   string
	flagVerbose bool
	flagNoOpen  bool
)

func init() {
	rootCmd.Flags().StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "Do not open the image after saving")
}

// previewer bundles what a preview run needs
type previewer struct {
	out       io.Writer
	logger    *log.Logger
	colors    *output.Colors
	providers []raster.FontProvider
	opener    *viewer.Opener // nil skips opening
}

func runPreview(cmd *cobra.Command, args []string) error {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}

	p := previewer{
		out:       cmd.OutOrStdout(),
		logger:    newLogger(cmd.ErrOrStderr(), level),
		colors:    output.NewColors(output.ParseColorMode(flagColor)),
		providers: raster.DefaultProviders(),
	}
	if !flagNoOpen {
		p.opener = viewer.NewOpener()
	}

	return p.run(models.SampleState(), outputFile)
}

// run prints the console preview, writes the PNG to path and tries to open it
func (p previewer) run(state models.NavigationState, path string) error {
	output.RenderHeader(p.out, p.colors)
	output.RenderPreview(p.out, state, output.PreviewOptions{Colors: p.colors})

	prog := newProgress(p.logger)
	faces, provider := raster.ResolveFaces(p.logger, p.providers...)
	defer func() { _ = faces.Close() }()

	fields := layout.Build(state, layout.RasterEmpty)
	scaled := raster.Scale(raster.Render(fields, faces), layout.Scale)
	if err := raster.Save(scaled, path); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s layout with %s", fields.Mode, provider))

	b := scaled.Bounds()
	output.RenderSaved(p.out, path, layout.Scale, b.Dx(), b.Dy(), p.colors)

	output.RenderOpened(p.out, path, p.open(path), p.colors)
	output.RenderFooter(p.out, p.colors)
	return nil
}

// open reports whether a viewer was started. Failures are only logged.
func (p previewer) open(path string) bool {
	if p.opener == nil {
		return false
	}

	res, err := p.opener.Open(path)
	switch res {
	case viewer.ResultOpened:
		p.logger.Debug("Started viewer", "file", path)
		return true
	case viewer.ResultUnavailable:
		p.logger.Debug("No viewer", "err", err)
	default:
		p.logger.Warn("Could not open preview", "err", err)
	}
	return false
}
