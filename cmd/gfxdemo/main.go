// Command gfxdemo renders a test card with the gfx framebuffer library.
//
// By default the card is drawn into an in-memory surface and written as PNG
// or BMP (chosen by the output file extension). With --fb it is drawn
// straight onto a Linux framebuffer device.
package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/image/bmp"

	"github.com/gogpu/gfx"
	"github.com/gogpu/gfx/fbdev"
)

type config struct {
	width     int
	height    int
	format    string
	formatSet bool
	output    string
	device    string
	image     string
	alpha     uint8
	verbose   bool
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "gfxdemo: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := pflag.NewFlagSet("gfxdemo", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&cfg.width, "width", "W", 320, "surface width in pixels")
	fs.IntVarP(&cfg.height, "height", "H", 240, "surface height in pixels")
	fs.StringVarP(&cfg.format, "format", "f", "RGB565", "pixel format (RGB565, RGB332, RGB2220, ARGB8888, RGBx888, Mono)")
	fs.StringVarP(&cfg.output, "output", "o", "gfxdemo.png", "output file (.png or .bmp)")
	fs.StringVar(&cfg.device, "fb", "", "draw onto this framebuffer device instead of a file")
	fs.StringVarP(&cfg.image, "image", "i", "", "PNG or JPEG image to scale into the card")
	fs.Uint8Var(&cfg.alpha, "alpha", 160, "global alpha of the overlay panel")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.formatSet = fs.Changed("format")
	return cfg, nil
}

func run(args []string, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.verbose {
		gfx.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var photo image.Image
	if cfg.image != "" {
		if photo, err = loadImage(cfg.image); err != nil {
			return err
		}
	}

	if cfg.device != "" {
		return drawToDevice(cfg, photo)
	}

	format, err := gfx.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	s, err := gfx.Create(nil, cfg.width, cfg.height, 0, format, 0)
	if err != nil {
		return err
	}
	defer s.Destroy()

	if err := drawCard(s, cfg.alpha, photo); err != nil {
		return err
	}
	return save(s, cfg.output)
}

func drawToDevice(cfg config, photo image.Image) error {
	dev, err := fbdev.Open(cfg.device)
	if err != nil {
		return err
	}
	defer func() {
		_ = dev.Close()
	}()

	// An explicit --format overrides detection, e.g. for 1 bpp panels.
	var s *gfx.Surface
	if cfg.formatSet {
		format, ferr := gfx.ParseFormat(cfg.format)
		if ferr != nil {
			return ferr
		}
		s, err = dev.SurfaceAs(format, 0)
	} else {
		s, err = dev.Surface(0)
	}
	if err != nil {
		return err
	}
	defer s.Destroy()

	if err := drawCard(s, cfg.alpha, photo); err != nil {
		return err
	}
	s.Flush()
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func save(s *gfx.Surface, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, s)
	case ".png", "":
		err = png.Encode(f, s)
	default:
		err = fmt.Errorf("unsupported output type %q", filepath.Ext(path))
	}
	return errors.Join(err, f.Close())
}
