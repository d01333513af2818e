package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/glintui/glint/cmd/glint/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "icons",
		Short: "Generate web icon sizes from the source icon",
		Long: `Generate the standard web icon set from the project's source icon.

The source icon (icons.source in glint.yaml, default assets/icon.png)
is scaled to the sizes browsers and web app manifests expect:

  16, 32, 48        favicon sizes
  180               apple-touch-icon
  192, 512          web app manifest icons

Output files are written as icon-<size>.png to icons.output
(default public/icons). The source image should be square and at
least 512x512; smaller sources are upscaled with a warning.`,
		Usage: "glint icons [source-image]",
		Run:   runIcons,
	})
}

// iconSizes are the square pixel sizes generated for the web icon set.
var iconSizes = []int{16, 32, 48, 180, 192, 512}

func runIcons(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return fmt.Errorf("not in a Glint project (no go.mod found)")
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	source := filepath.Join(root, cfg.IconsSource)
	if len(args) > 0 {
		source = args[0]
	}
	output := filepath.Join(root, cfg.IconsOutput)

	src, err := loadIcon(source)
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	if bounds.Dx() != bounds.Dy() {
		return fmt.Errorf("source icon must be square, got %dx%d", bounds.Dx(), bounds.Dy())
	}
	if bounds.Dx() < 512 {
		fmt.Printf("  Warning: source icon is %dpx, sizes above that will be upscaled\n", bounds.Dx())
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, size := range iconSizes {
		dest := filepath.Join(output, fmt.Sprintf("icon-%d.png", size))
		if err := writeScaledIcon(dest, src, size); err != nil {
			return err
		}
		fmt.Printf("  Created %s\n", dest)
	}

	fmt.Printf("\nGenerated %d icons in %s\n", len(iconSizes), output)
	return nil
}

func loadIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source icon %s: %w", path, err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s (PNG required): %w", path, err)
	}
	return src, nil
}

// writeScaledIcon scales src to size x size and writes it as a PNG.
// Catmull-Rom keeps edges crisp at the small favicon sizes.
func writeScaledIcon(path string, src image.Image, size int) error {
	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Over, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, scaled); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
