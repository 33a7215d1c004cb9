package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"billboardgen/pkg/icons"
	"billboardgen/pkg/manifest"
	"billboardgen/pkg/script"
)

func main() {
	outDir := flag.String("out", ".", "output directory for generated assets")
	size := flag.Int("size", icons.DefaultSize, "icon size in pixels")
	mipmap := flag.Int("mipmap", 0, "also write a downscaled variant at this size (0 disables)")
	scriptPath := flag.String("script", "", "JavaScript file defining an extra icon")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: billboardgen [flags]\n\nFlags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*outDir, *size, *mipmap, *scriptPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(outDir string, size, mipmap int, scriptPath string) error {
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Println("Creating billboard images for LOD optimization...")
	fmt.Printf("Size: %dx%d pixels, Format: PNG with transparency\n", size, size)

	m := manifest.Manifest{SwitchDistanceMeters: manifest.SwitchDistanceMeters}

	shipImg := icons.Ship(size)
	if err := writeIcon(shipImg, outDir, icons.ShipFilename, mipmap); err != nil {
		return err
	}
	m.Add("ship", icons.ShipFilename, manifest.ShipBillboardMeters, manifest.ShipBillboardMeters)

	missileImg := icons.Missile(size)
	if err := writeIcon(missileImg, outDir, icons.MissileFilename, mipmap); err != nil {
		return err
	}
	m.Add("missile", icons.MissileFilename, manifest.MissileBillboardMeters, manifest.MissileBillboardMeters)

	if scriptPath != "" {
		src, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("failed to read script: %w", err)
		}

		name := strings.TrimSuffix(filepath.Base(scriptPath), filepath.Ext(scriptPath))
		img, err := script.New().Render(filepath.Base(scriptPath), string(src), size)
		if err != nil {
			return err
		}

		file := name + "_icon.png"
		if err := writeIcon(img, outDir, file, mipmap); err != nil {
			return err
		}
		m.Add(name, file, manifest.DefaultBillboardMeters, manifest.DefaultBillboardMeters)
	}

	manifestPath := filepath.Join(outDir, manifest.Filename)
	if err := manifest.Write(m, manifestPath); err != nil {
		return err
	}
	fmt.Printf("Created: %s\n", manifestPath)

	fmt.Println("Billboard images created successfully!")
	return nil
}

// writeIcon saves img under outDir, plus an optional downscaled variant.
func writeIcon(img image.Image, outDir, file string, mipmap int) error {
	path := filepath.Join(outDir, file)
	if err := icons.SavePNG(img, path); err != nil {
		return err
	}
	fmt.Printf("Created: %s\n", path)

	if mipmap > 0 {
		small := icons.Downscale(img, mipmap)
		smallPath := filepath.Join(outDir, icons.MipmapName(file, mipmap))
		if err := icons.SavePNG(small, smallPath); err != nil {
			return err
		}
		fmt.Printf("Created: %s\n", smallPath)
	}
	return nil
}
