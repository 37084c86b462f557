// Package iconres finds and decodes the bundled application icon.
package iconres

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"fyne.io/fyne/v2"
	chaiWebp "github.com/chai2010/webp"
	"github.com/gen2brain/avif"
	"github.com/gen2brain/svg"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrUnsupportedFormat = errors.New("unsupported image format")
)

// searchDirs lists where resources may live: beside the executable for a
// packaged build, then the working directory when run from source.
func searchDirs() []string {
	var dirs []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dirs = append(dirs, filepath.Dir(exe))
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	return dirs
}

// ResolvePath returns the full path of a bundled resource.
func ResolvePath(rel string) (string, error) {
	if filepath.IsAbs(rel) {
		if isFile(rel) {
			return rel, nil
		}
		return "", fmt.Errorf("%s: %w", rel, ErrNotFound)
	}
	for _, dir := range searchDirs() {
		full := filepath.Join(dir, rel)
		if isFile(full) {
			return full, nil
		}
	}
	return "", fmt.Errorf("%s: %w", rel, ErrNotFound)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Decode reads an image, choosing the decoder from the file extension.
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening image file: %w", err)
	}
	defer file.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		img, _, err = image.Decode(file)
	case ".bmp":
		img, err = bmp.Decode(file)
	case ".tiff", ".tif":
		img, err = tiff.Decode(file)
	case ".webp":
		img, err = chaiWebp.Decode(file)
	case ".svg":
		img, err = svg.Decode(file)
	case ".avif":
		img, err = avif.Decode(file)
	case ".qoi":
		img, err = qoi.Decode(file)
	default:
		return nil, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Resize scales img to a size x size square.
func Resize(img image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// Load resolves, decodes and resizes an icon and returns it as a PNG resource.
func Load(rel string, size int) (fyne.Resource, error) {
	path, err := ResolvePath(rel)
	if err != nil {
		return nil, err
	}
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, Resize(img, size)); err != nil {
		return nil, fmt.Errorf("error encoding icon: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".png"
	return fyne.NewStaticResource(name, buf.Bytes()), nil
}

// LoadFirst returns the first candidate that loads. The error joins every
// failure when none does.
func LoadFirst(size int, candidates ...string) (fyne.Resource, error) {
	var errs []error
	for _, rel := range candidates {
		res, err := Load(rel, size)
		if err == nil {
			return res, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrNotFound
	}
	return nil, errors.Join(errs...)
}
