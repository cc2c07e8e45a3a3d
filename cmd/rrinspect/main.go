// Command rrinspect loads a persisted rounded-image state, validates it
// against an element size and prints the uniform writes it produces.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	rounded "github.com/gogpu/gg-rounded"
	"github.com/gogpu/gg-rounded/material"
)

func main() {
	var (
		statePath = flag.String("state", "", "state file (YAML); empty uses defaults")
		width     = flag.Float64("width", 100, "element width")
		height    = flag.Float64("height", 100, "element height")
		variant   = flag.String("variant", rounded.ImageVariant.Name, "shader variant")
		fillColor = flag.String("fill-color", "", "override fill color (hex or name)")
		block     = flag.Bool("block", false, "print the packed uniform block as hex")
		save      = flag.String("save", "", "write the validated, migrated state to this file")
		spriteDir = flag.String("sprites", "", "directory sprite names are resolved against")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		rounded.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	v, err := rounded.VariantByName(*variant)
	if err != nil {
		log.Fatalf("Variant: %v", err)
	}

	state, err := loadState(*statePath)
	if err != nil {
		log.Fatalf("Failed to load state: %v", err)
	}

	rec := &material.Recorder{}
	blk := material.NewBlock()
	surface := rounded.NewBasicSurface(*width, *height)
	img, err := rounded.New(surface, material.Multi{rec, blk},
		rounded.WithVariant(v),
		rounded.WithParams(state.Params(spriteResolver(*spriteDir))),
	)
	if err != nil {
		log.Fatalf("Failed to create image: %v", err)
	}
	defer img.Close()

	if *fillColor != "" {
		rec.Reset()
		if err := img.Set(rounded.PropFillColor, *fillColor); err != nil {
			log.Fatalf("fill-color: %v", err)
		}
	}

	printParams(os.Stdout, img)
	fmt.Println()
	printUniforms(os.Stdout, rec.Writes())

	if *block {
		fmt.Println()
		fmt.Printf("block (%d bytes):\n%s", material.BlockSize, hex.Dump(blk.Bytes()))
	}

	if *save != "" {
		data, err := rounded.MarshalState(img.State())
		if err != nil {
			log.Fatalf("Failed to encode state: %v", err)
		}
		if err := os.WriteFile(*save, data, 0o644); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("State saved to %s\n", *save)
	}
}

func loadState(path string) (rounded.State, error) {
	if path == "" {
		return rounded.StateFromParams(rounded.DefaultParams()), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rounded.State{}, err
	}
	return rounded.UnmarshalState(data)
}

// spriteResolver resolves sprite names to image files under dir. The
// texture handle is the file path.
func spriteResolver(dir string) rounded.SpriteResolver {
	if dir == "" {
		return nil
	}
	cache := rounded.NewSpriteCache(0, func(name string) *rounded.Sprite {
		for _, ext := range []string{"", ".png"} {
			path := filepath.Join(dir, name+ext)
			if _, err := os.Stat(path); err == nil {
				return &rounded.Sprite{Name: name, Texture: path}
			}
		}
		return nil
	})
	return cache.Resolver()
}

func printParams(w io.Writer, img *rounded.Image) {
	e := img.Extent()
	fmt.Fprintf(w, "extent    %gx%g", e.Width, e.Height)
	if e.Degenerate() {
		fmt.Fprint(w, " (degenerate, not clamped)")
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "variant   %s (corners %s)\n", img.Variant().Name, img.Variant().Corners)
	for _, p := range rounded.Properties() {
		val, err := img.Get(p)
		if err != nil {
			continue
		}
		if s, ok := val.(*rounded.Sprite); ok {
			if s == nil {
				val = "-"
			} else {
				val = s.Name
			}
		}
		fmt.Fprintf(w, "%-15s %v\n", p, val)
	}
}

func printUniforms(w io.Writer, writes []material.Uniform) {
	for _, u := range writes {
		fmt.Fprintf(w, "%-16s %-7s %s\n", u.Name, u.Kind, formatValue(u))
	}
}

func formatValue(u material.Uniform) string {
	switch u.Kind {
	case material.KindVector:
		parts := make([]string, len(u.Vector))
		for i, f := range u.Vector {
			parts[i] = fmt.Sprintf("%g", f)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case material.KindFloat:
		return fmt.Sprintf("%g", u.Float)
	case material.KindColor:
		c := u.Color
		return fmt.Sprintf("rgba(%g, %g, %g, %g)", c.R, c.G, c.B, c.A)
	case material.KindTexture:
		if u.Texture == nil {
			return "none"
		}
		return fmt.Sprintf("%v", u.Texture)
	}
	return "?"
}
