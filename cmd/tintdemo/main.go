// Command tintdemo demonstrates the tint color library.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/tint"
)

func main() {
	var (
		from    = flag.String("from", "#c800c8", "start color (hex or name)")
		to      = flag.String("to", "teal", "end color (hex or name)")
		steps   = flag.Int("steps", 7, "number of gradient steps")
		space   = flag.String("space", "rgb", "interpolation space: rgb, hsl, linear-rgb, lab")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		tint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	a, err := tint.Parse(*from)
	if err != nil {
		log.Fatalf("Invalid start color: %v", err)
	}
	b, err := tint.Parse(*to)
	if err != nil {
		log.Fatalf("Invalid end color: %v", err)
	}
	sp, err := parseSpace(*space)
	if err != nil {
		log.Fatal(err)
	}

	describe("from", a)
	describe("to", b)

	fmt.Printf("\ncontrast %.2f:1\n", tint.ContrastRatio(a, b))
	fmt.Printf("mix      %s\n", tint.Mix(a, b))
	for _, mode := range []tint.BlendMode{tint.BlendMultiply, tint.BlendScreen, tint.BlendOverlay, tint.BlendHue} {
		fmt.Printf("%-9s%s\n", mode, tint.Blend(mode, a, b))
	}

	fmt.Printf("\ngradient (%s, %d steps)\n", sp, *steps)
	for i, c := range tint.LinearGradient(sp, []tint.Color{a, b}, *steps) {
		fmt.Printf("  %2d  %s  %s\n", i, c.Hex(), c.CSSHSL())
	}
}

func describe(label string, c tint.Color) {
	lab := c.Lab()
	fmt.Printf("%-5s %s  %s  %s  lab(%.2f %.2f %.2f)\n",
		label, c.HexAlpha(), c.CSSRGBA(), c.CSSHSLA(), lab.L, lab.A, lab.B)
}

func parseSpace(name string) (tint.Space, error) {
	for _, s := range []tint.Space{tint.SpaceRGB, tint.SpaceHSL, tint.SpaceLinearRGB, tint.SpaceLab} {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation space %q", name)
}
