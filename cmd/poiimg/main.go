// Command poiimg converts an image file into a Go source file declaring a
// poi animation program, for embedding hand-drawn artwork into the firmware.
//
//	poiimg -name Wave -loop -multiline art/wave.png > images/wave.go
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"strings"
	"time"
	"unicode"

	"github.com/urfave/cli/v2"

	poi "github.com/sokosun/oreore-poi"
)

func main() {
	app := cli.NewApp()

	app.Name = "poiimg"
	app.Usage = "convert an image into a poi animation program"
	app.ArgsUsage = "FILE"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "name",
			Usage: "exported variable name (default: derived from the file name)",
		},
		&cli.StringFlag{
			Name:  "package",
			Value: "images",
			Usage: "package of the generated file",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "output file (default: stdout)",
		},
		&cli.BoolFlag{
			Name:  "darken",
			Value: true,
			Usage: "halve every channel to limit LED current",
		},
		&cli.DurationFlag{
			Name:  "period",
			Value: poi.DefaultPeriod,
			Usage: "time between displayed rows",
		},
		&cli.BoolFlag{Name: "loop", Usage: "restart from row 0 at the end"},
		&cli.BoolFlag{Name: "mirror", Usage: "play rows forward then backward"},
		&cli.BoolFlag{Name: "multiline", Usage: "target the staggered three-strip mount"},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() != 1 {
			cli.ShowAppHelpAndExit(c, 1)
		}
		file := c.Args().First()

		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()

		src, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if w := src.Bounds().Dx(); w != poi.LineWidth {
			log.Printf("warning: %s is %d pixels wide, the poi wants %d", file, w, poi.LineWidth)
		}

		name := c.String("name")
		if name == "" {
			name = varName(file)
		}
		g := generator{
			name:    name,
			pkg:     c.String("package"),
			source:  file,
			darken:  c.Bool("darken"),
			options: optionsLiteral(c.Duration("period"), c.Bool("loop"), c.Bool("mirror"), c.Bool("multiline")),
		}

		out := io.Writer(os.Stdout)
		if path := c.String("out"); path != "" {
			o, err := os.Create(path)
			if err != nil {
				return err
			}
			defer o.Close()
			out = o
		}
		return g.emit(out, src)
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

type generator struct {
	name    string
	pkg     string
	source  string
	darken  bool
	options string
}

// emit writes the generated Go source: a flat R,G,B byte literal and a
// validated program declaration.
func (g generator) emit(w io.Writer, src image.Image) error {
	b := src.Bounds()
	var sb strings.Builder

	fmt.Fprintf(&sb, "// Code generated by poiimg from %s. DO NOT EDIT.\n\n", g.source)
	fmt.Fprintf(&sb, "package %s\n\n", g.pkg)
	if strings.Contains(g.options, "time.") {
		fmt.Fprintf(&sb, "import (\n\t\"time\"\n\n\tpoi \"github.com/sokosun/oreore-poi\"\n)\n\n")
	} else {
		fmt.Fprintf(&sb, "import poi \"github.com/sokosun/oreore-poi\"\n\n")
	}
	fmt.Fprintf(&sb, "var %s = poi.Must(poi.NewImage([]byte{\n", g.name)

	row := make([]string, 0, b.Dx()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row = row[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			r, gr, bl, _ := src.At(x, y).RGBA()
			px := [3]uint8{uint8(r >> 8), uint8(gr >> 8), uint8(bl >> 8)}
			for _, v := range px {
				if g.darken {
					v >>= 1
				}
				row = append(row, fmt.Sprintf("0x%02x", v))
			}
		}
		sb.WriteString("\t" + strings.Join(row, ", ") + ",\n")
	}

	fmt.Fprintf(&sb, "}, %d, %d, %s))\n", b.Dx(), b.Dy(), g.options)
	_, err := io.WriteString(w, sb.String())
	return err
}

// optionsLiteral renders a poi.Options composite literal, omitting zero
// fields so the output reads like hand-written code.
func optionsLiteral(period time.Duration, loop, mirror, multiline bool) string {
	fields := []string{}
	if period != poi.DefaultPeriod {
		fields = append(fields, fmt.Sprintf("Period: %d * time.Microsecond", period.Microseconds()))
	}
	for _, f := range []struct {
		set  bool
		name string
	}{{loop, "Loop"}, {mirror, "Mirror"}, {multiline, "Multiline"}} {
		if f.set {
			fields = append(fields, f.name+": true")
		}
	}
	return "poi.Options{" + strings.Join(fields, ", ") + "}"
}

// varName derives an exported identifier from a file name: "art/blue-wave.png"
// becomes "BlueWave".
func varName(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	var sb strings.Builder
	upper := true
	for _, r := range base {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
