package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/tinytype/backend/gfx"
	"github.com/npillmayer/tinytype/core"
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/core/option"
	"github.com/npillmayer/tinytype/engine/frame/textlayout"
	"github.com/npillmayer/tinytype/engine/glyphing"
	"github.com/npillmayer/tinytype/engine/glyphing/monospace"
	"github.com/npillmayer/tinytype/engine/glyphing/pixelfont"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

// Op codes of commands
const (
	QUIT int = iota
	HELP
	FONTS
	MATCH
	SCALE
	GLYPHS
	SHAPE
	SIZE
	RENDER
	CELLS
)

// Command is a parsed input line.
type Command struct {
	code int
	args []string
}

// parseCommand splits an input line at colons. Text arguments are always
// the last part and may contain colons themselves.
func parseCommand(line string) (Command, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, false
	}
	op, rest, _ := strings.Cut(line, ":")
	cmd := Command{code: HELP}
	nargs := 0
	switch strings.ToLower(op) {
	case "quit", "exit":
		cmd.code = QUIT
	case "fonts":
		cmd.code = FONTS
	case "match":
		cmd.code, nargs = MATCH, 2
	case "scale":
		cmd.code, nargs = SCALE, 1
	case "glyphs":
		cmd.code, nargs = GLYPHS, 1
	case "shape":
		cmd.code, nargs = SHAPE, 1
	case "size":
		cmd.code, nargs = SIZE, 2
	case "render":
		cmd.code, nargs = RENDER, 1
	case "cells":
		cmd.code, nargs = CELLS, 1
	}
	if nargs > 0 {
		cmd.args = strings.SplitN(rest, ":", nargs)
		for len(cmd.args) < nargs {
			cmd.args = append(cmd.args, "")
		}
	}
	tracer().Debugf("parsed command %v", cmd)
	return cmd, true
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case FONTS:
		intp.listFonts()
	case MATCH:
		return false, intp.match(cmd.args[0], cmd.args[1])
	case SCALE:
		s, err := strconv.ParseFloat(strings.TrimSpace(cmd.args[0]), 32)
		if err != nil || s <= 0 {
			return false, core.Error(core.EINVALID, "scale factor must be a positive number: %q", cmd.args[0])
		}
		intp.scale = dimen.ScaleFactor(s)
		intp.showMatch()
	case GLYPHS:
		intp.showGlyphs(cmd.args[0])
	case SHAPE:
		intp.showShaping(cmd.args[0])
	case SIZE:
		return false, intp.showSize(cmd.args[0], cmd.args[1])
	case RENDER:
		return false, intp.render(cmd.args[0])
	case CELLS:
		intp.showCells(cmd.args[0])
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) listFonts() {
	data := pterm.TableData{{"#", "Family", "Pixel sizes", "Code-points", "Units/em"}}
	for i, f := range intp.registry.Fonts() {
		data = append(data, []string{
			strconv.Itoa(i),
			f.Family(),
			fmt.Sprint(f.PixelSizes()),
			strconv.Itoa(len(f.CharacterMap)),
			strconv.Itoa(int(f.UnitsPerEm)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// match sets the font request. An empty family or size leaves it to the
// font matcher.
func (intp *Intp) match(family, size string) error {
	request := font.Request{}
	if family = strings.TrimSpace(family); family != "" {
		request.Family = option.Some(family)
	}
	if size = strings.TrimSpace(size); size != "" {
		sz, err := dimen.ParseLogical(size)
		if err != nil {
			return core.WrapError(err, core.EINVALID, "not a font size: %q", size)
		}
		request.PixelSize = option.Some(sz)
	}
	if intp.registry.Len() == 0 {
		return core.Error(core.EMISSING, "no fonts registered")
	}
	intp.request = request
	intp.showMatch()
	return nil
}

func (intp *Intp) pixelFont() pixelfont.PixelFont {
	return pixelfont.Match(intp.registry, intp.request, intp.scale)
}

func (intp *Intp) showMatch() {
	pf := intp.pixelFont()
	if family, ok := intp.request.Family.Get(); ok && family != pf.Font().Family() {
		pterm.Warning.Printfln("font %q not registered, falling back", family)
	}
	pterm.Info.Printfln("%s at %s (ascent %s, height %s), scale %.2f",
		pf.Font().Family(), pf.PixelSize(), pf.Ascent(), pf.Height(), intp.scale)
}

func (intp *Intp) showGlyphs(text string) {
	pf := intp.pixelFont()
	data := pterm.TableData{{"x", "Box", "Size", "Advance"}}
	it := pf.GlyphsForText(text)
	for it.Next() {
		g := it.Glyph()
		data = append(data, []string{
			it.X().String(),
			fmt.Sprintf("%dx%d%+d%+d", g.Width(), g.Height(), g.X(), g.Y()),
			g.Size().String(),
			g.XAdvance().String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printfln("pen position after text: %s", it.Pen())
}

func (intp *Intp) showShaping(text string) {
	pf := intp.pixelFont()
	glyphs := pf.ShapeText(text, nil)
	data := pterm.TableData{{"Cluster", "Char", "Name", "GID", "Size", "Advance"}}
	for _, g := range glyphs {
		gid := "-"
		if g.HasGlyph() {
			gid = strconv.Itoa(int(g.GID))
		}
		data = append(data, []string{
			strconv.Itoa(g.ClusterID),
			fmt.Sprintf("%q", g.CodePoint),
			runenames.Name(g.CodePoint),
			gid,
			dimen.PhysicalSize{W: g.Width, H: g.Height}.String(),
			g.XAdvance.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printfln("total advance: %s", glyphing.Advance(glyphs))
}

func (intp *Intp) showSize(maxWidth, text string) error {
	limit := option.None[dimen.Logical]()
	if maxWidth = strings.TrimSpace(maxWidth); maxWidth != "" {
		w, err := dimen.ParseLogical(maxWidth)
		if err != nil {
			return err
		}
		if w <= 0 {
			return errors.New("max width must be positive")
		}
		limit = option.Some(w)
	}
	pf := intp.pixelFont()
	physical := option.Map(limit, func(w dimen.Logical) dimen.PX {
		return w.PhysicalFloor(intp.scale)
	})
	for i, l := range textlayout.Lines(pf, text, physical) {
		pterm.Printfln("%3d: %-40q %s", i, text[l.Start:l.End], l.Width)
	}
	sz := pixelfont.Measure(intp.registry, intp.request, text, limit, intp.scale)
	pterm.Info.Printfln("text size is %s", sz)
	return nil
}

// render draws text with the current font and prints it as ASCII art.
func (intp *Intp) render(text string) error {
	pf := intp.pixelFont()
	width, _ := textlayout.TextSize(pf, text, option.None[dimen.PX]())
	pic := gfx.NewPicture(text, width+1, pf.Height())
	pic.DrawText(pf, 0, pf.Ascent(), text)
	return pic.ShipoutASCII(os.Stdout)
}

// cellWidths shapes text twice: once on a monospace grid with cells as
// wide as the font's pixel size, once with the current pixel font.
func (intp *Intp) cellWidths(text string) (cells, glyphs []glyphing.ShapedGlyph) {
	pf := intp.pixelFont()
	grid := monospace.Shaper(pf.PixelSize(), nil)
	return grid.ShapeText(text, nil), pf.ShapeText(text, nil)
}

func (intp *Intp) showCells(text string) {
	cells, glyphs := intp.cellWidths(text)
	data := pterm.TableData{{"Cluster", "Char", "Cells", "Grid advance", "Font advance"}}
	em := intp.pixelFont().PixelSize()
	for i, c := range cells {
		data = append(data, []string{
			strconv.Itoa(c.ClusterID),
			fmt.Sprintf("%q", c.CodePoint),
			strconv.Itoa(int(c.XAdvance / em)),
			c.XAdvance.String(),
			glyphs[i].XAdvance.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printfln("grid width %s, font width %s", glyphing.Advance(cells), glyphing.Advance(glyphs))
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	fonts                       list registered fonts
	match:<family>:<size>       select a font (family and size optional)
	scale:<factor>              set the device scale factor
	glyphs:<text>               show positioned glyphs of text
	shape:<text>                show shaped glyph records of text
	size:<max-width>:<text>     measure text, wrapping at max-width (optional)
	render:<text>               draw text as ASCII art
	cells:<text>                compare text on a monospace grid with the font
	help                        show this text
	quit                        leave
	`)
}
