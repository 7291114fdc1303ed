/*
Command bmcli is an interactive inspector for bitmap fonts.

It registers the built-in fonts and lets the user match font requests,
iterate over positioned glyphs, shape text and measure wrapped text.
Commands are entered at a prompt, one per line:

    fonts                       list registered fonts
    match:<family>:<size>       select a font (family and size optional)
    scale:<factor>              set the device scale factor
    glyphs:<text>               show positioned glyphs of text
    shape:<text>                show shaped glyph records of text
    size:<max-width>:<text>     measure text, wrapping at max-width (optional)
    render:<text>               draw text as ASCII art
    cells:<text>                compare text on a monospace grid with the font
    help                        show commands
    quit                        leave

Quit with <ctrl>D as well.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/tinytype/core"
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/font"
	"github.com/npillmayer/tinytype/core/font/builtin"
	"github.com/npillmayer/tinytype/core/font/fontregistry"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tinytype.fonts'
func tracer() tracing.Trace {
	return tracing.Select("tinytype.fonts")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":       "go",
		"trace.tinytype.fonts":  "Info",
		"trace.tinytype.glyphs": "Info",
		"trace.tinytype.layout": "Info",
		"trace.tinytype.gfx":    "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	family := flag.String("font", builtin.Fixed, "Font family to start with")
	size := flag.String("size", "12px", "Font size in logical pixels")
	scale := flag.Float64("scale", 1, "Device scale factor")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to the bitmap font inspector")

	reg := fontregistry.GlobalRegistry()
	builtin.RegisterAll(reg)
	reg.LogFontList()

	repl, err := readline.New("bm > ")
	if err != nil {
		core.UserError(core.WrapError(err, core.EINTERNAL, "cannot start interactive mode"))
		os.Exit(3)
	}
	intp := &Intp{
		repl:     repl,
		registry: reg,
		scale:    dimen.ScaleFactor(*scale),
	}
	if err := intp.match(*family, *size); err != nil {
		core.UserError(err)
		os.Exit(4)
	}
	pterm.Info.Println("Quit with <ctrl>D")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	registry *fontregistry.Registry
	request  font.Request
	scale    dimen.ScaleFactor
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	defer intp.repl.Close()
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		cmd, ok := parseCommand(line)
		if !ok {
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}
