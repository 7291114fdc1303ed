package textlayout

import (
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/option"
	"github.com/npillmayer/tinytype/engine/glyphing"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// Line is a line of text after line wrapping.
type Line struct {
	Start, End int      // byte range of the line's text, without a terminating newline
	Width      dimen.PX // width of the line, without trailing whitespace
}

// TextSize returns the width of the longest line of text and the number of
// lines, after wrapping text to maxWidth (if set).
//
// Empty text consists of one empty line, as does the text following a
// terminating newline.
func TextSize(shaper glyphing.TextShaper, text string, maxWidth option.Maybe[dimen.PX]) (dimen.PX, int) {
	var longest dimen.PX
	count := 0
	layout(shaper, text, maxWidth, func(l Line) {
		longest = dimen.Max(longest, l.Width)
		count++
	})
	return longest, count
}

// Lines returns the lines of text after wrapping it to maxWidth (if set).
func Lines(shaper glyphing.TextShaper, text string, maxWidth option.Maybe[dimen.PX]) []Line {
	var lines []Line
	layout(shaper, text, maxWidth, func(l Line) {
		lines = append(lines, l)
	})
	return lines
}

func layout(shaper glyphing.TextShaper, text string, maxWidth option.Maybe[dimen.PX], emit func(Line)) {
	glyphs := shaper.ShapeText(text, make([]glyphing.ShapedGlyph, 0, len(text)))
	limit, wrapping := maxWidth.Get()
	start := 0
	for {
		end := strings.IndexByte(text[start:], '\n')
		last := end < 0
		if last {
			end = len(text)
		} else {
			end += start
		}
		run := glyphRange(glyphs, start, end)
		if wrapping {
			wrapParagraph(text[start:end], start, run, limit, emit)
		} else {
			emit(Line{Start: start, End: end, Width: visibleAdvance(run)})
		}
		if last {
			break
		}
		start = end + 1
	}
}

// wrapParagraph breaks a paragraph (a text without newlines) into lines
// using a first-fit strategy. offset is the paragraph's byte position in
// the original text, glyphs are its shaped glyphs.
func wrapParagraph(para string, offset int, glyphs []glyphing.ShapedGlyph, limit dimen.PX, emit func(Line)) {
	lw := &lineWriter{line: Line{Start: offset, End: offset}, limit: limit, emit: emit}
	if para == "" {
		lw.flush()
		return
	}
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(para))
	pos := offset
	for seg.Next() {
		start, end := pos, pos+len(seg.Text())
		pos = end
		run := glyphRange(glyphs, start, end)
		advance, visible := glyphing.Advance(run), visibleAdvance(run)
		if !lw.empty() && lw.advance+visible > limit {
			lw.flush()
			lw.restart(start)
		}
		if lw.empty() && visible > limit {
			lw.breakCharacters(run, end)
			continue
		}
		if visible > 0 {
			lw.line.Width = lw.advance + visible
		}
		lw.advance += advance
		lw.line.End = end
	}
	lw.flush()
}

// lineWriter collects segments and characters for the current line.
type lineWriter struct {
	line    Line
	advance dimen.PX // advance of the line including trailing whitespace
	limit   dimen.PX
	emit    func(Line)
}

func (lw *lineWriter) empty() bool {
	return lw.line.End == lw.line.Start
}

func (lw *lineWriter) flush() {
	tracer().Debugf("line [%d…%d] width=%s", lw.line.Start, lw.line.End, lw.line.Width)
	lw.emit(lw.line)
}

func (lw *lineWriter) restart(pos int) {
	lw.line = Line{Start: pos, End: pos}
	lw.advance = 0
}

// breakCharacters sets a run of glyphs which does not fit onto an empty line,
// breaking between characters. Every line receives at least one character.
// end is the byte position following the run.
func (lw *lineWriter) breakCharacters(run []glyphing.ShapedGlyph, end int) {
	for i, g := range run {
		space := unicode.IsSpace(g.CodePoint)
		if !lw.empty() && !space && lw.advance+g.XAdvance > lw.limit {
			lw.flush()
			lw.restart(g.ClusterID)
		}
		lw.advance += g.XAdvance
		if !space {
			lw.line.Width = lw.advance
		}
		if i+1 < len(run) {
			lw.line.End = run[i+1].ClusterID
		} else {
			lw.line.End = end
		}
	}
}

// glyphRange returns the glyphs for the characters in the byte range
// [start, end). Glyphs are ordered by cluster.
func glyphRange(glyphs []glyphing.ShapedGlyph, start, end int) []glyphing.ShapedGlyph {
	from := sort.Search(len(glyphs), func(i int) bool { return glyphs[i].ClusterID >= start })
	to := sort.Search(len(glyphs), func(i int) bool { return glyphs[i].ClusterID >= end })
	return glyphs[from:to]
}

// visibleAdvance is the advance of a run of glyphs, not counting trailing
// whitespace.
func visibleAdvance(run []glyphing.ShapedGlyph) dimen.PX {
	n := len(run)
	for n > 0 && unicode.IsSpace(run[n-1].CodePoint) {
		n--
	}
	return glyphing.Advance(run[:n])
}
