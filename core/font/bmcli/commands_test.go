package main

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tinytype/core/dimen"
	"github.com/npillmayer/tinytype/core/font/builtin"
	"github.com/npillmayer/tinytype/core/font/fontregistry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.fonts")
	defer teardown()
	//
	_, ok := parseCommand("   ")
	assert.False(t, ok)
	cmd, ok := parseCommand("quit")
	require.True(t, ok)
	assert.Equal(t, QUIT, cmd.code)
	cmd, _ = parseCommand("match:Fixed")
	assert.Equal(t, MATCH, cmd.code)
	assert.Equal(t, []string{"Fixed", ""}, cmd.args)
	cmd, _ = parseCommand("size:100:a: b")
	assert.Equal(t, SIZE, cmd.code)
	assert.Equal(t, []string{"100", "a: b"}, cmd.args)
	cmd, _ = parseCommand("shape:x:y")
	assert.Equal(t, []string{"x:y"}, cmd.args)
	cmd, _ = parseCommand("frobnicate")
	assert.Equal(t, HELP, cmd.code)
}

func TestInterpreterMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.fonts")
	defer teardown()
	//
	intp := &Intp{registry: fontregistry.NewRegistry(), scale: 1}
	assert.Error(t, intp.match("", ""), "empty registry")
	builtin.RegisterAll(intp.registry)
	require.NoError(t, intp.match(builtin.Inconsolata, "20px"))
	assert.EqualValues(t, 16, intp.pixelFont().PixelSize())
	assert.Error(t, intp.match("", "twelve"))
	quit, err := intp.execute(Command{code: SCALE, args: []string{"2"}})
	assert.False(t, quit)
	require.NoError(t, err)
	assert.Equal(t, dimen.ScaleFactor(2), intp.scale)
	assert.EqualValues(t, 32, intp.pixelFont().PixelSize())
	_, err = intp.execute(Command{code: SCALE, args: []string{"-1"}})
	assert.Error(t, err)
}

func TestCellWidths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "tinytype.fonts")
	defer teardown()
	//
	intp := &Intp{registry: fontregistry.NewRegistry(), scale: 1}
	builtin.RegisterAll(intp.registry)
	require.NoError(t, intp.match(builtin.Fixed, "13"))
	cells, glyphs := intp.cellWidths("a世")
	require.Len(t, cells, 2)
	require.Len(t, glyphs, 2)
	assert.EqualValues(t, 13, cells[0].XAdvance, "one cell of 13px")
	assert.EqualValues(t, 26, cells[1].XAdvance, "wide character takes two cells")
	assert.EqualValues(t, 7, glyphs[0].XAdvance)
	assert.False(t, glyphs[1].HasGlyph(), "Fixed does not cover CJK")
	cmd, _ := parseCommand("cells:a世")
	assert.Equal(t, CELLS, cmd.code)
	assert.Equal(t, []string{"a世"}, cmd.args)
}
