package option_test

import (
	"testing"

	"github.com/npillmayer/tinytype/core/option"
	"github.com/stretchr/testify/assert"
)

func TestOptionMaybe(t *testing.T) {
	x := option.Some(42)
	assert.False(t, x.IsNone())
	assert.Equal(t, 42, x.Unwrap())
	assert.Equal(t, 42, x.OrElse(7))
	v, ok := x.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, "Some(42)", x.String())
	//
	y := option.None[int]()
	assert.True(t, y.IsNone())
	assert.Equal(t, 7, y.OrElse(7))
	assert.Equal(t, "None", y.String())
	assert.PanicsWithValue(t, option.ErrCannotUnwrapUnsetValue, func() { y.Unwrap() })
	//
	var z option.Maybe[string]
	assert.True(t, z.IsNone(), "zero value should be unset")
}

func TestOptionMap(t *testing.T) {
	double := func(i int) float32 { return float32(2 * i) }
	assert.Equal(t, option.Some[float32](8), option.Map(option.Some(4), double))
	assert.True(t, option.Map(option.None[int](), double).IsNone())
}
