package fusemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Kinds(t *testing.T) {
	v := BoolValue(true)
	assert.Equal(t, KindBool, v.Kind())
	b, ok := v.Bool()
	assert.True(t, ok)
	assert.True(t, b)
	_, ok = v.Str()
	assert.False(t, ok)

	v = StringValue("spawn")
	assert.Equal(t, KindString, v.Kind())
	s, ok := v.Str()
	assert.True(t, ok)
	assert.Equal(t, "spawn", s)

	v = IntValue(-42)
	assert.Equal(t, KindInt, v.Kind())
	i, ok := v.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(-42), i)
	_, ok = v.Float64()
	assert.False(t, ok, "ints do not coerce to floats")

	v = FloatValue(1.5)
	assert.Equal(t, KindFloat, v.Kind())
	f, ok := v.Float64()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)
	_, ok = v.Int64()
	assert.False(t, ok)
}

func TestValue_ZeroValue(t *testing.T) {
	var v Value
	assert.Equal(t, KindNone, v.Kind())
	_, ok := v.Bool()
	assert.False(t, ok)
	_, ok = v.Str()
	assert.False(t, ok)
	_, ok = v.Int64()
	assert.False(t, ok)
	_, ok = v.Float64()
	assert.False(t, ok)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "true", BoolValue(true).String())
	assert.Equal(t, "spawn", StringValue("spawn").String())
	assert.Equal(t, "3", IntValue(3).String())
	assert.Equal(t, "0.5", FloatValue(0.5).String())
}

func TestAttributes_Lookups(t *testing.T) {
	attrs := Attributes{
		"isSpawn": BoolValue(true),
		"label":   StringValue("start"),
		"hp":      IntValue(3),
		"rate":    FloatValue(0.5),
	}

	assert.True(t, attrs.Has("isSpawn"))
	assert.False(t, attrs.Has("missing"))

	b, ok := attrs.GetBool("isSpawn")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = attrs.GetBool("label")
	assert.False(t, ok, "kind mismatch must report absent")
	_, ok = attrs.GetString("missing")
	assert.False(t, ok)
}

func TestAttributes_NilSafe(t *testing.T) {
	var attrs Attributes
	assert.False(t, attrs.Has("any"))
	_, ok := attrs.GetInt("any")
	assert.False(t, ok)
}
