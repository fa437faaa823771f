package record

import (
	"testing"

	"github.com/scenekit/scenekit-go/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	el := NewElement("sunPosition")
	el.SetAttr("x", "1.5")
	el.SetAttr("y", " -2.25 ")
	el.SetAttr("z", "1e3")

	rec := log.NewRecorder()
	assert.Equal(t, 1.5, Float(el, "x", 0, rec))
	assert.Equal(t, -2.25, Float(el, "y", 0, rec))
	assert.Equal(t, 1000.0, Float(el, "z", 0, rec))
	assert.Equal(t, 0, rec.Len(), "valid attributes must not warn")
}

func TestFloatFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		attrs map[string]string
		value string
	}{
		{name: "missing", attrs: map[string]string{}},
		{name: "malformed", attrs: map[string]string{"x": "notanumber"}, value: "notanumber"},
		{name: "empty", attrs: map[string]string{"x": ""}, value: ""},
		{name: "nan", attrs: map[string]string{"x": "NaN"}, value: "NaN"},
		{name: "inf", attrs: map[string]string{"x": "-Inf"}, value: "-Inf"},
		{name: "overflow", attrs: map[string]string{"x": "1e400"}, value: "1e400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewElement("v")
			for k, v := range tt.attrs {
				el.SetAttr(k, v)
			}

			rec := log.NewRecorder()
			got := Float(el, "x", 7.5, rec)

			assert.Equal(t, 7.5, got)
			events := rec.Events()
			require.Len(t, events, 1)
			assert.Equal(t, log.LevelWarn, events[0].Level)
			assert.Equal(t, "record", events[0].Component)
			assert.Equal(t, "Float", events[0].Operation)
			assert.Equal(t, "x", events[0].Attribute)
			assert.Equal(t, tt.value, events[0].Value)
		})
	}
}

func TestFloatNilElement(t *testing.T) {
	rec := log.NewRecorder()
	assert.Equal(t, 3.0, Float(nil, "x", 3, rec))
	assert.Equal(t, 1, rec.Len())
}

func TestFloatNilLoggerUsesDefault(t *testing.T) {
	rec := log.NewRecorder()
	prev := log.SetDefault(rec)
	t.Cleanup(func() { log.SetDefault(prev) })

	Float(NewElement("v"), "x", 0, nil)

	assert.Equal(t, 1, rec.Len())
}

func TestInt(t *testing.T) {
	el := NewElement("frame")
	el.SetInt("index", 42)
	el.SetAttr("bad", "4.2")

	rec := log.NewRecorder()
	assert.Equal(t, 42, Int(el, "index", -1, rec))
	assert.Equal(t, 0, rec.Len())

	assert.Equal(t, -1, Int(el, "bad", -1, rec))
	assert.Equal(t, -1, Int(el, "missing", -1, rec))
	require.Equal(t, 2, rec.Len())
	assert.Equal(t, "Int", rec.Events()[0].Operation)
}

func TestBool(t *testing.T) {
	el := NewElement("state")
	el.SetBool("on", true)
	el.SetAttr("off", "FALSE")
	el.SetAttr("maybe", "1")

	rec := log.NewRecorder()
	assert.True(t, Bool(el, "on", false, rec))
	assert.False(t, Bool(el, "off", true, rec))
	assert.Equal(t, 0, rec.Len())

	assert.True(t, Bool(el, "maybe", true, rec))
	assert.Equal(t, 1, rec.Len())
	assert.Equal(t, "1", rec.Events()[0].Value)
}

func TestFormatFloat(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		1.5:     "1.5",
		-2.25:   "-2.25",
		0.1:     "0.1",
		1e21:    "1e+21",
		1.0 / 3: "0.3333333333333333",
	}
	for in, want := range tests {
		if got := FormatFloat(in); got != want {
			t.Errorf("FormatFloat(%v) = %q, want %q", in, got, want)
		}
	}
}
