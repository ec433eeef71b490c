package eglconfig

import (
	"errors"
	"math"
	"testing"
)

func TestAttribString(t *testing.T) {
	tests := []struct {
		a    Attrib
		want string
	}{
		{RedSize, "EGL_RED_SIZE"},
		{RenderableType, "EGL_RENDERABLE_TYPE"},
		{None, "EGL_NONE"},
		{Attrib(0x1234), "Attrib(0x1234)"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Attrib(%#x).String() = %q, want %q", int32(tt.a), got, tt.want)
		}
	}
}

func TestParseAttrib(t *testing.T) {
	tests := []struct {
		in      string
		want    Attrib
		wantErr bool
	}{
		{"RED_SIZE", RedSize, false},
		{"egl_depth_size", DepthSize, false},
		{" EGL_SAMPLES ", Samples, false},
		{"0x3040", RenderableType, false},
		{"0X3025", DepthSize, false},
		{"DEPTH", None, true},
		{"12", None, true},
		{"-1", None, true},
		{"0x", None, true},
		{"", None, true},
	}
	for _, tt := range tests {
		got, err := ParseAttrib(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAttrib(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrUnknownAttrib) {
			t.Errorf("ParseAttrib(%q) error = %v, want ErrUnknownAttrib", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseAttrib(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		a       Attrib
		in      string
		want    int32
		wantErr bool
	}{
		{RedSize, "8", 8, false},
		{RedSize, "0x10", 16, false},
		{RenderableType, "ES3", OpenGLES3Bit, false},
		{RenderableType, "ES2|ES3", OpenGLES2Bit | OpenGLES3Bit, false},
		{RenderableType, "EGL_OPENGL_ES3_BIT_KHR", OpenGLES3Bit, false},
		{RenderableType, "EGL_OPENGL_BIT", OpenGLBit, false},
		{SurfaceType, "window | pbuffer", WindowBit | PbufferBit, false},
		{SurfaceType, "EGL_PIXMAP_BIT", PixmapBit, false},
		{SurfaceType, "ES3", 0, true},
		{DepthSize, "deep", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseValue(tt.a, tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseValue(%v, %q) error = %v, wantErr %v", tt.a, tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidValue) {
			t.Errorf("ParseValue(%v, %q) error = %v, want ErrInvalidValue", tt.a, tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseValue(%v, %q) = %#x, want %#x", tt.a, tt.in, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		a    Attrib
		v    int32
		want string
	}{
		{DepthSize, 24, "24"},
		{RenderableType, OpenGLES2Bit | OpenGLES3Bit, "ES2|ES3"},
		{SurfaceType, WindowBit | PbufferBit | PixmapBit, "PBUFFER|PIXMAP|WINDOW"},
		{SurfaceType, WindowBit | 0x400, "WINDOW|0x400"},
		{RenderableType, 0, "0"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.a, tt.v); got != tt.want {
			t.Errorf("FormatValue(%v, %#x) = %q, want %q", tt.a, tt.v, got, tt.want)
		}
	}
}

func TestParseAttribList(t *testing.T) {
	list := WarpCompositor().AttribList()
	if last := Attrib(list[len(list)-1]); last != None {
		t.Fatalf("AttribList() ends with %v, want EGL_NONE", last)
	}

	pairs, err := ParseAttribList(list)
	if err != nil {
		t.Fatalf("ParseAttribList() error = %v", err)
	}
	want := WarpCompositor().Attribs
	if len(pairs) != len(want) {
		t.Fatalf("ParseAttribList() returned %d pairs, want %d", len(pairs), len(want))
	}
	for i := range want {
		if pairs[i] != want[i] {
			t.Errorf("pair %d = %v, want %v", i, pairs[i], want[i])
		}
	}
}

func TestParseAttribListTrailingData(t *testing.T) {
	list := []int32{int32(RedSize), 8, int32(None), int32(GreenSize), 8}
	pairs, err := ParseAttribList(list)
	if err != nil {
		t.Fatalf("ParseAttribList() error = %v", err)
	}
	if len(pairs) != 1 || pairs[0] != (Pair{RedSize, 8}) {
		t.Errorf("ParseAttribList() = %v, want [EGL_RED_SIZE=8]", pairs)
	}
}

func TestParseAttribListMalformed(t *testing.T) {
	tests := []struct {
		name string
		list []int32
	}{
		{"empty", nil},
		{"no terminator", []int32{int32(RedSize), 8}},
		{"dangling key", []int32{int32(RedSize), 8, int32(GreenSize)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAttribList(tt.list); !errors.Is(err, ErrMalformedAttribList) {
				t.Errorf("ParseAttribList(%v) error = %v, want ErrMalformedAttribList", tt.list, err)
			}
		})
	}
}

func TestNewRequirements(t *testing.T) {
	r, err := NewRequirements("rgba8", OpenGLES2Bit, WindowBit,
		[]int32{int32(RedSize), 8, int32(AlphaSize), 8, int32(None)})
	if err != nil {
		t.Fatalf("NewRequirements() error = %v", err)
	}
	if len(r.Attribs) != 2 || r.RenderableType != OpenGLES2Bit || r.SurfaceType != WindowBit {
		t.Errorf("NewRequirements() = %+v", r)
	}

	_, err = NewRequirements("dup", 0, 0, []int32{int32(RedSize), 8, int32(RedSize), 5, int32(None)})
	if !errors.Is(err, ErrInvalidRequirements) {
		t.Errorf("duplicate attribute: error = %v, want ErrInvalidRequirements", err)
	}
}

func TestRequirementsValidateNone(t *testing.T) {
	r := Requirements{Attribs: []Pair{{RedSize, 8}, {None, 0}}}
	if err := r.Validate(); !errors.Is(err, ErrInvalidRequirements) {
		t.Errorf("Validate() error = %v, want ErrInvalidRequirements", err)
	}
}

func TestRequirementsString(t *testing.T) {
	r := Requirements{
		Name:           "x",
		RenderableType: OpenGLES3Bit,
		Attribs:        []Pair{{DepthSize, 0}},
	}
	want := "x EGL_RENDERABLE_TYPE&ES3 EGL_DEPTH_SIZE=0"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDecodeValue(t *testing.T) {
	tests := []struct {
		raw     any
		want    int32
		wantErr bool
	}{
		{8, 8, false},
		{int64(24), 24, false},
		{uint64(4), 4, false},
		{"WINDOW|PBUFFER", WindowBit | PbufferBit, false},
		{1.5, 0, true},
		{nil, 0, true},
		{int64(1<<32 + 8), 0, true},
		{int64(math.MinInt32 - 1), 0, true},
		{int64(math.MinInt32), math.MinInt32, false},
		{uint64(1 << 63), 0, true},
		{uint64(math.MaxInt32), math.MaxInt32, false},
	}
	for _, tt := range tests {
		got, err := DecodeValue(SurfaceType, tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("DecodeValue(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidValue) {
			t.Errorf("DecodeValue(%v) error = %v, want ErrInvalidValue", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("DecodeValue(%v) = %#x, want %#x", tt.raw, got, tt.want)
		}
	}
}
