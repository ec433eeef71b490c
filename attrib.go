// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package eglconfig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Attrib identifies an EGL configuration attribute (an EGLint enum).
type Attrib int32

// Configuration attributes, as defined by EGL 1.5.
const (
	BufferSize            Attrib = 0x3020
	AlphaSize             Attrib = 0x3021
	BlueSize              Attrib = 0x3022
	GreenSize             Attrib = 0x3023
	RedSize               Attrib = 0x3024
	DepthSize             Attrib = 0x3025
	StencilSize           Attrib = 0x3026
	ConfigCaveat          Attrib = 0x3027
	ConfigID              Attrib = 0x3028
	Level                 Attrib = 0x3029
	MaxPbufferHeight      Attrib = 0x302A
	MaxPbufferPixels      Attrib = 0x302B
	MaxPbufferWidth       Attrib = 0x302C
	NativeRenderable      Attrib = 0x302D
	NativeVisualID        Attrib = 0x302E
	NativeVisualType      Attrib = 0x302F
	Samples               Attrib = 0x3031
	SampleBuffers         Attrib = 0x3032
	SurfaceType           Attrib = 0x3033
	TransparentType       Attrib = 0x3034
	TransparentBlueValue  Attrib = 0x3035
	TransparentGreenValue Attrib = 0x3036
	TransparentRedValue   Attrib = 0x3037
	None                  Attrib = 0x3038
	BindToTextureRGB      Attrib = 0x3039
	BindToTextureRGBA     Attrib = 0x303A
	MinSwapInterval       Attrib = 0x303B
	MaxSwapInterval       Attrib = 0x303C
	LuminanceSize         Attrib = 0x303D
	AlphaMaskSize         Attrib = 0x303E
	ColorBufferType       Attrib = 0x303F
	RenderableType        Attrib = 0x3040
	Conformant            Attrib = 0x3042
)

// Bits of the EGL_RENDERABLE_TYPE attribute.
const (
	OpenGLESBit  int32 = 0x0001
	OpenVGBit    int32 = 0x0002
	OpenGLES2Bit int32 = 0x0004
	OpenGLBit    int32 = 0x0008
	OpenGLES3Bit int32 = 0x0040 // EGL_OPENGL_ES3_BIT_KHR
)

// Bits of the EGL_SURFACE_TYPE attribute.
const (
	PbufferBit int32 = 0x0001
	PixmapBit  int32 = 0x0002
	WindowBit  int32 = 0x0004
)

var attribNames = map[Attrib]string{
	BufferSize:            "BUFFER_SIZE",
	AlphaSize:             "ALPHA_SIZE",
	BlueSize:              "BLUE_SIZE",
	GreenSize:             "GREEN_SIZE",
	RedSize:               "RED_SIZE",
	DepthSize:             "DEPTH_SIZE",
	StencilSize:           "STENCIL_SIZE",
	ConfigCaveat:          "CONFIG_CAVEAT",
	ConfigID:              "CONFIG_ID",
	Level:                 "LEVEL",
	MaxPbufferHeight:      "MAX_PBUFFER_HEIGHT",
	MaxPbufferPixels:      "MAX_PBUFFER_PIXELS",
	MaxPbufferWidth:       "MAX_PBUFFER_WIDTH",
	NativeRenderable:      "NATIVE_RENDERABLE",
	NativeVisualID:        "NATIVE_VISUAL_ID",
	NativeVisualType:      "NATIVE_VISUAL_TYPE",
	Samples:               "SAMPLES",
	SampleBuffers:         "SAMPLE_BUFFERS",
	SurfaceType:           "SURFACE_TYPE",
	TransparentType:       "TRANSPARENT_TYPE",
	TransparentBlueValue:  "TRANSPARENT_BLUE_VALUE",
	TransparentGreenValue: "TRANSPARENT_GREEN_VALUE",
	TransparentRedValue:   "TRANSPARENT_RED_VALUE",
	None:                  "NONE",
	BindToTextureRGB:      "BIND_TO_TEXTURE_RGB",
	BindToTextureRGBA:     "BIND_TO_TEXTURE_RGBA",
	MinSwapInterval:       "MIN_SWAP_INTERVAL",
	MaxSwapInterval:       "MAX_SWAP_INTERVAL",
	LuminanceSize:         "LUMINANCE_SIZE",
	AlphaMaskSize:         "ALPHA_MASK_SIZE",
	ColorBufferType:       "COLOR_BUFFER_TYPE",
	RenderableType:        "RENDERABLE_TYPE",
	Conformant:            "CONFORMANT",
}

var attribByName = func() map[string]Attrib {
	m := make(map[string]Attrib, len(attribNames))
	for a, name := range attribNames {
		m[name] = a
	}
	return m
}()

// Bit names accepted by ParseValue for the two bitmask attributes.
var (
	renderableBits = map[string]int32{
		"ES":     OpenGLESBit,
		"ES1":    OpenGLESBit,
		"VG":     OpenVGBit,
		"OPENVG": OpenVGBit,
		"ES2":    OpenGLES2Bit,
		"GL":     OpenGLBit,
		"OPENGL": OpenGLBit,
		"ES3":    OpenGLES3Bit,
	}
	surfaceBits = map[string]int32{
		"PBUFFER": PbufferBit,
		"PIXMAP":  PixmapBit,
		"WINDOW":  WindowBit,
	}
)

// String returns the EGL name of the attribute, e.g. "EGL_RED_SIZE".
func (a Attrib) String() string {
	if name, ok := attribNames[a]; ok {
		return "EGL_" + name
	}
	return fmt.Sprintf("Attrib(0x%04X)", int32(a))
}

// IsMask reports whether the attribute value is a set of independent bits
// rather than a scalar.
func (a Attrib) IsMask() bool {
	return a == RenderableType || a == SurfaceType
}

// ParseAttrib resolves an attribute name. The "EGL_" prefix is optional and
// matching is case-insensitive; hexadecimal ids such as "0x3024" are accepted.
func ParseAttrib(name string) (Attrib, error) {
	s := strings.ToUpper(strings.TrimSpace(name))
	s = strings.TrimPrefix(s, "EGL_")
	if a, ok := attribByName[s]; ok {
		return a, nil
	}
	if strings.HasPrefix(s, "0X") {
		if v, err := strconv.ParseInt(s[2:], 16, 32); err == nil && v > 0 {
			return Attrib(v), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownAttrib, name)
}

// ParseValue parses an attribute value. Integers may be written in any base
// strconv understands. For EGL_RENDERABLE_TYPE and EGL_SURFACE_TYPE the value
// may also be a "|"-separated list of bit names, e.g. "WINDOW|PBUFFER".
func ParseValue(a Attrib, s string) (int32, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 0, 32); err == nil {
		return int32(v), nil
	}

	var bits map[string]int32
	switch a {
	case RenderableType:
		bits = renderableBits
	case SurfaceType:
		bits = surfaceBits
	default:
		return 0, fmt.Errorf("%w: %s = %q", ErrInvalidValue, a, s)
	}

	var mask int32
	for _, part := range strings.Split(s, "|") {
		name := strings.ToUpper(strings.TrimSpace(part))
		name = strings.TrimPrefix(name, "EGL_")
		name = strings.TrimSuffix(name, "_KHR")
		name = strings.TrimSuffix(name, "_BIT")
		name = strings.TrimPrefix(name, "OPENGL_")
		bit, ok := bits[name]
		if !ok {
			return 0, fmt.Errorf("%w: %s has no bit %q", ErrInvalidValue, a, part)
		}
		mask |= bit
	}
	return mask, nil
}

// DecodeValue converts a scalar produced by a YAML or TOML decoder into an
// attribute value. Strings go through ParseValue.
func DecodeValue(a Attrib, raw any) (int32, error) {
	switch v := raw.(type) {
	case int:
		return fitInt32(a, int64(v))
	case int64:
		return fitInt32(a, v)
	case uint64:
		if v > math.MaxInt32 {
			return 0, fmt.Errorf("%w: %s = %d out of range", ErrInvalidValue, a, v)
		}
		return int32(v), nil
	case string:
		return ParseValue(a, v)
	default:
		return 0, fmt.Errorf("%w: %s = %v (%T)", ErrInvalidValue, a, raw, raw)
	}
}

func fitInt32(a Attrib, v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s = %d out of range", ErrInvalidValue, a, v)
	}
	return int32(v), nil
}

type bitName struct {
	name string
	bit  int32
}

var (
	renderableOrder = []bitName{{"ES", OpenGLESBit}, {"VG", OpenVGBit}, {"ES2", OpenGLES2Bit}, {"GL", OpenGLBit}, {"ES3", OpenGLES3Bit}}
	surfaceOrder    = []bitName{{"PBUFFER", PbufferBit}, {"PIXMAP", PixmapBit}, {"WINDOW", WindowBit}}
)

// FormatValue renders a value the way ParseValue reads it back: bit names for
// mask attributes, decimal otherwise.
func FormatValue(a Attrib, v int32) string {
	var order []bitName
	switch a {
	case RenderableType:
		order = renderableOrder
	case SurfaceType:
		order = surfaceOrder
	default:
		return strconv.Itoa(int(v))
	}

	var names []string
	rest := v
	for _, b := range order {
		if v&b.bit != 0 {
			names = append(names, b.name)
			rest &^= b.bit
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", rest))
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}

// Pair is one exact-match requirement: the attribute must equal Value.
type Pair struct {
	Attrib Attrib
	Value  int32
}

func (p Pair) String() string {
	return p.Attrib.String() + "=" + FormatValue(p.Attrib, p.Value)
}

// ParseAttribList decodes a flat key/value list terminated by EGL_NONE, the
// form eglChooseConfig takes. Entries after the terminator are ignored.
func ParseAttribList(list []int32) ([]Pair, error) {
	var pairs []Pair
	for i := 0; i < len(list); i += 2 {
		a := Attrib(list[i])
		if a == None {
			return pairs, nil
		}
		if i+1 >= len(list) {
			return nil, fmt.Errorf("%w: %s has no value", ErrMalformedAttribList, a)
		}
		pairs = append(pairs, Pair{Attrib: a, Value: list[i+1]})
	}
	return nil, fmt.Errorf("%w: missing EGL_NONE terminator", ErrMalformedAttribList)
}

// AttribList encodes pairs as a flat EGL_NONE-terminated list.
func AttribList(pairs []Pair) []int32 {
	list := make([]int32, 0, 2*len(pairs)+1)
	for _, p := range pairs {
		list = append(list, int32(p.Attrib), p.Value)
	}
	return append(list, int32(None))
}
