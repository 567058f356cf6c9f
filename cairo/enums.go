package cairo

// Content describes the color channels a surface or group carries.
// Values match cairo_content_t.
type Content int32

const (
	ContentColor      Content = 0x1000
	ContentAlpha      Content = 0x2000
	ContentColorAlpha Content = 0x3000
)

// Format identifies the pixel layout of an image surface.
// Values match cairo_format_t.
type Format int32

const (
	FormatInvalid   Format = -1
	FormatARGB32    Format = 0
	FormatRGB24     Format = 1
	FormatA8        Format = 2
	FormatA1        Format = 3
	FormatRGB16_565 Format = 4
	FormatRGB30     Format = 5
)

// Operator is the compositing operator. Values match cairo_operator_t.
type Operator int32

const (
	OperatorClear Operator = iota
	OperatorSource
	OperatorOver
	OperatorIn
	OperatorOut
	OperatorAtop
	OperatorDest
	OperatorDestOver
	OperatorDestIn
	OperatorDestOut
	OperatorDestAtop
	OperatorXor
	OperatorAdd
	OperatorSaturate
	OperatorMultiply
	OperatorScreen
	OperatorOverlay
	OperatorDarken
	OperatorLighten
	OperatorColorDodge
	OperatorColorBurn
	OperatorHardLight
	OperatorSoftLight
	OperatorDifference
	OperatorExclusion
	OperatorHSLHue
	OperatorHSLSaturation
	OperatorHSLColor
	OperatorHSLLuminosity
)

// FillRule selects how self-intersecting paths fill.
// Values match cairo_fill_rule_t.
type FillRule int32

const (
	FillRuleWinding FillRule = iota
	FillRuleEvenOdd
)

// LineCap is the endpoint style for stroked lines.
type LineCap int32

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin is the corner style for stroked paths.
type LineJoin int32

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Antialias selects the rasterization quality mode.
type Antialias int32

const (
	AntialiasDefault Antialias = iota
	AntialiasNone
	AntialiasGray
	AntialiasSubpixel
	AntialiasFast
	AntialiasGood
	AntialiasBest
)

// FontSlant matches cairo_font_slant_t.
type FontSlant int32

const (
	FontSlantNormal FontSlant = iota
	FontSlantItalic
	FontSlantOblique
)

// FontWeight matches cairo_font_weight_t.
type FontWeight int32

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)
