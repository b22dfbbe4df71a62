package ir

// TextAlign is the horizontal alignment of a text layer.
type TextAlign string

const (
	AlignLeft    TextAlign = "left"
	AlignCenter  TextAlign = "center"
	AlignRight   TextAlign = "right"
	AlignJustify TextAlign = "justify"
)

// TextDecoration is the decoration applied to a run of text.
type TextDecoration string

const (
	DecorationNone          TextDecoration = "none"
	DecorationUnderline     TextDecoration = "underline"
	DecorationStrikethrough TextDecoration = "strikethrough"
)

// TextCase is the case transform applied to a run of text.
type TextCase string

const (
	CaseOriginal TextCase = "original"
	CaseUpper    TextCase = "upper"
	CaseLower    TextCase = "lower"
	CaseTitle    TextCase = "title"
)

// LineHeight is a pixel value or "auto". Px is meaningful only when
// Auto is false.
type LineHeight struct {
	Auto bool    `json:"auto,omitempty"`
	Px   float64 `json:"px,omitempty"`
}

// AutoLineHeight is the fallback for unparsable line-height values.
func AutoLineHeight() LineHeight { return LineHeight{Auto: true} }

// PxLineHeight builds a fixed pixel line height.
func PxLineHeight(px float64) LineHeight { return LineHeight{Px: px} }

// TextStyle is the full style of a text layer's base run.
type TextStyle struct {
	FontFamily    string         `json:"font_family"`
	FontWeight    int            `json:"font_weight"`
	Italic        bool           `json:"italic,omitempty"`
	FontSize      float64        `json:"font_size"`
	LineHeight    LineHeight     `json:"line_height"`
	LetterSpacing float64        `json:"letter_spacing,omitempty"`
	Align         TextAlign      `json:"align"`
	Decoration    TextDecoration `json:"decoration"`
	Case          TextCase       `json:"case"`
	Color         Color          `json:"color"`
}

// TextSegment is a sparse style override for the character range
// [Start,End). Only fields that differ from the layer's base TextStyle are
// set; fields equal to the base are never repeated.
type TextSegment struct {
	Start      int             `json:"start"`
	End        int             `json:"end"`
	Color      *Color          `json:"color,omitempty"`
	FontWeight *int            `json:"font_weight,omitempty"`
	Italic     *bool           `json:"italic,omitempty"`
	FontSize   *float64        `json:"font_size,omitempty"`
	Decoration *TextDecoration `json:"decoration,omitempty"`
}

// Empty reports whether the segment overrides nothing.
func (s TextSegment) Empty() bool {
	return s.Color == nil && s.FontWeight == nil && s.Italic == nil &&
		s.FontSize == nil && s.Decoration == nil
}
