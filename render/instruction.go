package render

// Element is the display element an instruction targets.
type Element string

// Display elements.
const (
	ElementFrame  Element = "iframe"
	ElementImage  Element = "img"
	ElementNotice Element = "div"
)

// Presentation defaults.
const (
	FrameTitle        = "Interactive Visualization"
	FrameStyle        = "width: 100%; height: 600px; border: none"
	ImageAlt          = "Visualization"
	ImageStyle        = "width: 100%; height: auto; border: 1px solid #ccc"
	UnsupportedNotice = "Unsupported visualization format."
)

// Instruction describes how to display one artifact.
//
// Exactly one of Src, SrcDoc, or Text is set:
//   - Src is a source address (frame or image).
//   - SrcDoc is inline frame document content.
//   - Text is a plain notice.
type Instruction struct {
	Kind    Kind
	Element Element
	Src     string
	SrcDoc  string
	Text    string
	Title   string
	Alt     string
	Style   string
}

// Instruction maps the decision to its display instruction.
func (d Decision) Instruction() Instruction {
	switch d.Kind {
	case KindHTMLDataURI:
		return Instruction{
			Kind:    d.Kind,
			Element: ElementFrame,
			Src:     d.Artifact,
			Title:   FrameTitle,
			Style:   FrameStyle,
		}
	case KindHTMLDocument:
		return Instruction{
			Kind:    d.Kind,
			Element: ElementFrame,
			SrcDoc:  d.Artifact,
			Title:   FrameTitle,
			Style:   FrameStyle,
		}
	case KindImageDataURI:
		return Instruction{
			Kind:    d.Kind,
			Element: ElementImage,
			Src:     d.Artifact,
			Alt:     ImageAlt,
			Style:   ImageStyle,
		}
	default:
		return Instruction{
			Kind:    KindUnsupported,
			Element: ElementNotice,
			Text:    UnsupportedNotice,
		}
	}
}

// Render classifies raw and returns its display instruction.
// It reports false only for the empty string, in which case nothing should be
// displayed. Whitespace-only input is classified and yields the unsupported
// notice.
func Render(raw string) (Instruction, bool) {
	if raw == "" {
		return Instruction{}, false
	}
	return Classify(raw).Instruction(), true
}
