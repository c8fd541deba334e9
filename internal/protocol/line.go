package protocol

import "strings"

// LineKind classifies one line of compile worker output.
type LineKind int

const (
	// LinePassThrough is any non-sentinel line: the worker's own diagnostic
	// output, forwarded or discarded per caller choice, never
	// protocol-significant.
	LinePassThrough LineKind = iota

	// LineOK is the success sentinel. It terminates one exchange.
	LineOK

	// LineErr is the failure sentinel. It terminates one exchange and
	// carries no further detail.
	LineErr
)

// Line is one classified line of compile worker output. Text is kept
// verbatim, including any trailing newline, so pass-through output reaches
// the sink exactly as the worker wrote it.
type Line struct {
	Kind LineKind
	Text string
}

// ClassifyLine classifies a single line of worker output. Sentinel matching
// trims surrounding whitespace; anything that is not exactly "ok" or "err"
// after trimming is pass-through.
func ClassifyLine(text string) Line {
	switch strings.TrimSpace(text) {
	case "ok":
		return Line{Kind: LineOK, Text: text}
	case "err":
		return Line{Kind: LineErr, Text: text}
	default:
		return Line{Kind: LinePassThrough, Text: text}
	}
}
