// Package sketch implements the node and shape editing model of the canvas:
// shape variants, the per-frame editor state machine and the render pass.
package sketch

// Kind identifies a shape variant
type Kind int

const (
	KindNone Kind = iota
	KindLine
	KindCircle
	KindRect
	KindCurve
)

// Kinds lists every drawable kind in key-priority order
var Kinds = []Kind{KindLine, KindCircle, KindRect, KindCurve}

// MaxNodes returns the number of nodes that completes a shape of this kind
func (k Kind) MaxNodes() int {
	switch k {
	case KindLine, KindCircle, KindRect:
		return 2
	case KindCurve:
		return 3
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindRect:
		return "rect"
	case KindCurve:
		return "curve"
	default:
		return "none"
	}
}
