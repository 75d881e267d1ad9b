package ui

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/hubastard/sprig/engine/core"
)

// Alignment selects which point of a widget's box a coordinate refers to. At
// most one bit per axis may be set; an axis with no bit behaves as LEFT/TOP.
type Alignment uint8

const (
	AlignLeft Alignment = 1 << iota
	AlignCenter
	AlignRight
	AlignTop
	AlignMiddle
	AlignBottom
)

const (
	alignHorizontal = AlignLeft | AlignCenter | AlignRight
	alignVertical   = AlignTop | AlignMiddle | AlignBottom

	AlignDefault = AlignTop | AlignLeft
)

// Validate reports a mask that sets more than one bit on an axis.
func (a Alignment) Validate() error {
	if n := bits.OnesCount8(uint8(a & alignHorizontal)); n > 1 {
		return fmt.Errorf("ui: alignment %s sets %d horizontal bits", a, n)
	}
	if n := bits.OnesCount8(uint8(a & alignVertical)); n > 1 {
		return fmt.Errorf("ui: alignment %s sets %d vertical bits", a, n)
	}
	return nil
}

func (a Alignment) String() string {
	names := []struct {
		bit  Alignment
		name string
	}{
		{AlignTop, "TOP"}, {AlignMiddle, "MIDDLE"}, {AlignBottom, "BOTTOM"},
		{AlignLeft, "LEFT"}, {AlignCenter, "CENTER"}, {AlignRight, "RIGHT"},
	}
	var parts []string
	for _, n := range names {
		if a&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "NONE"
	}
	return strings.Join(parts, "|")
}

// AlignOrigin returns the top-left origin that puts the anchor point of an
// element of the given size on target.
func AlignOrigin(a Alignment, target, size core.Vec2) core.Vec2 {
	if err := a.Validate(); err != nil {
		contractViolation(err)
	}

	var shift core.Vec2

	// Later checks win when a mask is malformed.
	if a&AlignRight != 0 {
		shift.X = -size.X
	}
	if a&AlignCenter != 0 {
		shift.X = -size.X / 2
	}
	if a&AlignLeft != 0 {
		shift.X = 0
	}

	if a&AlignTop != 0 {
		shift.Y = 0
	}
	if a&AlignMiddle != 0 {
		shift.Y = -size.Y / 2
	}
	if a&AlignBottom != 0 {
		shift.Y = -size.Y
	}

	return target.Add(shift)
}

// Place moves w so that its anchor point selected by a lands on target.
func Place(w Widget, target core.Vec2, a Alignment) {
	w.SetOffset(AlignOrigin(a, target, w.Size()))
}
