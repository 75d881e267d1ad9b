//go:build !debug

package ui

import (
	"testing"

	"github.com/hubastard/sprig/engine/core"
)

func TestAlignOriginMalformedMaskPrecedence(t *testing.T) {
	size := core.V(40, 20)
	tests := []struct {
		a    Alignment
		want core.Vec2
	}{
		{AlignLeft | AlignCenter | AlignRight, core.V(0, 0)},
		{AlignCenter | AlignRight, core.V(-20, 0)},
		{AlignTop | AlignMiddle | AlignBottom, core.V(0, -20)},
		{AlignTop | AlignMiddle, core.V(0, -10)},
	}
	for _, tt := range tests {
		wantVec(t, tt.a.String(), AlignOrigin(tt.a, core.Vec2{}, size), tt.want)
	}
}
