// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "github.com/hudkit/hud/layout"

// Empty is a widget without content. It takes no space in a
// collapsing bar.
type Empty struct{}

func (Empty) Layout(float32, layout.Alignment) layout.Layout {
	return layout.Shapes{}
}
