// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides the drawable primitives emitted by the
layout engine.

A Shape is either a run of text or a reference to a named image.
Both occupy the [-1, 1] box of their transform: the renderer maps
that box to the screen, shaping the text or blitting the image
into it. Shapes produced by a widget carry a transform local to
the widget's box; shapes returned by the engine carry absolute
transforms in normalized device coordinates.
*/
package paint
