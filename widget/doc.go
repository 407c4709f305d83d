// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common user interface elements. Widgets
// contain persistent state and process user events. Theme provides
// the colors and text shaper shared by the widgets of a user
// interface.
package widget
