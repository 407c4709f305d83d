// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"strconv"
	"time"

	"github.com/hudkit/hud/io/event"
	"github.com/hudkit/hud/layout"
	"github.com/hudkit/hud/widget"
)

// demo is a counter with two buttons, a sliding title and a
// spinner.
type demo struct {
	th       *widget.Theme
	title    *widget.Transition
	count    int
	inc, dec *widget.Button
	spinner  *widget.Spinner
}

func newDemo(th *widget.Theme) *demo {
	title := th.Label("hud demo")
	title.Color = th.Color.InvText
	return &demo{
		th:    th,
		title: widget.NewTransition(title),
		inc:   th.Button("+"),
		dec:   th.Button("-"),
		spinner: &widget.Spinner{
			Frames: []string{"◐", "◓", "◑", "◒"},
			Delay:  150 * time.Millisecond,
			Color:  th.Color.Primary,
		},
	}
}

func (d *demo) Layout(hpw float32, hint layout.Alignment) layout.Layout {
	count := d.th.Label(strconv.Itoa(d.count))
	count.Color = d.th.Color.InvText
	row := layout.Format("hbar(f(1, inset(0.1, _)), f(1, _), f(1, inset(0.1, _)))", d.dec, count, d.inc)
	return layout.VBar(layout.Alignment{Vertical: layout.Start},
		layout.Child{Widget: d.title, Weight: 1, Inset: layout.UniformInset(0.1)},
		layout.Flexed(2, row),
		layout.Flexed(1, d.spinner),
	)
}

// Event updates the counter on button clicks.
func (d *demo) Event(e event.Event, from int) event.Outcome {
	ce, ok := e.(widget.ClickEvent)
	if !ok {
		return event.Propagate()
	}
	switch ce.Button {
	case d.inc:
		d.count++
	case d.dec:
		d.count--
	default:
		return event.Outcome{}
	}
	return event.Outcome{Rebuild: true}
}
