// SPDX-License-Identifier: Unlicense OR MIT

// Command panels demonstrates the wrap and equal panels and the
// smooth scrolling list.
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/panelkit/panelkit/behavior"
	"github.com/panelkit/panelkit/scroll"
	panels "github.com/panelkit/panelkit/widget"
)

const items = 500

func main() {
	go func() {
		w := new(app.Window)
		w.Option(app.Title("Panels"), app.Size(unit.Dp(480), unit.Dp(640)))
		if err := loop(w); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

type ui struct {
	th    *material.Theme
	tags  panels.Wrap
	bar   panels.Equal
	list  panels.List
	first widget.Clickable
	mid   widget.Clickable
	last  widget.Clickable
}

func loop(w *app.Window) error {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	u := &ui{
		th: th,
		tags: panels.Wrap{
			HorizontalSpacing: 4,
			VerticalSpacing:   4,
			Padding:           layout.UniformInset(8),
			StretchLast:       true,
		},
		bar: panels.Equal{Spacing: 8, Stretch: true},
		list: panels.List{
			List: layout.List{Axis: layout.Vertical},
			Backgrounds: []color.NRGBA{
				{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
				{R: 0xee, G: 0xee, B: 0xf4, A: 0xff},
			},
			Stretch:  behavior.StretchHorizontal,
			Duration: 300 * time.Millisecond,
		},
	}
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			u.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (u *ui) layout(gtx layout.Context) layout.Dimensions {
	if u.first.Clicked(gtx) {
		u.list.BringIntoView(0, scroll.Options{Alignment: scroll.Start})
	}
	if u.mid.Clicked(gtx) {
		u.list.BringIntoView(items/2, scroll.Options{Alignment: scroll.Center, ScrollIfVisible: true})
	}
	if u.last.Clicked(gtx) {
		u.list.BringIntoView(-1, scroll.Options{})
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(u.layoutTags),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(8).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return u.bar.Layout(gtx,
					panels.Weighted(1, material.Button(u.th, &u.first, "First").Layout),
					panels.Weighted(2, material.Button(u.th, &u.mid, "Middle").Layout),
					panels.Weighted(1, material.Button(u.th, &u.last, "Last").Layout),
				)
			})
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return u.list.Layout(gtx, items, func(gtx layout.Context, i int) layout.Dimensions {
				return layout.UniformInset(6).Layout(gtx, material.Body1(u.th, fmt.Sprintf("Item %d", i)).Layout)
			})
		}),
	)
}

var tags = []string{"layout", "wrap", "equal", "orientation", "spacing", "padding", "rows", "proportional", "scroll"}

func (u *ui) layoutTags(gtx layout.Context) layout.Dimensions {
	children := make([]layout.Widget, len(tags))
	for i, tag := range tags {
		children[i] = material.Caption(u.th, tag).Layout
	}
	return u.tags.Layout(gtx, children...)
}
