// SPDX-License-Identifier: Unlicense OR MIT

package panel_test

import (
	"fmt"
	"math"

	"github.com/panelkit/panelkit/axis"
	"github.com/panelkit/panelkit/panel"
)

func ExampleWrap() {
	w := panel.Wrap{HorizontalSpacing: 10}
	children := []panel.Child{
		{Key: "a", Size: axis.Pt(40, 10)},
		{Key: "b", Size: axis.Pt(40, 20)},
		{Key: "c", Size: axis.Pt(40, 10)},
	}
	size := w.Measure(children, axis.Pt(100, math.Inf(1)))
	fmt.Println(size, w.Rows())
	for _, p := range w.Arrange(size) {
		fmt.Println(p.Key, p.Bounds)
	}

	// Output:
	// {90 30} [[0 1] [2]]
	// a {0 0 40 20}
	// b {50 0 40 20}
	// c {0 20 40 10}
}

func ExampleEqual() {
	e := panel.Equal{
		Spacing: 10,
		Sizing: panel.SizingTable{
			"icon": panel.Fixed(16),
			"text": panel.Auto(),
		},
	}
	children := []panel.Child{
		{Key: "icon", Size: axis.Pt(16, 16)},
		{Key: "text", Size: axis.Pt(50, 12)},
		{Key: "rest", Size: axis.Pt(0, 12)},
	}
	e.Measure(children, axis.Pt(200, 16))
	for _, p := range e.Arrange(axis.Pt(200, 16)) {
		fmt.Println(p.Key, p.Bounds)
	}

	// Output:
	// icon {0 0 16 16}
	// text {26 0 50 16}
	// rest {86 0 114 16}
}
