package layout_test

import (
	"fmt"

	"github.com/matzehuels/framecode/pkg/layout"
	"github.com/matzehuels/framecode/pkg/scene"
	"github.com/matzehuels/framecode/pkg/style"
	"github.com/matzehuels/framecode/pkg/styled"
)

func ExampleInfer() {
	child := func(id string, x, y float64) *styled.Node {
		return &styled.Node{
			Source:  &scene.Node{ID: id, Box: scene.Box{X: x, Y: y, Width: 10, Height: 10}},
			Kind:    scene.KindRectangle,
			ClassID: id,
			Style:   style.New(),
		}
	}
	a, b, badge := child("a", 0, 0), child("b", 0, 20), child("badge", 30, 5)
	parent := &styled.Node{
		Source:   &scene.Node{ID: "p", Box: scene.Box{Width: 100, Height: 100}},
		Kind:     scene.KindContainer,
		Style:    style.New(),
		Children: []*styled.Node{a, b, badge},
	}

	res := layout.Infer(parent)
	fmt.Println(res.Direction)
	fmt.Println(parent.Style)
	fmt.Println(b.Style)
	fmt.Println(badge.Style)
	// Output:
	// column
	// display: flex;flex-direction: column;padding-left: 0px;padding-top: 0px;position: relative;
	// margin-top: 10px;
	// position: absolute;left: 30px;top: 5px;
}
