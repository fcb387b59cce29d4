package world_test

import (
	"fmt"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/world"
)

// ExampleGrid_Move walks the agent right twice along a 1×3 corridor.
// Every step returns a new grid; the original is left as it was.
func ExampleGrid_Move() {
	g, err := world.New([]string{"XED"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	one, _ := g.Move(world.Right)
	two, _ := one.Move(world.Right)
	fmt.Println(g, one, two, two.Clean())

	_, err = two.Move(world.Right)
	fmt.Println(err)
	// Output:
	// XED EXD EEX true
	// world: illegal move: Right from (0,2)
}

// ExampleGrid_UnreachableDirt counts dirt sealed off by walls.
func ExampleGrid_UnreachableDirt() {
	g, _ := world.New([]string{
		"XWD",
		"WWW",
		"DEE",
	})
	fmt.Println(len(g.Reachable()), g.UnreachableDirt())
	// Output:
	// 1 2
}
