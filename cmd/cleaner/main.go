// Command cleaner computes shortest cleaning routes for a robot on a grid.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/internal/cli"
	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/internal/config"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if err := cli.New(cfg).Execute(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
