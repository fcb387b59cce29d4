package scenario

import (
	"fmt"
	"io"
	"strings"

	"github.com/minhtrietcancode/The-Optimal-Cleaner-Robot/bfs"
)

// Render writes a report in the classic console layout:
//
//	Test Case: Simple horizontal path
//	World:
//	X E D
//	Optimal path: rr
//	Path length: 2
func Render(w io.Writer, r Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nTest Case: %s\n", r.Name)
	writeWorld(&b, r.Rows)

	if r.Err != nil {
		fmt.Fprintf(&b, "Error: %v\n", r.Err)
	} else {
		writeOutcome(&b, r.Result)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderAll renders every report in order.
func RenderAll(w io.Writer, reports []Report) error {
	for _, r := range reports {
		if err := Render(w, r); err != nil {
			return err
		}
	}
	return nil
}

// RenderWorld writes the grid rows with one space after every tile.
func RenderWorld(w io.Writer, rows []string) error {
	var b strings.Builder
	writeWorld(&b, rows)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeWorld(b *strings.Builder, rows []string) {
	b.WriteString("World:\n")
	for _, row := range rows {
		for _, c := range row {
			fmt.Fprintf(b, "%c ", c)
		}
		b.WriteByte('\n')
	}
}

// RenderResult writes the optimal path and its length, or "No solution found".
func RenderResult(w io.Writer, res *bfs.Result) error {
	var b strings.Builder
	writeOutcome(&b, res)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeOutcome(b *strings.Builder, res *bfs.Result) {
	if !res.Solved {
		b.WriteString("No solution found\n")
		return
	}
	fmt.Fprintf(b, "Optimal path: %s\n", res.Moves)
	fmt.Fprintf(b, "Path length: %d\n", res.Len())
}
