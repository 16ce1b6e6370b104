package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"drills/internal/exercise"
)

// ListMode prints the exercise catalog.
type ListMode struct {
	// Stdout defaults to os.Stdout when nil.
	Stdout io.Writer
}

// Run writes one line per exercise: ID, name, title.
func (m *ListMode) Run(_ context.Context) error {
	w := m.Stdout
	if w == nil {
		w = os.Stdout
	}
	return writeCatalog(w)
}

func writeCatalog(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDESCRIPTION")
	for _, e := range exercise.All() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Name, e.Title)
	}
	return tw.Flush()
}
