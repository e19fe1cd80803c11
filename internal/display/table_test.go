package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_Grid(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	err := r.Render(Table{
		Title:   "Books",
		Headers: []string{"BookID", "Title", "Rent Price"},
		Rows: [][]string{
			{"1", "The Hobbit", "100.00"},
			{"2", "Dune", "85.50"},
		},
		Empty: "No books found.",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\nBooks:\n"))
	assert.Contains(t, out, "BookID")
	assert.Contains(t, out, "Rent Price", "headers keep their case")
	assert.Contains(t, out, "The Hobbit")
	assert.Contains(t, out, "85.50")
	assert.Contains(t, out, "+")
	assert.NotContains(t, out, "No books found.")
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Render(Table{
		Title:   "Payments",
		Headers: []string{"Payment ID"},
		Empty:   "No payments available.",
	}))

	assert.Equal(t, "No payments available.\n", buf.String())
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.Println("Logging out...")
	r.Printf("Total: %s\n", "108.50")

	assert.Equal(t, "Logging out...\nTotal: 108.50\n", buf.String())
}
