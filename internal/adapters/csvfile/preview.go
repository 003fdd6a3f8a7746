package csvfile

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"warehouse-route-prep/internal/domain"
)

// PrintPreview renders the header and the first n rows of t as aligned columns,
// each row prefixed with its position.
func PrintPreview(w io.Writer, t *domain.Table, n int) error {
	n = max(0, min(n, len(t.Rows)))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(t.Columns, "\t"))
	for i, row := range t.Rows[:n] {
		fmt.Fprintf(tw, "%s\t%s\t\n", strconv.Itoa(i), strings.Join(row, "\t"))
	}

	return tw.Flush()
}
