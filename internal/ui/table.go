package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// BranchRow is one line of the branch listing.
type BranchRow struct {
	Name      string
	Current   bool
	Published bool
}

// BranchTable renders local branches in aligned columns, marking the checked
// out branch with an asterisk and showing each branch's publication state.
func BranchTable(out io.Writer, rows []BranchRow) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join([]string{"", "BRANCH", "PUBLISHED"}, "\t"))

	for _, row := range rows {
		marker := " "
		name := Branch(row.Name)
		if row.Current {
			marker = "*"
			name = currentStyle.Render(row.Name)
		}
		published := "no"
		if row.Published {
			published = "yes"
		}
		fmt.Fprintln(tw, strings.Join([]string{marker, name, published}, "\t"))
	}

	return tw.Flush()
}
