package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/passlist/internal/client/models"
)

const passwordMask = "********"

func displayPassword(r *models.Record, show bool) string {
	if show {
		return r.Password
	}
	return passwordMask
}

// renderList writes records as an aligned table.
func renderList(w io.Writer, records []*models.Record, show bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tACCOUNT\tPASSWORD\tUPDATED\tMEMO")
	for _, r := range records {
		memo, _ := r.MemoText()
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Name, r.AccountID, displayPassword(r, show), r.UpdateTime, memo)
	}
	return tw.Flush()
}

// renderRecord writes one record as "label: value" lines.
func renderRecord(w io.Writer, r *models.Record, show bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Name:\t%s\n", r.Name)
	fmt.Fprintf(tw, "Account:\t%s\n", r.AccountID)
	fmt.Fprintf(tw, "Password:\t%s\n", displayPassword(r, show))
	if r.UpdateTime.Valid() {
		fmt.Fprintf(tw, "Updated:\t%s\n", r.UpdateTime)
	} else {
		fmt.Fprintf(tw, "Updated:\t%s (not a YYYY/MM/DD date)\n", r.UpdateTime)
	}
	if memo, ok := r.MemoText(); ok {
		fmt.Fprintf(tw, "Memo:\t%s\n", memo)
	}
	return tw.Flush()
}
