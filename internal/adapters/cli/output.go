package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"github.com/ogurasousui/codex-employee-records/internal/core/report"
)

const dateLayout = "2006-01-02"

func writeEmployeeTable(w io.Writer, employees []*employee.Employee) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLAST NAME\tFIRST NAME\tSSN\tEMAIL\tDIVISION\tJOB TITLE")
	for _, e := range employees {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.LastName, e.FirstName, e.SSN, e.Email,
			stringOrDash(e.DivisionName), stringOrDash(e.JobTitleName))
	}
	tw.Flush()
}

func writePayHistoryTable(w io.Writer, entries []*report.PayrollEntry) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tAMOUNT\tPERIOD START\tPERIOD END")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
			entry.ID, entry.Amount.StringFixed(2),
			entry.PeriodStart.Format(dateLayout), entry.PeriodEnd.Format(dateLayout))
	}
	tw.Flush()
}

func writeGroupTotalTable(w io.Writer, groupHeader string, totals []report.GroupTotal) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tTOTAL PAY\n", groupHeader)
	for _, total := range totals {
		fmt.Fprintf(tw, "%s\t%s\n", total.Name, total.Total.StringFixed(2))
	}
	tw.Flush()
}

func stringOrDash(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func parseDateFlag(name, value string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: expected YYYY-MM-DD", name, value)
	}
	return parsed, nil
}
