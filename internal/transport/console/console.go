package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go-gin-user-table/internal/feature/table"
)

const help = "commands: search <text> | sort <id|username|email|isAdmin> | next | prev | help | quit"

// Run reads one command per line from in, applies it to t and redraws the
// view on out. It returns when in is exhausted or on "quit".
func Run(in io.Reader, out io.Writer, t *table.Table) error {
	if err := Render(out, t.View()); err != nil {
		return err
	}
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		arg = strings.TrimSpace(arg)

		var v table.View
		switch strings.ToLower(cmd) {
		case "":
			continue
		case "quit", "exit", "q":
			return nil
		case "search", "s", "/":
			v = t.SetSearchTerm(arg)
		case "clear":
			v = t.SetSearchTerm("")
		case "sort":
			f, err := table.ParseField(arg)
			if err != nil || f == table.FieldNone {
				fmt.Fprintf(out, "unknown column %q\n", arg)
				continue
			}
			v = t.ActivateSort(f)
		case "next", "n":
			v = t.NextPage()
		case "prev", "p":
			v = t.PrevPage()
		case "help", "?":
			fmt.Fprintln(out, help)
			continue
		default:
			fmt.Fprintf(out, "unknown command %q (try help)\n", cmd)
			continue
		}
		if err := Render(out, v); err != nil {
			return err
		}
	}
}

// Render draws the rows plus the "Showing x to y of z" and pager footer.
func Render(w io.Writer, v table.View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, f := range table.Columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, strings.ToUpper(f.Label())+sortMark(v.Sort, f))
	}
	fmt.Fprintln(tw)

	if len(v.Rows) == 0 {
		fmt.Fprintln(tw, "No users found")
	}
	for _, u := range v.Rows {
		role := "User"
		if u.IsAdmin {
			role = "Admin"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.Email, role)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d to %d of %d results | Page %d of %d\n",
		v.StartIndex, v.EndIndex, v.TotalCount, v.CurrentPage, v.TotalPages)
	return err
}

func sortMark(c table.SortConfig, f table.Field) string {
	if c.Field != f {
		return ""
	}
	if c.Direction == table.Descending {
		return " v"
	}
	return " ^"
}
