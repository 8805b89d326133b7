package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/duls-dev/duls/internal/scan"
)

// TabSpacing is the number of spaces between tabwriter columns.
const TabSpacing = 2

// PrintJSON writes the scan result as indented JSON.
func PrintJSON(res *scan.Result, writer io.Writer) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}
	return nil
}

// PrintTable writes the scan result as an aligned table followed by a
// short summary.
func PrintTable(res *scan.Result, opts scan.Options, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	var total uint64
	for _, e := range res.Entries {
		total += e.SizeRaw

		kind := "-"
		if e.Kind == scan.Dir {
			kind = "d"
		}
		location := e.Name
		if opts.FullPath {
			location = e.Path
		}

		if e.Created != nil {
			fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n",
				kind, e.Permissions, e.SizeDisplay, e.Created.Format(time.DateTime), location)
		} else {
			fmt.Fprintf(w, "%s%s\t%s\t%s\n",
				kind, e.Permissions, e.SizeDisplay, location)
		}
	}

	fmt.Fprintf(w, "\nTotal:\t%s (%d bytes)\n", humanize.IBytes(total), total)
	fmt.Fprintf(w, "Elapsed:\t%.3fs\n", res.Elapsed)

	return w.Flush()
}
