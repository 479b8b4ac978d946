package audit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/pkg/errors"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var rule = strings.Repeat("=", 80)

type jsonReport struct {
	Both         []string `json:"both"`
	DiskOnly     []string `json:"diskOnly"`
	ManifestOnly []string `json:"manifestOnly"`
}

// Render formats a result for the terminal. Names are always sorted.
func Render(result ComparisonResult, format string) (string, error) {
	switch format {
	case "", FormatText:
		return renderText(result), nil
	case FormatJSON:
		out, err := json.MarshalIndent(jsonReport{
			Both:         result.Both.Sorted(),
			DiskOnly:     result.DiskOnly.Sorted(),
			ManifestOnly: result.ManifestOnly.Sorted(),
		}, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "marshal report")
		}
		return string(out), nil
	default:
		return "", errors.Errorf("unknown output format %q, expected %s or %s", format, FormatText, FormatJSON)
	}
}

func renderText(result ComparisonResult) string {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf, "COMPARISON REPORT")
	fmt.Fprintln(&buf, rule)
	fmt.Fprintln(&buf)

	table := uitable.New()
	table.AddRow("Files in both manifest and source dir:", result.Both.Len())
	table.AddRow("Files in source dir but NOT in manifest:", result.DiskOnly.Len())
	table.AddRow("Files in manifest but NOT in source dir:", result.ManifestOnly.Len())
	fmt.Fprintln(&buf, table.String())

	section(&buf, "IN SOURCE DIR BUT NOT IN MANIFEST", result.DiskOnly.Sorted())
	section(&buf, "IN MANIFEST BUT NOT IN SOURCE DIR", result.ManifestOnly.Sorted())
	section(&buf, "FILES IN BOTH", result.Both.Sorted())

	return strings.TrimRight(buf.String(), "\n")
}

func section(buf *bytes.Buffer, title string, names []string) {
	if len(names) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, rule)
	fmt.Fprintf(buf, "%s (%d files):\n", title, len(names))
	fmt.Fprintln(buf, rule)
	for _, name := range names {
		fmt.Fprintf(buf, "  - %s\n", name)
	}
}
