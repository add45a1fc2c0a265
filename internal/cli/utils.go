// Package cli formats archive query results and reports for the command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hyperjump/kura/internal/dictionary"
	"github.com/hyperjump/kura/internal/models"
	"github.com/hyperjump/kura/internal/storage"
	"github.com/hyperjump/kura/pkg/utils"
)

// OutputFormat is the format for find result output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputCompact prints one record per line.
	OutputCompact OutputFormat = "compact"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// maxValueLen bounds how much of a single value the text formats print.
const maxValueLen = 64

// ParseOutputFormat parses a -output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputText, OutputCompact, OutputJSON:
		return f, nil
	case "":
		return OutputText, nil
	}
	return "", fmt.Errorf("unknown output format %q: use text, compact or json", s)
}

// WriteFindResults writes find results to w. dict names the attributes in text formats;
// nil means the standard dictionary.
func WriteFindResults(w io.Writer, resp *models.FindResponse, dict *dictionary.Dictionary, format OutputFormat) error {
	if dict == nil {
		dict = dictionary.Standard()
	}
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	case OutputCompact:
		for _, ds := range resp.Results {
			fields := make([]string, 0, len(ds))
			for _, tag := range sortedTags(ds) {
				fields = append(fields, dict.Name(tag)+"="+utils.Truncate(FormatValue(ds[tag]), maxValueLen))
			}
			if _, err := fmt.Fprintln(w, strings.Join(fields, "\t")); err != nil {
				return err
			}
		}
		return nil
	default:
		return writeFindResultsText(w, resp, dict)
	}
}

func writeFindResultsText(w io.Writer, resp *models.FindResponse, dict *dictionary.Dictionary) error {
	if _, err := fmt.Fprintf(w, "\nFound %d %s records in %dms\n\n", resp.Total, strings.ToLower(string(resp.Level)), resp.QueryTime); err != nil {
		return err
	}
	for i, ds := range resp.Results {
		fmt.Fprintf(w, "--- [%d] ---\n", i+1)
		for _, tag := range sortedTags(ds) {
			attr := ds[tag]
			fmt.Fprintf(w, "(%s,%s) %-32s %-2s %s\n",
				tag[:4], tag[4:], dict.Name(tag), attr.VR, utils.Truncate(FormatValue(attr), maxValueLen))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func sortedTags(ds models.Dataset) []string {
	tags := make([]string, 0, len(ds))
	for tag := range ds {
		if len(tag) == 8 {
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags
}

// FormatValue renders an attribute's values the way they appear in a DICOM header dump:
// multiple values joined by a backslash, person names by their alphabetic group.
func FormatValue(attr models.Attribute) string {
	if attr.BulkDataURI != "" || attr.InlineBinary != "" {
		return "<binary>"
	}
	parts := make([]string, 0, len(attr.Value))
	for _, v := range attr.Value {
		switch x := v.(type) {
		case nil:
			parts = append(parts, "")
		case string:
			parts = append(parts, x)
		case float64:
			parts = append(parts, strconv.FormatFloat(x, 'f', -1, 64))
		case models.PersonName:
			parts = append(parts, x.Alphabetic)
		case models.Dataset:
			parts = append(parts, fmt.Sprintf("<item: %d attributes>", len(x)))
		default:
			parts = append(parts, fmt.Sprint(x))
		}
	}
	return strings.Join(parts, `\`)
}

// WriteImportResult prints the summary line of an import run.
func WriteImportResult(w io.Writer, count int) error {
	_, err := fmt.Fprintf(w, "import finished, %d files imported.\n", count)
	return err
}

// WriteStatus prints archive counts and storage usage.
func WriteStatus(w io.Writer, st Status) error {
	_, err := fmt.Fprintf(w, "Index:     %s\nStudies:   %d\nSeries:    %d\nInstances: %d\nObjects:   %d files, %s\nDatabase:  %s\n",
		st.IndexType, st.Studies, st.Series, st.Instances, st.Objects.Files, FormatBytes(st.Objects.Bytes), FormatBytes(st.Database.Bytes))
	return err
}

// Status is the archive summary shown by the status command.
type Status struct {
	IndexType string `json:"index_type"`
	models.IndexStats
	Objects  storage.Usage `json:"objects_usage"`
	Database storage.Usage `json:"database_usage"`
}

// FormatBytes renders n with a binary unit suffix.
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
