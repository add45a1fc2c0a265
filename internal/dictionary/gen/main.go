// Command gen writes standard.go from the DocBook source of DICOM PS3.6.
//
//	go run ./gen -in part06.xml -out standard.go
//
// -in accepts a local file or an http(s) URL.
package main

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/kura/pkg/utils"
)

const defaultSource = "https://dicom.nema.org/medical/dicom/current/source/docbook/part06/part06.xml"

// registryTables are the PS3.6 tables holding data element definitions.
var registryTables = map[string]bool{
	"table_6-1": true, // data elements
	"table_7-1": true, // file meta elements
	"table_8-1": true, // directory structuring elements
	"table_9-1": true, // dynamic RTP payload elements
}

var vrCodes = map[string]bool{
	"AE": true, "AS": true, "AT": true, "CS": true, "DA": true, "DS": true, "DT": true,
	"FD": true, "FL": true, "IS": true, "LO": true, "LT": true, "OB": true, "OD": true,
	"OF": true, "OL": true, "OV": true, "OW": true, "PN": true, "SH": true, "SL": true,
	"SQ": true, "SS": true, "ST": true, "SV": true, "TM": true, "UC": true, "UI": true,
	"UL": true, "UN": true, "UR": true, "US": true, "UT": true, "UV": true,
}

var tagCell = regexp.MustCompile(`^\(([0-9A-F]{4}),([0-9A-F]{4})\)$`)

type entry struct {
	Tag, Name, VR, VM string
}

func main() {
	in := flag.String("in", defaultSource, "PS3.6 DocBook source, a file path or URL")
	out := flag.String("out", "standard.go", "output Go file")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := utils.NewLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(*in, *out, logger); err != nil {
		logger.Fatal("dictionary generation failed", zap.String("source", *in), zap.Error(err))
	}
}

func run(in, out string, logger *zap.Logger) error {
	src, err := open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	entries, err := parse(src)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return errors.New("no registry rows found")
	}
	code, err := render(entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, code, 0644); err != nil {
		return err
	}
	logger.Info("dictionary generated", zap.String("out", out), zap.Int("entries", len(entries)))
	return nil
}

func open(in string) (io.ReadCloser, error) {
	if !strings.HasPrefix(in, "http://") && !strings.HasPrefix(in, "https://") {
		return os.Open(in)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, in, nil)
	if err != nil {
		cancel()
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("fetch %s: %s", in, resp.Status)
	}
	return &cancelBody{ReadCloser: resp.Body, cancel: cancel}, nil
}

type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelBody) Close() error {
	defer b.cancel()
	return b.ReadCloser.Close()
}

type table struct {
	Rows []row `xml:"tbody>tr"`
}

type row struct {
	Cells []cell `xml:"td"`
}

// cell is the concatenated character data of a table cell, markup removed.
type cell string

func (c *cell) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	for depth := 0; ; {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*c = cell(b.String())
				return nil
			}
			depth--
		}
	}
}

// parse reads the registry tables and returns their entries ordered by tag. Rows for
// repeating groups (tags containing x) and rows without a keyword are skipped.
func parse(r io.Reader) ([]entry, error) {
	d := xml.NewDecoder(r)
	byTag := map[string]entry{}
	for {
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "table" || !registryTables[tableID(start)] {
			continue
		}
		var t table
		if err := d.DecodeElement(&t, &start); err != nil {
			return nil, fmt.Errorf("%s: %w", tableID(start), err)
		}
		for _, rw := range t.Rows {
			if e, ok := rowEntry(rw); ok {
				if _, dup := byTag[e.Tag]; !dup {
					byTag[e.Tag] = e
				}
			}
		}
	}
	entries := make([]entry, 0, len(byTag))
	for _, e := range byTag {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Tag < entries[j].Tag })
	return entries, nil
}

func tableID(start xml.StartElement) string {
	for _, a := range start.Attr {
		if a.Name.Local == "id" {
			return a.Value
		}
	}
	return ""
}

func rowEntry(r row) (entry, bool) {
	if len(r.Cells) < 5 {
		return entry{}, false
	}
	m := tagCell.FindStringSubmatch(strings.TrimSpace(string(r.Cells[0])))
	if m == nil {
		return entry{}, false
	}
	name := strings.Map(func(r rune) rune {
		if r == '\u200b' || r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, string(r.Cells[2]))
	if name == "" {
		return entry{}, false
	}
	vm := strings.Join(strings.Fields(string(r.Cells[4])), " ")
	if vm == "" {
		vm = "1"
	}
	return entry{Tag: m[1] + m[2], Name: name, VR: vr(string(r.Cells[3])), VM: vm}, true
}

// vr picks one code from a VR cell. "OB or OW" becomes OW, the implicit little endian
// encoding; other alternatives take the first code. Anything unrecognized is UN.
func vr(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "OB or OW" {
		return "OW"
	}
	code, _, _ := strings.Cut(s, " ")
	if !vrCodes[code] {
		return "UN"
	}
	return code
}

func render(entries []entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("// Code generated by gen from the PS3.6 registry. DO NOT EDIT.\n\n")
	b.WriteString("package dictionary\n\n")
	b.WriteString("// standardEntries is the PS3.6 registry of data elements, ordered by tag.\n")
	b.WriteString("var standardEntries = []Entry{\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "\t{%q, %q, %s, %q},\n", e.Tag, e.Name, e.VR, e.VM)
	}
	b.WriteString("}\n")
	return format.Source(b.Bytes())
}
