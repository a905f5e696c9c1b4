package tablegen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"text/template"
)

// BankSize is the number of codes per bank, 0x01 through 0x7E.
const BankSize = 126

// Table is a bank table ready to be written as pkg/jep106 source.
type Table struct {
	// Source names the file and revision the table came from. It appears in
	// the generated header.
	Source string
	// Banks[b][code-1] is the name for code in bank b, "" when unassigned.
	// Trailing unassigned slots may be left off.
	Banks [][]string
}

// NewTable builds a Table from parsed bank arrays. offset is the array index
// that holds code 0x01; sources that reserve a slot for code 0x00 use 1.
func NewTable(source string, arrays [][]string, offset int) (*Table, error) {
	if offset < 0 {
		return nil, fmt.Errorf("offset must not be negative, got %d", offset)
	}
	if len(arrays) == 0 {
		return nil, fmt.Errorf("no banks")
	}
	if len(arrays) > 0x100 {
		return nil, fmt.Errorf("%d banks do not fit a continuation count byte", len(arrays))
	}

	t := &Table{Source: source, Banks: make([][]string, len(arrays))}
	for b, arr := range arrays {
		var names []string
		if offset < len(arr) {
			names = arr[offset:]
		}
		if len(names) > BankSize {
			return nil, fmt.Errorf("bank %d has %d codes, more than %d", b, len(names), BankSize)
		}
		// Trim the unassigned tail; the Go array zero-fills it.
		n := len(names)
		for n > 0 && names[n-1] == "" {
			n--
		}
		t.Banks[b] = append(make([]string, 0, n), names[:n]...)
	}
	return t, nil
}

// Assigned returns the number of named slots in each bank.
func (t *Table) Assigned() []int {
	counts := make([]int, len(t.Banks))
	for b, names := range t.Banks {
		for _, name := range names {
			if name != "" {
				counts[b]++
			}
		}
	}
	return counts
}

var tableTemplate = template.Must(template.New("table").Funcs(template.FuncMap{
	"quote":        strconv.Quote,
	"inc":          func(i int) int { return i + 1 },
	"code":         func(i int) string { return fmt.Sprintf("0x%02X", i+1) },
	"continuation": continuationBytes,
}).Parse(`// Code generated by jep106gen from {{.Source}}; DO NOT EDIT.

package jep106

// banks holds the JEP106 manufacturer names. The outer index is the number
// of continuation bytes that precede the code; the inner index is code-1.
// Empty strings mark codes that are not assigned in this revision.
var banks = [...][BankSize]string{
{{- range $b, $names := .Banks}}
	// Bank {{inc $b}}, {{continuation $b}}
	{
{{- range $i, $name := $names}}
		{{quote $name}}, // {{code $i}}
{{- end}}
	},
{{- end}}
}
`))

func continuationBytes(n int) string {
	if n == 1 {
		return "1 continuation byte"
	}
	return fmt.Sprintf("%d continuation bytes", n)
}

// WriteGo writes the table as gofmt'd Go source for package jep106.
func (t *Table) WriteGo(w io.Writer) error {
	var buf bytes.Buffer
	if err := tableTemplate.Execute(&buf, t); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("format table: %w", err)
	}
	_, err = w.Write(src)
	return err
}
