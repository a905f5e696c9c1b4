// Package tablegen rebuilds the compiled-in JEP106 table of pkg/jep106 from a
// C source that lists each bank as an array of strings, such as edk2's
// MdePkg/Library/JedecJep106Lib/JedecJep106Lib.c.
package tablegen

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser extracts bank arrays from C source.
type Parser struct {
	parser *participle.Parser[cFile]
}

// NewParser creates a new Parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[cFile](
		participle.Lexer(CLexer),
		participle.Elide("Comment", "Whitespace", "Preproc"),
		// Anything that looks like the start of an array but is not one is
		// skipped token by token, which may back out of a long prefix.
		participle.UseLookahead(participle.MaxLookahead),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads C source and returns the bank arrays in bank order. If the
// source has an index array naming the banks, its order wins; otherwise the
// string arrays are taken in declaration order.
func (p *Parser) Parse(r io.Reader) ([][]string, error) {
	file, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return extractBanks(file)
}

// ParseString parses C source held in a string.
func (p *Parser) ParseString(src string) ([][]string, error) {
	return p.Parse(strings.NewReader(src))
}

// ParseFile parses the C file at filename.
func (p *Parser) ParseFile(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(file)
}

func extractBanks(file *cFile) ([][]string, error) {
	byName := make(map[string][]string)
	var declared []string
	var arrays []*cArray
	for _, item := range file.Items {
		if item.Array == nil {
			continue
		}
		arrays = append(arrays, item.Array)
		values, ok, err := item.Array.values()
		if err != nil {
			return nil, fmt.Errorf("array %s: %w", item.Array.Name, err)
		}
		if ok {
			byName[item.Array.Name] = values
			declared = append(declared, item.Array.Name)
		}
	}
	if len(declared) == 0 {
		return nil, fmt.Errorf("no string arrays found")
	}

	order := declared
	best := 0
	for _, a := range arrays {
		refs := a.refs()
		hits := 0
		for _, name := range refs {
			if _, ok := byName[name]; ok {
				hits++
			}
		}
		// A bank index references string arrays and nothing else.
		if hits > best && hits == len(refs) {
			order, best = refs, hits
		}
	}

	banks := make([][]string, 0, len(order))
	for _, name := range order {
		banks = append(banks, byName[name])
	}
	return banks, nil
}

// unquoteC joins adjacent C string literals and resolves their escapes.
func unquoteC(parts []string) (string, error) {
	var b strings.Builder
	for _, part := range parts {
		// \' is legal in a C string but not in a Go one.
		s, err := strconv.Unquote(strings.ReplaceAll(part, `\'`, `'`))
		if err != nil {
			return "", fmt.Errorf("bad string literal %s: %w", part, err)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}
