package tablegen

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CLexer splits C source into just enough tokens to find array initializers.
// Preprocessor lines and comments are kept as tokens so the parser can elide
// them.
var CLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*(?s:.*?)\*/`},
	// Continued lines ("\" before the newline) stay in the directive.
	{Name: "Preproc", Pattern: `#(?:\\\r?\n|[^\n])*`},
	{Name: "Whitespace", Pattern: `\s+`},

	{Name: "String", Pattern: `"(?:[^"\\\n]|\\.)*"`},
	{Name: "Char", Pattern: `'(?:[^'\\\n]|\\.)*'`},
	{Name: "Number", Pattern: `0[xX][0-9A-Fa-f]+[uUlL]*|[0-9]+[uUlL]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[-+*/%&|^!~<>=?:;,.(){}\[\]]`},

	// Anything else, so stray characters in code we skip never stop the lexer.
	{Name: "Other", Pattern: `[^\s]`},
})
