package tablegen

// cFile is a C translation unit seen as a run of array initializers and
// tokens that are skipped.
type cFile struct {
	Items []*cItem `parser:"@@*"`
}

type cItem struct {
	Array *cArray `parser:"  @@"`
	Token string  `parser:"| @(Ident | Number | String | Char | Punct | Other)"`
}

// cArray matches `*Name[] = { ... }` and `*Name[126] = { ... }`. The
// qualifiers and element type before the star are skipped as tokens.
type cArray struct {
	Name     string   `parser:"\"*\" @Ident \"[\" Number? \"]\" \"=\" \"{\""`
	Elements []*cElem `parser:"( @@ \",\"? )* \"}\""`
}

// cElem is one initializer: adjacent string literals, a name such as NULL or
// another array, a number, or a braced group.
type cElem struct {
	Parts []string `parser:"  @String+"`
	Ref   string   `parser:"| \"&\"? @Ident ( \"[\" Number \"]\" )?"`
	Num   string   `parser:"| @Number"`
	Group []*cElem `parser:"| \"{\" ( @@ \",\"? )* \"}\""`
}

// values returns the literals of a string array, with NULL and "" both
// marking an unassigned slot. ok is false unless every element is a literal
// or NULL and at least one is a literal.
func (a *cArray) values() (values []string, ok bool, err error) {
	values = make([]string, 0, len(a.Elements))
	named := false
	for _, e := range a.Elements {
		switch {
		case len(e.Parts) > 0:
			s, err := unquoteC(e.Parts)
			if err != nil {
				return nil, false, err
			}
			values = append(values, s)
			named = true
		case e.Ref == "NULL":
			values = append(values, "")
		default:
			return nil, false, nil
		}
	}
	return values, named, nil
}

// refs returns the array names listed by an index array such as
// `*mBanks[] = { mBank0, mBank1 }`, looking one level into braced groups.
func (a *cArray) refs() []string {
	var names []string
	for _, e := range a.Elements {
		switch {
		case e.Ref != "" && e.Ref != "NULL":
			names = append(names, e.Ref)
		case len(e.Group) > 0 && e.Group[0].Ref != "":
			names = append(names, e.Group[0].Ref)
		}
	}
	return names
}
