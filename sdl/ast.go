// Package sdl parses the schema definition language that supplies the
// query engine's model metadata: model blocks with typed fields, field
// attributes (@id, @default), and block attributes (@@id for composite
// keys, @@map for table-name overrides).
package sdl

// File is the raw parse tree of one schema file.
type File struct {
	Models []*ModelDecl `parser:"@@*"`
}

// ModelDecl is one model block.
type ModelDecl struct {
	Name  string       `parser:"'model' @Ident"`
	Items []*ModelItem `parser:"LBrace @@* RBrace"`
}

// ModelItem is either a field declaration or a block attribute.
type ModelItem struct {
	Block *BlockAttr `parser:"  @@"`
	Field *FieldDecl `parser:"| @@"`
}

// FieldDecl is one field: name, logical type, optional marker, attributes.
type FieldDecl struct {
	Name     string       `parser:"@Ident"`
	Type     string       `parser:"@Ident"`
	Optional bool         `parser:"@Question?"`
	Attrs    []*FieldAttr `parser:"@@*"`
}

// FieldAttr is an @-attribute on a field, such as @id or @default(0).
type FieldAttr struct {
	Name string     `parser:"FieldAttr @Ident"`
	Args []*AttrArg `parser:"(LParen (@@ (Comma @@)*)? RParen)?"`
}

// BlockAttr is an @@-attribute on a model, such as @@id([a, b]).
type BlockAttr struct {
	Name string     `parser:"BlockAttr @Ident"`
	Args []*AttrArg `parser:"(LParen (@@ (Comma @@)*)? RParen)?"`
}

// AttrArg is one attribute argument: a field-name list, a named argument,
// or a bare literal.
type AttrArg struct {
	FieldList []string  `parser:"  LBracket (@Ident (Comma @Ident)*)? RBracket"`
	Named     *NamedArg `parser:"| @@"`
	Str       *string   `parser:"| @String"`
	Num       *string   `parser:"| @Number"`
	Ident     *string   `parser:"| @Ident"`
}

// NamedArg is a name: value argument, such as name: "pk_users".
type NamedArg struct {
	Name string  `parser:"@Ident Colon"`
	Str  *string `parser:"( @String"`
	Num  *string `parser:"| @Number"`
	Ref  *string `parser:"| @Ident )"`
}
