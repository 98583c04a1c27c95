package sdl

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/spf13/afero"

	"github.com/quillorm/quill/internal/sqlstr"
	"github.com/quillorm/quill/schema"
)

var parser = participle.MustBuild[File](
	participle.Lexer(schemaLexer),
	participle.Elide("Whitespace", "Newline", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Parse parses a schema from a reader and converts it to table metadata.
func Parse(filename string, r io.Reader) ([]*schema.Table, error) {
	file, err := parser.Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return convert(file)
}

// ParseString parses a schema from a string.
func ParseString(filename, input string) ([]*schema.Table, error) {
	return Parse(filename, strings.NewReader(input))
}

// ParseFile parses a schema file through the given filesystem.
func ParseFile(fs afero.Fs, path string) ([]*schema.Table, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// convert lowers the parse tree into schema tables.
func convert(file *File) ([]*schema.Table, error) {
	tables := make([]*schema.Table, 0, len(file.Models))
	for _, model := range file.Models {
		table, err := convertModel(model)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", model.Name, err)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func convertModel(model *ModelDecl) (*schema.Table, error) {
	table := &schema.Table{Name: toSnakeCase(model.Name)}

	var idFields []string
	var idName string

	for _, item := range model.Items {
		switch {
		case item.Field != nil:
			col, isID, err := convertField(item.Field)
			if err != nil {
				return nil, err
			}
			table.Columns = append(table.Columns, col)
			if isID {
				idFields = append(idFields, col.Name)
			}

		case item.Block != nil:
			switch item.Block.Name {
			case "id":
				fields, name, err := compositeKeyArgs(item.Block)
				if err != nil {
					return nil, err
				}
				idFields = append(idFields, fields...)
				if name != "" {
					idName = name
				}
			case "map":
				if name := firstStringArg(item.Block.Args); name != "" {
					table.Name = name
				}
			default:
				return nil, fmt.Errorf("unknown block attribute @@%s", item.Block.Name)
			}
		}
	}

	if len(idFields) > 0 {
		pk, err := schema.NewNamedCompositePrimaryKey(idFields, idName)
		if err != nil {
			return nil, err
		}
		table.PrimaryKey = pk
	}

	return table, nil
}

func convertField(field *FieldDecl) (schema.Column, bool, error) {
	col := schema.Column{
		Name:     toSnakeCase(field.Name),
		Type:     field.Type,
		Nullable: field.Optional,
	}

	isID := false
	for _, attr := range field.Attrs {
		switch attr.Name {
		case "id":
			isID = true
		case "default":
			col.Default = defaultLiteral(attr.Args)
		case "map":
			if name := firstStringArg(attr.Args); name != "" {
				col.Name = name
			}
		default:
			return col, false, fmt.Errorf("field %s: unknown attribute @%s", field.Name, attr.Name)
		}
	}

	return col, isID, nil
}

// compositeKeyArgs pulls the field list and optional name out of an
// @@id([a, b], name: "...") attribute.
func compositeKeyArgs(attr *BlockAttr) ([]string, string, error) {
	var fields []string
	var name string
	for _, arg := range attr.Args {
		switch {
		case arg.FieldList != nil:
			fields = append(fields, arg.FieldList...)
		case arg.Named != nil && arg.Named.Name == "name" && arg.Named.Str != nil:
			name = *arg.Named.Str
		default:
			return nil, "", fmt.Errorf("@@id: unsupported argument")
		}
	}
	if len(fields) == 0 {
		return nil, "", fmt.Errorf("@@id requires a field list")
	}
	return fields, name, nil
}

// defaultLiteral renders a @default argument as a SQL literal.
func defaultLiteral(args []*AttrArg) string {
	if len(args) == 0 {
		return ""
	}
	arg := args[0]
	switch {
	case arg.Str != nil:
		return sqlstr.Quote(*arg.Str)
	case arg.Num != nil:
		return *arg.Num
	case arg.Ident != nil:
		// Bare identifiers pass through: true, false, now() spellings.
		return strings.ToUpper(*arg.Ident)
	}
	return ""
}

func firstStringArg(args []*AttrArg) string {
	for _, arg := range args {
		if arg.Str != nil {
			return *arg.Str
		}
	}
	return ""
}

// toSnakeCase converts CamelCase identifiers to snake_case names.
func toSnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
