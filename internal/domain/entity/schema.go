package entity

import (
	"fmt"
	"strings"
)

var sqlTypes = map[FieldType]string{
	FieldText:        "TEXT",
	FieldRichText:    "TEXT",
	FieldNumber:      "INTEGER",
	FieldCurrency:    "NUMERIC(10,2)",
	FieldDate:        "DATE",
	FieldDateTime:    "TIMESTAMPTZ",
	FieldBoolean:     "BOOLEAN DEFAULT FALSE",
	FieldSelect:      "TEXT",
	FieldMultiSelect: "TEXT[]",
	FieldTags:        "TEXT[]",
	FieldURL:         "TEXT",
	FieldEmail:       "TEXT",
}

// FieldTypeToSQL maps a field type to its Postgres column type. Unknown
// types are stored as TEXT.
func FieldTypeToSQL(t FieldType) string {
	if s, ok := sqlTypes[t]; ok {
		return s
	}
	return "TEXT"
}

var zodTypes = map[FieldType]string{
	FieldText:        "z.string()",
	FieldRichText:    "z.string()",
	FieldNumber:      "z.coerce.number()",
	FieldCurrency:    "z.coerce.number()",
	FieldDate:        "z.string()",
	FieldDateTime:    "z.string()",
	FieldBoolean:     "z.boolean()",
	FieldMultiSelect: "z.array(z.string())",
	FieldTags:        "z.array(z.string())",
	FieldURL:         "z.string().url()",
	FieldEmail:       "z.string().email()",
}

// FieldTypeToZod renders the zod schema the web client validates a field with.
func FieldTypeToZod(f Field) string {
	var schema string
	switch {
	case f.Type == FieldSelect:
		opts := "'draft'"
		if len(f.Options) > 0 {
			quoted := make([]string, len(f.Options))
			for i, o := range f.Options {
				quoted[i] = "'" + o + "'"
			}
			opts = strings.Join(quoted, ", ")
		}
		schema = "z.enum([" + opts + "])"
	default:
		s, ok := zodTypes[f.Type]
		if !ok {
			s = "z.string()"
		}
		schema = s
	}

	if !f.Required {
		schema += ".optional()"
	}
	return schema
}

// ZodSchemas returns the zod schema of every form field keyed by field name.
func ZodSchemas(c Config) map[string]string {
	out := make(map[string]string, len(c.Fields))
	for _, f := range c.FormFields() {
		out[f.Name] = FieldTypeToZod(f)
	}
	return out
}

// CreateTableSQL renders the DDL for a record type. Every table gets a uuid
// key, the owning user and timestamps in addition to the declared fields.
func CreateTableSQL(c Config) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", c.Slug)
	b.WriteString("  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),\n")
	b.WriteString("  user_id BIGINT NOT NULL,\n")

	for _, f := range c.Fields {
		b.WriteString("  " + columnSQL(f) + ",\n")
	}

	b.WriteString("  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),\n")
	b.WriteString("  updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()\n")
	b.WriteString(");\n")
	fmt.Fprintf(&b, "CREATE INDEX IF NOT EXISTS idx_%s_user_id ON %s (user_id);\n", c.Slug, c.Slug)
	return b.String()
}

func columnSQL(f Field) string {
	sqlType := FieldTypeToSQL(f.Type)
	parts := []string{f.Name, sqlType}

	if f.Required {
		parts = append(parts, "NOT NULL")
	}
	// BOOLEAN already carries its own default
	if f.Default != nil && !strings.Contains(sqlType, "DEFAULT") {
		parts = append(parts, "DEFAULT "+sqlLiteral(f.Default))
	}
	if f.Type == FieldSelect && len(f.Options) > 0 {
		parts = append(parts, fmt.Sprintf("CHECK (%s IN (%s))", f.Name, strings.Join(quoteAll(f.Options), ", ")))
	}
	return strings.Join(parts, " ")
}

func sqlLiteral(v any) string {
	switch x := v.(type) {
	case string:
		return quote(x)
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprint(x)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = quote(s)
	}
	return out
}
