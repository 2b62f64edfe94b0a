package postgres

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harbourml/vectorstore/v1/schema"
)

// SQL assembly for schema-driven collection tables. Every logical
// property becomes a typed column named by its storage name, so WHERE
// fragments rendered by the SQL backend execute verbatim against the
// table.

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// columnType maps a declared property type to a PostgreSQL column type.
func columnType(t schema.Type) string {
	if t.IsCollection() {
		return "jsonb"
	}
	switch t.Kind {
	case schema.KindString:
		return "text"
	case schema.KindBool:
		return "boolean"
	case schema.KindInt32:
		return "integer"
	case schema.KindInt64:
		return "bigint"
	case schema.KindFloat32:
		return "real"
	case schema.KindFloat64:
		return "double precision"
	case schema.KindDecimal:
		return "numeric"
	case schema.KindDateTime:
		return "timestamptz"
	case schema.KindUUID:
		return "uuid"
	default:
		return "text"
	}
}

func createTableSQL(model *schema.CollectionModel, vectorSize uint64) string {
	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(quoteIdent(model.Name()))
	b.WriteString(` ("id" text PRIMARY KEY, "embedding" vector(`)
	b.WriteString(strconv.FormatUint(vectorSize, 10))
	b.WriteString(")")
	for _, p := range model.Properties() {
		b.WriteString(", ")
		b.WriteString(quoteIdent(p.StorageName))
		b.WriteString(" ")
		b.WriteString(columnType(p.Type))
	}
	b.WriteString(")")
	return b.String()
}

// buildSearchSQL renders the full similarity query. The WHERE fragment
// comes from the SQL backend fully parenthesized, so it is embedded
// as-is.
func buildSearchSQL(model *schema.CollectionModel, where string, vector []float32, topK int) string {
	vec := "'" + formatVector(vector) + "'::vector"

	var b strings.Builder
	b.WriteString(`SELECT "id", 1 - ("embedding" <=> `)
	b.WriteString(vec)
	b.WriteString(") AS score")
	for _, p := range model.Properties() {
		b.WriteString(", ")
		b.WriteString(quoteIdent(p.StorageName))
	}
	b.WriteString(" FROM ")
	b.WriteString(quoteIdent(model.Name()))
	if where != "" {
		b.WriteString(" WHERE ")
		b.WriteString(where)
	}
	b.WriteString(` ORDER BY "embedding" <=> `)
	b.WriteString(vec)
	b.WriteString(" LIMIT ")
	b.WriteString(strconv.Itoa(topK))
	return b.String()
}

// upsertSQL renders an INSERT ... ON CONFLICT DO UPDATE statement with
// one placeholder per column.
func upsertSQL(model *schema.CollectionModel) string {
	props := model.Properties()

	cols := make([]string, 0, 2+len(props))
	cols = append(cols, `"id"`, `"embedding"`)
	for _, p := range props {
		cols = append(cols, quoteIdent(p.StorageName))
	}

	placeholders := make([]string, len(cols))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	placeholders[1] = "?::vector"

	updates := make([]string, 0, len(cols)-1)
	for _, col := range cols[1:] {
		updates = append(updates, col+" = EXCLUDED."+col)
	}

	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) ON CONFLICT ("id") DO UPDATE SET %s`,
		quoteIdent(model.Name()),
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(updates, ", "))
}

// formatVector renders a pgvector literal: [0.1,0.2,...]
func formatVector(vector []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vector {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
