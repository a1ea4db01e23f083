package psqlbuilder

import (
	"strings"

	"github.com/Masterminds/squirrel"
)

// psql билдер запросов с плейсхолдерами PostgreSQL ($1, $2, ...)
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return psql.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return psql.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return psql.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return psql.Delete(table)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Contains шаблон ILIKE для поиска подстроки. Символы % и _ из ввода
// экранируются, ESCAPE по умолчанию в PostgreSQL это обратный слеш
func Contains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
