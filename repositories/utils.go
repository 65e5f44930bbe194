package repositories

import (
	"context"
	"fmt"

	"github.com/signflow/document-backend/pure_utils"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"
)

func NewQueryBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func ExecBuilder(ctx context.Context, exec Executor, builder squirrel.Sqlizer) (rowsAffected int64, err error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	tag, err := exec.Exec(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, fmt.Sprintf("error executing sql query: %s", query))
	}
	return tag.RowsAffected(), nil
}

func columnsNames(tablename string, fields []string) []string {
	return pure_utils.Map(fields, func(f string) string {
		return fmt.Sprintf("%s.%s", tablename, f)
	})
}
