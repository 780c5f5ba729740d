package db

import (
	"errors"

	"github.com/coderi421/routemgr/db/internal/errs"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const (
	pgUniqueViolation   = "23505"
	mysqlDuplicateEntry = 1062
)

// translateErr 把各个驱动的唯一约束冲突统一成 ErrDuplicateKey
// 其它错误原样返回
func translateErr(table string, err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if pgErr.TableName != "" {
			table = pgErr.TableName
		}
		return errs.NewErrDuplicateKey(table, err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return errs.NewErrDuplicateKey(table, err)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) &&
		(liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey) {
		return errs.NewErrDuplicateKey(table, err)
	}

	return err
}
