package db

import (
	"strconv"
	"strings"

	"github.com/coderi421/routemgr/db/internal/errs"
)

var (
	Postgres Dialect = &postgresDialect{}
	MySQL    Dialect = &mysqlDialect{}
	SQLite3  Dialect = &sqlite3Dialect{}
)

// Dialect 屏蔽不同数据库在标识符引号、占位符以及建表语句上的差异
type Dialect interface {
	// Name is the value reported as db.system to tracing.
	Name() string
	quoter() byte
	// placeholder writes the marker for the n-th (1-based) bound argument.
	placeholder(sb *strings.Builder, n int)
	schemaFile() string
}

type standardSQL struct {
}

func (s *standardSQL) quoter() byte {
	return '"'
}

func (s *standardSQL) placeholder(sb *strings.Builder, _ int) {
	sb.WriteByte('?')
}

type postgresDialect struct {
	standardSQL
}

func (p *postgresDialect) Name() string {
	return "postgresql"
}

func (p *postgresDialect) placeholder(sb *strings.Builder, n int) {
	sb.WriteByte('$')
	sb.WriteString(strconv.Itoa(n))
}

func (p *postgresDialect) schemaFile() string {
	return "schema/postgres.sql"
}

type mysqlDialect struct {
	standardSQL
}

func (m *mysqlDialect) Name() string {
	return "mysql"
}

func (m *mysqlDialect) quoter() byte {
	return '`'
}

func (m *mysqlDialect) schemaFile() string {
	return "schema/mysql.sql"
}

type sqlite3Dialect struct {
	standardSQL
}

func (s *sqlite3Dialect) Name() string {
	return "sqlite"
}

func (s *sqlite3Dialect) schemaFile() string {
	return "schema/sqlite3.sql"
}

// DialectFor maps a database/sql driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case "pgx", "postgres", "postgresql":
		return Postgres, nil
	case "mysql":
		return MySQL, nil
	case "sqlite3", "sqlite":
		return SQLite3, nil
	default:
		return nil, errs.NewErrUnsupportedDriver(driver)
	}
}
