package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/coderi421/routemgr/db/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelector_Build(t *testing.T) {
	db := memoryDB(t)

	testCases := []struct {
		name      string
		q         QueryBuilder
		wantQuery *Query
		wantErr   error
	}{
		{
			name:    "no table",
			q:       NewSelector(db),
			wantErr: errs.ErrEmptyTable,
		},
		{
			name: "all columns",
			q:    NewSelector(db).From("salesperson"),
			wantQuery: &Query{
				SQL: `SELECT * FROM "salesperson";`,
			},
		},
		{
			name: "with schema",
			q:    NewSelector(db).From("public.salesperson"),
			wantQuery: &Query{
				SQL: `SELECT * FROM "public"."salesperson";`,
			},
		},
		{
			name: "columns",
			q:    NewSelector(db).Select("id", "name", "email").From("salesperson"),
			wantQuery: &Query{
				SQL: `SELECT "id", "name", "email" FROM "salesperson";`,
			},
		},
		{
			// 引号需要转义
			name: "quote in identifier",
			q:    NewSelector(db).Select(`we"ird`).From("salesperson"),
			wantQuery: &Query{
				SQL: `SELECT "we""ird" FROM "salesperson";`,
			},
		},
		{
			name:    "empty column",
			q:       NewSelector(db).Select("id", "").From("salesperson"),
			wantErr: errs.NewErrInvalidIdentifier(""),
		},
		{
			name:    "dangling dot",
			q:       NewSelector(db).From("public."),
			wantErr: errs.NewErrInvalidIdentifier("public."),
		},
		{
			name:    "empty predicate",
			q:       NewSelector(db).From("salesperson").Where(Predicate{}),
			wantErr: errs.ErrEmptyPredicate,
		},
		{
			name:    "empty predicate in and",
			q:       NewSelector(db).From("salesperson").Where(C("id").EQ(1), Predicate{}),
			wantErr: errs.ErrEmptyPredicate,
		},
		{
			name:    "not of empty predicate",
			q:       NewSelector(db).From("salesperson").Where(Not(Predicate{})),
			wantErr: errs.ErrEmptyPredicate,
		},
		{
			name: "single predicate",
			q:    NewSelector(db).Select("id").From("salesperson").Where(C("email").EQ("dwight@dundermifflin.com")),
			wantQuery: &Query{
				SQL:  `SELECT "id" FROM "salesperson" WHERE "email" = $1;`,
				Args: []any{"dwight@dundermifflin.com"},
			},
		},
		{
			name: "multiple predicates",
			q:    NewSelector(db).From("salesperson").Where(C("id").GT(1), C("id").LT(10)),
			wantQuery: &Query{
				SQL:  `SELECT * FROM "salesperson" WHERE ("id" > $1) AND ("id" < $2);`,
				Args: []any{1, 10},
			},
		},
		{
			name: "or",
			q:    NewSelector(db).From("salesperson").Where(C("name").EQ("Dwight").Or(C("name").NEQ("Jim"))),
			wantQuery: &Query{
				SQL:  `SELECT * FROM "salesperson" WHERE ("name" = $1) OR ("name" <> $2);`,
				Args: []any{"Dwight", "Jim"},
			},
		},
		{
			name: "not",
			q:    NewSelector(db).From("salesperson").Where(Not(C("active").EQ(true))),
			wantQuery: &Query{
				SQL:  `SELECT * FROM "salesperson" WHERE NOT ("active" = $1);`,
				Args: []any{true},
			},
		},
		{
			name: "raw predicate",
			q:    NewSelector(db).From("salesperson").Where(Raw("created < NOW()").AsPredicate()),
			wantQuery: &Query{
				SQL: `SELECT * FROM "salesperson" WHERE created < NOW();`,
			},
		},
		{
			name: "raw predicate with args",
			q: NewSelector(db).From("salesperson").
				Where(Raw("name LIKE ?", "D%").AsPredicate().And(C("active").EQ(true))),
			wantQuery: &Query{
				SQL:  `SELECT * FROM "salesperson" WHERE (name LIKE $1) AND ("active" = $2);`,
				Args: []any{"D%", true},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := tc.q.Build()
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantQuery, q)
		})
	}
}

func TestSelector_Build_Dialects(t *testing.T) {
	testCases := []struct {
		name    string
		dialect Dialect
		wantSQL string
	}{
		{
			name:    "postgres",
			dialect: Postgres,
			wantSQL: `SELECT "id" FROM "salesperson" WHERE ("email" = $1) AND ("active" = $2);`,
		},
		{
			name:    "mysql",
			dialect: MySQL,
			wantSQL: "SELECT `id` FROM `salesperson` WHERE (`email` = ?) AND (`active` = ?);",
		},
		{
			name:    "sqlite3",
			dialect: SQLite3,
			wantSQL: `SELECT "id" FROM "salesperson" WHERE ("email" = ?) AND ("active" = ?);`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db := memoryDB(t, DBWithDialect(tc.dialect))
			q, err := NewSelector(db).Select("id").From("salesperson").
				Where(C("email").EQ("a@b.c"), C("active").EQ(true)).Build()
			require.NoError(t, err)
			assert.Equal(t, tc.wantSQL, q.SQL)
			assert.Equal(t, []any{"a@b.c", true}, q.Args)
		})
	}
}

func TestSelector_Build_Repeatable(t *testing.T) {
	s := NewSelector(memoryDB(t)).From("route").Where(C("id").EQ(3))
	first, err := s.Build()
	require.NoError(t, err)
	second, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSelector_Get(t *testing.T) {
	db, mock := mockDB(t)

	mock.ExpectQuery(`SELECT * FROM "salesperson" WHERE "id" = $1;`).
		WithArgs(int64(1)).
		WillReturnError(errors.New("query error"))

	mock.ExpectQuery(`SELECT * FROM "salesperson" WHERE "id" = $1;`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	mock.ExpectQuery(`SELECT * FROM "salesperson" WHERE "id" = $1;`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(1), "Dwight").
			AddRow(int64(2), "Jim"))

	testCases := []struct {
		name    string
		wantErr error
		wantRow Row
	}{
		{
			name:    "query error",
			wantErr: errors.New("query error"),
		},
		{
			name:    "no row",
			wantErr: errs.ErrNoRows,
		},
		{
			// 多行时只取第一行
			name:    "first row",
			wantRow: Row{"id": int64(1), "name": "Dwight"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			row, err := NewSelector(db).From("salesperson").Where(C("id").EQ(int64(1))).Get(context.Background())
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRow, row)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSelector_GetMulti_BuildError(t *testing.T) {
	var called bool
	db, mock := mockDB(t, DBWithMiddlewares(func(next Handler) Handler {
		return func(ctx context.Context, qc *QueryContext) *QueryResult {
			called = true
			return next(ctx, qc)
		}
	}))

	_, err := NewSelector(db).Select("").From("salesperson").GetMulti(context.Background())
	assert.Equal(t, errs.NewErrInvalidIdentifier(""), err)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}
