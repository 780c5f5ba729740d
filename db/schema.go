package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// CreateTables creates the salesperson, client and route tables for the
// current dialect. All statements share one transaction.
func (db *DB) CreateTables(ctx context.Context) error {
	stmts, err := schemaStatements(db.dialect)
	if err != nil {
		return err
	}

	err = db.inTx(ctx, func(tx *sql.Tx) error {
		for _, stmt := range stmts {
			res := db.handle(ctx, &QueryContext{
				Type:    "DDL",
				Builder: RawQuery(db, stmt),
			}, func(ctx context.Context, qc *QueryContext) *QueryResult {
				r, err := tx.ExecContext(ctx, qc.Query.SQL, qc.Query.Args...)
				return &QueryResult{Result: r, Err: err}
			})
			if res.Err != nil {
				return res.Err
			}
		}
		return nil
	})
	if err != nil {
		db.log.Error().Err(err).Msg("failed to create tables")
		return fmt.Errorf("db: create tables: %w", err)
	}
	db.log.Info().Int("statements", len(stmts)).Msg("tables created")
	return nil
}

func schemaStatements(d Dialect) ([]string, error) {
	data, err := schemaFS.ReadFile(d.schemaFile())
	if err != nil {
		return nil, err
	}
	parts := strings.Split(string(data), ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p)
		}
	}
	return stmts, nil
}
