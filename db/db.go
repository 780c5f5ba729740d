package db

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/coderi421/routemgr/db/internal/errs"
	"github.com/coderi421/routemgr/internal/config"
	"github.com/rs/zerolog"
)

type DBOption func(*DB)

// DB owns a single database/sql handle. The handle is opened on first use
// and kept until Disconnect; every statement borrows one connection from it
// and gives it back before returning.
type DB struct {
	core

	driver string
	dsn    string
	// cfg 只有 OpenConfig 会设置
	cfg config.DatabaseConfig

	mu sync.Mutex
	db *sql.DB
}

// Open creates a DB for the given driver and DSN without touching the
// network. The dialect follows the driver unless DBWithDialect overrides it.
func Open(driver, dsn string, opts ...DBOption) (*DB, error) {
	db := newDB(opts...)
	db.driver = driver
	db.dsn = dsn
	if db.dialect == nil {
		d, err := DialectFor(driver)
		if err != nil {
			return nil, err
		}
		db.dialect = d
	}
	return db, nil
}

// OpenConfig opens a DB from connection settings (host, port, user,
// password, database name). The settings stay readable through Config.
func OpenConfig(cfg config.DatabaseConfig, opts ...DBOption) (*DB, error) {
	db, err := Open(cfg.SQLDriver(), cfg.DSN(), opts...)
	if err != nil {
		return nil, err
	}
	db.cfg = cfg
	return db, nil
}

// OpenDB wraps an already opened handle, mostly for tests.
// Without DBWithDialect the dialect is Postgres.
func OpenDB(sqlDB *sql.DB, opts ...DBOption) (*DB, error) {
	db := newDB(opts...)
	db.db = sqlDB
	if db.dialect == nil {
		db.dialect = Postgres
	}
	return db, nil
}

// MustOpen panics if Open fails.
func MustOpen(driver, dsn string, opts ...DBOption) *DB {
	db, err := Open(driver, dsn, opts...)
	if err != nil {
		panic(err)
	}
	return db
}

func newDB(opts ...DBOption) *DB {
	nop := zerolog.Nop()
	db := &DB{
		core: core{
			log: &nop,
		},
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

func DBWithDialect(d Dialect) DBOption {
	return func(db *DB) {
		db.dialect = d
	}
}

func DBWithMiddlewares(mdls ...Middleware) DBOption {
	return func(db *DB) {
		db.mdls = mdls
	}
}

func DBWithLogger(l zerolog.Logger) DBOption {
	return func(db *DB) {
		l = l.With().Str("component", "db").Logger()
		db.log = &l
	}
}

func (db *DB) Driver() string {
	return db.driver
}

func (db *DB) DSN() string {
	return db.dsn
}

// Config returns the settings given to OpenConfig, the zero value otherwise.
func (db *DB) Config() config.DatabaseConfig {
	return db.cfg
}

func (db *DB) Dialect() Dialect {
	return db.dialect
}

func (db *DB) Logger() *zerolog.Logger {
	return db.log
}

// Conn returns the live handle, nil when disconnected.
func (db *DB) Conn() *sql.DB {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.db
}

// Connect opens and pings the handle if none is open.
func (db *DB) Connect(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.connectLocked(ctx)
}

func (db *DB) connectLocked(ctx context.Context) error {
	if db.db != nil {
		db.log.Debug().Msg("connection was already open")
		return nil
	}
	if db.driver == "" {
		return errs.ErrNotConnected
	}

	sqlDB, err := sql.Open(db.driver, db.dsn)
	if err != nil {
		db.log.Error().Err(err).Str("driver", db.driver).Msg("failed to open connection")
		return fmt.Errorf("db: open %s: %w", db.driver, err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		db.log.Error().Err(err).Str("driver", db.driver).Msg("failed to reach database")
		return fmt.Errorf("db: ping %s: %w", db.driver, err)
	}

	db.db = sqlDB
	db.log.Info().Str("driver", db.driver).Msg("connection opened successfully")
	return nil
}

// Disconnect closes the handle if it is open.
func (db *DB) Disconnect() error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.db == nil {
		return nil
	}
	if err := db.db.Close(); err != nil {
		db.log.Error().Err(err).Msg("failed to close connection")
		return fmt.Errorf("db: close: %w", err)
	}
	db.db = nil
	db.log.Info().Msg("connection closed successfully")
	return nil
}

// acquire 确保连接已经打开，然后借出一个独占的连接
// 调用方负责 Close
func (db *DB) acquire(ctx context.Context) (*sql.Conn, error) {
	db.mu.Lock()
	if err := db.connectLocked(ctx); err != nil {
		db.mu.Unlock()
		return nil, err
	}
	sqlDB := db.db
	db.mu.Unlock()
	return sqlDB.Conn(ctx)
}

// queryRows runs a read on a borrowed connection.
func (db *DB) queryRows(ctx context.Context, q *Query) ([]Row, error) {
	conn, err := db.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer db.release(conn)

	rows, err := conn.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	return scanRows(rows)
}

// execTx runs a single write in its own transaction on a borrowed connection.
// The transaction is committed on success and rolled back otherwise.
func (db *DB) execTx(ctx context.Context, table string, q *Query) (sql.Result, error) {
	var res sql.Result
	err := db.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		res, err = tx.ExecContext(ctx, q.SQL, q.Args...)
		return err
	})
	if err != nil {
		return nil, translateErr(table, err)
	}
	return res, nil
}

func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	conn, err := db.acquire(ctx)
	if err != nil {
		return err
	}
	defer db.release(conn)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			db.log.Error().Err(rbErr).Msg("rollback failed")
		}
		return err
	}
	return tx.Commit()
}

func (db *DB) release(conn *sql.Conn) {
	if err := conn.Close(); err != nil {
		db.log.Warn().Err(err).Msg("failed to release connection")
	}
}

// scanRows 把结果集转换成 []Row，[]byte 转成 string
func scanRows(rows *sql.Rows) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	res := make([]Row, 0, 4)
	for rows.Next() {
		vals := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err = rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, c := range columns {
			if bs, ok := vals[i].([]byte); ok {
				row[c] = string(bs)
				continue
			}
			row[c] = vals[i]
		}
		res = append(res, row)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
