package db

// database/sql 驱动注册：pgx 注册为 "pgx"，mysql 和 sqlite3 在 sqlerr.go 中引入
import _ "github.com/jackc/pgx/v5/stdlib"
