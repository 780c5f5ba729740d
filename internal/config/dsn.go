package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// SQLDriver is the database/sql driver name registered for Driver.
func (d DatabaseConfig) SQLDriver() string {
	if d.Driver == "postgres" {
		return "pgx"
	}
	return d.Driver
}

// DSN builds the connection string for the configured driver.
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case "mysql":
		cfg := mysql.NewConfig()
		cfg.User = d.User
		cfg.Passwd = d.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
		cfg.DBName = d.Name
		cfg.ParseTime = true
		return cfg.FormatDSN()
	case "sqlite3":
		return d.Name
	default:
		return d.postgresDSN()
	}
}

// postgresDSN 使用 key=value 格式，值里的空格和引号需要转义
func (d DatabaseConfig) postgresDSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	parts := []string{
		"host=" + pgQuote(d.Host),
		fmt.Sprintf("port=%d", d.Port),
		"dbname=" + pgQuote(d.Name),
		"sslmode=" + pgQuote(sslMode),
	}
	if d.User != "" {
		parts = append(parts, "user="+pgQuote(d.User))
	}
	if d.Password != "" {
		parts = append(parts, "password="+pgQuote(d.Password))
	}
	return strings.Join(parts, " ")
}

func pgQuote(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
