// Package store persists todos with gorm.
//
// Attributes arrive as snake_case jsonvalue mappings. They are cast to
// column types the way ActiveRecord does, validated, and saved. Records
// leave the package as snake_case mappings via Todo.AsJSON.
package store

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/erraggy/mosscow/internal/config"
	"github.com/erraggy/mosscow/todoerrors"
)

const memoryDatabase = ":memory:"

// Open connects to the database described by cfg. SQL logging goes to
// log at warn level and above.
func Open(cfg config.Database, log *logrus.Logger) (*gorm.DB, error) {
	const op = "store.Open"

	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}
	if isSQLiteFile(cfg) {
		if err := os.MkdirAll(filepath.Dir(cfg.Database), 0o750); err != nil {
			return nil, &todoerrors.StorageError{Op: "open", Cause: err}
		}
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(log, gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, &todoerrors.StorageError{Op: "open", Cause: err}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, &todoerrors.StorageError{Op: "open", Cause: err}
	}
	switch {
	case cfg.Adapter == config.AdapterSQLite && cfg.Database == memoryDatabase:
		// Every connection to :memory: is a separate database.
		sqlDB.SetMaxOpenConns(1)
	case cfg.Pool > 0:
		sqlDB.SetMaxOpenConns(cfg.Pool)
		sqlDB.SetMaxIdleConns(cfg.Pool)
	}

	log.WithFields(logrus.Fields{
		"operation": op,
		"adapter":   cfg.Adapter,
		"database":  cfg.Database,
	}).Debug("database opened")
	return db, nil
}

func isSQLiteFile(cfg config.Database) bool {
	return (cfg.Adapter == config.AdapterSQLite || cfg.Adapter == "") &&
		cfg.Database != memoryDatabase && !strings.HasPrefix(cfg.Database, "file:")
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Adapter {
	case config.AdapterSQLite, "":
		return sqlite.Open(cfg.Database), nil
	case config.AdapterMySQL:
		return gormmysql.Open(MySQLDSN(cfg)), nil
	default:
		return nil, &todoerrors.ConfigError{Option: "adapter", Value: cfg.Adapter, Message: "unsupported adapter"}
	}
}

// MySQLDSN formats the go-sql-driver DSN for a mysql section.
func MySQLDSN(cfg config.Database) string {
	mc := mysqldriver.NewConfig()
	mc.User = cfg.Username
	mc.Passwd = cfg.Password
	mc.Net = "tcp"
	host := cfg.Host
	if host == "" {
		host = "localhost"
	}
	port := cfg.Port
	if port == 0 {
		port = 3306
	}
	mc.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	mc.DBName = cfg.Database
	mc.ParseTime = true
	mc.Loc = time.UTC
	if cfg.Encoding != "" {
		mc.Params = map[string]string{"charset": cfg.Encoding}
	}
	return mc.FormatDSN()
}

// Migrate creates or updates the todos table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Todo{}); err != nil {
		return &todoerrors.StorageError{Op: "migrate", Cause: fmt.Errorf("todos: %w", err)}
	}
	return nil
}
