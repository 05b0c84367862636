package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens a gorm DB. DSNs with a "mysql://" prefix use the MySQL
// driver; everything else is treated as a SQLite path (including
// "file::memory:" for tests).
func Connect(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	var (
		gdb *gorm.DB
		err error
	)
	if rest, ok := strings.CutPrefix(dsn, "mysql://"); ok {
		gdb, err = gorm.Open(mysql.Open(rest), cfg)
	} else {
		gdb, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return gdb, nil
}
