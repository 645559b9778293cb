package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Config struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// Connect opens the configured database. SQLite is the default; referential
// integrity is switched on per connection since SQLite ships with foreign
// keys disabled.
func Connect(cfg Config) (*gorm.DB, error) {
	if cfg.Driver == "mysql" {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	}

	dsn := cfg.Path
	if !strings.HasPrefix(dsn, ":") && !strings.Contains(dsn, "?") {
		dsn += "?_foreign_keys=on"
	}
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if strings.HasPrefix(cfg.Path, ":") {
		// In-memory databases exist per connection; pin the pool to one so
		// the schema and the data stay visible, and enable foreign keys on it.
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
		if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, err
		}
	}
	return gdb, nil
}
