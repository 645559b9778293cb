package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type Server struct {
	Host string
	Port int
}

type DB struct {
	Driver string // "sqlite" or "mysql"
	Path   string // sqlite database file
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Session struct {
	Backend string // "file" or "redis"
	Dir     string
	Cookie  string
	TTLMin  int // redis backend only; file sessions live until cleared
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type Log struct {
	Level string
}

type Config struct {
	Server  Server
	DB      DB
	Session Session
	Redis   Redis
	Log     Log

	v *viper.Viper
}

// Load reads the YAML config at path. A missing file is not an error:
// every key has a default and the service runs entirely on them.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 8080)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "grocery.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "listkeeper")
	v.SetDefault("session.backend", "file")
	v.SetDefault("session.dir", "var/sessions")
	v.SetDefault("session.cookie", "session")
	v.SetDefault("session.ttl_min", 1440)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Server: Server{
			Host: v.GetString("server.host"),
			Port: v.GetInt("server.port"),
		},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Session: Session{
			Backend: v.GetString("session.backend"),
			Dir:     v.GetString("session.dir"),
			Cookie:  v.GetString("session.cookie"),
			TTLMin:  v.GetInt("session.ttl_min"),
		},
		Redis: Redis{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Log: Log{Level: v.GetString("log.level")},
		v:   v,
	}
	return cfg, nil
}

// Watch re-reads the config file on change and reports the (possibly new)
// log level. Only the log level is applied at runtime; everything else
// requires a restart.
func (c *Config) Watch(onLevel func(level string)) {
	if c.v.ConfigFileUsed() == "" {
		return
	}
	if _, err := os.Stat(c.v.ConfigFileUsed()); err != nil {
		return
	}
	c.v.OnConfigChange(func(fsnotify.Event) {
		onLevel(c.v.GetString("log.level"))
	})
	c.v.WatchConfig()
}
