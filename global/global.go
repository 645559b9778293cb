package global

import (
	"listkeeper/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

var (
	Config config.Config
	Logger zerolog.Logger
	Gdb    *gorm.DB
	Rdb    *redis.Client
)
