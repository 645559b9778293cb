package initialize

import (
	"fmt"
	"net/http"
	"time"

	"listkeeper/app/controllers"
	"listkeeper/app/db"
	"listkeeper/app/middleware"
	"listkeeper/app/models"
	"listkeeper/app/repo"
	"listkeeper/app/services"
	"listkeeper/app/session"
	"listkeeper/app/views"
	"listkeeper/config"
	"listkeeper/global"
	"listkeeper/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sessions *session.Manager
	Users    *services.UserService
	Lists    *services.ListService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = *cfg
	ApplyLogLevel(cfg.Log.Level)

	gdb, err := db.Connect(db.Config{
		Driver:   cfg.DB.Driver,
		Path:     cfg.DB.Path,
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Gdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.ListItem{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	store, err := buildSessionStore(cfg)
	if err != nil {
		return nil, err
	}
	sessions := session.NewManager(store, cfg.Session.Cookie)

	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	userRepo := repo.NewUserRepository(gdb)
	listRepo := repo.NewListRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	listSvc := services.NewListService(listRepo)

	authCtrl := controllers.NewAuthController(userSvc, sessions, renderer)
	listCtrl := controllers.NewListController(listSvc, renderer)
	guard := &middleware.Guard{Sessions: sessions}

	h := router.New(authCtrl, listCtrl, guard)
	h = middleware.NoCache(h)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Sessions: sessions, Users: userSvc, Lists: listSvc}, nil
}

func buildSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.Session.Backend == "redis" {
		global.Rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ttl := time.Duration(cfg.Session.TTLMin) * time.Minute
		return session.NewRedisStore(global.Rdb, ttl), nil
	}
	store, err := session.NewFileStore(cfg.Session.Dir)
	if err != nil {
		return nil, err
	}
	return store, nil
}
