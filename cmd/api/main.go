package main

import (
	"todoapp/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "todoapp/internal/adapter/db"
	httpadapter "todoapp/internal/adapter/http"
	"todoapp/internal/adapter/http/handlers"
	httpmiddleware "todoapp/internal/adapter/http/middleware"
	appservice "todoapp/internal/app/service"
	"todoapp/internal/auth"
	"todoapp/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()

	tokenManager, err := auth.NewTokenManager(cfg.Auth.SigningSecret, cfg.Auth.TokenTTL)
	if err != nil {
		logger.Fatal("failed to configure session tokens", zap.Error(err))
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepository := dbadapter.NewUserRepository(db)
	todoRepository := dbadapter.NewTodoRepository(db)
	authService := appservice.NewAuthService(userRepository, cfg.Auth.BcryptCost)
	userService := appservice.NewUserService(userRepository)
	todoService := appservice.NewTodoService(todoRepository)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, tokenManager)
	todoHandler := handlers.NewTodoHandler(todoService)
	userHandler := handlers.NewUserHandler(userService, authService)
	httpadapter.RegisterRoutes(r, tokenManager, healthHandler, authHandler, todoHandler, userHandler)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
