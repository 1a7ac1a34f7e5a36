package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"ripple/internal/common"
	"ripple/internal/dbmysql"
	"ripple/internal/di"
)

func main() {
	log.Info("starting chat service")

	app, err := di.InitializeApplication()
	if err != nil {
		log.Fatal("failed to initialize", "err", err)
	}

	if level, err := log.ParseLevel(app.Config.Logging.Level); err == nil {
		log.SetLevel(level)
	}

	if err := dbmysql.Migrate(app.DB); err != nil {
		log.Fatal("failed to migrate database", "err", err)
	}
	log.Info("database migration completed")

	// The websocket hub is the delivery layer for the event bus.
	app.Bus.Subscribe(app.Hub)
	go app.Hub.Run()

	router := mux.NewRouter()
	router.Use(common.LoggingMiddleware)

	api := router.PathPrefix("/v1").Subrouter()
	api.Use(common.AuthMiddleware([]byte(app.Config.Auth.JWTSecret)))
	app.UserHandler.RegisterRoutes(api)
	app.ChatHandler.RegisterRoutes(api)
	api.HandleFunc("/ws", app.Hub.ServeWS).Methods(http.MethodGet)

	server := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Info("chat service running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down chat service")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "err", err)
	}
	if app.Mongo != nil {
		_ = app.Mongo.Close(ctx)
	}
	log.Info("chat service stopped")
}
