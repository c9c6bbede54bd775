package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"Gin_redis_dress_rental/app"
	"Gin_redis_dress_rental/config"
	"Gin_redis_dress_rental/routes"
)

func main() {
	config.LoadEnv()
	application := app.MustNew()
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routes.RegisterRoutes(application.Router, application)
	application.StartSessionSweeper(ctx, time.Minute)

	srv := &http.Server{
		Addr:              ":" + application.Config.Port,
		Handler:           application.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv.RegisterOnShutdown(application.CloseStreams)
	go func() {
		application.Log.Infof("listening on :%s", application.Config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			application.Log.Fatalf("listen: %v", err)
		}
	}()

	<-ctx.Done()
	application.Log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		application.Log.WithError(err).Warn("shutdown")
	}
}
