package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/epimer007/course-management-app/internal/app/server"
	"github.com/epimer007/course-management-app/internal/config"
	deliveryhttp "github.com/epimer007/course-management-app/internal/delivery/http"
	"github.com/epimer007/course-management-app/internal/service"
	"github.com/epimer007/course-management-app/internal/service/course"
	"github.com/epimer007/course-management-app/internal/service/recommend"
	"github.com/epimer007/course-management-app/internal/storage/mongo"
	"github.com/epimer007/course-management-app/pkg/logger"
)

func Run(cfg *config.Config) {
	log := logger.New(cfg.Env)
	log.Info("Starting with Env: " + cfg.Env)

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.Timeout)
	defer cancel()

	storage, err := mongo.NewMongoStorage(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.FatalErr("error connecting to mongo", err)
	}
	defer func() {
		if err := storage.Close(context.Background()); err != nil {
			log.ErrorErr("error closing mongo connection", err)
		}
	}()

	courseRepo := mongo.NewCourseMongo(storage.DB, cfg.Mongo.Collection)
	courseService := course.NewCourseService(log, courseRepo)
	recommendService := recommend.NewRecommendService(log, courseRepo)

	// Seeding happens once here instead of on every list request, so
	// the check-then-insert race is confined to process start.
	if err := courseService.SeedInitialData(connectCtx); err != nil {
		log.FatalErr("error seeding initial data", err)
	}

	u := service.Collection{CourseService: courseService, RecommendService: recommendService}
	r := deliveryhttp.InitRoutes(log, u)

	srv := server.New(cfg.HTTPServer.Address, cfg.HTTPServer.Timeout, cfg.HTTPServer.IdleTimeout, r)
	srv.Start()
	log.Info("HTTP server listening on " + cfg.HTTPServer.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app signal: " + s.String())
	case err := <-srv.Notify():
		log.ErrorErr("server error", err)
	}
	if err := srv.Shutdown(); err != nil {
		log.ErrorErr("shutdown error", err)
	}
}
