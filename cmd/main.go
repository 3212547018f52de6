package main

import (
	"github.com/epimer007/course-management-app/internal/app"
	"github.com/epimer007/course-management-app/internal/config"
	"github.com/gin-gonic/gin"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}
