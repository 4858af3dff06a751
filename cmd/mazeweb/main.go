// This defines the HTTP front end: it serves maze generation and solving as
// JSON under /api/v1.
package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/config"
	"github.com/katalvlaran/mazepath/server"
)

func run() int {
	cfg, e := config.Load()
	if e != nil {
		fmt.Fprintf(os.Stderr, "%s\n", e)
		return 1
	}

	log := logrus.New()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&logrus.JSONFormatter{})
	if cfg.LogLevel < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(server.Config{
		Addr:    cfg.HTTPAddr,
		BaseURL: "/api",
		Controllers: []server.Controller{
			server.NewMazeController(log),
			server.HealthController{},
		},
		Logger: log,
	})
	if e = router.Run(); e != nil {
		log.WithError(e).Error("http server stopped")
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
