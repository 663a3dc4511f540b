package main

import (
	"flag"
	"net/http"
	"os"
	"strconv"

	"github.com/savi-dev/savi/internal/router"
	"github.com/savi-dev/savi/internal/setup"
	"github.com/savi-dev/savi/shared/config"
	"github.com/savi-dev/savi/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	deps, err := setup.SetupDependencies(cfg)
	if err != nil {
		logger.Log.Error("failed to initialize dependencies", "error", err)
		os.Exit(1)
	}
	defer deps.Cleanup()

	r := router.New(deps)

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = strconv.Itoa(cfg.Public.Port)
	}

	logger.Log.Info("server started", "port", httpPort)
	if err := http.ListenAndServe(":"+httpPort, r); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
