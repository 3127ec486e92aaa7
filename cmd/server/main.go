package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"florisys/config"
	"florisys/database"
	"florisys/router"

	"florisys/pkg/files"
	"florisys/pkg/logging"
	"florisys/pkg/upload"

	// Plot
	plotCtrlImp "florisys/pkg/plot/controllerImp"
	plotRepoImp "florisys/pkg/plot/repositoryImp"
	plotSvcImp "florisys/pkg/plot/serviceImp"

	// Bed
	bedCtrlImp "florisys/pkg/bed/controllerImp"
	bedRepoImp "florisys/pkg/bed/repositoryImp"
	bedSvcImp "florisys/pkg/bed/serviceImp"

	// Spatial maps
	mapCtrlImp "florisys/pkg/spatialmap/controllerImp"
	mapRepoImp "florisys/pkg/spatialmap/repositoryImp"
	mapSvcImp "florisys/pkg/spatialmap/serviceImp"

	"florisys/pkg/export"
	healthCtrlImp "florisys/pkg/health/controllerImp"
)

func main() {
	// 1) Logging + config
	logger := logging.Setup()
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) File store + upload pipelines
	store, err := files.NewStore(cfg.FilesDir, logger)
	if err != nil {
		log.Fatalf("file store: %v", err)
	}
	resolver := files.Resolver{PublicBaseURL: cfg.BackendPublicURL}
	rasterPipe := upload.NewPipeline(store, cfg.MaxUploadBytes(), ".tif", ".tiff")
	plyPipe := upload.NewPipeline(store, cfg.MaxUploadBytes(), ".ply")

	// 4) Repos
	plotRepo := plotRepoImp.New(db)
	bedRepo := bedRepoImp.New(db)
	mapRepo := mapRepoImp.New(db)

	// 5) Services
	plotSvc := plotSvcImp.NewPlotService(plotRepo, rasterPipe, store)
	bedSvc := bedSvcImp.NewBedService(bedRepo, store)
	mapSvc := mapSvcImp.NewSpatialMapService(mapRepo, plyPipe, store)

	// 6) Controllers
	pCtrl := plotCtrlImp.New(plotSvc, resolver)
	bCtrl := bedCtrlImp.New(bedSvc)
	mCtrl := mapCtrlImp.New(mapSvc, resolver)
	exCtrl := export.NewCtrl(plotRepo)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.FilesDir)

	// 7) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	r := router.New(e, pCtrl, bCtrl, mCtrl, exCtrl.Export, hCtrl.Health, router.Options{
		FilesDir:    cfg.FilesDir,
		CORSOrigins: cfg.CORSOrigins,
	})

	// 8) Start
	logger.Info("listening", "port", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
