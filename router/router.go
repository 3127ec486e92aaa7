package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	bedCtrl "florisys/pkg/bed/controller"
	plotCtrl "florisys/pkg/plot/controller"
	"florisys/pkg/rover"
	mapCtrl "florisys/pkg/spatialmap/controller"
)

type Options struct {
	FilesDir    string
	CORSOrigins []string
}

func New(
	e *echo.Echo,
	plots plotCtrl.PlotController,
	beds bedCtrl.BedController,
	maps mapCtrl.SpatialMapController,
	exportPlot func(echo.Context) error,
	health func(echo.Context) error,
	opts Options,
) *echo.Echo {
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions, http.MethodHead},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		// viewers stream large rasters/point clouds with range reads
		ExposeHeaders: []string{"Content-Range", "Accept-Ranges", "Content-Length"},
	}))

	e.GET("/health", health)

	// uploaded files, read-only
	e.Static("/files", opts.FilesDir)

	e.GET("/plots", plots.List)
	e.POST("/plots", plots.Create)
	e.DELETE("/plots/:plot_id", plots.Delete)
	e.GET("/plots/:plot_id/export", exportPlot)

	g := e.Group("/plots/:plot_id/beds")
	g.GET("", beds.List)
	g.POST("", beds.Create)
	g.GET("/:bed_id", beds.Get)
	g.PATCH("/:bed_id", beds.Update)
	g.DELETE("/:bed_id", beds.Delete)
	g.POST("/:bed_id/collect-rover-data", rover.Collect)

	sm := e.Group("/plots/:plot_id/beds/:bed_id/spatial-maps")
	sm.GET("", maps.List)
	sm.POST("", maps.Create)
	sm.DELETE("/:map_id", maps.Delete)

	return e
}
