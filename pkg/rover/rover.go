// Package rover holds the rover-collection endpoint.
package rover

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Collect acknowledges a rover data-collection request for a bed.
// TODO: hand off to the rover pipeline once its controller is available.
func Collect(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"message": fmt.Sprintf("Rover data collection queued for plot=%s, bed=%s", c.Param("plot_id"), c.Param("bed_id")),
	})
}
