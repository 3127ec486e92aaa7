package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"florisys/entities"
	"florisys/pkg/apperr"
	"florisys/pkg/files"
	"florisys/pkg/spatialmap/service"
)

type SpatialMapCtrl struct {
	svc service.SpatialMapService
	res files.Resolver
}

func New(svc service.SpatialMapService, res files.Resolver) *SpatialMapCtrl {
	return &SpatialMapCtrl{svc: svc, res: res}
}

type mapOut struct {
	ID          string    `json:"id"`
	FileName    string    `json:"fileName"`
	URL         string    `json:"url"`
	Bytes       int64     `json:"bytes"`
	ContentType string    `json:"contentType"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h *SpatialMapCtrl) out(c echo.Context, m *entities.SpatialMap) mapOut {
	return mapOut{
		ID:          m.ID,
		FileName:    m.FileName,
		URL:         h.res.FileURL(c, m.Filename),
		Bytes:       m.Bytes,
		ContentType: m.ContentType,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
	}
}

func (h *SpatialMapCtrl) Create(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file field required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()
	m, err := h.svc.Add(c.Param("plot_id"), c.Param("bed_id"), src, fh.Filename, fh.Header.Get("Content-Type"), c.FormValue("date"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, h.out(c, m))
}

func (h *SpatialMapCtrl) List(c echo.Context) error {
	maps, err := h.svc.List(c.Param("plot_id"), c.Param("bed_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	out := make([]mapOut, 0, len(maps))
	for i := range maps {
		out = append(out, h.out(c, &maps[i]))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SpatialMapCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("plot_id"), c.Param("bed_id"), c.Param("map_id")); err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
