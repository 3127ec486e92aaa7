package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"florisys/pkg/apperr"
	"florisys/pkg/files"
	"florisys/pkg/plot/service"
)

type PlotCtrl struct {
	svc service.PlotService
	res files.Resolver
}

func New(svc service.PlotService, res files.Resolver) *PlotCtrl {
	return &PlotCtrl{svc: svc, res: res}
}

type plotOut struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *PlotCtrl) List(c echo.Context) error {
	plots, err := h.svc.List()
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	out := make([]plotOut, 0, len(plots))
	for _, p := range plots {
		out = append(out, plotOut{ID: p.ID, Name: p.Name, URL: h.res.FileURL(c, p.Filename), CreatedAt: p.CreatedAt})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlotCtrl) Create(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file field required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer src.Close()
	p, err := h.svc.Create(src, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, plotOut{ID: p.ID, Name: p.Name, URL: h.res.FileURL(c, p.Filename), CreatedAt: p.CreatedAt})
}

func (h *PlotCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("plot_id")); err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
