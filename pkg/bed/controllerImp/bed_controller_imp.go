package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"florisys/pkg/apperr"
	"florisys/pkg/bed/service"
	"florisys/pkg/geometry"
)

type BedCtrl struct{ svc service.BedService }

func New(svc service.BedService) *BedCtrl { return &BedCtrl{svc: svc} }

type createReq struct {
	Name        string           `json:"name"`
	Coordinates geometry.Polygon `json:"coordinates"`
}

type updateReq struct {
	Name        *string           `json:"name"`
	Coordinates *geometry.Polygon `json:"coordinates"`
}

func (h *BedCtrl) List(c echo.Context) error {
	beds, err := h.svc.List(c.Param("plot_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, beds)
}

func (h *BedCtrl) Get(c echo.Context) error {
	b, err := h.svc.Get(c.Param("plot_id"), c.Param("bed_id"))
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BedCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	b, err := h.svc.Create(c.Param("plot_id"), req.Name, req.Coordinates)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *BedCtrl) Update(c echo.Context) error {
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	b, err := h.svc.Update(c.Param("plot_id"), c.Param("bed_id"), req.Name, req.Coordinates)
	if err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, b)
}

func (h *BedCtrl) Delete(c echo.Context) error {
	if err := h.svc.Delete(c.Param("plot_id"), c.Param("bed_id")); err != nil {
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
