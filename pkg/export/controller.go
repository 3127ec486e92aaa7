package export

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"florisys/pkg/apperr"
	"florisys/pkg/plot/repository"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Ctrl struct{ repo repository.PlotRepository }

func NewCtrl(repo repository.PlotRepository) *Ctrl { return &Ctrl{repo: repo} }

func (h *Ctrl) Export(c echo.Context) error {
	p, err := h.repo.FindWithChildren(c.Param("plot_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = apperr.NotFound("plot")
		}
		return c.JSON(apperr.Status(err), map[string]string{"error": err.Error()})
	}
	f, err := BuildWorkbook(p)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	h2 := c.Response().Header()
	h2.Set(echo.HeaderContentType, xlsxContentType)
	h2.Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", p.Name+".xlsx"))
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}
