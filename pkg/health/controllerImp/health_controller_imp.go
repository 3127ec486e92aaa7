package controllerImp

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db       *gorm.DB
	filesDir string
}

func NewHealthCtrl(db *gorm.DB, filesDir string) *HealthCtrl {
	return &HealthCtrl{db: db, filesDir: filesDir}
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	filesOK := true
	filesErr := ""
	if info, err := os.Stat(h.filesDir); err != nil {
		filesOK = false
		filesErr = err.Error()
	} else if !info.IsDir() {
		filesOK = false
		filesErr = h.filesDir + " is not a directory"
	}

	allOK := dbOK && filesOK
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	resp := map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database":   sub{OK: dbOK, Err: dbErr},
			"file_store": sub{OK: filesOK, Err: filesErr},
		},
		"time": time.Now().Format(time.RFC3339),
	}

	return c.JSON(status, resp)
}
