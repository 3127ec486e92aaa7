package controllerImp

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/files"
	"florisys/pkg/geometry"
	mapRepoImp "florisys/pkg/spatialmap/repositoryImp"
	mapSvcImp "florisys/pkg/spatialmap/serviceImp"
	"florisys/pkg/upload"
)

func setup(t *testing.T) (*SpatialMapCtrl, *entities.Plot, *entities.Bed) {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Plot{}, &entities.Bed{}, &entities.SpatialMap{}))

	store, err := files.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	pipe := upload.NewPipeline(store, 1<<20, ".ply")

	now := time.Now().UTC()
	p := &entities.Plot{ID: entities.NewID(), Name: "field", Filename: "field.tif", CreatedAt: now}
	require.NoError(t, db.Create(p).Error)
	b := &entities.Bed{
		ID: entities.NewID(), PlotID: p.ID, Name: "North",
		Coordinates: datatypes.JSONSlice[geometry.Ring]{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}},
		CreatedAt:   now, UpdatedAt: now,
	}
	require.NoError(t, db.Create(b).Error)

	svc := mapSvcImp.NewSpatialMapService(mapRepoImp.New(db), pipe, store)
	return New(svc, files.Resolver{}), p, b
}

func uploadContext(t *testing.T, filename, date string, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("point cloud"))
	require.NoError(t, err)
	if date != "" {
		require.NoError(t, w.WriteField("date", date))
	}
	require.NoError(t, w.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "http://api.example.com/", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	return c, rec
}

func TestCreateStoresCloudWithDeclaredDate(t *testing.T) {
	h, p, b := setup(t)

	c, rec := uploadContext(t, "scan.ply", "2026-03-15", map[string]string{"plot_id": p.ID, "bed_id": b.ID})
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var out struct {
		ID       string    `json:"id"`
		FileName string    `json:"fileName"`
		URL      string    `json:"url"`
		Date     time.Time `json:"date"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "scan.ply", out.FileName)
	assert.Equal(t, "http://api.example.com/files/"+out.ID+".ply", out.URL)
	assert.Equal(t, 2026, out.Date.Year())
	assert.Equal(t, time.March, out.Date.Month())
}

func TestCreateUnderMissingBedIs404(t *testing.T) {
	h, p, _ := setup(t)

	c, rec := uploadContext(t, "scan.ply", "", map[string]string{"plot_id": p.ID, "bed_id": "missing"})
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRejectsWrongExtension(t *testing.T) {
	h, p, b := setup(t)

	c, rec := uploadContext(t, "scan.xyz", "", map[string]string{"plot_id": p.ID, "bed_id": b.ID})
	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
}

func TestListAndDeleteRoundTrip(t *testing.T) {
	h, p, b := setup(t)

	c, rec := uploadContext(t, "scan.ply", "", map[string]string{"plot_id": p.ID, "bed_id": b.ID})
	require.NoError(t, h.Create(c))
	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "http://api.example.com/", nil)
	rec = httptest.NewRecorder()
	lc := e.NewContext(req, rec)
	lc.SetParamNames("plot_id", "bed_id")
	lc.SetParamValues(p.ID, b.ID)
	require.NoError(t, h.List(lc))
	assert.Equal(t, http.StatusOK, rec.Code)
	var listed []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	rec = httptest.NewRecorder()
	dc := e.NewContext(req, rec)
	dc.SetParamNames("plot_id", "bed_id", "map_id")
	dc.SetParamValues(p.ID, b.ID, created.ID)
	require.NoError(t, h.Delete(dc))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	dc = e.NewContext(httptest.NewRequest(http.MethodDelete, "/", nil), rec)
	dc.SetParamNames("plot_id", "bed_id", "map_id")
	dc.SetParamValues(p.ID, b.ID, created.ID)
	require.NoError(t, h.Delete(dc))
	assert.Equal(t, http.StatusNotFound, rec.Code, "second delete finds nothing")
}
