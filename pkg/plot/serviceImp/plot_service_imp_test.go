package serviceImp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"florisys/entities"
	"florisys/pkg/apperr"
	"florisys/pkg/files"
	"florisys/pkg/geometry"
	plotRepoImp "florisys/pkg/plot/repositoryImp"
	"florisys/pkg/plot/service"
	"florisys/pkg/upload"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Plot{}, &entities.Bed{}, &entities.SpatialMap{}))
	return db
}

func newTestService(t *testing.T) (service.PlotService, *gorm.DB, *files.Store) {
	t.Helper()
	db := openTestDB(t)
	store, err := files.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	pipe := upload.NewPipeline(store, 1<<20, ".tif", ".tiff")
	return NewPlotService(plotRepoImp.New(db), pipe, store), db, store
}

func TestCreateStoresRasterAndRow(t *testing.T) {
	svc, db, store := newTestService(t)

	p, err := svc.Create(strings.NewReader("raster bytes"), "North Field.tif", "image/tiff")
	require.NoError(t, err)

	assert.Equal(t, "North Field", p.Name, "display name is the filename stem")
	assert.Equal(t, p.ID+".tif", p.Filename)

	_, err = os.Stat(filepath.Join(store.Root(), p.Filename))
	require.NoError(t, err)

	var n int64
	require.NoError(t, db.Model(&entities.Plot{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestCreateUnsupportedExtension(t *testing.T) {
	svc, db, store := newTestService(t)

	_, err := svc.Create(strings.NewReader("x"), "photo.png", "image/png")
	require.ErrorIs(t, err, apperr.ErrUnsupportedType)

	var n int64
	require.NoError(t, db.Model(&entities.Plot{}).Count(&n).Error)
	assert.Zero(t, n)

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCreateTooLarge(t *testing.T) {
	db := openTestDB(t)
	store, err := files.NewStore(t.TempDir(), nil)
	require.NoError(t, err)
	pipe := upload.NewPipeline(store, 8, ".tif")
	svc := NewPlotService(plotRepoImp.New(db), pipe, store)

	_, err = svc.Create(strings.NewReader("way more than eight"), "big.tif", "")
	require.ErrorIs(t, err, apperr.ErrTooLarge)

	entries, err := os.ReadDir(store.Root())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListReturnsCreatedPlots(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Create(strings.NewReader("a"), "one.tif", "")
	require.NoError(t, err)
	_, err = svc.Create(strings.NewReader("b"), "two.tiff", "")
	require.NoError(t, err)

	plots, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, plots, 2)
}

func TestDeleteCascadesRowsAndFiles(t *testing.T) {
	svc, db, store := newTestService(t)

	p, err := svc.Create(strings.NewReader("raster"), "field.tif", "")
	require.NoError(t, err)

	now := time.Now().UTC()
	b := &entities.Bed{
		ID: entities.NewID(), PlotID: p.ID, Name: "bed",
		Coordinates: datatypes.JSONSlice[geometry.Ring]{{{0, 0}, {0, 1}, {1, 1}, {1, 0}, {0, 0}}},
		CreatedAt:   now, UpdatedAt: now,
	}
	require.NoError(t, db.Create(b).Error)
	m := &entities.SpatialMap{
		ID: entities.NewID(), BedID: b.ID, Filename: "m1.ply", FileName: "scan.ply",
		Bytes: 5, ContentType: "application/octet-stream", Date: now, CreatedAt: now,
	}
	require.NoError(t, db.Create(m).Error)
	require.NoError(t, os.WriteFile(filepath.Join(store.Root(), "m1.ply"), []byte("cloud"), 0o644))

	require.NoError(t, svc.Delete(p.ID))

	_, err = os.Stat(filepath.Join(store.Root(), p.Filename))
	assert.True(t, os.IsNotExist(err), "raster removed")
	_, err = os.Stat(filepath.Join(store.Root(), "m1.ply"))
	assert.True(t, os.IsNotExist(err), "nested spatial map file removed")

	for _, model := range []any{&entities.Plot{}, &entities.Bed{}, &entities.SpatialMap{}} {
		var n int64
		require.NoError(t, db.Model(model).Count(&n).Error)
		assert.Zero(t, n)
	}
}

func TestDeleteMissingPlot(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.Delete("missing")
	var nf *apperr.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "plot", nf.Resource)

	// repeat delete still reports not found, never data loss
	err = svc.Delete("missing")
	require.ErrorAs(t, err, &nf)
}
