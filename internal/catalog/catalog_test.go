package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/firebird-suite/heron/internal/cube"
	"github.com/simonhull/firebird-suite/heron/internal/logger"
)

var schemaExts = []string{".yml", ".yaml"}

func characters(t *testing.T, file string) *cube.Cube {
	t.Helper()
	c, err := cube.Parse(filepath.Join("..", "cube", "testdata", file))
	require.NoError(t, err)
	return c
}

func TestRegisterAndGet(t *testing.T) {
	cat := New(logger.Discard())
	def := characters(t, "characters.yml")

	require.NoError(t, cat.Register(def))

	got, ok := cat.Get("Characters")
	require.True(t, ok)
	assert.Equal(t, def, got)
	assert.NotSame(t, def, got)

	_, ok = cat.Get("Missing")
	assert.False(t, ok)
}

func TestRegisterReplacesWholeCube(t *testing.T) {
	cat := New(logger.Discard())
	require.NoError(t, cat.Register(characters(t, "characters_described.yml")))
	require.NoError(t, cat.Register(characters(t, "characters.yml")))

	got, ok := cat.Get("Characters")
	require.True(t, ok)
	assert.Len(t, got.Measures, 1, "replacement is wholesale, not a merge")
	assert.Nil(t, got.Dimensions["firstname"].Description)
	assert.Equal(t, 1, cat.Len())
}

func TestRegisterRejectsInvalid(t *testing.T) {
	cat := New(nil)
	assert.Error(t, cat.Register(nil))
	assert.Error(t, cat.Register(&cube.Cube{}))
}

func TestCatalogCopiesCubes(t *testing.T) {
	cat := New(logger.Discard())
	def := characters(t, "characters.yml")
	require.NoError(t, cat.Register(def))

	def.Measures["injected"] = cube.Measure{Type: cube.AggregationCount}
	got, _ := cat.Get("Characters")
	assert.NotContains(t, got.Measures, "injected")

	got.Dimensions["birth"] = cube.Dimension{}
	again, _ := cat.Get("Characters")
	assert.Equal(t, "birth", again.Dimensions["birth"].SQL)
}

func TestListAndRemove(t *testing.T) {
	cat := New(logger.Discard())
	require.NoError(t, cat.Register(&cube.Cube{Name: "Orders"}))
	require.NoError(t, cat.Register(&cube.Cube{Name: "Characters"}))

	assert.Equal(t, []string{"Characters", "Orders"}, cat.List())
	assert.True(t, cat.Remove("Orders"))
	assert.False(t, cat.Remove("Orders"))
	assert.Equal(t, []string{"Characters"}, cat.List())
}

func TestApply(t *testing.T) {
	cat := New(logger.Discard())

	first, err := cat.Apply(characters(t, "characters.yml"))
	require.NoError(t, err)
	assert.Len(t, first.Measures, 1)

	merged, err := cat.Apply(characters(t, "characters_described.yml"))
	require.NoError(t, err)
	assert.Len(t, merged.Measures, 2)
	assert.Len(t, merged.Dimensions, 5)

	stored, ok := cat.Get("Characters")
	require.True(t, ok)
	assert.Equal(t, merged, stored)
	require.NotNil(t, stored.Dimensions["firstname"].Description)
	assert.Equal(t, "First name of the character", *stored.Dimensions["firstname"].Description)
	assert.Nil(t, stored.Dimensions["countrycode"].Description)

	_, err = cat.Apply(nil)
	assert.Error(t, err)
}

func TestConcurrentAccess(t *testing.T) {
	cat := New(logger.Discard())
	base := characters(t, "characters.yml")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			def := base.Clone()
			def.Name = fmt.Sprintf("Cube%d", i%5)
			assert.NoError(t, cat.Register(def))
		}(i)
		go func() {
			defer wg.Done()
			cat.List()
			cat.Get("Cube1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, cat.Len())
}

func TestLoadDir(t *testing.T) {
	cat := New(logger.Discard())

	report, err := cat.LoadDir(context.Background(), filepath.Join("testdata", "schemas"), schemaExts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Characters", "Orders"}, report.Loaded)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, filepath.Join("testdata", "schemas", "sales", "broken.yml"), report.Failed[0].Path)
	assert.ErrorIs(t, report.Failed[0].Err, cube.ErrMissingMeasureColumn)

	assert.Equal(t, []string{"Characters", "Orders"}, cat.List())
	_, ok := cat.Get("Refunds")
	assert.False(t, ok, "a failing file is not partially loaded")
}

func TestLoadDirDuplicateNames(t *testing.T) {
	dir := t.TempDir()
	content := []byte("name: Characters\nsql: select * from characters\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yml"), content, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), content, 0644))

	cat := New(logger.Discard())
	report, err := cat.LoadDir(context.Background(), dir, schemaExts)
	require.NoError(t, err)

	assert.Equal(t, []string{"Characters"}, report.Loaded)
	require.Len(t, report.Failed, 1)
	assert.Contains(t, report.Failed[0].Err.Error(), "already defined")
}

func TestLoadDirCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cat := New(logger.Discard())
	_, err := cat.LoadDir(ctx, filepath.Join("testdata", "schemas"), schemaExts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, cat.Len())
}

func TestLoadDirMissing(t *testing.T) {
	cat := New(logger.Discard())
	_, err := cat.LoadDir(context.Background(), filepath.Join("testdata", "nope"), schemaExts)
	assert.Error(t, err)
}

func TestSchemaFiles(t *testing.T) {
	root := filepath.Join("testdata", "schemas")

	files, err := SchemaFiles(root, schemaExts)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(root, "characters.yml"),
		filepath.Join(root, "sales", "broken.yml"),
		filepath.Join(root, "sales", "orders.yaml"),
	}, files)

	onlyYAML, err := SchemaFiles(root, []string{".yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "sales", "orders.yaml")}, onlyYAML)

	single, err := SchemaFiles(filepath.Join(root, "characters.yml"), schemaExts)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "characters.yml")}, single)
}
