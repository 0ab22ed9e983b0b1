package suite

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sytse47/wrfpy/conf"
	"github.com/Sytse47/wrfpy/folders"
	"github.com/Sytse47/wrfpy/fsutil"
)

func TestCreateStructure(t *testing.T) {
	tr := fsutil.Transaction{Root: fsutil.Path(t.TempDir()).Join("test-suite")}

	CreateStructure(&tr)
	if !assert.NoError(t, tr.Err) {
		return
	}

	for _, dir := range folders.SubDirs {
		info, err := os.Stat(tr.Root.JoinP(dir).String())
		if !assert.NoError(t, err) {
			return
		}
		assert.True(t, info.IsDir())
	}

	content, err := os.ReadFile(tr.Root.Join("config.json").String())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, conf.Skeleton(), content)
}

func TestCreateStructureKeepsExistingConfig(t *testing.T) {
	tr := fsutil.Transaction{Root: fsutil.Path(t.TempDir()).Join("test-suite")}

	CreateStructure(&tr)
	if !assert.NoError(t, tr.Err) {
		return
	}

	custom := []byte(`{"options_general": {"run_hours": 6}}`)
	err := os.WriteFile(tr.Root.Join("config.json").String(), custom, os.FileMode(0644))
	if err != nil {
		t.Fatal(err)
	}

	CreateStructure(&tr)
	if !assert.NoError(t, tr.Err) {
		return
	}

	content, err := os.ReadFile(tr.Root.Join("config.json").String())
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, custom, content)
}

func TestCreateStructureLogsEffects(t *testing.T) {
	buf := &bytes.Buffer{}
	tr := fsutil.Transaction{
		Root: fsutil.Path(t.TempDir()).Join("test-suite"),
		Log:  log.New(buf, "", 0),
	}

	CreateStructure(&tr)
	if !assert.NoError(t, tr.Err) {
		return
	}

	assert.Contains(t, buf.String(), "MkDir")
	assert.Contains(t, buf.String(), "config.json")
}
