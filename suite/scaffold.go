package suite

import (
	"github.com/Sytse47/wrfpy/conf"
	"github.com/Sytse47/wrfpy/folders"
	"github.com/Sytse47/wrfpy/fsutil"
)

// CreateStructure builds the directory skeleton of a new suite
// under tr.Root and writes the starter config.json. Re-running it
// on an existing suite recreates missing directories and leaves an
// existing config.json untouched.
func CreateStructure(tr *fsutil.Transaction) {
	for _, dir := range folders.SubDirs {
		tr.MkDir(dir)
	}

	if !tr.Exists("config.json") {
		tr.Save("config.json", conf.Skeleton())
	}
}
