package measure_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/arloliu/measure"

// TestStaticCoreImports ensures that the statically typed core never depends
// on the runtime layers built on top of it. The dynamic registry, the series
// codec and the CLI may import the core, never the other way round.
func TestStaticCoreImports(t *testing.T) {
	core := map[string]bool{
		modulePath:              true,
		modulePath + "/unit":    true,
		modulePath + "/errs":    true,
		modulePath + "/format":  true,
		modulePath + "/endian":  true,
		modulePath + "/section": true,
	}
	forbidden := []string{
		modulePath + "/dynamic",
		modulePath + "/series",
		modulePath + "/compress",
		modulePath + "/cmd",
	}

	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedImports}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	require.NoError(t, err, "load packages")

	checked := 0
	for _, pkg := range pkgs {
		if !core[pkg.PkgPath] {
			continue
		}
		checked++

		for importPath := range pkg.Imports {
			for _, prefix := range forbidden {
				isForbidden := importPath == prefix || strings.HasPrefix(importPath, prefix+"/")
				assert.False(t, isForbidden, "static core package %s imports %s", pkg.PkgPath, importPath)
			}
		}
	}

	require.Len(t, core, checked, "every static core package is loaded")
}
