//go:build !unix

package packed

import (
	"os"

	"github.com/katalvlaran/lsgraph/core"
)

func mapFile(*os.File, int, bool) ([]byte, error) { return nil, core.ErrUnsupported }
func unmap([]byte) error                          { return nil }
func flush([]byte) error                          { return nil }
func lockFile(*os.File) error                     { return core.ErrUnsupported }
func unlockFile(*os.File) error                   { return nil }
