//go:build !unix && !windows

package filex

import "os"

// Platforms without advisory locks get unserialized appends.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
