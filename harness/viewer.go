// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package harness

import (
	"os"
	"path/filepath"
)

// stubScript replaces a waveform viewer the simulator would otherwise open.
const stubScript = "#!/bin/sh\necho Nothing here...\n"

// StubViewer creates a temporary directory of no-op executables with the
// given names. Prepend it to the simulator PATH; the caller removes it.
func StubViewer(names ...string) (dir string, err error) {
	dir, err = os.MkdirTemp("", "stackasm-viewer-")
	if err != nil {
		return
	}

	for _, name := range names {
		err = os.WriteFile(filepath.Join(dir, name), []byte(stubScript), 0o755)
		if err != nil {
			os.RemoveAll(dir)
			dir = ""
			return
		}
	}

	return
}
