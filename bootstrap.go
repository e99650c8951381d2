package bmfg

import "sync"

// Version is the engine version reported by Bootstrap.
const Version = "0.3.0"

var bootstrapOnce sync.Once

// Bootstrap performs the one-time process-wide setup and returns a
// status string naming the engine and its version.
//
// Bootstrap is idempotent: every call returns the same string, and
// only the first does any work. New calls it implicitly, so hosts only
// need Bootstrap when they want the version banner before creating an
// engine.
func Bootstrap() string {
	bootstrapOnce.Do(func() {
		Logger().Info("bmfg runtime initialized", "version", Version)
	})
	return "bmfg " + Version
}
