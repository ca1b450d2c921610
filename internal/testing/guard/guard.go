// Package guard switches the application into test mode. Import it for side
// effects from tests that construct the full router.
package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("AGRILOG_TEST_MODE") == "" {
			_ = os.Setenv("AGRILOG_TEST_MODE", "1")
		}
	})
}
