package styler

import (
	"crypto/rand"
	"encoding/hex"
)

// randomUUID generates a fresh unique prefix. The trailing underscore keeps
// generated element ids readable (`T_9f2c..._row0_col0`).
func randomUUID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(buf) + "_"
}
