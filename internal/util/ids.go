// internal/util/ids.go
// Generator ID untuk request & hasil analisis

package util

import (
	"github.com/google/uuid"
)

func NewID() string {
	return uuid.New().String()
}

// NewAnalysisID memberi prefix agar mudah dicari di log.
func NewAnalysisID(kind string) string {
	return kind + "-" + uuid.NewString()[:8]
}
