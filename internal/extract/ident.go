package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDSource mints task and reference identifiers. Injectable so tests get
// stable output.
type IDSource interface {
	// TaskID returns the identifier for the index-th delivery of a run.
	TaskID(index int) string
	// AutoRef returns a synthetic customer reference.
	AutoRef() string
}

type uuidSource struct{}

// NewUUIDSource returns the production IDSource, backed by random UUIDs.
func NewUUIDSource() IDSource { return uuidSource{} }

func (uuidSource) TaskID(index int) string {
	return fmt.Sprintf("TASK-%d-%d-%s", time.Now().UnixMilli(), index, shortUUID())
}

func (uuidSource) AutoRef() string {
	return fmt.Sprintf("AUTO-%d-%s", time.Now().UnixMilli(), shortUUID())
}

func shortUUID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}
