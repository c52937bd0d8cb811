package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewRunID generates a ULID string identifying one aggregation run in the logs.
var NewRunID = func() string {
	return ulid.Make().String()
}
