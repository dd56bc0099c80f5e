package testdata

import (
	stdsql "database/sql"
	"net/http"
	"time"
)

// CrossPackage has fields whose types come from other packages.
type CrossPackage struct {
	Name      string
	Timestamp time.Time
	Duration  time.Duration
	Conn      stdsql.NullString
	Headers   http.Header
	Client    *http.Client `json:"-"`
}
