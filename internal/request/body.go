package request

import (
	"io"
	"net/http"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 64 << 10

const MsgBodyTooLarge = "Request body too large"

// ReadBody reads at most MaxBodyBytes of r's body. A larger body fails with
// *http.MaxBytesError.
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
}
