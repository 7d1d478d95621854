package httpx

import (
	"errors"
	"net/http"
)

// ErrNotFound is the sentinel the repositories return when no row matches.
var ErrNotFound = errors.New("resource not found")

// RespondError maps a repository or service error onto the response
// envelope: not-found becomes 404, anything else surfaces as 500 with the
// underlying message exposed.
func RespondError(w http.ResponseWriter, err error, notFoundMessage string) {
	if errors.Is(err, ErrNotFound) {
		Fail(w, http.StatusNotFound, notFoundMessage)
		return
	}
	Internal(w, err.Error())
}
