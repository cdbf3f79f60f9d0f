package fault

import "net/http"

// HTTPStatus maps an error to the status code the HTTP boundary should
// answer with. Unclassified errors map to 500.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindStore:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
