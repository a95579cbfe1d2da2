// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-notes/middleware"
	"github.com/danielhkuo/quickly-notes/services"
)

// writeServiceError maps a service failure to its HTTP status. Anything
// the services did not classify is logged and reported as a database error.
func writeServiceError(w http.ResponseWriter, err error, op string) {
	switch services.KindOf(err) {
	case services.KindBadRequest:
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case services.KindNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case services.KindConflict:
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	default:
		slog.Error(op, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// parseID reads an integer path parameter. Zero and negative ids parse;
// no row has them, so lookups answer 404.
func parseID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
