package http

import (
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"

	"github.com/modelboard/backend/httpjson"
)

func (httpserver *HttpServer) listSubmissions(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	userUUID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	subms, err := httpserver.submSrvc.ListUserSubmissions(r.Context(), userUUID)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	now := time.Now()
	response := make([]SubmissionView, len(subms))
	for i, s := range subms {
		response[i] = httpserver.mapSubm(s, now)
	}

	httpjson.WriteSuccessJson(w, response)
}
