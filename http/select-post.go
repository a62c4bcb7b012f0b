package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"
	"github.com/google/uuid"

	"github.com/modelboard/backend/httpjson"
	"github.com/modelboard/backend/subm"
)

func (httpserver *HttpServer) selectFinal(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	userUUID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	type selectRequest struct {
		SubmissionUUIDs []string `json:"submission_uuids"`
	}

	var request selectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	ids := make([]uuid.UUID, 0, len(request.SubmissionUUIDs))
	for _, raw := range request.SubmissionUUIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		ids = append(ids, id)
	}

	err := httpserver.submSrvc.SelectFinal(r.Context(), subm.SelectFinalParams{
		UserUUID:        userUUID,
		SubmissionUUIDs: ids,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, "selection recorded")
}
