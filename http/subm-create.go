package http

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"

	"github.com/modelboard/backend/httpjson"
	"github.com/modelboard/backend/subm"
)

// uploads larger than this are rejected before buffering
const maxUploadBytes = 32 << 20

func (httpserver *HttpServer) createSubmission(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	userUUID, ok := requireAuth(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := httpserver.submSrvc.CreateSubmission(r.Context(), subm.CreateSubmissionParams{
		UserUUID: userUUID,
		Filename: header.Filename,
		Content:  content,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, httpserver.mapSubm(*created, time.Now()))
}
