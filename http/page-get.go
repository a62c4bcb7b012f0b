package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"

	"github.com/modelboard/backend/httpjson"
)

func (httpserver *HttpServer) getPage(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	page := chi.URLParam(r, "page")

	// discussion lives on an external forum
	if page == "discussion" && httpserver.cfg.DiscussionURL != "" {
		http.Redirect(w, r, httpserver.cfg.DiscussionURL, http.StatusFound)
		return
	}

	type pageResponse struct {
		Page string `json:"page"`
		HTML string `json:"html"`
	}

	html, err := httpserver.pagesSrvc.Render(page)
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, pageResponse{Page: page, HTML: html})
}
