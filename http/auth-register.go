package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/httplog/v2"

	"github.com/modelboard/backend/httpjson"
	"github.com/modelboard/backend/user"
)

func (httpserver *HttpServer) authRegister(w http.ResponseWriter, r *http.Request) {
	logger := httplog.LogEntry(r.Context())

	type registerRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	type registerResponse struct {
		UUID     string `json:"uuid"`
		Username string `json:"username"`
		Email    string `json:"email"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	created, err := httpserver.userSrvc.CreateUser(r.Context(), user.CreateUserParams{
		Username: request.Username,
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		httpjson.HandleError(logger, w, err)
		return
	}

	response := registerResponse{
		UUID:     created.UUID.String(),
		Username: created.Username,
		Email:    created.Email,
	}

	httpjson.WriteSuccessJson(w, response)
}
