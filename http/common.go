package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/modelboard/backend/auth"
	"github.com/modelboard/backend/httpjson"
)

// requireAuth returns the authenticated user's uuid or writes a 401 and
// reports failure.
func requireAuth(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		httpjson.WriteErrorJson(w,
			"Authentication required",
			http.StatusUnauthorized,
			"unauthorized")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(claims.UUID)
	if err != nil {
		httpjson.WriteErrorJson(w,
			"Authentication required",
			http.StatusUnauthorized,
			"unauthorized")
		return uuid.Nil, false
	}
	return userUUID, true
}
