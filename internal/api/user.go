package api

import (
	"errors"
	"net/http"

	"github.com/luach-app/luach-backend/internal/model"
)

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(contextKeyUser).(*model.User)
	if !ok {
		a.serverErrorResponse(w, r, errors.New("can't retrieve user from context"))
		return
	}

	resp, _ := mapToUserResp(user)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
