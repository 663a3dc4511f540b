package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/savi-dev/savi/shared/api"
	mw "github.com/savi-dev/savi/shared/middleware"
	"github.com/savi-dev/savi/shared/utils"
)

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["thread"]
	user := mw.GetUserFromContext(r)

	var body api.CreateCommentRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	comment, err := h.comment.Add(r.Context(), threadId, user, body.Content, mediaFromPayload(body.Media))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateCommentResponse{
		Comment: comment,
		Notice:  "Comment posted.",
	})
}
