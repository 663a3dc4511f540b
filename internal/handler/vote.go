package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/savi-dev/savi/internal/service"
	"github.com/savi-dev/savi/shared/api"
	"github.com/savi-dev/savi/shared/domain"
	"github.com/savi-dev/savi/shared/utils"
)

// VoteThread records an up or down vote. No role gate: anonymous viewers vote
// under a cookie-scoped viewer id.
func (h *Handler) VoteThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["thread"]

	var body api.VoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	viewerId := h.viewerId(w, r)
	direction := domain.VoteDirection(body.Direction)

	thread, err := h.vote.Vote(r.Context(), threadId, viewerId, direction)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.VoteResponse{
		Upvotes:    thread.Upvotes,
		Downvotes:  thread.Downvotes,
		Score:      service.FormatScore(thread.Score()),
		ViewerVote: direction,
	})
}
