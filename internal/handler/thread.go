package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/savi-dev/savi/internal/service"
	"github.com/savi-dev/savi/shared/api"
	"github.com/savi-dev/savi/shared/domain"
	mw "github.com/savi-dev/savi/shared/middleware"
	"github.com/savi-dev/savi/shared/utils"
)

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	mode := service.SortMode(r.URL.Query().Get("sort"))

	threads := h.thread.List(query, mode)

	ledger, err := h.vote.Ledger(r.Context(), h.viewerId(w, r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	// Only votes for listed threads ride along.
	viewerVotes := make(map[domain.ThreadId]domain.VoteDirection)
	for _, t := range threads {
		if direction, ok := ledger[t.Id]; ok {
			viewerVotes[t.Id] = direction
		}
	}

	writeJSON(w, http.StatusOK, api.ThreadListResponse{Threads: threads, ViewerVotes: viewerVotes})
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	thread, err := h.thread.Create(user, body.Title, body.Content, mediaFromPayload(body.Media))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.CreateThreadResponse{
		Thread: thread,
		Notice: "Thread posted.",
	})
}

// ReportThread forwards a content report to the admins. The report is logged
// for review; nothing about the thread changes.
func (h *Handler) ReportThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["thread"]
	user := mw.GetUserFromContext(r)

	var body api.ReportRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.thread.Report(user, threadId, body.Reason, body.Details); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.NoticeResponse{Notice: "Report sent to the admins for review."})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := mux.Vars(r)["thread"]

	thread, comments, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	viewerVote, err := h.vote.Viewer(r.Context(), threadId, h.viewerId(w, r))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	technician, ordinary := service.PartitionComments(comments)
	writeJSON(w, http.StatusOK, api.ThreadResponse{
		Thread:            thread,
		TechnicianReplies: technician,
		Comments:          ordinary,
		Score:             service.FormatScore(thread.Score()),
		ViewerVote:        viewerVote,
	})
}
