package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/service"
	"github.com/agora-dev/agora/internal/utils"
)

type createThreadRequest struct {
	Title          string  `validate:"required" json:"title"`
	Content        string  `json:"content"`
	AuthorUsername *string `json:"author_username"`
	ImageData      *string `json:"image_data"`
	ImageFilename  *string `json:"image_filename"`
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	var body createThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	author := service.AttributeAuthor(identityFromRequest(r), body.AuthorUsername)

	threadId, err := h.thread.Create(domain.ThreadCreationData{
		Title:         body.Title,
		Content:       body.Content,
		Author:        author,
		ImageData:     body.ImageData,
		ImageFilename: body.ImageFilename,
	})
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, map[string]string{
		"message":   "Thread created successfully",
		"thread_id": threadId,
	})
}

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, threads)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "thread")

	thread, err := h.thread.Get(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, thread)
}
