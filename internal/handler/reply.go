package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/agora-dev/agora/internal/domain"
	"github.com/agora-dev/agora/internal/service"
	"github.com/agora-dev/agora/internal/utils"
)

type createReplyRequest struct {
	Content        string  `json:"content"`
	AuthorUsername *string `json:"author_username"`
	ImageData      *string `json:"image_data"`
	ImageFilename  *string `json:"image_filename"`
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "thread")

	var body createReplyRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	author := service.AttributeAuthor(identityFromRequest(r), body.AuthorUsername)

	replyId, err := h.reply.Create(r.Context(), domain.ReplyCreationData{
		ThreadId:      threadId,
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
		"message":  "Reply created successfully",
		"reply_id": replyId,
	})
}

func (h *Handler) ListReplies(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "thread")

	replies, err := h.reply.List(threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, replies)
}
