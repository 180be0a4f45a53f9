// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

const (
	formPostTitle   = "postTitle"
	formPostBody    = "postBody"
	formDeletedPost = "deletedPost"

	postOpAppend = "append"
	postOpRemove = "remove"
)

func (h *Handler) compose(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := utils.GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.compose").Msg("invalid form was passed")
		utils.WriteStatus(w, http.StatusBadRequest)
		return
	}

	post := models.Post{
		Title:   r.PostForm.Get(formPostTitle),
		Content: r.PostForm.Get(formPostBody),
	}

	if err := h.services.PostService.AppendPost(r.Context(), user.ID, post); err != nil {
		log.Err(err).Str("func", "*Handler.compose").Msg("error appending post")
		utils.WriteStatus(w, statusFromError(err))
		return
	}
	h.metrics.RecordPostOperation(postOpAppend)

	utils.SeeOther(w, r, "/")
}

func (h *Handler) deletePosts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := utils.GetUserFromContext(r.Context())

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.deletePosts").Msg("invalid form was passed")
		utils.WriteStatus(w, http.StatusBadRequest)
		return
	}

	if err := h.services.PostService.RemovePosts(r.Context(), user.ID, r.PostForm.Get(formDeletedPost)); err != nil {
		log.Err(err).Str("func", "*Handler.deletePosts").Msg("error removing posts")
		utils.WriteStatus(w, statusFromError(err))
		return
	}
	h.metrics.RecordPostOperation(postOpRemove)

	utils.SeeOther(w, r, "/")
}
