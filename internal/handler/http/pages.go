// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/internal/views"
	"github.com/go-chi/chi/v5"
)

// pageData fills the fields shared by every page.
func (h *Handler) pageData(r *http.Request, title string) views.PageData {
	return views.PageData{
		AppName:       h.services.AppInfoService.GetAppName(r.Context()),
		Title:         title,
		Authenticated: isAuthenticated(r),
		GoogleEnabled: h.services.FederatedAuthService.Enabled(),
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data views.PageData) {
	if err := h.renderer.Render(w, status, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.render").Str("page", page).Msg("error rendering page")
		utils.WriteStatus(w, http.StatusInternalServerError)
	}
}

func (h *Handler) gettingStarted(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageGettingStarted, h.pageData(r, "Getting Started"))
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageLogin, h.pageData(r, "Login"))
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageRegister, h.pageData(r, "Register"))
}

func (h *Handler) composePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageCompose, h.pageData(r, "Compose"))
}

func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r, "About")

	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())
	data.Version = buildInfo.BuildVersion()
	data.BuildDate = buildInfo.BuildDate()
	data.BuildCommit = buildInfo.BuildCommit()

	h.render(w, r, http.StatusOK, views.PageAbout, data)
}

// home lists the posts of the signed-in user. A failed lookup answers 404.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := utils.GetUserFromContext(r.Context())

	posts, err := h.services.PostService.ListPosts(r.Context(), user.ID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.home").Msg("error listing posts")
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	data := h.pageData(r, "Home")
	data.Posts = h.renderer.NewPostViews(posts)

	h.render(w, r, http.StatusOK, views.PageHome, data)
}

// post renders the first post whose title equals the postId segment.
// A missing post or a failed lookup answers 404.
func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	user, _ := utils.GetUserFromContext(r.Context())
	title, err := postTitleParam(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.post").Msg("malformed post title")
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	post, err := h.services.PostService.FindPost(r.Context(), user.ID, title)
	if err != nil {
		log.Err(err).Str("func", "*Handler.post").Str("title", title).Msg("error finding post")
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	data := h.pageData(r, post.Title)
	data.Post = h.renderer.NewPostView(post)

	h.render(w, r, http.StatusOK, views.PagePost, data)
}

// postTitleParam returns the decoded postId segment. chi matches on
// RawPath when the request carries one, so the segment is still escaped
// whenever the title holds characters such as ',' or ';'.
func postTitleParam(r *http.Request) (string, error) {
	title := chi.URLParam(r, "postId")
	if r.URL.RawPath == "" {
		return title, nil
	}

	return url.PathUnescape(title)
}
