// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPublicPages(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/gettingStarted", "Write down your days."},
		{"/login", `<form action="/login" method="post">`},
		{"/register", `<form action="/register" method="post">`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			h, _ := newMockedHandler(t, false)

			rec := serve(h, newRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.NotContains(t, rec.Body.String(), `href="/logout"`)
		})
	}
}

func TestLoginPage_GoogleButton(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		h, _ := newMockedHandler(t, true)
		rec := serve(h, newRequest(http.MethodGet, "/login", nil))
		assert.Contains(t, rec.Body.String(), `href="/auth/google"`)
	})

	t.Run("disabled", func(t *testing.T) {
		h, _ := newMockedHandler(t, false)
		rec := serve(h, newRequest(http.MethodGet, "/login", nil))
		assert.NotContains(t, rec.Body.String(), `href="/auth/google"`)
	})
}

func TestHome(t *testing.T) {
	t.Run("lists posts", func(t *testing.T) {
		h, m := newMockedHandler(t, false)
		m.expectSignedIn()
		m.posts.EXPECT().ListPosts(gomock.Any(), testUser.ID).Return(models.Posts{
			{Title: "Day 1", Content: "hello"},
			{Title: "Day 2", Content: "<script>alert(1)</script>world"},
		}, nil)

		rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "<h2>Day 1</h2>")
		assert.Contains(t, body, `href="/posts/Day%201"`)
		assert.Contains(t, body, "world")
		assert.NotContains(t, body, "<script>")
		assert.Contains(t, body, `href="/logout"`)
	})

	t.Run("no posts", func(t *testing.T) {
		h, m := newMockedHandler(t, false)
		m.expectSignedIn()
		m.posts.EXPECT().ListPosts(gomock.Any(), testUser.ID).Return(nil, nil)

		rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "No posts yet.")
	})

	t.Run("store failure answers 404", func(t *testing.T) {
		h, m := newMockedHandler(t, false)
		m.expectSignedIn()
		m.posts.EXPECT().ListPosts(gomock.Any(), testUser.ID).Return(nil, store.ErrExecutingQuery)

		rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/", nil)))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found\n", rec.Body.String())
	})
}

func TestPost(t *testing.T) {
	tests := []struct {
		name       string
		post       models.Post
		err        error
		wantStatus int
		wantBody   []string
	}{
		{
			name:       "found",
			post:       models.Post{Title: "Day 1", Content: "hello <b>there</b>"},
			wantStatus: http.StatusOK,
			wantBody:   []string{"<h1>Day 1</h1>", "hello <b>there</b>"},
		},
		{
			name:       "missing post",
			err:        service.ErrPostNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "store failure",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, false)
			m.expectSignedIn()
			m.posts.EXPECT().FindPost(gomock.Any(), testUser.ID, "Day 1").Return(tt.post, tt.err)

			rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/posts/Day%201", nil)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			for _, want := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), want)
			}
		})
	}
}

func TestAbout(t *testing.T) {
	t.Run("with build info", func(t *testing.T) {
		h, m := newMockedHandler(t, false)
		m.expectSignedIn()
		m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"))

		rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/about", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<dd>v1.0.0</dd>")
		assert.Contains(t, rec.Body.String(), "<dd>abc123</dd>")
	})

	t.Run("without build info", func(t *testing.T) {
		h, m := newMockedHandler(t, false)
		m.expectSignedIn()
		m.appInfo.EXPECT().GetBuildInfo(gomock.Any()).Return(models.AppBuildInfo{})

		rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/about", nil)))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<dd>N/A</dd>")
	})
}

func TestComposePage(t *testing.T) {
	h, m := newMockedHandler(t, false)
	m.expectSignedIn()

	rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/compose", nil)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="postTitle"`)
	assert.Contains(t, rec.Body.String(), `name="postBody"`)
}
