// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func credentialsForm(username, password string) url.Values {
	return url.Values{formUsername: {username}, formPassword: {password}}
}

// ─────────────────────────────────────────────
// POST /register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(m *serviceMocks)
		wantLocation string
		wantCookie   bool
	}{
		{
			name: "success starts a session",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), "alice", "pw1").Return(testUser, nil)
				m.sessions.EXPECT().Create(gomock.Any(), testUser.ID).Return(models.Session{ID: testSessionID, UserID: testUser.ID}, nil)
			},
			wantLocation: "/",
			wantCookie:   true,
		},
		{
			name: "username taken",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), "alice", "pw1").Return(models.User{}, store.ErrUsernameAlreadyExists)
			},
			wantLocation: "/register",
		},
		{
			name: "invalid data",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), "alice", "pw1").
					Return(models.User{}, fmt.Errorf("%w: empty password", service.ErrInvalidDataProvided))
			},
			wantLocation: "/register",
		},
		{
			name: "session store failure",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), "alice", "pw1").Return(testUser, nil)
				m.sessions.EXPECT().Create(gomock.Any(), testUser.ID).Return(models.Session{}, errors.New("redis down"))
			},
			wantLocation: "/register",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, false)
			tt.setup(m)

			rec := serve(h, newRequest(http.MethodPost, "/register", credentialsForm("alice", "pw1")))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))

			cookie := findCookie(rec, sessionCookieName)
			if !tt.wantCookie {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.Equal(t, testSessionID, cookie.Value)
			assert.True(t, cookie.HttpOnly)
			assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
			assert.Equal(t, "/", cookie.Path)
			assert.Equal(t, 3600, cookie.MaxAge)
		})
	}
}

// ─────────────────────────────────────────────
// POST /login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(m *serviceMocks)
		wantLocation string
		wantCookie   bool
	}{
		{
			name: "success starts a session",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(testUser, nil)
				m.sessions.EXPECT().Create(gomock.Any(), testUser.ID).Return(models.Session{ID: testSessionID}, nil)
			},
			wantLocation: "/",
			wantCookie:   true,
		},
		{
			name: "wrong password",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(models.User{}, service.ErrWrongPassword)
			},
			wantLocation: "/login",
		},
		{
			name: "unknown user",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(models.User{}, store.ErrUserNotFound)
			},
			wantLocation: "/login",
		},
		{
			name: "session store failure",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(testUser, nil)
				m.sessions.EXPECT().Create(gomock.Any(), testUser.ID).Return(models.Session{}, errors.New("redis down"))
			},
			wantLocation: "/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newMockedHandler(t, false)
			tt.setup(m)

			rec := serve(h, newRequest(http.MethodPost, "/login", credentialsForm("alice", "pw1")))

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Equal(t, tt.wantCookie, findCookie(rec, sessionCookieName) != nil)
		})
	}
}

func TestLogin_SecureCookie(t *testing.T) {
	h, m := newMockedHandler(t, false)
	h.cfg.SecureCookies = true
	m.auth.EXPECT().Login(gomock.Any(), "alice", "pw1").Return(testUser, nil)
	m.sessions.EXPECT().Create(gomock.Any(), testUser.ID).Return(models.Session{ID: testSessionID}, nil)

	rec := serve(h, newRequest(http.MethodPost, "/login", credentialsForm("alice", "pw1")))

	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

// ─────────────────────────────────────────────
// GET /logout
// ─────────────────────────────────────────────

func TestLogout(t *testing.T) {
	t.Run("destroys the session", func(t *testing.T) {
		h, m := newMockedHandler(t, false)
		m.expectSignedIn()
		m.sessions.EXPECT().Destroy(gomock.Any(), testSessionID).Return(nil)

		rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/logout", nil)))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/gettingStarted", rec.Header().Get("Location"))

		cookie := findCookie(rec, sessionCookieName)
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("store failure still clears the cookie", func(t *testing.T) {
		h, m := newMockedHandler(t, false)
		m.expectSignedIn()
		m.sessions.EXPECT().Destroy(gomock.Any(), testSessionID).Return(errors.New("redis down"))

		rec := serve(h, withSessionCookie(newRequest(http.MethodGet, "/logout", nil)))

		assert.Equal(t, "/gettingStarted", rec.Header().Get("Location"))
		require.NotNil(t, findCookie(rec, sessionCookieName))
	})
}
