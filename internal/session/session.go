// SPDX-License-Identifier: AGPL-3.0-only

// Package session owns the logged-in-user record kept in the cookie store.
// All writes go through Save, Merge and Clear so the replace/merge rules
// hold: login and logout replace the record wholesale, a profile edit
// merges into the existing record. No expiry bookkeeping happens here;
// a stale token surfaces as a remote 401.
package session

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/gateway"
)

const (
	keyName      = "user_name"
	keyEmail     = "user_email"
	keyBio       = "user_bio"
	keyAvatarURL = "avatar_url"
	keyAvatarAlt = "avatar_alt"
	keyBannerURL = "banner_url"
	keyBannerAlt = "banner_alt"
	keyToken     = "access_token"
)

// User is the session record. The access token lives on the record itself,
// not under a separate key; this is the one canonical storage shape.
type User struct {
	Name        string
	Email       string
	Bio         string
	Avatar      gateway.Media
	Banner      gateway.Media
	AccessToken string
}

// Save replaces the stored record wholesale with the login/register payload.
func Save(c *gin.Context, data *gateway.Session) error {
	s := sessions.Default(c)
	s.Set(keyName, data.Name)
	s.Set(keyEmail, data.Email)
	s.Set(keyBio, data.Bio)
	setMedia(s, keyAvatarURL, keyAvatarAlt, data.Avatar)
	setMedia(s, keyBannerURL, keyBannerAlt, data.Banner)
	s.Set(keyToken, data.AccessToken)
	return s.Save()
}

// Merge folds an updated profile into the existing record, keeping the
// access token and any field the update left empty.
func Merge(c *gin.Context, p *gateway.Profile) error {
	s := sessions.Default(c)
	if p.Bio != "" {
		s.Set(keyBio, p.Bio)
	}
	if p.Avatar != nil && p.Avatar.URL != "" {
		setMedia(s, keyAvatarURL, keyAvatarAlt, p.Avatar)
	}
	if p.Banner != nil && p.Banner.URL != "" {
		setMedia(s, keyBannerURL, keyBannerAlt, p.Banner)
	}
	return s.Save()
}

// Clear destroys the record on logout.
func Clear(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	return s.Save()
}

// Current returns the stored record, or false when nobody is logged in.
// A record without a token is treated as absent.
func Current(c *gin.Context) (*User, bool) {
	s := sessions.Default(c)
	token, _ := s.Get(keyToken).(string)
	if token == "" {
		return nil, false
	}
	name, _ := s.Get(keyName).(string)
	email, _ := s.Get(keyEmail).(string)
	bio, _ := s.Get(keyBio).(string)
	return &User{
		Name:        name,
		Email:       email,
		Bio:         bio,
		Avatar:      getMedia(s, keyAvatarURL, keyAvatarAlt),
		Banner:      getMedia(s, keyBannerURL, keyBannerAlt),
		AccessToken: token,
	}, true
}

// Token returns the bearer token, or "" when not logged in.
func Token(c *gin.Context) string {
	s := sessions.Default(c)
	token, _ := s.Get(keyToken).(string)
	return token
}

func setMedia(s sessions.Session, urlKey, altKey string, m *gateway.Media) {
	if m == nil {
		s.Set(urlKey, "")
		s.Set(altKey, "")
		return
	}
	s.Set(urlKey, m.URL)
	s.Set(altKey, m.Alt)
}

func getMedia(s sessions.Session, urlKey, altKey string) gateway.Media {
	url, _ := s.Get(urlKey).(string)
	alt, _ := s.Get(altKey).(string)
	return gateway.Media{URL: url, Alt: alt}
}
