// SPDX-License-Identifier: AGPL-3.0-only
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/nordsocial/socialweb/internal/api/handlers"
	"github.com/nordsocial/socialweb/internal/cli"
	"github.com/nordsocial/socialweb/internal/config"
	"github.com/nordsocial/socialweb/internal/gateway"
	"github.com/nordsocial/socialweb/internal/middleware"
)

func main() {

	createKey := flag.Bool("create-api-key", false, "create an API key and exit")
	email := flag.String("email", "", "account email for -create-api-key")
	keyName := flag.String("key-name", "default", "name for the created API key")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	gw := gateway.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	if *createKey {
		cli.HandleCreateAPIKey(gw, *email, *keyName)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	h := handlers.NewHandler(gw, cfg, logger)

	r := gin.Default()

	store := cookie.NewStore(cfg.SessionAuthKey, cfg.SessionEncKey)
	r.Use(sessions.Sessions("socialweb_session", store))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.AuthGuard())

	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	r.GET("/health", h.HealthHandler)

	r.GET("/login", h.LoginViewHandler)
	r.POST("/login", h.LoginSubmitHandler)
	r.GET("/register", h.RegisterViewHandler)
	r.POST("/register", h.RegisterSubmitHandler)
	r.POST("/logout", h.LogoutHandler)

	r.GET("/", h.HomeHandler)
	r.GET("/posts/fragment", h.FeedFragmentHandler)

	r.GET("/post/create", h.PostCreateViewHandler)
	r.POST("/post/create", h.PostCreateSubmitHandler)
	r.GET("/post/edit/:id", h.PostEditViewHandler)
	r.POST("/post/edit/:id", h.PostEditSubmitHandler)
	r.GET("/post/:id", h.PostViewHandler)
	r.POST("/post/:id/delete", h.DeletePostHandler)
	r.POST("/post/:id/react/:symbol", h.ReactHandler)
	r.POST("/post/:id/comment", h.CommentHandler)

	r.GET("/profile", h.OwnProfileHandler)
	r.GET("/profile/edit", h.ProfileEditViewHandler)
	r.POST("/profile/edit", h.ProfileEditSubmitHandler)
	r.GET("/profile/:name", h.ProfileHandler)
	r.POST("/profile/:name/follow", h.FollowHandler)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalln(err)
	}
}
