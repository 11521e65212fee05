// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"context"
	"github.com/alvinbaena/pwd-strength/pkg/checker"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"net/http"
)

// PasswordProcessor checks a single password.
type PasswordProcessor interface {
	ProcessPassword(ctx context.Context, password string) (checker.CombinedResult, error)
}

type queryApi struct {
	processor PasswordProcessor
}

func (q *queryApi) checkPassword(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "please enter a password", RequestID: c.GetString(requestIDKey)})
		return
	}

	res, err := q.processor.ProcessPassword(c.Request.Context(), req.Password)
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("error processing password")
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error:     "an unexpected error occurred while checking the password",
			RequestID: c.GetString(requestIDKey),
		})
		return
	}

	c.JSON(http.StatusOK, res)
}

func RegisterQueryApi(group *gin.RouterGroup, processor PasswordProcessor) {
	q := &queryApi{processor: processor}

	group.POST("/password", q.checkPassword)
}

// NewRouter the access log never includes request bodies, so passwords stay out of it.
func NewRouter(processor PasswordProcessor, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID(log))
	router.Use(logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
		return log.With().Str(requestIDKey, c.GetString(requestIDKey)).Logger()
	})))

	v1 := router.Group("/v1")
	RegisterQueryApi(v1.Group("/check"), processor)

	return router
}
