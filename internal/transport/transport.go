// Package transport provides a server-entity(by ginext) for serve-mode with handlers to serve endpoints
package transport

import (
	"context"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/docker/distribution/uuid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"
)

type SearchProcessor interface {
	Process(ctx context.Context, task *model.SearchTask) *model.SearchResult
}

type handlers struct {
	proc SearchProcessor
	log  zerolog.Logger
}

func NewServer(addr string, proc SearchProcessor, log zerolog.Logger) *http.Server {
	h := handlers{proc: proc, log: log}

	engine := ginext.New("release")
	engine.GET("/ping", h.HealthCheck)
	engine.POST("/search", h.Search)

	return &http.Server{
		Addr:    addr,
		Handler: engine,
	}
}

func (h handlers) HealthCheck(ctx *ginext.Context) {
	h.log.Debug().Msg("received a healthcheck request")
	ctx.Status(http.StatusOK)
}

func (h handlers) Search(ctx *ginext.Context) {
	var task model.SearchTask

	if err := ctx.ShouldBindJSON(&task); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse task from body: " + err.Error()})
		return
	}

	if task.TaskID == "" {
		task.TaskID = uuid.Generate().String()
	}

	res := h.proc.Process(ctx.Request.Context(), &task)
	h.log.Info().
		Str("tid", res.TaskID).
		Bool("ignore_case", task.IgnoreCase).
		Int("matches", len(res.Output)).
		Uint64("hash", res.Hash).
		Msg("search task processed")

	ctx.JSON(http.StatusOK, res)
}
