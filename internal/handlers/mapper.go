package handlers

import (
	"context"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SAbotsup/hindi-mapper/internal/errors"
	"github.com/SAbotsup/hindi-mapper/internal/models"
)

// mappingRegex splits the path component "<anilistID>-episode-<number>".
// The episode number stays a string throughout; it is never coerced.
var mappingRegex = regexp.MustCompile(`^(\d+)-episode-(.+)$`)

func (h *Handler) handleMapper(c *gin.Context) {
	mapping := c.Param("mapping")

	m := mappingRegex.FindStringSubmatch(mapping)
	if m == nil {
		h.fail(c, apperrors.NewInvalidIDError(mapping))
		return
	}
	anilistID, episodeNumber := m[1], m[2]

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.config.RequestTimeout)
	defer cancel()

	info, err := h.services.AniList.GetTitle(ctx, anilistID)
	if err != nil {
		h.services.Logger.Errorf("[MapperHandler] title lookup failed for %s: %v", anilistID, err)
		h.fail(c, err)
		return
	}

	h.services.Logger.Infof("[MapperHandler] mapping %s (%q) episode %s", anilistID, info.Title, episodeNumber)

	satoruID, err := h.services.Resolver.Resolve(ctx, info.Title, info.Synonyms)
	if err != nil {
		h.services.Logger.Errorf("[MapperHandler] resolution failed for %q: %v", info.Title, err)
		h.fail(c, err)
		return
	}

	result, err := h.services.Pipeline.Fetch(ctx, satoruID, episodeNumber)
	if err != nil {
		h.services.Logger.Errorf("[MapperHandler] pipeline failed for host ID %s: %v", satoruID, err)
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MapperResponse{
		Success:   true,
		EpisodeID: result.EpisodeID,
		Servers:   result.ServerCount,
		Sources:   result.Sources,
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), models.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
