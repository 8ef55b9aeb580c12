package handlers

import (
	"net/http"

	"github.com/balogunkehinde13/social-media-api/internal/services"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeService *services.LikeService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeService *services.LikeService) *LikeHandler {
	return &LikeHandler{likeService: likeService}
}

// RegisterLikeRoutes registers like-related routes on the posts group
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/:id/like", h.LikePost)
	g.POST("/:id/unlike", h.UnlikePost)
}

// LikePost likes a post; liking it twice is rejected
func (h *LikeHandler) LikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	like, err := h.likeService.Like(c.Request().Context(), currentUserID, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, like)
}

// UnlikePost removes the caller's like from a post
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.likeService.Unlike(c.Request().Context(), currentUserID, c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"liked": false}})
}
