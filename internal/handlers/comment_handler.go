package handlers

import (
	"net/http"
	"strconv"

	"github.com/balogunkehinde13/social-media-api/internal/models"
	"github.com/balogunkehinde13/social-media-api/internal/services"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// RegisterPostCommentRoutes registers the nested routes on the posts group
func (h *CommentHandler) RegisterPostCommentRoutes(g *echo.Group) {
	g.POST("/:id/comments", h.CreateComment)
	g.GET("/:id/comments", h.GetCommentsByPostID)
}

// RegisterCommentRoutes registers the flat comment routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/:id", h.GetComment)
	g.PUT("/:id", h.UpdateComment)
	g.DELETE("/:id", h.DeleteComment)
}

// CreateComment creates a new comment on a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Add(c.Request().Context(), currentUserID, c.Param("id"), req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves a post's comments, oldest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	page, limit := pageParams(c)

	comments, total, err := h.commentService.ListByPost(c.Request().Context(), c.Param("id"), page, limit)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    echo.Map{"comments": comments},
		"meta":    pageMeta(page, limit, total),
	})
}

// GetComment retrieves a single comment
func (h *CommentHandler) GetComment(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	comment, err := h.commentService.Get(uint(commentID))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// UpdateComment updates a comment; only its author may do so
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentService.Update(currentUserID, uint(commentID), req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment; only its author may do so
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	currentUserID := getUserIDFromContext(c)
	if currentUserID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Request().Context(), currentUserID, uint(commentID)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
