package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saiharsha-plivo/money-manager/internal/authz"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/saiharsha-plivo/money-manager/internal/middleware"
)

// commentHandler handles HTTP requests related to record comments. Comment
// operations are role-gated here at the routing boundary; the service only
// checks existence, not ownership.
type commentHandler struct {
	commentService portssvc.CommentSvcFacade
}

func newCommentHandler(cs portssvc.CommentSvcFacade) *commentHandler {
	return &commentHandler{commentService: cs}
}

// registerCommentRoutes registers comment routes.
func registerCommentRoutes(rg *gin.RouterGroup, commentService portssvc.CommentSvcFacade) {
	h := newCommentHandler(commentService)

	recordComments := rg.Group("/records/:recordID/comments")
	{
		recordComments.GET("", h.listComments)
		recordComments.POST("", h.createComment)
	}

	comments := rg.Group("/comments")
	{
		comments.PUT("/:commentID", h.updateComment)
		comments.DELETE("/:commentID", h.deleteComment)
	}
}

// listComments godoc
// @Summary List comments
// @Description Lists all comments on a record. Requires admin or superuser role.
// @Tags comments
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.ListCommentsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{recordID}/comments [get]
func (h *commentHandler) listComments(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if !authz.CheckAccess(principal.Role, authz.PermGetCommentsOfRecord) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), c.Param("recordID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list comments")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentsResponse(comments))
}

// createComment godoc
// @Summary Add a comment
// @Description Attaches a comment to an existing record. Requires admin or superuser role.
// @Tags comments
// @Accept json
// @Produce json
// @Param recordID path string true "Record ID"
// @Param comment body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{recordID}/comments [post]
func (h *commentHandler) createComment(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if !authz.CheckAccess(principal.Role, authz.PermAddCommentToRecord) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), c.Param("recordID"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create comment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// updateComment godoc
// @Summary Update a comment
// @Description Patches a comment. Omitted fields keep their values. Requires admin or superuser role.
// @Tags comments
// @Accept json
// @Produce json
// @Param commentID path string true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "Fields to change"
// @Success 200 {object} dto.CommentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{commentID} [put]
func (h *commentHandler) updateComment(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if !authz.CheckAccess(principal.Role, authz.PermEditCommentToRecord) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("commentID"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to update comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// deleteComment godoc
// @Summary Delete a comment
// @Description Deletes a comment. Requires admin or superuser role.
// @Tags comments
// @Produce json
// @Param commentID path string true "Comment ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /comments/{commentID} [delete]
func (h *commentHandler) deleteComment(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if !authz.CheckAccess(principal.Role, authz.PermDeleteCommentToRecord) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	if err := h.commentService.DeleteComment(c.Request.Context(), c.Param("commentID")); err != nil {
		respondServiceError(c, err, "Failed to delete comment")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Comment deleted"})
}
