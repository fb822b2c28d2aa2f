package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/saiharsha-plivo/money-manager/internal/middleware"
)

// userHandler handles HTTP requests related to user administration.
type userHandler struct {
	userService portssvc.UserSvcFacade
}

func newUserHandler(us portssvc.UserSvcFacade) *userHandler {
	return &userHandler{userService: us}
}

// registerUserRoutes registers user administration routes.
func registerUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newUserHandler(userService)

	users := rg.Group("/users")
	{
		users.PUT("/:userID/role", h.updateUserRole)
	}
}

// updateUserRole godoc
// @Summary Change a user's role
// @Description Promotes or demotes a user. Only superusers may change roles.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param role body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Unknown role"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{userID}/role [put]
func (h *userHandler) updateUserRole(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if principal.Role != domain.RoleSuperUser {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.UpdateUserRole(c.Request.Context(), c.Param("userID"), req.Role)
	if err != nil {
		respondServiceError(c, err, "Failed to update user role")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
