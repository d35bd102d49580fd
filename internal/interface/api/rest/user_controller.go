package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r gin.IRouter,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteUser, uc.CreateUserHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.PATCH(RouteUser, uc.UpdateUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}
	if errs := validator.ValidateCreateRequest(req); errs != nil {
		invalidBody(c, errs)
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToCreateParams(req))
	if err != nil {
		serviceError(c, uc.logger, "CreateUser()", nil, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	u, err := uc.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		serviceError(c, uc.logger, "GetUser()", &id, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	updated, err := uc.userService.UpdateUser(c.Request.Context(), id, user.ToFields(req))
	if err != nil {
		serviceError(c, uc.logger, "UpdateUser()", &id, err)
		return
	}

	c.JSON(http.StatusOK, user.IDResponse{ID: updated})
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, ok := userIDParam(c)
	if !ok {
		return
	}

	deleted, err := uc.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		serviceError(c, uc.logger, "DeleteUser()", &id, err)
		return
	}

	c.JSON(http.StatusOK, user.IDResponse{ID: deleted})
}
