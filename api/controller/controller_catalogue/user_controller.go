package controller_catalogue

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type UserController struct {
	UserUsecase   catalogue_interface.UserUsecase
	BrowseUsecase catalogue_interface.BrowseUsecase
}

func NewUserController(uc catalogue_interface.UserUsecase, browse catalogue_interface.BrowseUsecase) *UserController {
	return &UserController{UserUsecase: uc, BrowseUsecase: browse}
}

// GetMe 当前登录主体及其角色
func (c *UserController) GetMe(ctx *gin.Context) {
	principal, ok := controller.CurrentPrincipal(ctx)
	if !ok {
		controller.ErrorResponse(ctx, http.StatusUnauthorized, "UNAUTHORIZED", "not signed in")
		return
	}

	controller.SuccessResponse(ctx, "user", principal, 1)
}

func (c *UserController) GetUsers(ctx *gin.Context) {
	var q catalogue_models.ViewQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	page, err := c.BrowseUsecase.Users(ctx.Request.Context(), &q)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "users", page, len(page.Items))
}

func (c *UserController) CreateUser(ctx *gin.Context) {
	var input catalogue_models.UserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	user, err := c.UserUsecase.Create(ctx.Request.Context(), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.CreatedResponse(ctx, "user", user)
}

func (c *UserController) UpdateUserRole(ctx *gin.Context) {
	var input catalogue_models.UserRoleInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	user, err := c.UserUsecase.UpdateRole(ctx.Request.Context(), ctx.Param("id"), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "user", user, 1)
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.UserUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
