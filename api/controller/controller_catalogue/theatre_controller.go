package controller_catalogue

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type TheatreController struct {
	TheatreUsecase catalogue_interface.TheatreUsecase
	BrowseUsecase  catalogue_interface.BrowseUsecase
}

func NewTheatreController(uc catalogue_interface.TheatreUsecase, browse catalogue_interface.BrowseUsecase) *TheatreController {
	return &TheatreController{TheatreUsecase: uc, BrowseUsecase: browse}
}

func (c *TheatreController) GetTheatres(ctx *gin.Context) {
	var q catalogue_models.ViewQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	page, err := c.BrowseUsecase.Theatres(ctx.Request.Context(), &q)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "theatres", page, len(page.Items))
}

func (c *TheatreController) GetTheatre(ctx *gin.Context) {
	theatre, err := c.TheatreUsecase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "theatre", theatre, 1)
}

func (c *TheatreController) CreateTheatre(ctx *gin.Context) {
	var input catalogue_models.TheatreInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	theatre, err := c.TheatreUsecase.Create(ctx.Request.Context(), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.CreatedResponse(ctx, "theatre", theatre)
}

func (c *TheatreController) UpdateTheatre(ctx *gin.Context) {
	var input catalogue_models.TheatreInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	theatre, err := c.TheatreUsecase.Update(ctx.Request.Context(), ctx.Param("id"), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "theatre", theatre, 1)
}

func (c *TheatreController) DeleteTheatre(ctx *gin.Context) {
	if err := c.TheatreUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
