package controller_catalogue

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type PersonController struct {
	PersonUsecase    catalogue_interface.PersonUsecase
	RecordingUsecase catalogue_interface.RecordingUsecase
	BrowseUsecase    catalogue_interface.BrowseUsecase
}

func NewPersonController(
	uc catalogue_interface.PersonUsecase,
	recordings catalogue_interface.RecordingUsecase,
	browse catalogue_interface.BrowseUsecase,
) *PersonController {
	return &PersonController{PersonUsecase: uc, RecordingUsecase: recordings, BrowseUsecase: browse}
}

func (c *PersonController) GetPeople(ctx *gin.Context) {
	var q catalogue_models.ViewQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	page, err := c.BrowseUsecase.People(ctx.Request.Context(), &q)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "people", page, len(page.Items))
}

func (c *PersonController) GetPerson(ctx *gin.Context) {
	person, err := c.PersonUsecase.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "person", person, 1)
}

// GetPersonRecordings 人员参与的录音（兼容旧版引用）
func (c *PersonController) GetPersonRecordings(ctx *gin.Context) {
	recordings, err := c.RecordingUsecase.ListByPerson(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "recordings", recordings, len(recordings))
}

func (c *PersonController) CreatePerson(ctx *gin.Context) {
	var input catalogue_models.PersonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	person, err := c.PersonUsecase.Create(ctx.Request.Context(), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.CreatedResponse(ctx, "person", person)
}

func (c *PersonController) UpdatePerson(ctx *gin.Context) {
	var input catalogue_models.PersonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	person, err := c.PersonUsecase.Update(ctx.Request.Context(), ctx.Param("id"), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "person", person, 1)
}

func (c *PersonController) DeletePerson(ctx *gin.Context) {
	if err := c.PersonUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
