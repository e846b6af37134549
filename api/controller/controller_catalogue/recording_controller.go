package controller_catalogue

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

type RecordingController struct {
	RecordingUsecase catalogue_interface.RecordingUsecase
	BrowseUsecase    catalogue_interface.BrowseUsecase
}

func NewRecordingController(uc catalogue_interface.RecordingUsecase, browse catalogue_interface.BrowseUsecase) *RecordingController {
	return &RecordingController{RecordingUsecase: uc, BrowseUsecase: browse}
}

func (c *RecordingController) GetRecordings(ctx *gin.Context) {
	var q catalogue_models.ViewQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	page, err := c.BrowseUsecase.Recordings(ctx.Request.Context(), &q)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "recordings", page, len(page.Items))
}

// GetRecordingFeed 无限滚动：cursor 为上一页返回的游标
func (c *RecordingController) GetRecordingFeed(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_LIMIT", "limit must be a positive integer")
			return
		}
		limit = n
	}

	page, err := c.RecordingUsecase.Feed(ctx.Request.Context(), ctx.Query("cursor"), limit)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "page", page, len(page.Items))
}

func (c *RecordingController) GetRecording(ctx *gin.Context) {
	detail, err := c.RecordingUsecase.Detail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "recording", detail, 1)
}

func (c *RecordingController) CreateRecording(ctx *gin.Context) {
	var input catalogue_models.RecordingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	recording, err := c.RecordingUsecase.Create(ctx.Request.Context(), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.CreatedResponse(ctx, "recording", recording)
}

func (c *RecordingController) UpdateRecording(ctx *gin.Context) {
	var input catalogue_models.RecordingInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	recording, err := c.RecordingUsecase.Update(ctx.Request.Context(), ctx.Param("id"), &input)
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "recording", recording, 1)
}

func (c *RecordingController) DeleteRecording(ctx *gin.Context) {
	if err := c.RecordingUsecase.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AttachNewPerson 在录音表单中直接新建人员并挂到指定角色
func (c *RecordingController) AttachNewPerson(ctx *gin.Context) {
	role, ok := catalogue_models.ParsePersonRole(ctx.Param("role"))
	if !ok {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "role must be artist, composer or lyricist")
		return
	}

	var input catalogue_models.PersonInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	recording, person, err := c.RecordingUsecase.AttachNewPerson(ctx.Request.Context(), ctx.Param("id"), role, &input)
	if err != nil {
		if person != nil {
			// 人员已创建，只是挂接失败
			ctx.Header("X-Created-Person", person.ID.Hex())
		}
		controller.HandleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"recording": recording,
		"person":    person,
		"count":     1,
	})
}
