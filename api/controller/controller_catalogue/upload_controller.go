package controller_catalogue

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller"
	"github.com/stagearchive/catalogue/domain"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_interface"
	"github.com/stagearchive/catalogue/domain/domain_catalogue/catalogue_models"
)

// 多文件表单字段名
const uploadFormField = "files"

type UploadController struct {
	UploadUsecase catalogue_interface.UploadUsecase
	MaxFileBytes  int64
}

func NewUploadController(uc catalogue_interface.UploadUsecase, maxFileBytes int64) *UploadController {
	return &UploadController{UploadUsecase: uc, MaxFileBytes: maxFileBytes}
}

// UploadImages POST /admin/recordings/:id/images?path=main|gallery&batch=<可选批次ID>
func (c *UploadController) UploadImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}
	headers := form.File[uploadFormField]
	if len(headers) == 0 {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "no files in field "+uploadFormField)
		return
	}

	files := make([]catalogue_models.UploadFile, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
			return
		}
		// 多读一个字节用于判断超限，具体拒绝由用例按文件给出
		data, err := io.ReadAll(io.LimitReader(f, c.MaxFileBytes+1))
		_ = f.Close()
		if err != nil {
			controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
			return
		}
		files = append(files, catalogue_models.UploadFile{Name: h.Filename, Data: data})
	}

	batch, err := c.UploadUsecase.UploadImages(
		ctx.Request.Context(),
		ctx.Query("batch"),
		ctx.Param("id"),
		ctx.DefaultQuery("path", catalogue_models.ImagePathGallery),
		files,
	)
	if err != nil {
		if batch != nil && errors.Is(err, domain.ErrUploadFailure) {
			ctx.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "UPLOAD_FAILED",
				"message": err.Error(),
				"upload":  batch,
			})
			return
		}
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "upload", batch, len(batch.Results))
}

func (c *UploadController) GetUploadProgress(ctx *gin.Context) {
	progress, err := c.UploadUsecase.Progress(ctx.Param("batch"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}

	controller.SuccessResponse(ctx, "progress", progress, len(progress.Files))
}

// DeleteImage 非本存储的 URL 静默成功
func (c *UploadController) DeleteImage(ctx *gin.Context) {
	url := ctx.Query("url")
	if url == "" {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "url is required")
		return
	}

	if err := c.UploadUsecase.DeleteImage(ctx.Request.Context(), url); err != nil {
		controller.HandleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// GetBlob 读取存储中的图片
func (c *UploadController) GetBlob(ctx *gin.Context) {
	blob, err := c.UploadUsecase.OpenImage(ctx.Request.Context(), ctx.Param("path"))
	if err != nil {
		controller.HandleError(ctx, err)
		return
	}
	defer blob.Reader.Close()

	ctx.Header("Cache-Control", "public, max-age=31536000, immutable")
	ctx.DataFromReader(http.StatusOK, blob.Size, blob.ContentType, blob.Reader, nil)
}
