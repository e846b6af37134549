package route_catalogue

import (
	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller/controller_catalogue"
)

// NewUploadRouter 图片地址直接用于 <img>，读取路由不经过认证
func NewUploadRouter(uc *CatalogueUsecases, maxFileBytes int64, public, editor *gin.RouterGroup) {
	ctrl := controller_catalogue.NewUploadController(uc.Uploads, maxFileBytes)

	public.GET("/blobs/*path", ctrl.GetBlob)

	editor.POST("/recordings/:id/images", ctrl.UploadImages)
	editor.GET("/uploads/:batch", ctrl.GetUploadProgress)
	editor.DELETE("/images", ctrl.DeleteImage)
}
