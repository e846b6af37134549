package route_catalogue

import (
	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller/controller_catalogue"
)

func NewRecordingRouter(uc *CatalogueUsecases, viewer, editor *gin.RouterGroup) {
	ctrl := controller_catalogue.NewRecordingController(uc.Recordings, uc.Browse)

	recordingGroup := viewer.Group("/recordings")
	{
		recordingGroup.GET("", ctrl.GetRecordings)
		recordingGroup.GET("/feed", ctrl.GetRecordingFeed)
		recordingGroup.GET("/:id", ctrl.GetRecording)
	}

	adminGroup := editor.Group("/recordings")
	{
		adminGroup.POST("", ctrl.CreateRecording)
		adminGroup.PUT("/:id", ctrl.UpdateRecording)
		adminGroup.DELETE("/:id", ctrl.DeleteRecording)
		adminGroup.POST("/:id/people/:role", ctrl.AttachNewPerson)
	}
}
