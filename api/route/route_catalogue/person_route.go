package route_catalogue

import (
	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller/controller_catalogue"
)

func NewPersonRouter(uc *CatalogueUsecases, viewer, editor *gin.RouterGroup) {
	ctrl := controller_catalogue.NewPersonController(uc.People, uc.Recordings, uc.Browse)

	personGroup := viewer.Group("/people")
	{
		personGroup.GET("", ctrl.GetPeople)
		personGroup.GET("/:id", ctrl.GetPerson)
		personGroup.GET("/:id/recordings", ctrl.GetPersonRecordings)
	}

	adminGroup := editor.Group("/people")
	{
		adminGroup.POST("", ctrl.CreatePerson)
		adminGroup.PUT("/:id", ctrl.UpdatePerson)
		adminGroup.DELETE("/:id", ctrl.DeletePerson)
	}
}
