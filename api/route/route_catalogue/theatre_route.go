package route_catalogue

import (
	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller/controller_catalogue"
)

func NewTheatreRouter(uc *CatalogueUsecases, viewer, editor *gin.RouterGroup) {
	ctrl := controller_catalogue.NewTheatreController(uc.Theatres, uc.Browse)

	theatreGroup := viewer.Group("/theatres")
	{
		theatreGroup.GET("", ctrl.GetTheatres)
		theatreGroup.GET("/:id", ctrl.GetTheatre)
	}

	adminGroup := editor.Group("/theatres")
	{
		adminGroup.POST("", ctrl.CreateTheatre)
		adminGroup.PUT("/:id", ctrl.UpdateTheatre)
		adminGroup.DELETE("/:id", ctrl.DeleteTheatre)
	}
}
