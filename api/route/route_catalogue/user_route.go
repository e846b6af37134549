package route_catalogue

import (
	"github.com/gin-gonic/gin"
	"github.com/stagearchive/catalogue/api/controller/controller_catalogue"
)

// NewUserRouter editor 可查看用户列表，admin 才能增删改
func NewUserRouter(uc *CatalogueUsecases, viewer, userReaders, userWriters *gin.RouterGroup) {
	ctrl := controller_catalogue.NewUserController(uc.Users, uc.Browse)

	viewer.GET("/me", ctrl.GetMe)

	userReaders.GET("/users", ctrl.GetUsers)

	adminGroup := userWriters.Group("/users")
	{
		adminGroup.POST("", ctrl.CreateUser)
		adminGroup.PUT("/:id/role", ctrl.UpdateUserRole)
		adminGroup.DELETE("/:id", ctrl.DeleteUser)
	}
}
