package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sayed725/express-server/internal/controller"
	"github.com/sayed725/express-server/internal/middleware"
	"github.com/sayed725/express-server/internal/response"
)

// Router binds the route table. Guard policy is explicit per route: a role
// list on the routes that require one, nothing on the rest.
func Router(jwtSecret string, users *controller.Users, todos *controller.Todos) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())

	router.GET("/", controller.Greeting)

	u := router.Group("/users")
	{
		u.POST("", users.Create)
		u.GET("", middleware.RequireRoles(jwtSecret, "admin"), users.List)
		u.GET("/:id", middleware.RequireRoles(jwtSecret, "admin", "user"), users.Get)
		u.PUT("/:id", users.Update)
		u.DELETE("/:id", users.Delete)
	}

	t := router.Group("/todos")
	{
		t.POST("", todos.Create)
		t.GET("", todos.List)
		t.GET("/:id", todos.Get)
		t.PUT("/:id", todos.Update)
		t.DELETE("/:id", todos.Delete)
	}

	router.NoRoute(response.RouteNotFound)

	return router
}
