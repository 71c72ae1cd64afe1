package router

import (
	"github.com/labstack/echo/v4"

	"sprout/pkg/middleware"
)

func New(
	e *echo.Echo,
	plantCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Update(echo.Context) error
		Delete(echo.Context) error
	},
	roomCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
		Delete(echo.Context) error
	},
	planCtrl interface {
		Get(echo.Context) error
		Replace(echo.Context) error
		Suggest(echo.Context) error
	},
	schedCtrl interface {
		ListDue(echo.Context) error
		CompleteForPlant(echo.Context) error
		CompleteTask(echo.Context) error
		Defer(echo.Context) error
		Undo(echo.Context) error
		Events(echo.Context) error
	},
	obsCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	insightsCtrl interface {
		Get(echo.Context) error
		Export(echo.Context) error
	},
	guidesCtrl interface {
		IngestText(echo.Context) error
		IngestURL(echo.Context) error
		Search(echo.Context) error
	},
	weatherCtrl interface{ Get(echo.Context) error },
	speciesCtrl interface{ Search(echo.Context) error },
	authCtrl interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	api.POST("/rooms", roomCtrl.Create)
	api.GET("/rooms", roomCtrl.List)
	api.DELETE("/rooms/:id", roomCtrl.Delete)

	api.POST("/plants", plantCtrl.Create)
	api.GET("/plants", plantCtrl.List)
	api.GET("/plants/:id", plantCtrl.Get)
	api.PUT("/plants/:id", plantCtrl.Update)
	api.DELETE("/plants/:id", plantCtrl.Delete)

	g := e.Group("/plants")
	g.GET("/:id/care-plan", planCtrl.Get)
	g.PUT("/:id/care-plan", planCtrl.Replace)
	g.POST("/:id/suggest", planCtrl.Suggest)

	api.GET("/tasks", schedCtrl.ListDue)
	api.POST("/tasks/:task_id/complete", schedCtrl.CompleteTask)
	api.POST("/tasks/:task_id/defer", schedCtrl.Defer)
	api.POST("/tasks/undo", schedCtrl.Undo)
	api.POST("/plants/:id/care/:type/complete", schedCtrl.CompleteForPlant)
	api.GET("/plants/:id/events", schedCtrl.Events)

	api.POST("/plants/:id/observations", obsCtrl.Create)
	api.GET("/plants/:id/observations", obsCtrl.List)

	api.GET("/plants/:id/insights", insightsCtrl.Get)
	api.GET("/plants/:id/insights/export", insightsCtrl.Export)

	// Guide library endpoints
	api.POST("/guides/ingest", guidesCtrl.IngestText)
	api.POST("/guides/ingest/url", guidesCtrl.IngestURL)
	api.GET("/guides/search", guidesCtrl.Search)

	api.GET("/weather", weatherCtrl.Get)
	api.GET("/species/search", speciesCtrl.Search)

	return e
}
