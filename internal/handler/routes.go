package handler

import "github.com/labstack/echo/v4"

func RegisterRoutes(e *echo.Echo, h *AnalyticsHandler) {
	e.GET("/standings", h.StandingsHandler)
	e.GET("/sellers/qualifying", h.QualifyingSellersHandler)
	e.GET("/employees/indirect-managers", h.IndirectManagersHandler)

	reports := e.Group("/reports")
	reports.GET("/export", h.ExportHandler)
	reports.GET("/compare", h.CompareHandler)
}
