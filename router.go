package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

const ApiVersion = "v1"

const sheetsGroupPath = "/sheets"

const evaluatePath = "evaluate"

func SetupRouter(controller contracts.ApiController) *gin.Engine {
	router := gin.New()

	apiRouterGroup := router.Group("/api/" + ApiVersion)

	sheetsRouterGroup := apiRouterGroup.Group(sheetsGroupPath)
	sheetsRouterGroup.POST("", controller.ProcessSheetsAction)
	sheetsRouterGroup.POST("/:sheet_id/"+evaluatePath, controller.EvaluateAction)
	sheetsRouterGroup.GET("/:sheet_id/:cell_id", controller.GetCellAction)
	sheetsRouterGroup.GET("/:sheet_id", controller.GetSheetAction)

	router.GET("/healthcheck", func(c *gin.Context) {
		c.String(http.StatusOK, "health")
	})

	return router
}
