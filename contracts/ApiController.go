package contracts

import "github.com/gin-gonic/gin"

type ApiController interface {
	ProcessSheetsAction(c *gin.Context)
	GetSheetAction(c *gin.Context)
	GetCellAction(c *gin.Context)
	EvaluateAction(c *gin.Context)
}
