package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
)

type ApiController struct {
	SheetProcessor     contracts.SheetProcessor
	SheetRepository    contracts.SheetRepository
	ExpressionExecutor contracts.ExpressionExecutor
	WebhookDispatcher  contracts.WebhookDispatcher
}

type CellEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
	CellId  string `uri:"cell_id" binding:"required"`
}

type SheetEndpointParams struct {
	SheetId string `uri:"sheet_id" binding:"required"`
}

type ProcessSheetsRequest struct {
	Sheets  contracts.SheetList `json:"sheets"`
	Webhook string              `json:"webhook"`
}

type ProcessSheetsResponse struct {
	Id       string                   `json:"id"`
	Results  contracts.SheetList      `json:"results"`
	Failures []*contracts.CellFailure `json:"failures"`
}

type SheetResponse struct {
	Id       string              `json:"id"`
	RunId    string              `json:"run_id"`
	Data     [][]contracts.Value `json:"data"`
	Original [][]contracts.Value `json:"original"`
}

type EvaluateRequest struct {
	Expression string                     `json:"expression" binding:"required"`
	Vars       map[string]contracts.Value `json:"vars"`
}

type EvaluateResponse struct {
	Result contracts.Value `json:"result"`
	Error  string          `json:"error,omitempty"`
}

var InvalidSheetsError = errors.New("sheets must be a list of sheets with ids")

func NewApiController(
	sheetProcessor contracts.SheetProcessor,
	sheetRepository contracts.SheetRepository,
	expressionExecutor contracts.ExpressionExecutor,
	webhookDispatcher contracts.WebhookDispatcher,
) *ApiController {
	return &ApiController{
		SheetProcessor:     sheetProcessor,
		SheetRepository:    sheetRepository,
		ExpressionExecutor: expressionExecutor,
		WebhookDispatcher:  webhookDispatcher,
	}
}

func (api *ApiController) ProcessSheetsAction(c *gin.Context) {
	request := ProcessSheetsRequest{}

	err := c.ShouldBindJSON(&request)
	if err == nil {
		err = validateSheets(request.Sheets)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	original := request.Sheets.Clone()
	results, failures := api.SheetProcessor.ProcessSheetsWithFailures(request.Sheets)
	runId := uuid.NewString()

	if err = api.SheetRepository.SaveSheets(runId, original, results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if request.Webhook != "" && api.WebhookDispatcher != nil {
		api.WebhookDispatcher.Notify(request.Webhook, &contracts.Submission{
			Id:      runId,
			Results: results,
		})
	}

	c.JSON(http.StatusCreated, &ProcessSheetsResponse{
		Id:       runId,
		Results:  results,
		Failures: failures,
	})
}

func validateSheets(sheets contracts.SheetList) error {
	if sheets == nil {
		return InvalidSheetsError
	}

	for _, sheet := range sheets {
		if sheet == nil || strings.TrimSpace(sheet.Id) == "" {
			return InvalidSheetsError
		}
	}

	return nil
}

func (api *ApiController) GetSheetAction(c *gin.Context) {
	params := SheetEndpointParams{}
	var record *contracts.SheetRecord

	err := c.ShouldBindUri(&params)

	if err == nil {
		record, err = api.SheetRepository.GetSheet(params.SheetId)
	}

	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, &SheetResponse{
			Id:       record.Result.Id,
			RunId:    record.RunId,
			Data:     record.Result.Data,
			Original: record.Original.Data,
		})
	}
}

func (api *ApiController) GetCellAction(c *gin.Context) {
	params := CellEndpointParams{}
	var response *contracts.Cell

	err := c.ShouldBindUri(&params)

	if err == nil {
		response, err = api.SheetRepository.GetCell(params.SheetId, params.CellId)
	}

	if errors.Is(err, contracts.CellNotFoundError) || errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	} else {
		c.JSON(http.StatusOK, response)
	}
}

// EvaluateAction evaluates an ad-hoc expression against the snapshot of a stored sheet
func (api *ApiController) EvaluateAction(c *gin.Context) {
	params := SheetEndpointParams{}
	request := EvaluateRequest{}
	var lookup contracts.CellLookup

	err := c.ShouldBindUri(&params)
	if err == nil {
		err = c.ShouldBindJSON(&request)
	}

	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	lookup, err = api.SheetRepository.GetLookup(params.SheetId)
	if errors.Is(err, contracts.SheetNotFoundError) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	lookup = NewCellLookupChain(request.Vars, lookup)
	expression := strings.TrimPrefix(request.Expression, contracts.FormulaPrefix)

	value, err := api.ExpressionExecutor.Evaluate(expression, lookup)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, &EvaluateResponse{
			Result: contracts.ResultValue(value, err),
			Error:  contracts.ErrorKind(err),
		})
	} else {
		c.JSON(http.StatusOK, &EvaluateResponse{Result: value})
	}
}
