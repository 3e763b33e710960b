package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/tmsptr/spreadsheetEvaluator/contracts"
	"go.etcd.io/bbolt"
)

type ServiceContainer struct {
	Database           *bbolt.DB
	ExpressionExecutor contracts.ExpressionExecutor
	SheetProcessor     contracts.SheetProcessor
	SheetRepository    contracts.SheetRepository
	WebhookDispatcher  contracts.WebhookDispatcher
	HubClient          contracts.HubClient
	ApiController      contracts.ApiController
	Router             *gin.Engine
}

func BuildServiceContainer(config *Config) (container ServiceContainer, err error) {
	container.Database, err = bbolt.Open(config.DatabaseFilepath, 0600, nil)
	if err != nil {
		return
	}

	serializer := NewCellBinarySerializer()
	canonicalizer := NewCanonicalizer()

	container.ExpressionExecutor = NewExpressionExecutor()
	container.SheetProcessor = NewSheetProcessor(container.ExpressionExecutor)
	container.SheetRepository = NewSheetRepository(container.Database, serializer, canonicalizer)
	container.WebhookDispatcher = NewWebhookDispatcher(config.WebhookWorkers, os.Stdout)
	container.HubClient = NewHubClient(config.HubUrl, config.SubmitUrl, config.SubmitterEmail, config.HubTimeout)
	container.ApiController = NewApiController(
		container.SheetProcessor, container.SheetRepository, container.ExpressionExecutor, container.WebhookDispatcher,
	)

	container.Router = SetupRouter(container.ApiController)

	return
}
