package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	json "github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ExitCodeMainError = 1

func RunApp(config *Config) error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer, err := BuildServiceContainer(config)

	if err == nil {
		serviceContainer.WebhookDispatcher.Start()
		defer serviceContainer.WebhookDispatcher.Close()
		defer serviceContainer.Database.Close()

		err = http.ListenAndServe(config.ListenAddr, serviceContainer.Router)
	}

	return err
}

// RunOnce fetches the sheets from the hub, processes and stores them, then submits the results
func RunOnce(ctx context.Context, config *Config, out io.Writer) error {
	serviceContainer, err := BuildServiceContainer(config)
	if err != nil {
		return err
	}
	defer serviceContainer.Database.Close()

	sheets, err := serviceContainer.HubClient.FetchSheets(ctx)
	if err != nil {
		return err
	}

	original := sheets.Clone()
	results, failures := serviceContainer.SheetProcessor.ProcessSheetsWithFailures(sheets)
	runId := uuid.NewString()

	if err = serviceContainer.SheetRepository.SaveSheets(runId, original, results); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "Run %s: %d sheets processed, %d failed cells\n", runId, len(results), len(failures))
	for _, failure := range failures {
		_, _ = fmt.Fprintf(out, "  %s!%s %s: %s\n", failure.SheetId, failure.Cell, failure.Kind, failure.Message)
	}

	if config.SubmitUrl == "" {
		return nil
	}

	message, err := serviceContainer.HubClient.SubmitResults(ctx, results)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, message)
	return nil
}

// EvalWorkbook processes an .xlsx file, writing the results to outputPath or as JSON to out
func EvalWorkbook(inputPath string, outputPath string, out io.Writer) error {
	sheets, err := LoadWorkbookSheets(inputPath)
	if err != nil {
		return err
	}

	results := NewSheetProcessor(NewExpressionExecutor()).ProcessSheets(sheets)

	if outputPath != "" {
		return SaveWorkbookSheets(outputPath, results)
	}

	encoded, err := json.Marshal(results)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(encoded))
	return err
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
