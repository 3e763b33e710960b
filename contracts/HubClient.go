package contracts

import "context"

type HubClient interface {
	FetchSheets(ctx context.Context) (SheetList, error)
	SubmitResults(ctx context.Context, results SheetList) (string, error)
}
