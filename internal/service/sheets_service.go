package service

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// reportingSpreadsheetID is the fixed export target. A constant, not
// configuration, same as the Drive folder.
const reportingSpreadsheetID = "1dKw7mbYXoEJc3RqUzTvN9aGhB5fLsi8pQ2x4CrMeV0S"

// Sheet tabs inside the reporting spreadsheet.
const (
	SheetCandidateSummary  = "CandidateSummary"
	SheetAssessmentProfile = "AssessmentProfile"
	SheetSurveyResponses   = "SurveyResponses"
)

type RowAppenderInterface interface {
	AppendRow(ctx context.Context, sheet string, values []any) error
}

// SheetsService appends one row at a time to a tab of the reporting
// spreadsheet. Rows are fire-and-forget: nothing is persisted locally.
type SheetsService struct {
	values *sheets.SpreadsheetsValuesService
}

func NewSheetsService(ctx context.Context, credentialsFile string) (*SheetsService, error) {
	srv, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile), option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets client: %w", err)
	}
	return &SheetsService{values: srv.Spreadsheets.Values}, nil
}

func (s *SheetsService) AppendRow(ctx context.Context, sheet string, values []any) error {
	body := &sheets.ValueRange{Values: [][]any{values}}
	_, err := s.values.Append(reportingSpreadsheetID, sheet+"!A1", body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets append to %s failed: %w", sheet, err)
	}
	return nil
}
