package usecase

import (
	"context"
	"strings"

	"github.com/recruitflow/hiring-pipeline/internal/service"
	"github.com/recruitflow/hiring-pipeline/internal/util"
	"github.com/tidwall/gjson"
)

const notSpecified = "Not Specified"

// Column orders for the three reporting sheets. The order is part of the
// export contract: rows are positional, the sheets carry the headers.
var (
	candidateSummaryColumns = []string{
		"jobId", "candidateId", "firstName", "lastName", "email", "phone",
		"address", "linkedIn", "education", "experience", "totalScore",
		"skills", "certifications", "tools",
	}
	assessmentProfileColumns = []string{
		"candidateId", "firstName", "lastName", "email", "openness",
		"conscientiousness", "extraversion", "agreeableness", "neuroticism",
		"summary",
	}
	surveyResponseColumns = []string{
		"name", "email", "q1", "q2", "q3", "q4", "q4Detail", "q5", "q6",
		"q6Detail", "q7", "q7Detail",
	}
)

// ExportUsecase turns a flat request body into one stringified spreadsheet
// row. Nothing is persisted locally and no correlation against stored
// candidates or jobs is attempted.
type ExportUsecase struct {
	rows service.RowAppenderInterface
}

func NewExportUsecase(rows service.RowAppenderInterface) *ExportUsecase {
	return &ExportUsecase{rows: rows}
}

func (uc *ExportUsecase) AppendCandidateSummary(ctx context.Context, body gjson.Result) error {
	return uc.rows.AppendRow(ctx, service.SheetCandidateSummary, buildRow(body, candidateSummaryColumns))
}

func (uc *ExportUsecase) AppendAssessmentProfile(ctx context.Context, body gjson.Result) error {
	return uc.rows.AppendRow(ctx, service.SheetAssessmentProfile, buildRow(body, assessmentProfileColumns))
}

func (uc *ExportUsecase) AppendSurveyResponse(ctx context.Context, body gjson.Result) error {
	return uc.rows.AppendRow(ctx, service.SheetSurveyResponses, buildRow(body, surveyResponseColumns))
}

func buildRow(body gjson.Result, columns []string) []any {
	row := make([]any, 0, len(columns))
	for _, col := range columns {
		row = append(row, cell(body.Get(col), col))
	}
	return row
}

// cell stringifies one field. Lists join with ", ", absent fields become
// "Not Specified", and the numeric score field defaults to "0" instead.
func cell(v gjson.Result, column string) string {
	if !v.Exists() || v.Type == gjson.Null {
		return placeholder(column)
	}
	joined := strings.Join(util.StringListJSON(v), ", ")
	if joined == "" {
		return placeholder(column)
	}
	return joined
}

func placeholder(column string) string {
	if column == "totalScore" {
		return "0"
	}
	return notSpecified
}
