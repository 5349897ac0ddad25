package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/recruitflow/hiring-pipeline/internal/model"
	"github.com/recruitflow/hiring-pipeline/internal/usecase"
	"gorm.io/gorm"
)

type stubEvaluationStore struct {
	created []*model.Evaluation
}

func (s *stubEvaluationStore) Create(evaluation *model.Evaluation) error {
	evaluation.ID = uuid.New()
	s.created = append(s.created, evaluation)
	return nil
}

func (s *stubEvaluationStore) FirstByCandidateID(candidateID string) (*model.Evaluation, error) {
	for _, e := range s.created {
		if e.CandidateID == candidateID {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func newEvaluationApp(store usecase.EvaluationStore) *fiber.App {
	app := fiber.New()
	NewEvaluationHandler(usecase.NewEvaluationUsecase(store)).RegisterRoutes(app)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(b)
}

func TestSaveEvaluation_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing candidateId", body: `{"evaluationResults":[{"q":"a"}]}`},
		{name: "missing evaluationResults", body: `{"candidateId":"C1"}`},
		{name: "null evaluationResults", body: `{"candidateId":"C1","evaluationResults":null}`},
		{name: "empty body", body: `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubEvaluationStore{}
			app := newEvaluationApp(store)

			status, _ := postJSON(t, app, "/api/saveEvaluation", tt.body)
			if status != fiber.StatusBadRequest {
				t.Errorf("status: got %d, want 400", status)
			}
			if len(store.created) != 0 {
				t.Errorf("nothing should be persisted, got %d records", len(store.created))
			}
		})
	}
}

// ScoresFactor is not validated even though the stored shape expects it;
// the save succeeds and the store defaults the column.
func TestSaveEvaluation_MissingScoresFactor(t *testing.T) {
	store := &stubEvaluationStore{}
	app := newEvaluationApp(store)

	status, body := postJSON(t, app, "/api/saveEvaluation", `{"candidateId":"C1","evaluationResults":[{"q":"a"}]}`)
	if status != fiber.StatusCreated {
		t.Fatalf("status: got %d, want 201 (body %s)", status, body)
	}
	if len(store.created) != 1 {
		t.Fatalf("expected 1 stored evaluation, got %d", len(store.created))
	}
	if store.created[0].ScoresFactor != "[]" {
		t.Errorf("ScoresFactor: got %q, want %q", store.created[0].ScoresFactor, "[]")
	}
}

func TestGetEvaluation(t *testing.T) {
	store := &stubEvaluationStore{}
	app := newEvaluationApp(store)

	status, _ := postJSON(t, app, "/api/saveEvaluation", `{"candidateId":"C1","evaluationResults":[{"q":"a"}],"ScoresFactor":[1,2]}`)
	if status != fiber.StatusCreated {
		t.Fatalf("save status: got %d, want 201", status)
	}

	req := httptest.NewRequest("GET", "/api/getEvaluation/C1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("get status: got %d, want 200", resp.StatusCode)
	}

	var body struct {
		CandidateID       string          `json:"candidateId"`
		EvaluationResults json.RawMessage `json:"evaluationResults"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.CandidateID != "C1" {
		t.Errorf("candidateId: got %s, want C1", body.CandidateID)
	}
	if string(body.EvaluationResults) != `[{"q":"a"}]` {
		t.Errorf("evaluationResults: got %s", body.EvaluationResults)
	}
}

func TestGetEvaluation_NotFound(t *testing.T) {
	app := newEvaluationApp(&stubEvaluationStore{})

	req := httptest.NewRequest("GET", "/api/getEvaluation/C404", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("status: got %d, want 404", resp.StatusCode)
	}
}
