package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"life-manager/internal/model"
	"life-manager/internal/task/repository"
	"life-manager/pkg/gcalendar"
	"life-manager/pkg/openai"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// mockLLM implements openai.IOpenAI
type mockLLM struct {
	resp     *openai.Response
	err      error
	requests []*openai.Request
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.resp, nil
}

func (m *mockLLM) Model() string { return "gpt-4o-mini" }

// mockRepo implements repository.TaskRepository
type mockRepo struct {
	saved      []model.StructuredTask
	saveResult model.StructuredTask
	saveErr    error

	getResult model.StructuredTask
	getErr    error

	listResult repository.ListResult
	listOpts   repository.ListOptions
	listErr    error

	updateResult model.StructuredTask
	updateErr    error
}

func (m *mockRepo) Save(ctx context.Context, t model.StructuredTask) (model.StructuredTask, error) {
	m.saved = append(m.saved, t)
	if m.saveErr != nil {
		return model.StructuredTask{}, m.saveErr
	}
	if m.saveResult.ID != "" {
		return m.saveResult, nil
	}
	t.ID = "rec123"
	return t, nil
}

func (m *mockRepo) Get(ctx context.Context, id string) (model.StructuredTask, error) {
	return m.getResult, m.getErr
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) (repository.ListResult, error) {
	m.listOpts = opt
	return m.listResult, m.listErr
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id string, status model.Status) (model.StructuredTask, error) {
	return m.updateResult, m.updateErr
}

// mockCalendar implements CalendarClient
type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt1", Summary: req.Summary}, nil
}

const validTaskJSON = `{
	"isTask": true,
	"title": "Buy groceries",
	"outcome": "Fridge stocked for the week",
	"section": "today",
	"intensity": 3,
	"tags": "errands,home",
	"dueDate": "2026-08-30T17:00:00Z",
	"estimatedTime": 45
}`

func newTestUseCase(llm *mockLLM, repo *mockRepo) *implUseCase {
	return New(&mockLogger{}, llm, repo, nil, "", "UTC")
}

func TestExtractTask(t *testing.T) {
	llm := &mockLLM{resp: &openai.Response{Content: validTaskJSON, FinishReason: openai.FinishReasonStop}}
	uc := newTestUseCase(llm, &mockRepo{})

	result := uc.extract(context.Background(), "buy groceries for the week", &model.TranscriptionMetadata{
		Source: model.SourceVoice,
		UserID: "user1",
	})

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if !result.IsTask {
		t.Fatal("expected isTask true")
	}
	if result.Task == nil {
		t.Fatal("expected task to be set")
	}

	got := result.Task
	if got.Title != "Buy groceries" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Section != model.SectionToday {
		t.Errorf("section = %q", got.Section)
	}
	if got.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", got.Status)
	}
	if got.OriginalTranscription != "buy groceries for the week" {
		t.Errorf("originalTranscription = %q", got.OriginalTranscription)
	}
	if got.LLMModel != "gpt-4o-mini" {
		t.Errorf("llmModel = %q", got.LLMModel)
	}
	if got.UserID != "user1" {
		t.Errorf("userId = %q", got.UserID)
	}
	if got.ProcessedAt == "" {
		t.Error("processedAt not set")
	}

	// Normal termination with every field present: (0.8+0.1) * 7/7
	if math.Abs(got.ProcessingConfidence-0.9) > 1e-9 {
		t.Errorf("confidence = %v, want 0.9", got.ProcessingConfidence)
	}

	if len(llm.requests) != 1 {
		t.Fatalf("expected exactly one model call, got %d", len(llm.requests))
	}
	req := llm.requests[0]
	if !req.JSONMode {
		t.Error("expected JSON mode")
	}
	if len(req.Messages) != 2 || req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", req.Messages)
	}
	if !strings.Contains(req.Messages[1].Content, "buy groceries for the week") {
		t.Error("user prompt missing transcription")
	}
}

func TestExtractNotATask(t *testing.T) {
	llm := &mockLLM{resp: &openai.Response{Content: `{"isTask": false}`, FinishReason: openai.FinishReasonStop}}
	uc := newTestUseCase(llm, &mockRepo{})

	result := uc.extract(context.Background(), "nice weather today", nil)

	if !result.Success {
		t.Fatalf("expected success, got error %q", result.Error)
	}
	if result.IsTask {
		t.Error("expected isTask false")
	}
	if result.Task != nil {
		t.Error("expected no task")
	}
	if result.Message != messageNotATask {
		t.Errorf("message = %q", result.Message)
	}
}

func TestExtractFencedJSON(t *testing.T) {
	fenced := "```json\n" + validTaskJSON + "\n```"
	llm := &mockLLM{resp: &openai.Response{Content: fenced, FinishReason: openai.FinishReasonStop}}
	uc := newTestUseCase(llm, &mockRepo{})

	result := uc.extract(context.Background(), "buy groceries", nil)

	if !result.Success || !result.IsTask {
		t.Fatalf("expected fenced JSON to be accepted, got success=%v error=%q", result.Success, result.Error)
	}
}

func TestExtractInvalidJSON(t *testing.T) {
	llm := &mockLLM{resp: &openai.Response{Content: "sure, here is your task!", FinishReason: openai.FinishReasonStop}}
	uc := newTestUseCase(llm, &mockRepo{})

	result := uc.extract(context.Background(), "buy groceries", nil)

	if result.Success {
		t.Fatal("expected failure on unparsable reply")
	}
	if result.Upstream {
		t.Error("parse failure is not an upstream failure")
	}
	if result.Message != messageProcessFailure {
		t.Errorf("message = %q", result.Message)
	}
}

func TestExtractUpstreamFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("connection refused")}
	uc := newTestUseCase(llm, &mockRepo{})

	result := uc.extract(context.Background(), "buy groceries", nil)

	if result.Success {
		t.Fatal("expected failure")
	}
	if !result.Upstream {
		t.Error("expected upstream flag on model call failure")
	}
	if result.Error == "" {
		t.Error("expected error message")
	}
}

func TestExtractRejectsIncompleteTask(t *testing.T) {
	// isTask true but missing required fields: rejected, never returned.
	llm := &mockLLM{resp: &openai.Response{
		Content:      `{"isTask": true, "title": "Do something"}`,
		FinishReason: openai.FinishReasonStop,
	}}
	uc := newTestUseCase(llm, &mockRepo{})

	result := uc.extract(context.Background(), "do something", nil)

	if result.Success {
		t.Fatal("expected schema rejection")
	}
	if result.Task != nil {
		t.Error("rejected output must not leak a task")
	}
}

func TestSanitizeJSONResponse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding prose", `Here you go: {"a":1} hope that helps`, `{"a":1}`},
		{"no json at all", "nothing here", "nothing here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tt.in); got != tt.want {
				t.Errorf("sanitizeJSONResponse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
