package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/taskwell/backend/domain"
	"github.com/taskwell/backend/repository/memory"
	taskUC "github.com/taskwell/backend/usecase/task"
)

func newTaskHandler() (*TaskHandler, *taskUC.UseCase) {
	uc := taskUC.New(memory.NewTaskRepository(), nil)
	return NewTaskHandler(uc, nil, nil), uc
}

func newRequest(method, uri string, body []byte) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	return ctx
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) map[string]json.RawMessage {
	t.Helper()
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(ctx.Response.Body(), &envelope); err != nil {
		t.Fatalf("response body %q is not valid JSON: %v", ctx.Response.Body(), err)
	}
	return envelope
}

func TestCreateTask(t *testing.T) {
	h, _ := newTaskHandler()
	body := []byte(`{"title":"Buy milk","description":"2% fat","due_date":"2024-01-10"}`)
	ctx := newRequest(http.MethodPost, "/api/v1/tasks", body)

	h.CreateTask(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusCreated {
		t.Fatalf("status = %d, want %d", got, http.StatusCreated)
	}
	envelope := decodeEnvelope(t, ctx)
	var created domain.Task
	if err := json.Unmarshal(envelope["data"], &created); err != nil {
		t.Fatalf("data is not a task: %v", err)
	}
	if created.Title != "Buy milk" || created.Status != domain.StatusPending {
		t.Errorf("created = %+v, want pending task titled Buy milk", created)
	}
	if created.DueDate == nil {
		t.Error("plain-date due_date was not parsed")
	}
}

func TestCreateTaskRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"title":`},
		{name: "missing title", body: `{"description":"no title"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTaskHandler()
			ctx := newRequest(http.MethodPost, "/api/v1/tasks", []byte(tt.body))
			h.CreateTask(ctx)
			if got := ctx.Response.StatusCode(); got != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", got, http.StatusBadRequest)
			}
		})
	}
}

func TestGetTaskNotFound(t *testing.T) {
	h, _ := newTaskHandler()
	ctx := newRequest(http.MethodGet, "/api/v1/tasks/404", nil)
	ctx.SetUserValue("id", "404")

	h.GetTask(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusNotFound {
		t.Errorf("status = %d, want %d", got, http.StatusNotFound)
	}
}

func TestCompleteAndDeleteTolerateStaleIDs(t *testing.T) {
	// A done or delete click racing a removal must not surface an error.
	h, _ := newTaskHandler()

	for _, route := range []struct {
		name string
		call func(*fasthttp.RequestCtx)
	}{
		{name: "done", call: h.CompleteTask},
		{name: "delete", call: h.DeleteTask},
	} {
		t.Run(route.name, func(t *testing.T) {
			ctx := newRequest(http.MethodPost, "/api/v1/tasks/77/done", nil)
			ctx.SetUserValue("id", "77")
			route.call(ctx)
			if got := ctx.Response.StatusCode(); got != http.StatusNoContent {
				t.Errorf("status = %d, want %d", got, http.StatusNoContent)
			}
		})
	}
}

func TestCompleteTaskMarksDone(t *testing.T) {
	h, uc := newTaskHandler()
	created, err := uc.Create(context.Background(), "task", "", nil)
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}

	id := strconv.FormatInt(created.ID, 10)
	ctx := newRequest(http.MethodPost, "/api/v1/tasks/"+id+"/done", nil)
	ctx.SetUserValue("id", id)
	h.CompleteTask(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", got, http.StatusNoContent)
	}
	stored, _ := uc.Get(context.Background(), created.ID)
	if stored.Status != domain.StatusDone {
		t.Errorf("status = %q, want %q", stored.Status, domain.StatusDone)
	}
}

func TestTaskIDValidation(t *testing.T) {
	h, _ := newTaskHandler()
	ctx := newRequest(http.MethodGet, "/api/v1/tasks/abc", nil)
	ctx.SetUserValue("id", "abc")

	h.GetTask(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", got, http.StatusBadRequest)
	}
}

func TestListTasksKeepsOrder(t *testing.T) {
	h, uc := newTaskHandler()
	for _, title := range []string{"first", "second", "third"} {
		if _, err := uc.Create(context.Background(), title, "", nil); err != nil {
			t.Fatalf("Create(%q) = %v", title, err)
		}
	}

	ctx := newRequest(http.MethodGet, "/api/v1/tasks", nil)
	h.ListTasks(ctx)

	if got := ctx.Response.StatusCode(); got != http.StatusOK {
		t.Fatalf("status = %d, want %d", got, http.StatusOK)
	}
	envelope := decodeEnvelope(t, ctx)
	var tasks []domain.Task
	if err := json.Unmarshal(envelope["data"], &tasks); err != nil {
		t.Fatalf("data is not a task list: %v", err)
	}
	want := []string{"first", "second", "third"}
	if len(tasks) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(tasks), len(want))
	}
	for i, title := range want {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, title)
		}
	}
}
