package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/iamnithyaramesh/project-manager/internal/core/ports"
	"github.com/iamnithyaramesh/project-manager/internal/observability/metrics"
)

type Router struct {
	ingest      ports.DocumentIngestor
	documents   ports.DocumentService
	materialize ports.TaskMaterializer
	prioritize  ports.TaskPrioritizer
	tasks       ports.TaskManager
	projects    ports.ProjectManager
	export      ports.ProjectTaskExporter
	users       ports.UserDirectory

	serviceName    string
	maxUploadBytes int64
	metrics        *metrics.HTTPServerMetrics
}

type RouterOptions struct {
	ServiceName    string
	MaxUploadBytes int64
	Metrics        *metrics.HTTPServerMetrics
}

func NewRouter(
	ingest ports.DocumentIngestor,
	documents ports.DocumentService,
	materialize ports.TaskMaterializer,
	prioritize ports.TaskPrioritizer,
	tasks ports.TaskManager,
	projects ports.ProjectManager,
	export ports.ProjectTaskExporter,
	users ports.UserDirectory,
	options RouterOptions,
) *Router {
	if options.ServiceName == "" {
		options.ServiceName = "project-manager"
	}
	if options.MaxUploadBytes <= 0 {
		options.MaxUploadBytes = 10 << 20
	}
	return &Router{
		ingest:         ingest,
		documents:      documents,
		materialize:    materialize,
		prioritize:     prioritize,
		tasks:          tasks,
		projects:       projects,
		export:         export,
		users:          users,
		serviceName:    options.ServiceName,
		maxUploadBytes: options.MaxUploadBytes,
		metrics:        options.Metrics,
	}
}

func (rt *Router) Handler() http.Handler {
	api := http.NewServeMux()
	api.HandleFunc("POST /v1/documents", rt.uploadDocument)
	api.HandleFunc("GET /v1/documents", rt.listDocuments)
	api.HandleFunc("GET /v1/documents/{id}", rt.getDocument)
	api.HandleFunc("DELETE /v1/documents/{id}", rt.deleteDocument)
	api.HandleFunc("POST /v1/documents/{id}/tasks", rt.createTasksFromDocument)
	api.HandleFunc("POST /v1/projects", rt.createProject)
	api.HandleFunc("GET /v1/projects/{id}", rt.getProject)
	api.HandleFunc("GET /v1/projects/{id}/tasks/export", rt.exportProjectTasks)
	api.HandleFunc("POST /v1/tasks", rt.createTask)
	api.HandleFunc("GET /v1/tasks", rt.listTasks)
	api.HandleFunc("PATCH /v1/tasks/{id}/status", rt.updateTaskStatus)
	api.HandleFunc("POST /v1/tasks/prioritize", rt.prioritizeTasks)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", rt.healthz)
	if rt.metrics != nil {
		mux.Handle("GET /metrics", rt.metrics.Handler())
	}
	mux.Handle("/v1/", authMiddleware(rt.users, api))

	var handler http.Handler = mux
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.serviceName, handler)
	}
	return requestIDMiddleware(accessLogMiddleware(handler))
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, mapErrorToHTTPStatus(err), map[string]string{"error": err.Error()})
}
