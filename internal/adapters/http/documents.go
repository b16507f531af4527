package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/iamnithyaramesh/project-manager/internal/core/domain"
)

func (rt *Router) uploadDocument(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, rt.maxUploadBytes)
	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "multipart field 'file' is required"})
		return
	}
	defer file.Close()

	doc, err := rt.ingest.Upload(r.Context(), user.ID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		if rt.metrics != nil {
			rt.metrics.RecordDocumentProcessed(rt.serviceName, fileTypeLabel(fileHeader.Filename), "failed", 0)
		}
		writeError(w, err)
		return
	}

	if rt.metrics != nil {
		rt.metrics.RecordDocumentProcessed(rt.serviceName, string(doc.FileType), "processed", len(doc.ExtractedTasks))
	}
	writeJSON(w, http.StatusCreated, doc)
}

func (rt *Router) listDocuments(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	docs, err := rt.documents.List(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

func (rt *Router) getDocument(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	doc, err := rt.documents.Get(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (rt *Router) deleteDocument(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	if err := rt.documents.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (rt *Router) createTasksFromDocument(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req struct {
		ProjectID string                 `json:"project_id"`
		Selected  []domain.ExtractedTask `json:"selected_tasks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	tasks, err := rt.materialize.CreateFromDocument(r.Context(), user.ID, r.PathValue("id"), req.ProjectID, req.Selected)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"tasks": tasks, "count": len(tasks)})
}

func fileTypeLabel(filename string) string {
	fileType, err := domain.DetectFileType(filename)
	if err != nil {
		return "unsupported"
	}
	return string(fileType)
}
