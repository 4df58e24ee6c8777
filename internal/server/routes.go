package server

import "net/http"

// routes registers the API endpoints. The /api/warroom prefix matches
// what the dashboard expects.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Tasks and the worker protocol.
	mux.HandleFunc("GET /api/warroom/tasks", s.handleListTasks)
	mux.HandleFunc("POST /api/warroom/tasks", s.handleCreateTask)
	mux.HandleFunc("GET /api/warroom/tasks/queue", s.handleQueue)
	mux.HandleFunc("PUT /api/warroom/tasks/{id}", s.handleUpdateTask)
	mux.HandleFunc("DELETE /api/warroom/tasks/{id}", s.handleDeleteTask)
	mux.HandleFunc("POST /api/warroom/tasks/{id}/run", s.handleRunTask)
	mux.HandleFunc("POST /api/warroom/tasks/{id}/pickup", s.handlePickupTask)
	mux.HandleFunc("POST /api/warroom/tasks/{id}/complete", s.handleCompleteTask)

	// References.
	mux.HandleFunc("GET /api/warroom/tasks/{id}/references", s.handleListReferences)
	mux.HandleFunc("POST /api/warroom/tasks/{id}/references", s.handleAddReference)
	mux.HandleFunc("DELETE /api/warroom/tasks/{id}/references/{refID}", s.handleDeleteReference)

	// Projects and tags.
	mux.HandleFunc("GET /api/warroom/projects", s.handleListProjects)
	mux.HandleFunc("POST /api/warroom/projects", s.handleCreateProject)
	mux.HandleFunc("PUT /api/warroom/projects/{id}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /api/warroom/projects/{id}", s.handleDeleteProject)
	mux.HandleFunc("GET /api/warroom/tags", s.handleListTags)

	// Usage and models.
	mux.HandleFunc("GET /api/warroom/usage", s.handleUsage)
	mux.HandleFunc("GET /api/warroom/models", s.handleListModels)
	mux.HandleFunc("POST /api/warroom/model", s.handleSetModel)

	// Heartbeat.
	mux.HandleFunc("GET /api/warroom/heartbeat", s.handleGetHeartbeat)
	mux.HandleFunc("POST /api/warroom/heartbeat", s.handleRecordHeartbeat)

	// Skills.
	mux.HandleFunc("GET /api/warroom/skills", s.handleListSkills)
	mux.HandleFunc("POST /api/warroom/skills", s.handleCreateSkill)
	mux.HandleFunc("GET /api/warroom/skills/{id}/content", s.handleSkillContent)
	mux.HandleFunc("POST /api/warroom/skills/{id}/toggle", s.handleToggleSkill)
	mux.HandleFunc("DELETE /api/warroom/skills/{id}", s.handleDeleteSkill)

	// Workspace files and soul templates.
	mux.HandleFunc("GET /api/warroom/workspace-file", s.handleGetWorkspaceFile)
	mux.HandleFunc("PUT /api/warroom/workspace-file", s.handlePutWorkspaceFile)
	mux.HandleFunc("GET /api/warroom/workspace-file/history", s.handleWorkspaceFileHistory)
	mux.HandleFunc("POST /api/warroom/workspace-file/revert", s.handleRevertWorkspaceFile)
	mux.HandleFunc("GET /api/warroom/soul/templates", s.handleSoulTemplates)

	// Calendar and overview stats.
	mux.HandleFunc("GET /api/warroom/calendar", s.handleCalendar)
	mux.HandleFunc("GET /api/warroom/stats", s.handleStats)

	mux.HandleFunc("OPTIONS /api/warroom/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}
