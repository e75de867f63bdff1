package handlers

import "github.com/go-chi/chi/v5"

// Routes регистрирует маршруты задач, настроек и виджета
func (h *TaskHandler) Routes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)      // GET /tasks
		r.Post("/", h.PostTask)      // POST /tasks
		r.Get("/all", h.GetAllTasks) // GET /tasks/all

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTaskByID)       // GET /tasks/{id}
			r.Put("/", h.UpdateTaskByID)    // PUT /tasks/{id}
			r.Delete("/", h.DeleteTaskByID) // DELETE /tasks/{id}
			r.Post("/toggle", h.ToggleTask) // POST /tasks/{id}/toggle
		})
	})

	r.Get("/stats", h.GetStatistics)

	r.Route("/settings", func(r chi.Router) {
		r.Get("/theme", h.GetTheme)
		r.Put("/theme", h.PutTheme)
		r.Get("/onboarding", h.GetOnboarding)
		r.Post("/onboarding/seen", h.MarkOnboardingSeen)
	})

	r.Get("/widget/timeline", h.GetWidgetTimeline)
	r.Get("/health", h.HealthCheck)
}
