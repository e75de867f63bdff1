package handlers

import (
	"fmt"
	"mime"
	"net/http"
	"todoTracker/internal/handlers/dto"
	"todoTracker/internal/models/task"
	"todoTracker/internal/query"
)

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == target
}

func parseFilter(r *http.Request) (query.Filter, error) {
	q := r.URL.Query()
	filter := query.Filter{Search: q.Get("search")}

	if raw := q.Get("priority"); raw != "" {
		p, err := task.ParsePriority(raw)
		if err != nil {
			return query.Filter{}, err
		}
		filter.Priority = &p
	}
	if raw := q.Get("category"); raw != "" {
		c, err := task.ParseCategory(raw)
		if err != nil {
			return query.Filter{}, err
		}
		filter.Category = &c
	}
	return filter, nil
}

// createOptions переводит запрос в опции черновика, пустые поля дают значения по умолчанию
func createOptions(req dto.CreateTaskRequest) ([]task.DraftOption, error) {
	options := []task.DraftOption{task.WithDescription(req.Description)}

	if req.Priority != "" {
		p, err := task.ParsePriority(req.Priority)
		if err != nil {
			return nil, err
		}
		options = append(options, task.WithPriority(p))
	}
	if req.Category != "" {
		c, err := task.ParseCategory(req.Category)
		if err != nil {
			return nil, err
		}
		options = append(options, task.WithCategory(c))
	}
	if req.DueDate != nil {
		options = append(options, task.WithDueDate(*req.DueDate))
	}
	return options, nil
}

func updateOptions(req dto.UpdateTaskRequest) ([]task.DraftOption, error) {
	if req.ClearDueDate && req.DueDate != nil {
		return nil, fmt.Errorf("dueDate и clearDueDate нельзя передавать вместе")
	}

	var options []task.DraftOption
	if req.Name != nil {
		options = append(options, task.WithName(*req.Name))
	}
	if req.Description != nil {
		options = append(options, task.WithDescription(*req.Description))
	}
	if req.Priority != nil {
		p, err := task.ParsePriority(*req.Priority)
		if err != nil {
			return nil, err
		}
		options = append(options, task.WithPriority(p))
	}
	if req.Category != nil {
		c, err := task.ParseCategory(*req.Category)
		if err != nil {
			return nil, err
		}
		options = append(options, task.WithCategory(c))
	}
	switch {
	case req.ClearDueDate:
		options = append(options, task.WithoutDueDate())
	case req.DueDate != nil:
		options = append(options, task.WithDueDate(*req.DueDate))
	}
	return options, nil
}
