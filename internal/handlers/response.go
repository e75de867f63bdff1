package handlers

import (
	"encoding/json"
	"net/http"
	"todoTracker/internal/logger"
)

// Payload - одно поле верхнего уровня JSON-ответа
type Payload struct {
	Key     string
	Payload any
}

func toPayload(key string, pl any) Payload {
	return Payload{Key: key, Payload: pl}
}

func responseWithJSON(w http.ResponseWriter, code int, payload ...Payload) {
	body := make(map[string]any, len(payload))
	for _, pl := range payload {
		body[pl.Key] = pl.Payload
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("HTTP: Не удалось записать ответ", err)
	}
}

func responseWithError(w http.ResponseWriter, code int, message string) {
	responseWithJSON(w, code,
		toPayload("error", message),
		toPayload("status", http.StatusText(code)),
	)
}
