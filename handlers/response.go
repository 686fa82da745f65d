package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

type ApiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp ApiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ApiResponse{Success: false, Message: message})
}

// Postgres error codes the API contract maps to client errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgInvalidTextRep      = "22P02"
	pgUndefinedTable      = "42P01"
)

// writeStoreError translates persistence failures into the API's error
// contract. Integrity violations become 400s; everything else is a 500 with
// the detail kept server-side.
func writeStoreError(w http.ResponseWriter, err error) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgUniqueViolation:
			writeError(w, http.StatusBadRequest, "Duplicate entry")
			return
		case pgForeignKeyViolation:
			writeError(w, http.StatusBadRequest, "Referenced record does not exist")
			return
		case pgNotNullViolation:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Field %s cannot be empty", pqErr.Column))
			return
		case pgInvalidTextRep:
			writeError(w, http.StatusBadRequest, "Invalid value format")
			return
		case pgUndefinedTable:
			logrus.WithError(err).Error("schema out of date: undefined table")
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		writeError(w, http.StatusBadRequest, "Duplicate entry")
		return
	}

	logrus.WithError(err).Error("database operation failed")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
