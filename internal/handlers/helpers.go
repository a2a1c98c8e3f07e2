package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const maxBodyBytes = 100 << 10

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeBodyError answers a body that could not be read or parsed: 413 when
// it exceeds maxBodyBytes, 400 otherwise.
func writeBodyError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		http.Error(w, "Request entity too large", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "Invalid request body", http.StatusBadRequest)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	return bytes.TrimSpace(body), nil
}

// decodeDocument parses a request body as relaxed Extended JSON, keeping
// field order and integer types. An empty body is an empty document.
func decodeDocument(w http.ResponseWriter, r *http.Request) (bson.D, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	doc := bson.D{}
	if len(body) == 0 {
		return doc, nil
	}
	if err := bson.UnmarshalExtJSON(body, false, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeInto parses a request body as relaxed Extended JSON into v. An
// empty body leaves v untouched.
func decodeInto(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := readBody(w, r)
	if err != nil || len(body) == 0 {
		return err
	}
	return bson.UnmarshalExtJSON(body, false, v)
}
