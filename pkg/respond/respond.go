package respond

import (
	"encoding/json"
	"net/http"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{"error": message})
}

// OK is the acknowledgement body for operations that return no entity
// (moves, reorders, deletes).
func OK(w http.ResponseWriter, r *http.Request) {
	JSON(w, r, http.StatusOK, map[string]bool{"ok": true})
}
