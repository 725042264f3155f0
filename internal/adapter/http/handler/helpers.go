package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"
	"strconv"

	t "github.com/Temutjin2k/taxi-analytics-system/internal/domain/types"
)

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return errors.New("failed to encode json")
	}

	js = append(js, '\n')

	maps.Copy(w.Header(), headers)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// readPositiveIntQuery reads an optional positive integer query parameter,
// falling back to the given default when the parameter is absent.
func readPositiveIntQuery(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, t.ErrInvalidTripCount
	}
	return n, nil
}

func GetCode(err error) int {
	switch {
	case IsOneOf(err, t.ErrInvalidTripCount):
		return http.StatusBadRequest
	case IsOneOf(err, t.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func IsOneOf(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
