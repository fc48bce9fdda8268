package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/jornada-backend-go/internal/domain/timerecord"
)

// queryPtr returns the trimmed query value, or nil when it is absent or blank.
func queryPtr(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}

func recordsQuery(r *http.Request) timerecord.ListRecordsQuery {
	return timerecord.ListRecordsQuery{
		DateFrom: queryPtr(r, "dateFrom"),
		DateTo:   queryPtr(r, "dateTo"),
		SedeID:   queryPtr(r, "sedeId"),
		Search:   queryPtr(r, "search"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}
