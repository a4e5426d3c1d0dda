package http

import (
	"net/http"
	"strings"
)

const (
	headerRequestID = "x-request-id"
	querySource     = "source"
)

func requestID(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(headerRequestID))
}

func setRequestID(r *http.Request, requestID string) {
	r.Header.Set(headerRequestID, requestID)
}

// sourceNames accepts both ?source=a&source=b and ?source=a,b.
func sourceNames(r *http.Request) []string {
	var names []string
	for _, value := range r.URL.Query()[querySource] {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
