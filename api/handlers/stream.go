// ABOUTME: Stream handlers expose the member and topic feeds over HTTP
// ABOUTME: Parse request parameters, invoke the stream service and write the RSS document

package handlers

import (
	"context"
	"net/http"
	"strings"

	"zhihu-rss-api/core/interfaces"
	"zhihu-rss-api/core/stream"
	"zhihu-rss-api/core/zhihu"
)

// StreamService interface defines the methods needed from the stream service
type StreamService interface {
	UserFeed(ctx context.Context, userID string, opts stream.UserFeedOptions) (string, error)
	TopicFeed(ctx context.Context, topicID string, sort zhihu.Sort, picProxy string) (string, error)
}

// StreamHandler handles feed-related HTTP requests
type StreamHandler struct {
	service StreamService
	logger  interfaces.Logger
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(service StreamService, logger interfaces.Logger) *StreamHandler {
	return &StreamHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers all stream routes on the mux
func (h *StreamHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /zhihu/{id}", h.UserStream)
	mux.HandleFunc("GET /zhihutopic/{id}", h.TopicStream)
}

// UserStream handles GET /zhihu/{id}
func (h *StreamHandler) UserStream(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if !validStreamID(userID) {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	opts := stream.UserFeedOptions{
		Digest:   r.URL.Query().Get("digest") == "true",
		PicProxy: r.URL.Query().Get("pic"),
	}

	document, err := h.service.UserFeed(r.Context(), userID, opts)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeFeed(w, document)
}

// TopicStream handles GET /zhihutopic/{id}
func (h *StreamHandler) TopicStream(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("id")
	if !validStreamID(topicID) {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}

	// anything but the two recognized values sorts by popularity
	sort := zhihu.Sort(r.URL.Query().Get("sort"))
	if sort != zhihu.SortNewest && sort != zhihu.SortHot {
		sort = zhihu.SortHot
	}

	document, err := h.service.TopicFeed(r.Context(), topicID, sort, r.URL.Query().Get("pic"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeFeed(w, document)
}

// validStreamID rejects empty identifiers and the trailing-space garbage some
// clients produce from copy-pasted URLs.
func validStreamID(id string) bool {
	return id != "" && !strings.HasSuffix(id, " ")
}

func writeFeed(w http.ResponseWriter, document string) {
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(document))
}
