package errors

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// HTTPBody is the JSON shape of every error the API returns
type HTTPBody struct {
	Code      Code                   `json:"code"`
	Message   string                 `json:"message"`
	Retryable bool                   `json:"retryable,omitempty"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
}

// ToHTTPBody converts any error into the API error body and status
func ToHTTPBody(err error) (int, *HTTPBody) {
	code := GetCode(err)
	body := &HTTPBody{
		Code:      code,
		Message:   GetMessage(err),
		Retryable: IsRetryable(err),
		Meta:      GetMeta(err),
	}

	// Don't leak causes of unexpected failures
	if code == CodeInternal {
		body.Message = "internal error"
		body.Meta = nil
	}

	return code.HTTPStatus(), body
}

// WriteHTTPError renders err as JSON on w
func WriteHTTPError(w http.ResponseWriter, err error) {
	status, body := ToHTTPBody(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "code", body.Code, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		slog.Error("failed to encode error body", "error", encErr)
	}
}
