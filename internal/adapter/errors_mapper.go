package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// matrixError is the standard error body of a Matrix homeserver.
type matrixError struct {
	ErrCode string `json:"errcode"`
	Error   string `json:"error"`
}

// mapHTTPError turns a non-2xx homeserver reply into an adapter sentinel.
// The Matrix errcode and message, when present, are kept in the error text.
func mapHTTPError(resp *resty.Response) error {
	status := resp.StatusCode()
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	detail := errorDetail(resp.Body())

	switch {
	case status == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, detail)
	case status == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, detail)
	case status == http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, detail)
	case status == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, detail)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, detail)
	case status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: http %d: %s", ErrBadGateway, status, detail)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrInternalServerError, status, detail)
	default:
		if detail == "" {
			detail = http.StatusText(status)
		}
		return fmt.Errorf("http %d: %s", status, detail)
	}
}

func errorDetail(body []byte) string {
	var me matrixError
	if err := json.Unmarshal(body, &me); err == nil && me.ErrCode != "" {
		if me.Error == "" {
			return me.ErrCode
		}
		return me.ErrCode + ": " + me.Error
	}
	return strings.TrimSpace(string(body))
}
