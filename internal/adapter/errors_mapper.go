package adapter

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// maxErrorBody bounds how much of a failed response body is quoted in the
// error text.
const maxErrorBody = 1 << 10

const eventStreamMediaType = "text/event-stream"

// mapHTTPError converts a non-2xx response into a sentinel-wrapped error.
// The response must have been requested with SetDoNotParseResponse, so the
// body is read from the raw stream.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := readErrorBody(resp.RawBody())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return wrapWithBody(ErrBadRequest, body)
	case http.StatusNotFound:
		return wrapWithBody(ErrNotFound, body)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return wrapWithBody(ErrBadGateway, body)
	case http.StatusInternalServerError:
		return wrapWithBody(ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// checkEventStream verifies that a successful response is a server-sent
// event stream.
func checkEventStream(resp *resty.Response) error {
	contentType := resp.Header().Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != eventStreamMediaType {
		return fmt.Errorf("%w: %q", ErrUnexpectedContentType, contentType)
	}

	return nil
}

func wrapWithBody(err error, body string) error {
	if body == "" {
		return err
	}

	return fmt.Errorf("%w: %s", err, body)
}

func readErrorBody(body io.Reader) string {
	if body == nil {
		return ""
	}

	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	return strings.TrimSpace(string(data))
}
