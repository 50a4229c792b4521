package platformsrv

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// FetchReport performs an authenticated report fetch and folds every failure
// mode into the Result. It never returns a Go error: transport failures and
// undecodable bodies surface as "Network error", non-2xx statuses as
// "Failed to fetch report (<status>)". Blank param values are omitted.
func FetchReport[T any](ctx context.Context, client IPlatform, sessionToken, path string, params map[string]string) Result[T] {
	body, statusCode, err := client.GetJSON(ctx, sessionToken, path, params)
	if err != nil {
		return Fail[T](MsgNetworkError)
	}

	if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
		var payload struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &payload)
		if payload.Message != "" {
			return Fail[T](payload.Message)
		}
		return Fail[T](fmt.Sprintf(MsgFetchFailedFormat, statusCode))
	}

	var data T
	if err := json.Unmarshal(unwrapEnvelope(body), &data); err != nil {
		return Fail[T](MsgNetworkError)
	}

	return Ok(&data)
}
