package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-kit/kit/endpoint"

	"github.com/roomsense/room-ranking-service/internal/pkg/exception"
)

// DecodeRequestFunc extracts a typed request from the incoming HTTP request.
type DecodeRequestFunc func(ctx context.Context, req *http.Request) (interface{}, error)

// EncodeResponseFunc writes the endpoint response to the client.
type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// MakeHandlerFunc wires a go-kit endpoint, a decoder and an encoder into a
// plain http.HandlerFunc. All errors funnel through ErrorResponse.
func MakeHandlerFunc(
	ep endpoint.Endpoint,
	dec DecodeRequestFunc,
	enc EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := dec(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := ep(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := enc(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes the JSON body into T and runs its Bind hook when it
// has one. An empty body leaves the zero value, so endpoints with fully
// optional payloads accept bare requests.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	if req.Body != nil {
		err := json.NewDecoder(req.Body).Decode(request)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "invalid request body",
				Cause:      err,
			}
		}
	}

	if binder, ok := any(request).(interface{ Bind(*http.Request) error }); ok {
		if err := binder.Bind(req); err != nil {
			return nil, fmt.Errorf("bind request: %w", err)
		}
	}

	return request, nil
}

// DecodeEmptyRequest is for endpoints that take no input.
func DecodeEmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
