// Package client provides typed access to the DBM backend REST API. Every call is submitted through
// a go-openapi runtime and answers are unwrapped from the backend's response envelope.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-openapi/runtime"
	httptransport "github.com/go-openapi/runtime/client"
	"github.com/go-openapi/strfmt"
	"github.com/xfwduke/blueking-dbm/internal/errdef"
)

const jsonMediaType = "application/json"

type Client struct {
	transport *httptransport.Runtime
}

// New creates a client for the DBM backend served at host under basePath. Requests are
// authenticated with token if it isn't empty.
func New(host, basePath, token string, timeout time.Duration) *Client {
	transport := httptransport.NewWithClient(host, basePath, []string{"http"}, &http.Client{Timeout: timeout})
	if token != "" {
		transport.DefaultAuthentication = httptransport.BearerToken(token)
	}
	return &Client{transport: transport}
}

// envelope is how the backend wraps every answer.
type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Result  bool   `json:"result"`
	Data    T      `json:"data"`
}

// ListBase is a page of results.
type ListBase[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

// param applies a parameter to a request.
type param func(runtime.ClientRequest) error

type operation struct {
	id     string
	method string
	path   string
	params param
}

func pathParam(name, value string) param {
	return func(r runtime.ClientRequest) error {
		return r.SetPathParam(name, value)
	}
}

func bodyParam(body any) param {
	return func(r runtime.ClientRequest) error {
		return r.SetBodyParam(body)
	}
}

func params(fns ...param) param {
	return func(r runtime.ClientRequest) error {
		for _, fn := range fns {
			if err := fn(r); err != nil {
				return err
			}
		}
		return nil
	}
}

// submit sends op and decodes the data of the response envelope into T.
func submit[T any](ctx context.Context, c *Client, op operation) (T, error) {
	var zero T

	result, err := c.transport.Submit(&runtime.ClientOperation{
		ID:                 op.id,
		Method:             op.method,
		PathPattern:        op.path,
		ProducesMediaTypes: []string{jsonMediaType},
		ConsumesMediaTypes: []string{jsonMediaType},
		Params: runtime.ClientRequestWriterFunc(func(r runtime.ClientRequest, _ strfmt.Registry) error {
			if op.params == nil {
				return nil
			}
			return op.params(r)
		}),
		Reader:  envelopeReader[T](op.id),
		Context: ctx,
	})
	if err != nil {
		return zero, err
	}

	if result == nil {
		return zero, nil
	}
	data, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("%s: unexpected result type %T", op.id, result)
	}
	return data, nil
}

func envelopeReader[T any](id string) runtime.ClientResponseReaderFunc {
	return func(response runtime.ClientResponse, consumer runtime.Consumer) (any, error) {
		if response.Code() == http.StatusNotFound {
			return nil, errdef.NewNotFound("%s: %s", id, response.Message())
		}
		if response.Code() >= http.StatusMultipleChoices {
			return nil, errdef.NewUpstream("%s: %v", id, runtime.NewAPIError(id, response.Message(), response.Code()))
		}

		var e envelope[T]
		if err := consumer.Consume(response.Body(), &e); err != nil {
			return nil, fmt.Errorf("%s: failed to decode response: %v", id, err)
		}
		if e.Code != 0 || !e.Result {
			return nil, errdef.NewUpstream("%s: %s (code %d)", id, e.Message, e.Code)
		}
		return e.Data, nil
	}
}
