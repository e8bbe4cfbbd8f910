package stakeapi

import (
	"context"
	"encoding/json"
	"net/http"
)

type graphqlRequest struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables,omitempty"`
	OperationName string         `json:"operationName,omitempty"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

// doGraphQL posts a GraphQL document and decodes the data payload into out.
// GraphQL-level errors ride on a 200 response; they surface as an
// UpstreamError carrying every message.
func (c *Client) doGraphQL(ctx context.Context, query, operationName string, variables map[string]any, out any) error {
	payload := graphqlRequest{
		Query:         query,
		Variables:     variables,
		OperationName: operationName,
	}

	var envelope graphqlResponse
	if err := c.doREST(ctx, http.MethodPost, pathGraphQL, nil, payload, &envelope); err != nil {
		return err
	}

	if len(envelope.Errors) > 0 {
		messages := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msg := e.Message
			if msg == "" {
				msg = "unknown error"
			}
			messages = append(messages, msg)
		}
		return &UpstreamError{StatusCode: http.StatusOK, Messages: messages}
	}

	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
