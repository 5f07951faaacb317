package llm

import "encoding/json"

// finishResponse applies the checks shared by every provider. Structured
// output cut off by the token limit is unusable, so it is reported as
// ErrMaxTokensExceeded before schema validation would misreport it.
func finishResponse(req Request, resp *Response) (*Response, error) {
	if req.Schema != nil && resp.StopReason == StopMaxTokens {
		return nil, &ErrMaxTokensExceeded{Content: resp.Content}
	}
	if err := validateResponse(req.Schema, resp.Content); err != nil {
		return nil, err
	}
	return resp, nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so full model IDs work.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}

// rawText wraps plain text as a JSON string for schema-less requests.
func rawText(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
