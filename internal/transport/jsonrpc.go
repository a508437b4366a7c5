package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrorCode is a JSON-RPC 2.0 error code. The board engine only ever
// emits three: a request that is not valid JSON-RPC, a call that failed,
// and nothing in between.
type ErrorCode int

const (
	CodeInvalidRequest ErrorCode = -32600
	CodeInternalError  ErrorCode = -32603
)

var errMalformedRequest = errors.New("malformed json-rpc request")

// Request is one incoming JSON-RPC 2.0 call. Params stay raw; the MCP
// handler decodes them per method.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      any             `json:"id,omitempty"`
}

// Response is the wire form of a call outcome. Exactly one of Result and
// Error is set.
type Response struct {
	JSONRPC string         `json:"jsonrpc"`
	Result  any            `json:"result,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
	ID      any            `json:"id,omitempty"`
}

// ResponseError is a JSON-RPC 2.0 error object.
type ResponseError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// DecodeRequest reads and validates one JSON-RPC call from body.
func DecodeRequest(body io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, errMalformedRequest
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		return nil, errMalformedRequest
	}
	return &req, nil
}

// Result builds the success response for this call.
func (r *Request) Result(result any) Response {
	return Response{JSONRPC: "2.0", Result: result, ID: r.ID}
}

// Fail builds the error response for this call.
func (r *Request) Fail(code ErrorCode, message string) Response {
	return Response{
		JSONRPC: "2.0",
		Error:   &ResponseError{Code: code, Message: message},
		ID:      r.ID,
	}
}

func writeResponse(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
