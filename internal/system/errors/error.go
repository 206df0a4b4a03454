/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package errors

import "fmt"

// ErrorMessage is the error body returned by the portal API.
type ErrorMessage struct {
	Code        string `json:"error_code"`
	Message     string `json:"error_message"`
	Description string `json:"error_description"`
	TraceID     string `json:"trace_id,omitempty"`
}

// ClientError is a failure the caller can act on. It is returned with its own status code.
type ClientError struct {
	ErrorMessage
	StatusCode int
}

// ServerError is a failure of the service or its upstreams. It is answered with a 500.
type ServerError struct {
	ErrorMessage
	Err error
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
}

func (e *ServerError) Unwrap() error {
	return e.Err
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func NewServerError(msg ErrorMessage, cause error) *ServerError {
	return &ServerError{
		ErrorMessage: msg,
		Err:          cause,
	}
}

func NewClientError(msg ErrorMessage, code int) *ClientError {
	return &ClientError{
		ErrorMessage: msg,
		StatusCode:   code,
	}
}

// Traced returns the message sent to the caller, stamped with the request trace id.
func (e *ClientError) Traced(traceID string) ErrorMessage {
	msg := e.ErrorMessage
	msg.TraceID = traceID
	return msg
}

// Masked returns the message sent to the caller for a server error. The description and the
// cause stay in the logs.
func (e *ServerError) Masked(traceID string) ErrorMessage {
	return ErrorMessage{
		Code:        e.Code,
		Message:     e.Message,
		Description: "Internal server error.",
		TraceID:     traceID,
	}
}
