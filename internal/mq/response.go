package mq

import (
	"fmt"
	"net/http"

	"github.com/rickicode/mikrotik-billing/internal/errs"
)

// Response is the common envelope of every reply. Handlers embed it to add payload fields.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
}

func NewOkResponse() Response {
	return Response{Status: http.StatusOK}
}

func NewBadRequestResponse(message string) Response {
	return Response{
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewInternalErrorResponse(message string) Response {
	return Response{
		Status:  http.StatusInternalServerError,
		Message: message,
	}
}

func (r Response) IsError() bool {
	return r.Status != http.StatusOK
}

func (r Response) Error() error {
	if !r.IsError() {
		return nil
	}

	return fmt.Errorf("%w: status %d: %s", errs.ErrAPIError, r.Status, r.Message)
}
