package failure_test

import (
	"errors"
	"net/http"
	"rathh/shared/failure"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "MissingClientID",
			failure: failure.MissingClientID,
			code:    http.StatusBadRequest,
			message: "client identity is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		result  error
		code    int
		message string
	}{
		{"BadRequest", failure.BadRequest(errors.New("validation failed")), http.StatusBadRequest, "validation failed"},
		{"BadRequestFromString", failure.BadRequestFromString("custom bad request"), http.StatusBadRequest, "custom bad request"},
		{"Unauthorized", failure.Unauthorized("token expired"), http.StatusUnauthorized, "token expired"},
		{"UnprocessableEntity", failure.UnprocessableEntity("traveler form incomplete"), http.StatusUnprocessableEntity, "traveler form incomplete"},
		{"InternalError", failure.InternalError(errors.New("database connection failed")), http.StatusInternalServerError, "database connection failed"},
		{"Unimplemented", failure.Unimplemented("GetTourByID"), http.StatusNotImplemented, "GetTourByID"},
		{"NotFound", failure.NotFound("booking not found"), http.StatusNotFound, "booking not found"},
		{"Conflict", failure.Conflict("booking already confirmed"), http.StatusConflict, "booking already confirmed"},
		{"Forbidden", failure.Forbidden("not yours"), http.StatusForbidden, "not yours"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.result)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestNilErrorsProduceNilFailures(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCode(t *testing.T) {
	if code := failure.GetCode(failure.NotFound("missing")); code != http.StatusNotFound {
		t.Errorf("expected %d, got %d", http.StatusNotFound, code)
	}

	if code := failure.GetCode(errors.New("plain error")); code != http.StatusInternalServerError {
		t.Errorf("expected %d for plain errors, got %d", http.StatusInternalServerError, code)
	}
}
