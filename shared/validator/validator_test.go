package validator_test

import (
	"rathh/shared/validator"
	"strings"
	"testing"
)

type travelerTestStruct struct {
	FirstName string `validate:"required,min=1,max=100" json:"first_name"`
	Email     string `validate:"required,email,max=255" json:"email"`
	Phone     string `validate:"required,min=1,max=30"  json:"phone"`
	Country   string `validate:"omitempty,max=100"      json:"country"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *travelerTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &travelerTestStruct{
				FirstName: "Asha",
				Email:     "asha@example.com",
				Phone:     "+911234567890",
			},
			expectError: false,
		},
		{
			name: "missing required first name",
			data: &travelerTestStruct{
				Email: "asha@example.com",
				Phone: "+911234567890",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &travelerTestStruct{
				FirstName: "Asha",
				Email:     "invalid-email",
				Phone:     "+911234567890",
			},
			expectError: true,
		},
		{
			name: "phone too long",
			data: &travelerTestStruct{
				FirstName: "Asha",
				Email:     "asha@example.com",
				Phone:     strings.Repeat("9", 31),
			},
			expectError: true,
		},
		{
			name: "optional country may be empty",
			data: &travelerTestStruct{
				FirstName: "Asha",
				Email:     "asha@example.com",
				Phone:     "+911234567890",
				Country:   "",
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate_DecodesAndValidates(t *testing.T) {
	body := strings.NewReader(`{"first_name":"Asha","email":"asha@example.com","phone":"+911234567890"}`)

	var data travelerTestStruct
	if err := validator.Validate(body, &data); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if data.FirstName != "Asha" {
		t.Errorf("expected decoded first name 'Asha', got %q", data.FirstName)
	}
}

func TestValidate_RejectsMalformedJSON(t *testing.T) {
	body := strings.NewReader(`{"first_name":`)

	var data travelerTestStruct
	if err := validator.Validate(body, &data); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{name: "valid required string", field: "test", tag: "required", expectError: false},
		{name: "empty required string", field: "", tag: "required", expectError: true},
		{name: "valid email", field: "test@example.com", tag: "email", expectError: false},
		{name: "invalid email", field: "not-an-email", tag: "email", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}
