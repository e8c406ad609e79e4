package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	err := New(ErrCodeRoomNotFound, "room %s not found", "kitchen-1")
	if got, want := err.Error(), "ROOM_NOT_FOUND: room kitchen-1 not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	cause := errors.New("connection refused")
	wrapped := Wrap(ErrCodeNetwork, cause, "ping mongo")
	if got, want := wrapped.Error(), "NETWORK_ERROR: ping mongo: connection refused"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, cause) || errors.Unwrap(wrapped) != cause {
		t.Error("Wrap lost its cause")
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		invalid  bool
		notFound bool
		message  string
	}{
		{"nil", nil, "", false, false, ""},
		{"plain", errors.New("disk full"), "", false, false, "disk full"},
		{"variant", New(ErrCodeInvalidVariant, "unknown variant: castle"), ErrCodeInvalidVariant, true, false, "unknown variant: castle"},
		{"handle", New(ErrCodeInvalidHandle, "bad handle"), ErrCodeInvalidHandle, true, false, "bad handle"},
		{"project", New(ErrCodeProjectNotFound, "no project"), ErrCodeProjectNotFound, false, true, "no project"},
		{"session", New(ErrCodeSessionActive, "drag running"), ErrCodeSessionActive, false, false, "drag running"},
		{"outer code wins", Wrap(ErrCodeInternal, New(ErrCodeInvalidSize, "inner"), "outer"), ErrCodeInternal, false, false, "outer"},
		{"fmt wrapped", fmt.Errorf("load: %w", New(ErrCodeFileNotFound, "house.toml")), ErrCodeFileNotFound, false, true, "house.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.code {
				t.Errorf("GetCode = %q, want %q", got, tt.code)
			}
			if tt.code != "" && !Is(tt.err, tt.code) {
				t.Errorf("Is(%q) = false", tt.code)
			}
			if Is(tt.err, ErrCodeNoSession) {
				t.Error("Is(NO_SESSION) = true")
			}
			if got := IsInvalid(tt.err); got != tt.invalid {
				t.Errorf("IsInvalid = %v, want %v", got, tt.invalid)
			}
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound = %v, want %v", got, tt.notFound)
			}
			if tt.err != nil {
				if got := UserMessage(tt.err); got != tt.message {
					t.Errorf("UserMessage = %q, want %q", got, tt.message)
				}
			}
		})
	}
}
