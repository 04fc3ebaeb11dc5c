package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainError_PassthroughAndMapping(t *testing.T) {
	t.Parallel()

	forbidden := NewForbidden("Not authorized to update this listing")
	de := ToDomainError(forbidden)
	if de.HTTPStatus != http.StatusForbidden || de.Code != "FORBIDDEN" {
		t.Fatalf("forbidden mapping: got %d/%s", de.HTTPStatus, de.Code)
	}

	wrapped := fmt.Errorf("fetching listing: %w", pgx.ErrNoRows)
	de = ToDomainError(wrapped)
	if de.HTTPStatus != http.StatusNotFound {
		t.Fatalf("pgx.ErrNoRows should map to 404, got %d", de.HTTPStatus)
	}

	de = ToDomainError(errors.New("disk on fire"))
	if de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("generic error should map to 500, got %d", de.HTTPStatus)
	}
	if de.Message != "Something went wrong" {
		t.Fatalf("internal errors must not leak detail, got %q", de.Message)
	}
}

func TestDomainError_UnwrapAndError(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	de := ToDomainError(NewInternalError(cause))
	if !errors.Is(de, cause) {
		t.Fatalf("expected wrapped cause to survive")
	}
	if de.Error() == "" {
		t.Fatalf("expected non-empty error string")
	}
}

func TestConflictUsesBadRequest(t *testing.T) {
	t.Parallel()

	de := ToDomainError(NewConflict("User already exists with this email"))
	if de.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("register conflicts surface as 400, got %d", de.HTTPStatus)
	}
}

func TestToDomainError_Nil(t *testing.T) {
	t.Parallel()

	if ToDomainError(nil) != nil {
		t.Fatalf("nil error should map to nil")
	}
}
