package validator

import (
	"errors"
	"io"
	"testing"

	isbnerrors "isbnsplit/internal/isbn/errors"
	"isbnsplit/pkg/logger"
	"isbnsplit/pkg/model"
)

func newTestValidator() *ISBNValidator {
	log := logger.New(logger.Config{
		Level:     "info",
		Format:    logger.JSON,
		Output:    io.Discard,
		AddSource: false,
		Service:   "test",
	})
	return NewISBNValidator(log)
}

func TestValidate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name       string
		groups     model.GroupSet
		wantError  bool
		wantFailed int
	}{
		{
			name:   "all numeric groups",
			groups: model.NewGroupSet("978", "0", "393", "97950", "3"),
		},
		{
			name:   "leading zeros",
			groups: model.NewGroupSet("097", "00", "0393", "097950", "0"),
		},
		{
			name:   "bad checksum is not this stage's concern",
			groups: model.NewGroupSet("978", "0", "393", "97950", "9"),
		},
		{
			name:       "no groups",
			groups:     model.GroupSet{},
			wantError:  true,
			wantFailed: 5,
		},
		{
			name:       "missing check digit",
			groups:     model.NewGroupSet("978", "0", "393", "97950"),
			wantError:  true,
			wantFailed: 1,
		},
		{
			name:       "letter in check digit",
			groups:     model.NewGroupSet("978", "0", "393", "97950", "3X"),
			wantError:  true,
			wantFailed: 1,
		},
		{
			name:       "every bad group is reported",
			groups:     model.NewGroupSet("97a", "0", "3_3", "97950", "x"),
			wantError:  true,
			wantFailed: 3,
		},
		{
			name:       "non-ascii digits rejected",
			groups:     model.NewGroupSet("٩٧٨", "0", "393", "97950", "3"),
			wantError:  true,
			wantFailed: 1,
		},
		{
			name:       "present but empty group",
			groups:     model.GroupSet{model.Of("978"), model.Of(""), model.Of("393"), model.Of("97950"), model.Of("3")},
			wantError:  true,
			wantFailed: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.groups)
			if !tt.wantError {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, isbnerrors.ErrInvalidCharacter) {
				t.Errorf("error %v does not wrap ErrInvalidCharacter", err)
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected ValidationErrors, got %T", err)
			}
			if len(verrs) != tt.wantFailed {
				t.Errorf("got %d failed groups, want %d: %v", len(verrs), tt.wantFailed, verrs)
			}
		})
	}
}

func TestValidate_ReportsLabels(t *testing.T) {
	v := newTestValidator()

	err := v.Validate(model.NewGroupSet("978", "0", "393", "97950"))

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Field != "Check digit" {
		t.Errorf("Field = %q, want %q", verrs[0].Field, "Check digit")
	}
	if verrs[0].Message != "is missing" {
		t.Errorf("Message = %q, want %q", verrs[0].Message, "is missing")
	}
	if _, ok := verrs.Details()["Check digit"]; !ok {
		t.Errorf("Details() missing check digit entry: %v", verrs.Details())
	}
}

func TestValidateRequest(t *testing.T) {
	v := newTestValidator()

	if err := v.ValidateRequest(&model.DecomposeRequest{ISBN: "978-0-393-97950-3"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	err := v.ValidateRequest(&model.DecomposeRequest{})
	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors for empty request, got %v", err)
	}
	if verrs[0].Field != "isbn" {
		t.Errorf("Field = %q, want isbn", verrs[0].Field)
	}
}
