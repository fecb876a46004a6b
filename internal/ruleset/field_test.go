package ruleset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gstgenius/internal/domain"
	"gstgenius/internal/ruleset"
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.FieldKind
		value   string
		wantErr error
	}{
		{"valid gstin", domain.FieldGSTIN, "27ABCDE1234F1Z5", nil},
		{"gstin with surrounding spaces", domain.FieldGSTIN, " 27ABCDE1234F1Z5 ", nil},
		{"gstin too short", domain.FieldGSTIN, "27ABCDE1234F1Z", ruleset.ErrGSTINFormat},
		{"gstin missing Z", domain.FieldGSTIN, "27ABCDE1234F1X5", ruleset.ErrGSTINFormat},
		{"gstin lowercase", domain.FieldGSTIN, "27abcde1234f1z5", ruleset.ErrGSTINFormat},
		{"gstin entity number zero", domain.FieldGSTIN, "27ABCDE1234F0Z5", ruleset.ErrGSTINFormat},
		{"valid pan", domain.FieldPAN, "ABCDE1234F", nil},
		{"pan wrong shape", domain.FieldPAN, "AB1DE1234F", ruleset.ErrPANFormat},
		{"pan too long", domain.FieldPAN, "ABCDE1234FX", ruleset.ErrPANFormat},
		{"valid email", domain.FieldEmail, "billing@acme.in", nil},
		{"email without domain dot", domain.FieldEmail, "billing@acme", ruleset.ErrEmailFormat},
		{"email with spaces", domain.FieldEmail, "bil ling@acme.in", ruleset.ErrEmailFormat},
		{"valid phone", domain.FieldPhone, "9876543210", nil},
		{"phone too short", domain.FieldPhone, "98765", ruleset.ErrPhoneFormat},
		{"phone with letters", domain.FieldPhone, "98765ABCDE", ruleset.ErrPhoneFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ruleset.ValidateField(tt.kind, tt.value)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateField_EmptyValuesAlwaysPass(t *testing.T) {
	kinds := []domain.FieldKind{domain.FieldGSTIN, domain.FieldPAN, domain.FieldEmail, domain.FieldPhone}
	for _, kind := range kinds {
		assert.NoError(t, ruleset.ValidateField(kind, ""))
		assert.NoError(t, ruleset.ValidateField(kind, "   "))
		assert.NoError(t, ruleset.ValidateField(kind, "\t\n"))
	}
}
