package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walavie/walavie-site/pkg/types"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		want        ContactRequest
		wantMessage string
		wantField   string
	}{
		{
			name: "valid object",
			body: `{"name":"Ada","email":"ada@example.com","message":"hi"}`,
			want: ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "hi"},
		},
		{
			name: "trailing whitespace is fine",
			body: "{\"name\":\"Ada\"}\n  ",
			want: ContactRequest{Name: "Ada"},
		},
		{
			name:        "unknown field is rejected",
			body:        `{"name":"Ada","phone":"555"}`,
			wantMessage: `Unrecognized field "phone"`,
			wantField:   "phone",
		},
		{
			name:        "field names are case sensitive",
			body:        `{"NAME":"Ada","Email":"ada@example.com","MESSAGE":"hi"}`,
			wantMessage: `Unrecognized field "NAME"`,
			wantField:   "NAME",
		},
		{
			name:        "mixed case after valid fields",
			body:        `{"name":"Ada","Email":"ada@example.com"}`,
			wantMessage: `Unrecognized field "Email"`,
			wantField:   "Email",
		},
		{
			name:        "duplicate key is rejected",
			body:        `{"email":"bad","email":"ada@example.com"}`,
			wantMessage: `Unrecognized field "email"`,
			wantField:   "email",
		},
		{
			name:        "null body",
			body:        `null`,
			wantMessage: MsgInvalidRequest,
		},
		{
			name:        "empty body",
			body:        "",
			wantMessage: MsgInvalidRequest,
		},
		{
			name:        "malformed JSON",
			body:        `{"name":`,
			wantMessage: MsgInvalidRequest,
		},
		{
			name:        "wrong type",
			body:        `{"name":42}`,
			wantMessage: MsgInvalidRequest,
		},
		{
			name:        "array instead of object",
			body:        `[]`,
			wantMessage: MsgInvalidRequest,
		},
		{
			name:        "trailing data",
			body:        `{"name":"Ada"}{"name":"Bob"}`,
			wantMessage: MsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ContactRequest
			ferr := Decode(strings.NewReader(tt.body), &got)
			if tt.wantMessage != "" {
				require.NotNil(t, ferr)
				assert.Equal(t, tt.wantMessage, ferr.PublicMessage())
				assert.Equal(t, tt.wantField, ferr.Field)
				return
			}
			require.Nil(t, ferr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_NewsletterRequest(t *testing.T) {
	var got NewsletterRequest
	require.Nil(t, Decode(strings.NewReader(`{"email":"a@b.io"}`), &got))
	assert.Equal(t, "a@b.io", got.Email)

	ferr := Decode(strings.NewReader(`{"EMAIL":"user@example.com"}`), &NewsletterRequest{})
	require.NotNil(t, ferr)
	assert.Equal(t, `Unrecognized field "EMAIL"`, ferr.PublicMessage())
}

func TestFieldError(t *testing.T) {
	ferr := &FieldError{Field: "email", Message: MsgInvalidEmail}
	assert.Equal(t, "email: Invalid email address", ferr.Error())
	assert.Equal(t, MsgInvalidEmail, ferr.PublicMessage())

	assert.Equal(t, "boom", (&FieldError{Message: "boom"}).Error())
	assert.Equal(t, MsgValidationError, (&FieldError{Field: "x"}).PublicMessage())
}

func TestValidateNewsletter(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		want    string
		wantErr bool
	}{
		{name: "valid", email: "user@example.com", want: "user@example.com"},
		{name: "surrounding whitespace trimmed", email: "  user@example.com ", want: "user@example.com"},
		{name: "subdomain and plus", email: "first.last+news@mail.example.co.uk", want: "first.last+news@mail.example.co.uk"},
		{name: "not an email", email: "not-an-email", wantErr: true},
		{name: "missing domain", email: "user@", wantErr: true},
		{name: "missing local part", email: "@example.com", wantErr: true},
		{name: "empty", email: "", wantErr: true},
		{name: "single letter tld", email: "a@b.c", wantErr: true},
		{name: "numeric tld", email: "a@example.123", wantErr: true},
		{name: "no dot in domain", email: "user@localhost", wantErr: true},
		{name: "two letter tld", email: "a@b.io", want: "a@b.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ferr := ValidateNewsletter(NewsletterRequest{Email: tt.email})
			if tt.wantErr {
				require.NotNil(t, ferr)
				assert.Equal(t, "email", ferr.Field)
				assert.Equal(t, MsgInvalidEmail, ferr.Message)
				return
			}
			require.Nil(t, ferr)
			assert.Equal(t, tt.want, got.Email)
		})
	}
}

func TestValidateContact(t *testing.T) {
	valid := ContactRequest{Name: "Ada Lovelace", Email: "ada@example.com", Message: "Tell me more"}

	tests := []struct {
		name      string
		modify    func(r *ContactRequest)
		want      types.InsertContactSubmission
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid",
			modify: func(r *ContactRequest) {},
			want:   types.InsertContactSubmission{Name: "Ada Lovelace", Email: "ada@example.com", Message: "Tell me more"},
		},
		{
			name: "fields are trimmed",
			modify: func(r *ContactRequest) {
				r.Name = "  Ada Lovelace  "
				r.Message = "\n Tell me more \t"
			},
			want: types.InsertContactSubmission{Name: "Ada Lovelace", Email: "ada@example.com", Message: "Tell me more"},
		},
		{
			name:      "missing name",
			modify:    func(r *ContactRequest) { r.Name = "" },
			wantField: "name",
			wantMsg:   "Name is required",
		},
		{
			name:      "blank name",
			modify:    func(r *ContactRequest) { r.Name = "   " },
			wantField: "name",
			wantMsg:   "Name is required",
		},
		{
			name:      "name too long",
			modify:    func(r *ContactRequest) { r.Name = strings.Repeat("a", MaxNameLength+1) },
			wantField: "name",
			wantMsg:   "Name must be at most 100 characters",
		},
		{
			name:      "invalid email",
			modify:    func(r *ContactRequest) { r.Email = "not-an-email" },
			wantField: "email",
			wantMsg:   MsgInvalidEmail,
		},
		{
			name:      "missing message",
			modify:    func(r *ContactRequest) { r.Message = "" },
			wantField: "message",
			wantMsg:   "Message is required",
		},
		{
			name:      "message too long",
			modify:    func(r *ContactRequest) { r.Message = strings.Repeat("é", MaxMessageLength+1) },
			wantField: "message",
			wantMsg:   "Message must be at most 5000 characters",
		},
		{
			name: "first violation wins",
			modify: func(r *ContactRequest) {
				r.Name = ""
				r.Email = "bad"
				r.Message = ""
			},
			wantField: "name",
			wantMsg:   "Name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.modify(&req)

			got, ferr := ValidateContact(req)
			if tt.wantMsg != "" {
				require.NotNil(t, ferr)
				assert.Equal(t, tt.wantField, ferr.Field)
				assert.Equal(t, tt.wantMsg, ferr.Message)
				assert.Equal(t, types.InsertContactSubmission{}, got)
				return
			}
			require.Nil(t, ferr)
			assert.Equal(t, tt.want, got)
		})
	}
}
