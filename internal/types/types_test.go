package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestCreateJobRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request CreateJobRequest
		wantErr bool
	}{
		{
			name: "valid minimal",
			request: CreateJobRequest{
				Title: "Backend Engineer",
			},
			wantErr: false,
		},
		{
			name: "valid with references",
			request: CreateJobRequest{
				Title:     "Backend Engineer",
				CompanyID: strp("550e8400-e29b-41d4-a716-446655440000"),
			},
			wantErr: false,
		},
		{
			name:    "missing title",
			request: CreateJobRequest{},
			wantErr: true,
		},
		{
			name: "malformed company id",
			request: CreateJobRequest{
				Title:     "Backend Engineer",
				CompanyID: strp("not-a-uuid"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateJobRequest_JSONFieldNames(t *testing.T) {
	var req CreateJobRequest
	err := json.Unmarshal([]byte(`{
		"jobTitle": "Backend Engineer",
		"jobDescription": "Builds backends.",
		"jobNote": "referral via Anna",
		"companyId": "550e8400-e29b-41d4-a716-446655440000"
	}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "Backend Engineer", req.Title)
	require.NotNil(t, req.Description)
	assert.Equal(t, "Builds backends.", *req.Description)
	require.NotNil(t, req.Note)
	require.NotNil(t, req.CompanyID)
	assert.Nil(t, req.ContactID)
}

func TestUpdateJobRequest_NilVersusEmpty(t *testing.T) {
	var req UpdateJobRequest
	err := json.Unmarshal([]byte(`{"jobNote": ""}`), &req)
	require.NoError(t, err)

	require.NotNil(t, req.Note)
	assert.Equal(t, "", *req.Note)
	assert.Nil(t, req.Title)
	assert.NoError(t, req.Validate())
}

func TestToggleJobRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ToggleJobRequest{Field: "applied"}).Validate())
	assert.NoError(t, (&ToggleJobRequest{Field: "answer"}).Validate())
	assert.Error(t, (&ToggleJobRequest{Field: "archived"}).Validate())
	assert.Error(t, (&ToggleJobRequest{}).Validate())
}

func TestCreateCompanyRequest_Validation(t *testing.T) {
	valid := CreateCompanyRequest{
		Name:    "ACME GmbH",
		Website: strp("https://acme.example"),
		City:    strp("München"),
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, (&CreateCompanyRequest{}).Validate())
}

func TestCreateContactRequest_Validation(t *testing.T) {
	assert.NoError(t, (&CreateContactRequest{
		Name:  "Anna Schmidt",
		Email: strp("anna@acme.example"),
	}).Validate())

	assert.Error(t, (&CreateContactRequest{
		Name:  "Anna Schmidt",
		Email: strp("not-an-email"),
	}).Validate())

	assert.Error(t, (&CreateContactRequest{}).Validate())
}

func TestImportCompanyRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ImportCompanyRequest{HTML: "<html></html>"}).Validate())
	assert.NoError(t, (&ImportCompanyRequest{URL: "https://www.glassdoor.de/Overview/acme"}).Validate())
	// both empty passes validation; the handler decides what 400s
	assert.NoError(t, (&ImportCompanyRequest{}).Validate())
	assert.Error(t, (&ImportCompanyRequest{URL: "::not a url::"}).Validate())
}

func TestImportJobRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ImportJobRequest{HTML: "<html></html>"}).Validate())
	assert.Error(t, (&ImportJobRequest{}).Validate())
}

func TestLoginRequest_Validation(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Email: "admin@example.org", Password: "pw"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "nope", Password: "pw"}).Validate())
	assert.Error(t, (&LoginRequest{Email: "admin@example.org"}).Validate())
}
