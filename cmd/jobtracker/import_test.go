package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCompanyCmd_RequiresFileOrURL(t *testing.T) {
	importCompanyFile = ""
	err := runImportCompanyCmd(&cobra.Command{}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "either --file or at least one URL")
}

func TestImportCompanyCmd_MissingFile(t *testing.T) {
	importCompanyFile = filepath.Join(t.TempDir(), "nope.html")
	defer func() { importCompanyFile = "" }()

	err := runImportCompanyCmd(&cobra.Command{}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestImportCompanyCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "company.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><h1>ACME GmbH</h1></body></html>`), 0644))

	importCompanyFile = path
	defer func() { importCompanyFile = "" }()

	assert.NoError(t, runImportCompanyCmd(&cobra.Command{}, nil))
}

func TestImportCompanyCmd_RejectsForeignURL(t *testing.T) {
	importCompanyFile = ""
	err := runImportCompanyCmd(&cobra.Command{}, []string{"https://evil.example/page"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a Glassdoor URL")
}

func TestImportJobCmd_MissingFile(t *testing.T) {
	importJobFile = filepath.Join(t.TempDir(), "nope.html")
	err := runImportJobCmd(&cobra.Command{}, nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestImportJobCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.html")
	require.NoError(t, os.WriteFile(path, []byte(`<html><body><h1>Backend Engineer</h1></body></html>`), 0644))

	importJobFile = path
	assert.NoError(t, runImportJobCmd(&cobra.Command{}, nil))
}
