// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const minimalConfig = `
SourceHost = "imap.example.com:993"
SourceUser = "user@example.com"
SourcePassword = "secret"
GmailUser = "user@gmail.com"
GmailPassword = "app-password"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	err := os.WriteFile(path, []byte(content), 0600)
	assert.NoError(t, err)
	return path
}

func TestReadConfigDefaults(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, minimalConfig))
	assert.NoError(t, err)

	assert.Equal(t, "gmailsync.db", conf.Database)
	assert.Equal(t, "INBOX", conf.SourceFolder)
	assert.Equal(t, "imap.gmail.com:993", conf.GmailHost)
	assert.Equal(t, "Imported/FromSource", conf.GmailFolder)
	assert.Equal(t, 100, conf.BatchSize)
	assert.Equal(t, int64(50<<20), conf.BatchMaxBytes)
	assert.False(t, conf.DryRun)
	assert.True(t, conf.AfterTime().IsZero())
	assert.Equal(t, "user@example.com@imap.example.com:993", conf.Account())
}

func TestReadConfigAfterDate(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, minimalConfig+`AfterDate = "2024-01-01"`))
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), conf.AfterTime())
}

func TestReadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		err     string
	}{
		{
			"missingsourcehost",
			`SourceUser = "u"` + "\n" + `SourcePassword = "p"` + "\n" + `GmailUser = "g"` + "\n" + `GmailPassword = "gp"`,
			"SourceHost must not be empty, set to host:port of the source imap server",
		},
		{
			"missinggmailpassword",
			`SourceHost = "h"` + "\n" + `SourceUser = "u"` + "\n" + `SourcePassword = "p"` + "\n" + `GmailUser = "g"`,
			"GmailPassword must not be empty, set to a gmail app password",
		},
		{
			"zerobatchsize",
			minimalConfig + `BatchSize = 0`,
			"BatchSize must be positive, got 0",
		},
		{
			"negativebatchbytes",
			minimalConfig + `BatchMaxBytes = -1`,
			"BatchMaxBytes must be positive, got -1",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf, err := ReadConfig(writeConfig(t, tc.content))
			assert.Nil(t, conf)
			assert.EqualError(t, err, tc.err)
		})
	}
}

func TestReadConfigBadAfterDate(t *testing.T) {
	conf, err := ReadConfig(writeConfig(t, minimalConfig+`AfterDate = "01.01.2024"`))
	assert.Nil(t, conf)
	assert.ErrorContains(t, err, "AfterDate must use the YYYY-MM-DD format")
}

func TestReadConfigMissingFile(t *testing.T) {
	conf, err := ReadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Nil(t, conf)
	assert.Error(t, err)
}
