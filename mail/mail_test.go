// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		name    string
		rawMail string
		subject string
	}{
		{
			"plain",
			"From: a@example.com\r\nSubject: Saying Hello\r\n\r\nbody\r\n",
			"Saying Hello",
		},
		{
			"utf8encodedword",
			"From: a@example.com\r\nSubject: =?utf-8?q?Caf=C3=A9_men=C3=BC?=\r\n\r\nbody\r\n",
			"Café menü",
		},
		{
			"legacycharset",
			"From: a@example.com\r\nSubject: =?iso-8859-1?Q?p=E5_norsk?=\r\n\r\nbody\r\n",
			"på norsk",
		},
		{
			"nosubject",
			"From: a@example.com\r\n\r\nbody\r\n",
			"",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			subject, err := Subject([]byte(tc.rawMail))
			assert.NoError(t, err)
			assert.Equal(t, tc.subject, subject)
		})
	}
}

func TestSubjectUnparseable(t *testing.T) {
	subject, err := Subject([]byte("not a mail at all"))
	assert.Error(t, err)
	assert.Empty(t, subject)
}

func TestShortSubject(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		expected string
	}{
		{"short", "Hello", "Hello"},
		{"exactly30", "012345678901234567890123456789", "012345678901234567890123456789"},
		{"truncated", "0123456789012345678901234567890", "012345678901234567890123456789..."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShortSubject(tc.subject))
		})
	}
}
