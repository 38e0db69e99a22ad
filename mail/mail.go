// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"mime"
	stdmail "net/mail"

	"github.com/emersion/go-message/charset"
)

// Subject extracts and decodes the Subject header of a raw RFC822 message.
// The charset reader covers the legacy encodings (iso-8859-*, windows-*)
// still common in older mailboxes.
func Subject(rawMail []byte) (string, error) {
	msg, err := stdmail.ReadMessage(bytes.NewReader(rawMail))
	if err != nil {
		return "", fmt.Errorf("could not parse mail: %w", err)
	}

	dec := &mime.WordDecoder{
		CharsetReader: charset.Reader,
	}
	subject, err := dec.DecodeHeader(msg.Header.Get("Subject"))
	if err != nil {
		return "", fmt.Errorf("could not decode subject header: %w", err)
	}

	return subject, nil
}

func ShortSubject(subject string) string {
	if (len(subject)) > 30 {
		subject = subject[:30] + "..."
	}
	return subject
}
