// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=appender_mocks_test.go -package=imapconnection -source appender.go
import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-imap"
)

type appender interface {
	append(folder string, raw []byte, date time.Time) (uint32, error)
}

type uidPlusAppendClient interface {
	Append(mbox string, flags []string, date time.Time, msg imap.Literal) (validity uint32, uid uint32, err error)
}

// uidPlusAppender appends through the UIDPLUS extension, which reports the uid
// the server assigned to the stored mail.
type uidPlusAppender struct {
	uidplusClient uidPlusAppendClient
}

func (u *uidPlusAppender) append(folder string, raw []byte, date time.Time) (uint32, error) {
	_, uid, err := u.uidplusClient.Append(folder, nil, date, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("could not append: %w", err)
	}

	return uid, nil
}

type literalAppendClient interface {
	Append(mbox string, flags []string, date time.Time, msg imap.Literal) error
}

// compatibilityAppender appends through the plain APPEND command. Without
// UIDPLUS the assigned uid is unknown, so it always reports 0.
type compatibilityAppender struct {
	client literalAppendClient
}

func (c *compatibilityAppender) append(folder string, raw []byte, date time.Time) (uint32, error) {
	err := c.client.Append(folder, nil, date, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("could not append: %w", err)
	}

	return 0, nil
}
