// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/emersion/go-imap"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestUidPlusAppender_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockuidPlusAppendClient(ctrl)
	appender := uidPlusAppender{client}

	date := time.Date(2021, 4, 1, 12, 30, 0, 0, time.UTC)
	client.EXPECT().
		Append(gomock.Eq("Imported"), gomock.Nil(), gomock.Eq(date), gomock.Any()).
		DoAndReturn(func(mbox string, flags []string, date time.Time, msg imap.Literal) (uint32, uint32, error) {
			body, err := io.ReadAll(msg)
			assert.NoError(t, err)
			assert.Equal(t, []byte("mailbody"), body)
			return 99, 1234, nil
		})

	uid, err := appender.append("Imported", []byte("mailbody"), date)
	assert.NoError(t, err)
	assert.Equal(t, uint32(1234), uid)
}

func TestUidPlusAppender_AppendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockuidPlusAppendClient(ctrl)
	appender := uidPlusAppender{client}

	date := time.Date(2021, 4, 1, 12, 30, 0, 0, time.UTC)
	client.EXPECT().
		Append(gomock.Eq("Imported"), gomock.Nil(), gomock.Eq(date), gomock.Any()).
		Return(uint32(0), uint32(0), fmt.Errorf("connection reset"))

	uid, err := appender.append("Imported", []byte("mailbody"), date)
	assert.EqualError(t, err, "could not append: connection reset")
	assert.Equal(t, uint32(0), uid)
}

func TestCompatibilityAppender_Append(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockliteralAppendClient(ctrl)
	appender := compatibilityAppender{client}

	date := time.Date(2021, 4, 1, 12, 30, 0, 0, time.UTC)
	client.EXPECT().
		Append(gomock.Eq("Imported"), gomock.Nil(), gomock.Eq(date), gomock.Any()).
		DoAndReturn(func(mbox string, flags []string, date time.Time, msg imap.Literal) error {
			body, err := io.ReadAll(msg)
			assert.NoError(t, err)
			assert.Equal(t, []byte("mailbody"), body)
			return nil
		})

	uid, err := appender.append("Imported", []byte("mailbody"), date)
	assert.NoError(t, err)
	assert.Equal(t, uint32(0), uid)
}

func TestCompatibilityAppender_AppendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockliteralAppendClient(ctrl)
	appender := compatibilityAppender{client}

	date := time.Date(2021, 4, 1, 12, 30, 0, 0, time.UTC)
	client.EXPECT().
		Append(gomock.Eq("Imported"), gomock.Nil(), gomock.Eq(date), gomock.Any()).
		Return(fmt.Errorf("quota exceeded"))

	uid, err := appender.append("Imported", []byte("mailbody"), date)
	assert.EqualError(t, err, "could not append: quota exceeded")
	assert.Equal(t, uint32(0), uid)
}
