// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

import (
	"fmt"
	"io"
	"time"

	"github.com/mailflip/go-imap-gmailsync/domain"
	"github.com/mailflip/go-imap-gmailsync/log"
	"github.com/mailflip/go-imap-gmailsync/mail"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap-compress"
	"github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// ImapConnection wraps a logged-in imap session. It serves as both the source
// side (select, search, fetch) and the destination side (ensure folder,
// append) of a sync.
type ImapConnection struct {
	connection   *client.Client
	mailAppender appender

	l *logrus.Logger
}

func NewImapConnection(server string, user string, password string) (*ImapConnection, error) {
	imapClient, err := client.DialTLS(server, nil)
	if err != nil {
		return nil, fmt.Errorf("could not dial to imap: %w", err)
	}

	err = imapClient.Login(user, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuth, err)
	}

	conn := &ImapConnection{
		connection: imapClient,
		l:          log.Logger(log.LOG_IMAP),
	}

	baseLogger := conn.l.WithFields(logrus.Fields{"server": server})
	baseLogger.Debug("Logged in to server")

	compressClient := compress.NewClient(imapClient)
	compressSupported, err := compressClient.SupportCompress(compress.Deflate)
	if err != nil {
		return nil, fmt.Errorf("could not check for COMPRESS support: %w", err)
	}

	if compressSupported {
		err = compressClient.Compress(compress.Deflate)
		if err != nil {
			return nil, fmt.Errorf("could not enable COMPRESS: %w", err)
		}
		baseLogger.Debug("COMPRESS supported on server, deflate enabled")
	} else {
		baseLogger.Debug("COMPRESS not supported on server")
	}

	uidPlusClient := uidplus.NewClient(imapClient)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}

	if uidPlusSupported {
		baseLogger.Debug("UIDPLUS supported on server, appends report assigned uids")
		conn.mailAppender = &uidPlusAppender{
			uidplusClient: uidPlusClient,
		}
	} else {
		baseLogger.Info("UIDPLUS not supported on server, appended uids will not be reported")
		conn.mailAppender = &compatibilityAppender{
			client: imapClient,
		}
	}

	return conn, nil
}

// Select opens a folder and reports its status. Read-only select leaves
// message flags untouched on servers that would otherwise mark fetched mails
// as seen.
func (ic *ImapConnection) Select(folder string, readonly bool) (*domain.FolderStatus, error) {
	m, err := ic.connection.Select(folder, readonly)
	if err != nil {
		exists, listErr := ic.folderExists(folder)
		if listErr == nil && !exists {
			return nil, fmt.Errorf("%w: %s", domain.ErrFolderNotFound, folder)
		}
		return nil, fmt.Errorf("could not select folder: %w", err)
	}

	return &domain.FolderStatus{
		Name:        folder,
		UidValidity: m.UidValidity,
		UidNext:     m.UidNext,
		Messages:    m.Messages,
	}, nil
}

// SearchUids returns the uids in the given uid range, ascending. A non-zero
// since date restricts the result to mails received on or after that day.
func (ic *ImapConnection) SearchUids(low, high uint32, since time.Time) ([]uint32, error) {
	criteria := imap.NewSearchCriteria()
	criteria.Uid = new(imap.SeqSet)
	criteria.Uid.AddRange(low, high)
	if !since.IsZero() {
		criteria.Since = since
	}

	uids, err := ic.connection.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search folder: %w", err)
	}

	return uids, nil
}

// FetchRefs fetches uid, internal date and size for the given uids without
// touching the message bodies. Uids that have been expunged in the meantime
// are simply absent from the result.
func (ic *ImapConnection) FetchRefs(uids []uint32) ([]*domain.MessageRef, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)

	fetchItems := []imap.FetchItem{imap.FetchUid, imap.FetchInternalDate, imap.FetchRFC822Size}
	messages := make(chan *imap.Message, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, messages)
	}()

	refs := []*domain.MessageRef{}
	for msg := range messages {
		refs = append(refs, &domain.MessageRef{
			Uid:          msg.Uid,
			InternalDate: msg.InternalDate,
			Size:         msg.Size,
		})
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch message infos: %w", err)
	}

	return refs, nil
}

// FetchMail fetches the full body of a single mail with BODY.PEEK so the seen
// flag stays untouched. Returns nil without error when the uid no longer
// exists in the folder.
func (ic *ImapConnection) FetchMail(uid uint32) (*domain.RawMail, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uid)

	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}
	fetchItems := []imap.FetchItem{imap.FetchUid, imap.FetchInternalDate, fullBodySection.FetchItem()}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.UidFetch(seqset, fetchItems, messages)
	}()

	var rawBody []byte
	var internalDate time.Time
	var readErr error
	found := false
	for msg := range messages {
		if found {
			continue
		}

		r := msg.GetBody(fullBodySection)
		if r == nil {
			continue
		}

		body, err := io.ReadAll(r)
		if err != nil {
			readErr = err
			continue
		}

		rawBody = body
		internalDate = msg.InternalDate
		found = true
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mail: %w", err)
	}
	if readErr != nil {
		return nil, fmt.Errorf("could not read mail body: %w", readErr)
	}
	if !found {
		return nil, nil
	}

	subject, err := mail.Subject(rawBody)
	if err != nil {
		// subject is informational only
		ic.l.WithFields(logrus.Fields{"uid": uid, "error": err}).Debug("Could not parse mail subject")
		subject = ""
	}

	return &domain.RawMail{
		Uid:          uid,
		InternalDate: internalDate,
		Subject:      subject,
		Raw:          rawBody,
	}, nil
}

// EnsureFolder creates the folder unless it already exists.
func (ic *ImapConnection) EnsureFolder(folder string) error {
	exists, err := ic.folderExists(folder)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	ic.l.WithField("folder", folder).Info("Creating missing folder")
	err = ic.connection.Create(folder)
	if err != nil {
		return fmt.Errorf("could not create folder: %w", err)
	}

	return nil
}

// Append stores a mail in the folder, preserving the given date as the
// internal date. The reported uid is 0 when the server lacks UIDPLUS.
func (ic *ImapConnection) Append(folder string, raw []byte, date time.Time) (uint32, error) {
	return ic.mailAppender.append(folder, raw, date)
}

func (ic *ImapConnection) Close() error {
	return ic.connection.Logout()
}

func (ic *ImapConnection) folderExists(folder string) (bool, error) {
	mailboxes := make(chan *imap.MailboxInfo, 10)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.List("", folder, mailboxes)
	}()

	found := false
	for m := range mailboxes {
		if m.Name == folder {
			found = true
		}
	}

	err := <-done
	if err != nil {
		return false, fmt.Errorf("could not list folders: %w", err)
	}

	return found, nil
}
