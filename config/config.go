// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string

	SourceHost     string
	SourceUser     string
	SourcePassword string
	SourceFolder   string

	GmailHost     string
	GmailUser     string
	GmailPassword string
	GmailFolder   string

	// AfterDate is an optional inclusive lower bound on the internal date
	// of messages to replicate, formatted as YYYY-MM-DD.
	AfterDate string
	afterTime time.Time

	BatchSize     int
	BatchMaxBytes int64

	DryRun            bool
	ResetCorruptState bool

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:      "gmailsync.db",
		SourceFolder:  "INBOX",
		GmailHost:     "imap.gmail.com:993",
		GmailFolder:   "Imported/FromSource",
		BatchSize:     100,
		BatchMaxBytes: 50 << 20,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// AfterTime returns the parsed AfterDate bound, zero when unset. Only
// meaningful after validate has accepted the config.
func (c *Config) AfterTime() time.Time {
	return c.afterTime
}

// Account is the opaque key under which the source mailbox's progress is
// stored.
func (c *Config) Account() string {
	return c.SourceUser + "@" + c.SourceHost
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database must not be empty, set to a filename for the sqlite progress store"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SourceHost, "SourceHost must not be empty, set to host:port of the source imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SourceUser, "SourceUser must not be empty, set to the username on the source imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SourcePassword, "SourcePassword must not be empty, set to the password of SourceUser"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.SourceFolder, "SourceFolder must not be empty, set to the folder to replicate from"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.GmailHost, "GmailHost must not be empty, set to host:port of the gmail imap server"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.GmailUser, "GmailUser must not be empty, set to the gmail address"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.GmailPassword, "GmailPassword must not be empty, set to a gmail app password"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.GmailFolder, "GmailFolder must not be empty, set to the gmail label to replicate into"); err != nil {
		return err
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("BatchSize must be positive, got %d", c.BatchSize)
	}

	if c.BatchMaxBytes <= 0 {
		return fmt.Errorf("BatchMaxBytes must be positive, got %d", c.BatchMaxBytes)
	}

	if len(strings.TrimSpace(c.AfterDate)) > 0 {
		after, err := time.Parse("2006-01-02", c.AfterDate)
		if err != nil {
			return fmt.Errorf("AfterDate must use the YYYY-MM-DD format: %w", err)
		}
		c.afterTime = after
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
