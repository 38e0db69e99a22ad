// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mailflip/go-imap-gmailsync/config"
	"github.com/mailflip/go-imap-gmailsync/domain"
	"github.com/mailflip/go-imap-gmailsync/gmailsync"
	"github.com/mailflip/go-imap-gmailsync/imapconnection"
	"github.com/mailflip/go-imap-gmailsync/log"
	"github.com/mailflip/go-imap-gmailsync/persistence"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var configFile string
	var label string
	var dryRun bool
	var loglevel string

	rootCmd := &cobra.Command{
		Use:          "go-imap-gmailsync",
		Short:        "Incremental one-way replication of an imap folder into a gmail mailbox",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			report := run(configFile, label, dryRun, loglevel)
			if report.Failed > 0 {
				os.Exit(1)
			}
		},
	}

	rootCmd.Flags().StringVarP(&configFile, "config", "c", "config.toml", "Path to the toml configuration file")
	rootCmd.Flags().StringVarP(&label, "label", "l", "", "Override the configured gmail destination folder")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Plan batches but do not transfer mails or write progress")
	rootCmd.Flags().StringVar(&loglevel, "loglevel", "", "Override the configured log level (trace|debug|info|warn|error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(configFile string, label string, dryRunFlag bool, loglevel string) *domain.SyncReport {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig(configFile)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if len(label) > 0 {
		conf.GmailFolder = label
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}
	if len(loglevel) > 0 {
		log.SetLogLevel(loglevel)
	}

	store, err := persistence.NewCursorStore(conf.Database)
	if err != nil {
		if !errors.Is(err, domain.ErrStoreCorrupt) || !conf.ResetCorruptState {
			logger.WithField("error", err).Fatal("Could not open progress store")
		}

		quarantined := fmt.Sprintf("%s.corrupt-%s", conf.Database, time.Now().UTC().Format("20060102150405"))
		logger.WithFields(logrus.Fields{"file": conf.Database, "quarantined": quarantined}).Warn("Progress store is corrupt, starting over with an empty one")
		err = os.Rename(conf.Database, quarantined)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not move corrupt progress store aside")
		}

		store, err = persistence.NewCursorStore(conf.Database)
		if err != nil {
			logger.WithField("error", err).Fatal("Could not open progress store")
		}
	}
	defer store.Close()

	sourceConn, err := imapconnection.NewImapConnection(conf.SourceHost, conf.SourceUser, conf.SourcePassword)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to source imap server")
	}
	defer sourceConn.Close()

	gmailConn, err := imapconnection.NewImapConnection(conf.GmailHost, conf.GmailUser, conf.GmailPassword)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to gmail imap server")
	}
	defer gmailConn.Close()

	configs := []gmailsync.ConfigFunc{}
	if conf.DryRun || dryRunFlag {
		configs = append(configs, gmailsync.DryRun())
	}
	if !conf.AfterTime().IsZero() {
		configs = append(configs, gmailsync.After(conf.AfterTime()))
	}
	configs = append(configs, gmailsync.BatchSize(conf.BatchSize), gmailsync.BatchMaxBytes(conf.BatchMaxBytes))

	sync, err := gmailsync.NewGmailSync(store, sourceConn, gmailConn, configs...)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start gmailsync")
	}

	logger.WithFields(logrus.Fields{"account": conf.Account(), "folder": conf.SourceFolder, "destination": conf.GmailFolder, "dryrun": conf.DryRun || dryRunFlag}).Info("Replicating folder")
	if conf.DryRun || dryRunFlag {
		logger.Warn("No mails will be transferred due to dry-run")
	}

	report, err := sync.Sync(conf.Account(), conf.SourceFolder, conf.GmailFolder)
	if err != nil {
		logger.WithField("error", err).Fatal("Sync failed")
	}

	resultLogger := logger.WithFields(logrus.Fields{"transferred": report.Transferred, "skipped": report.Skipped, "failed": report.Failed})
	if report.Failed > 0 {
		resultLogger.Error("Sync finished with failures, failed mails will be retried on the next run")
	} else {
		resultLogger.Info("Sync finished")
	}

	return report
}
