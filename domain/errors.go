// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

// Fatal error categories. Anything wrapping one of these aborts the run;
// individual message failures are TransferResults, not errors.
var (
	ErrAuth           = errors.New("authentication rejected")
	ErrFolderNotFound = errors.New("folder does not exist")
	ErrStoreCorrupt   = errors.New("progress store exists but is not readable")
)
