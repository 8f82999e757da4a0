/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import "errors"

// Status dataset errors.
var (
	ErrEntryTooLarge      = errors.New("dataset entry exceeds the segment size budget")
	ErrNotSegment         = errors.New("Data name does not end with a segment number")
	ErrSegmentOutOfOrder  = errors.New("segment received out of order")
	ErrSegmentNameChanged = errors.New("segment belongs to a different dataset version")
	ErrDatasetComplete    = errors.New("final segment already received")
	ErrDatasetIncomplete  = errors.New("final segment not yet received")
)
