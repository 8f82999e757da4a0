/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"errors"
	"fmt"

	"github.com/paNjii/NFD/ndn/mgmt"
	"github.com/paNjii/NFD/ndn/tlv"
	"github.com/paNjii/NFD/ndn/util"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

// ValidateFibDataset checks that a reassembled FIB dataset holds exactly the expected entries.
// Each expected entry must appear once, with the same next hops in any order.
// All failures found are reported together; use errors.Is with the sentinels of this package to classify them.
func ValidateFibDataset(content *tlv.Block, expected []*mgmt.FibEntry) error {
	if err := content.Parse(); err != nil {
		if isIncompleteElement(err) {
			return fmt.Errorf("%w: %v", ErrTrailingBytes, err)
		}
		return err
	}

	pending := make(map[string]*mgmt.FibEntry, len(expected))
	for _, entry := range expected {
		pending[entry.Name.String()] = entry
	}

	var result error
	elements := content.Elements()
	if len(elements) != len(expected) {
		result = multierr.Append(result, fmt.Errorf("%w: got %d, expected %d", ErrEntryCountMismatch, len(elements), len(expected)))
	}

	for i, elem := range elements {
		if elem.Type() != tlv.FibEntry {
			result = multierr.Append(result, fmt.Errorf("%w: element %d has type %s", ErrUnexpectedBlock, i, tlv.TypeString(elem.Type())))
			continue
		}

		entry, err := mgmt.DecodeFibEntry(elem)
		if err != nil {
			result = multierr.Append(result, classifyEntryError(i, err))
			continue
		}

		key := entry.Name.String()
		want, ok := pending[key]
		if !ok {
			result = multierr.Append(result, fmt.Errorf("%w: %s", ErrUnmatchedPrefix, key))
			continue
		}
		delete(pending, key)
		if !sameNextHops(entry.NextHops, want.NextHops) {
			result = multierr.Append(result, fmt.Errorf("%w: %s has %v, expected %v", ErrNextHopMismatch, key, entry.NextHops, want.NextHops))
		}
	}

	if len(pending) > 0 {
		missing := make([]string, 0, len(pending))
		for key := range pending {
			missing = append(missing, key)
		}
		slices.Sort(missing)
		result = multierr.Append(result, fmt.Errorf("%w: %v", ErrMissingEntries, missing))
	}
	return result
}

// classifyEntryError reports leftovers after the last decodable element as ErrTrailingBytes.
func classifyEntryError(index int, err error) error {
	var decodeErr *tlv.DecodeError
	switch {
	case errors.Is(err, tlv.ErrTrailingElements),
		isIncompleteElement(err),
		errors.As(err, &decodeErr) && decodeErr.Expected == tlv.NextHopRecord && !decodeErr.Truncated:
		return fmt.Errorf("%w: element %d: %v", ErrTrailingBytes, index, err)
	}
	return fmt.Errorf("element %d: %w", index, err)
}

// isIncompleteElement reports whether err comes from bytes that do not form a whole TLV element.
func isIncompleteElement(err error) bool {
	return errors.Is(err, tlv.ErrBufferTooShort) ||
		errors.Is(err, tlv.ErrMissingLength) ||
		errors.Is(err, util.ErrTooShort)
}

func sameNextHops(a []mgmt.NextHopRecord, b []mgmt.NextHopRecord) bool {
	if len(a) != len(b) {
		return false
	}
	less := func(x, y mgmt.NextHopRecord) bool {
		if x.FaceID != y.FaceID {
			return x.FaceID < y.FaceID
		}
		return x.Cost < y.Cost
	}
	sortedA := slices.Clone(a)
	sortedB := slices.Clone(b)
	slices.SortFunc(sortedA, less)
	slices.SortFunc(sortedB, less)
	return slices.Equal(sortedA, sortedB)
}
