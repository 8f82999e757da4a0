/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/paNjii/NFD/face"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
	"github.com/paNjii/NFD/ndn/tlv"
)

// ExecuteFibCommand sends a FIB management command, such as "add-nexthop", and waits for its ControlResponse.
// A response with a status code other than 200 is returned along with an error wrapping ErrCommandFail.
func ExecuteFibCommand(ctx context.Context, transport face.Transport, prefix *ndn.Name, verb string,
	params *mgmt.ControlParameters, timeout time.Duration) (*mgmt.ControlResponse, error) {
	name := prefix.Append(
		ndn.NewGenericNameComponent([]byte("fib")),
		ndn.NewGenericNameComponent([]byte(verb)),
		ndn.NewGenericNameComponent(params.Encode().Wire()))

	data, err := express(ctx, transport, name, timeout)
	if err != nil {
		return nil, err
	}
	block, _, err := tlv.DecodeBlock(data.Content())
	if err != nil {
		return nil, err
	}
	response, err := mgmt.DecodeControlResponse(block)
	if err != nil {
		return nil, err
	}
	if response.StatusCode != 200 {
		return response, fmt.Errorf("%w: %d %s", ErrCommandFail, response.StatusCode, response.StatusText)
	}
	return response, nil
}
