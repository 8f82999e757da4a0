/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package mgmt

import (
	"github.com/paNjii/NFD/core"
	"github.com/paNjii/NFD/ndn"
	"github.com/paNjii/NFD/ndn/mgmt"
	"github.com/paNjii/NFD/ndn/tlv"
)

func decodeControlParameters(m Module, interest *ndn.Interest) *mgmt.ControlParameters {
	paramsRaw, _, err := tlv.DecodeBlock(interest.Name().At(m.getManager().prefixLength() + 2).Value())
	if err != nil {
		core.LogWarn(m, "Could not decode ControlParameters in ", interest.Name(), ": ", err)
		return nil
	}
	params, err := mgmt.DecodeControlParameters(paramsRaw)
	if err != nil {
		core.LogWarn(m, "Could not decode ControlParameters in ", interest.Name(), ": ", err)
		return nil
	}
	return params
}

func makeControlResponse(statusCode uint64, statusText string, params *mgmt.ControlParameters) *mgmt.ControlResponse {
	var body *tlv.Block
	if params != nil {
		body = params.Encode()
	}
	return mgmt.MakeControlResponse(statusCode, statusText, body)
}
