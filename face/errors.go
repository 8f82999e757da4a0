/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package face

import "errors"

// Face errors.
var (
	ErrFaceDown      = errors.New("face is down")
	ErrFrameTooLarge = errors.New("frame exceeds the MTU of the face")
)
