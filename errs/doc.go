// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package errs defines the single error type shared by the command and
// settings packages.
//
// Every fallible operation in this module returns an [*Error] carrying one of
// the [Kind] values below, so callers can branch on the kind with
// errors.Is against the sentinel values (e.g. [ErrCommand]) or with [KindOf]:
//
//	if errors.Is(err, errs.ErrIO) {
//	    // the configuration file could not be read
//	}
//
// OS-level failures are never converted implicitly: call sites that perform
// I/O wrap the failure with [IO] themselves.
package errs
