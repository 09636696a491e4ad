// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import "errors"

// Context errors.
var (
	// ErrNoGPU is returned when no usable GPU adapter is found.
	ErrNoGPU = errors.New("wgpu: no suitable GPU adapter found")

	// ErrNoHALProvider is returned when a shared device provider does not
	// expose HAL device and queue handles.
	ErrNoHALProvider = errors.New("wgpu: provider does not expose HAL device and queue")
)
