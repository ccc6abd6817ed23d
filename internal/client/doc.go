// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the locker sync client runtime.
//
// It wires local storage, the cloud and store adapters, the device locker and
// the client services into a single process lifecycle: sign in, seed the
// default feed, keep the device flushed and run one locker session until the
// context is cancelled.
package client
