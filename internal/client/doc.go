// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive console chat runtime.
//
// [App] wires the token service, the Direct Line channel and the terminal
// into a single process lifecycle. All session state changes happen on one
// goroutine that reacts to connection statuses, received activities, user
// input and the results of asynchronous token renewal.
package client
