// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package directline implements the real-time side of a Direct Line
// conversation: joining it, receiving activities over the stream socket (or
// by polling), posting activities, and reporting connection status.
//
// A [Client] publishes its lifecycle on [Client.Statuses] and every received
// activity on [Client.Activities]. Both streams are delivered in order and
// never drop a value, however slowly the consumer reads them. The owner
// reacts to [models.ExpiredToken] by obtaining a fresh token and handing the
// re-fetched conversation to [Client.Reconnect].
//
// While a conversation is joined the client keeps its token alive with a
// background refresh job, and a lost stream is resumed from the last
// watermark a bounded number of times before [models.FailedToConnect] is
// reported.
package directline
