// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kovalev

// Package request derives per-request transport facts and provides the
// namespaced cookie accessor.
//
// Every handler receives an explicit [Context] instead of reading ambient
// state: transport security, the application root path and the cookie store
// are computed once per request and threaded through the call graph.
package request
