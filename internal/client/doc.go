// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line client of the settings server.
//
// Every command connects through the client services, so the same code runs
// against a live server and against mocked services in tests.
package client
