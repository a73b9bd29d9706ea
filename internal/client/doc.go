// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The semantic-multi-agent-search Authors

// Package client implements the search client runtime.
//
// It runs either the interactive terminal UI or, when a query is given on
// the command line, a headless session that prints progress and writes the
// rendered answer as an HTML document.
package client
