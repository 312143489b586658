// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements catalogctl, the command-line client of the food
// catalog.
//
// Every subcommand talks to the server through an [adapter.CatalogAdapter];
// browse hands the adapter to the terminal browser in package tui.
package client
