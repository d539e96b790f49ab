// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package source acquires raw configuration key-value mappings.
//
// Every origin is a [Provider] returning an ordered [Map]: the process
// environment overlaid on dotenv files ([Env]), a secrets directory
// ([Secrets]), a JSON/YAML/TOML document ([File]), a settings table
// ([SQL]), a JSON document served over HTTP ([Remote]) and caller-supplied
// values ([Static]). Providers are independent; each one fails on its own.
//
// Map key order is the provider's native order. It matters because the
// mapper keeps the first of several keys that differ only in case.
package source
