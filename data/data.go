// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package data embeds the SQL migrations into the server binary.
package data

import "embed"

// MigrationsDir is the directory inside [Migrations] holding the .sql files.
const MigrationsDir = "migrations"

// Migrations holds the golang-migrate up/down files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
