// Package config loads runtime configuration for the kcc CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Global flags, which override earlier values.
//
// Global flags must come before the command:
//
//	kcc -d /tmp/kcc -n 20 /kotlin
//
// # JSON schema
//
//	{
//	  "data_dir": "/home/me/.kcc",
//	  "take_last": 10,
//	  "log_level": "warn",
//	  "no_color": false
//	}
//
// Absent keys keep their default.
package config
