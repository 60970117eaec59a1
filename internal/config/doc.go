// Package config provides configuration loading, merging, and validation
// facilities for the console client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. The configuration file named by CONFIG or -c/-config (JSON or YAML)
//  4. dev.private.json (test.config.json when APP_ENV=test)
//  5. dev.sample.json
//
// Files 4 and 5 are looked up in the working directory and only when no
// explicit file was given; missing files are skipped.
//
// The main entry point is [GetClientConfig].
package config
