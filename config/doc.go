// Package config loads the settings of the cronies command.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables prefixed with CRONIES_
//  2. The YAML file given with --config
//  3. Built-in defaults
//
// Environment variables map to keys by dropping the prefix, lowercasing and
// splitting section from field on the first underscore:
//
//	CRONIES_FORMAT_DECIMAL_PLACES -> format.decimal_places
//	CRONIES_LOG_LEVEL             -> log.level
//	CRONIES_FORMAT_DAY_NAMES      -> format.day_names (comma separated)
package config
