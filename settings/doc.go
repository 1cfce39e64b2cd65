// Package settings provides the layered settings loader shared by services.
//
// Settings are assembled from two sources in the following priority order
// (later sources override earlier values for the same key path):
//  1. A required configuration file (.json, .yaml/.yml or .toml)
//  2. Environment variables named <PREFIX>__<key>[__<nested>...]
//
// Two synthetic keys, config.location and config.env_prefix, are always
// injected afterwards so the resulting value records how it was loaded.
//
// The main entry point is [Load]; [Settings] is the default settings type
// that services can use as-is or embed in their own types.
package settings
