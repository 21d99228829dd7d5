// Package wfclient provides the main entry point for creating Wavefront API
// clients. It resolves credentials from the configuration, the environment
// or the credentials file, normalizes the endpoint, and hands off to the
// internal implementation.
package wfclient
