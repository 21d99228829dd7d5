// Package wavefront provides the public types and interfaces for the
// Wavefront REST API v2 client.
//
// Every API response is normalized into an Envelope of the form
// {status, response}. ParseResponse turns a raw body and HTTP status code
// into an APIResponse; Pager walks paginated collections on top of any
// Executor implementation.
//
// Use github.com/wavefront-tools/wavefront-go/pkg/wfclient to construct a
// ready-to-use client.
package wavefront
