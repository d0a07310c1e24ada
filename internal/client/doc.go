// Package client implements an authenticated HTTP client for the ImageZebra
// image-analysis API.
//
// # Overview
//
// The package provides:
//  1. Authentication: New exchanges Credentials for a bearer token at the
//     /token endpoint and attaches it (together with the application key
//     header) to every subsequent request.
//  2. The analysis workflow primitives: PresignedUpload, RequestAnalysis,
//     ResultsSummary and the bounded PollResults loop. The uploadId returned
//     by PresignedUpload is the sole correlation key of a session and must be
//     passed unchanged to the other two calls.
//  3. Account and target-library access: UserData and the Targets CRUD
//     methods.
//
// The multipart upload to object storage itself lives in package analysis,
// because it talks to the storage endpoint rather than the API.
//
// # Error Handling
//
// Failure classes are exposed as sentinel errors matched with errors.Is:
// ErrAuthentication, ErrRequest, ErrAnalysisPending, ErrAnalysisFailed,
// ErrPollTimeout. Non-2xx API responses additionally carry an *APIError in
// the chain with the HTTP status and decoded body. There is no local
// recovery: every error is surfaced to the caller unchanged.
//
// Concurrency & Contexts
//
// A Client is immutable after New and safe for concurrent use. All
// operations accept context.Context and honor cancellation, including the
// sleeps between polls.
package client
