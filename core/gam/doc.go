// Package gam is a thin client for the Google Ad Manager SOAP API.
//
// It speaks only the request/response contract the provisioner needs: a SOAP envelope
// carrying the RequestHeader, PQL filter statements for lookups, single-element create
// batches, and fault decoding. Authentication uses a service account key through
// golang.org/x/oauth2/google; requests go through resty.
//
// Service groups the per-entity operations (ad units, placements, advertisers, orders,
// users, creatives, line items, line item creative associations and custom targeting).
// Lookups return nil, nil when no entity matches the exact name or ids.
//
// Faults come back as apperr REMOTE_API errors with backend "ad_manager".
package gam
