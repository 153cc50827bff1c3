// Package apperr defines the error taxonomy shared by the provisioning pipeline.
//
// Every failure that aborts a run carries one of four codes:
//
//   - CONFIGURATION: a required setting is missing or invalid; raised before any remote call.
//   - NOT_FOUND: a remote entity that must exist (placement, ad unit, user, ...) does not.
//   - CREATION_FAILED: a create call returned no matching entity.
//   - REMOTE_API: a transport or API fault from Ad Manager or Sape.
//
// Errors are wrapped with fmt.Errorf("...: %w") as they propagate, so callers use As or Is
// to recover the code.
package apperr
