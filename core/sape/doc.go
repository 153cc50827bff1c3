// Package sape is a client for the Sape RTB marketplace XML-RPC API.
//
// The provisioner uses it to list and create banner places. Every place it manages is
// named "GAM <adUnitId> <size> <price>", so the name alone identifies the ad unit, size
// key and price the place belongs to; PlaceIndex holds that mapping for one run.
//
// Calls share a cookie session opened by Login. When a call fails with fault 667
// (session expired) the client logs in again and resubmits the call once.
package sape
