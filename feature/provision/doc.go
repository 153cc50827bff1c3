// Package provision brings Ad Manager and Sape in line with the configured price
// buckets, ad units and sizes.
//
// A run has two phases. Plan is read-only: it generates the price buckets, checks every
// size against the Sape size table, resolves the targeted placements and ad units, and
// looks up the order and advertiser. Apply then creates whatever is missing, in order:
//
//  1. The advertiser and the order.
//  2. The custom targeting keys, the bidder value, and one price value per bucket.
//  3. For every price × ad unit × size: the Sape place, the creative rendering it,
//     the line item and the line item creative association.
//
// Every entity is looked up by a name that encodes its composite key before it is
// created, so running Apply again against unchanged remote state creates nothing.
// Apply returns a Report of what it found and created, which can be archived in
// object storage.
package provision
