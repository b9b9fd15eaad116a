package redis

import (
	"fmt"

	"github.com/vladia/corretora-go/internal/model"
)

// Key prefix for all marketplace data
const keyPrefix = "corretora"

// accountKey returns the Redis key for an Account
func accountKey(id model.AccountID) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> account_id index.
// The email must already be normalized; the index is what makes the
// uniqueness invariant case-insensitive.
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// listingKey returns the Redis key for a Listing
func listingKey(id model.ListingID) string {
	return fmt.Sprintf("%s:listing:%s", keyPrefix, id)
}

// listingIndexKey returns the Redis key for the SET of all listing keys
func listingIndexKey() string {
	return fmt.Sprintf("%s:idx:listings", keyPrefix)
}
