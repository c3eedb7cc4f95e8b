package redis

import "fmt"

// Key prefix for all registry data
const keyPrefix = "betdesk"

// Key generation functions for each entity type

// userKey returns the Redis key for a User record
func userKey(username string) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, username)
}

// usernamesKey returns the Redis key for the SET of all usernames
func usernamesKey() string {
	return fmt.Sprintf("%s:usernames", keyPrefix)
}

// banSetKey returns the Redis key for the SET of banned usernames
func banSetKey() string {
	return fmt.Sprintf("%s:banned", keyPrefix)
}

// betKey returns the Redis key for a Bet record
func betKey(name string) string {
	return fmt.Sprintf("%s:bet:%s", keyPrefix, name)
}

// betOrderKey returns the Redis key for the LIST of bet names in insertion order
func betOrderKey() string {
	return fmt.Sprintf("%s:bet_order", keyPrefix)
}
