package redis

import "fmt"

// profilesKey returns the HASH of profile name -> five-line record
func profilesKey(prefix string) string {
	return fmt.Sprintf("%s:profiles", prefix)
}

// profileOrderKey returns the LIST holding profile names in store order
func profileOrderKey(prefix string) string {
	return fmt.Sprintf("%s:idx:profile_order", prefix)
}
