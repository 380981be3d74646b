package worldgen

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// DailySeed is the same for every player on a calendar day in t's location.
func DailySeed(t time.Time) int64 {
	return SeedFromString("daily:" + t.Format(time.DateOnly))
}

// RandomSeed returns a non-zero seed from the global source.
func RandomSeed() int64 {
	for {
		if s := rand.Int63(); s != 0 {
			return s
		}
	}
}

// SeedFromString hashes s with FNV-1a. The empty string maps to 0.
func SeedFromString(s string) int64 {
	if s == "" {
		return 0
	}
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// ParseSeed resolves a --seed value: "" is random, "daily" is today's seed,
// integers are used as is and anything else is hashed.
func ParseSeed(flag string, now time.Time) int64 {
	flag = strings.TrimSpace(flag)
	switch strings.ToLower(flag) {
	case "":
		return RandomSeed()
	case "daily", "today":
		return DailySeed(now)
	}
	if n, err := strconv.ParseInt(flag, 10, 64); err == nil {
		return n
	}
	return SeedFromString(flag)
}
