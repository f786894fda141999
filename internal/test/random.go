package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	mu  sync.Mutex
	src = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func intn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return src.Intn(n)
}

// RandomASCIIString returns a lowercase alphanumeric string of length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	minLen = max(minLen, 1)
	maxLen = max(maxLen, minLen)

	var b strings.Builder
	n := minLen + intn(maxLen-minLen+1)
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[intn(len(alphabet))])
	}
	return b.String()
}

// RandomEmail returns a unique-looking, already normalised address.
func RandomEmail() string {
	return RandomASCIIString(6, 12) + "@example.com"
}
