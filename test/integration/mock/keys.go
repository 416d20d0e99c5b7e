package mock

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Plaintext access keys the scenarios authenticate with.
const (
	TestAccessKey = "test-access-key"
	TestAdminKey  = "test-admin-key"
)

var keyHashOnce sync.Once
var accessKeyHash string
var adminKeyHash string

// KeyHashes returns bcrypt hashes of the test keys, computed once at MinCost
// to keep scenario setup fast.
func KeyHashes() (access, admin string) {
	keyHashOnce.Do(func() {
		accessKeyHash = hashKey(TestAccessKey)
		adminKeyHash = hashKey(TestAdminKey)
	})
	return accessKeyHash, adminKeyHash
}

func hashKey(key string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash test key: %v", err))
	}
	return string(hashed)
}
