package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// NewProjectID generates a project id of the form "proj<unix-ms>".
// When salted (after an id collision) a random 4-digit suffix is
// appended so a retry within the same millisecond still differs.
func NewProjectID(salted bool) (string, error) {
	id := fmt.Sprintf("proj%d", time.Now().UnixMilli())
	if !salted {
		return id, nil
	}
	n, err := randInt(1000, 9999)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", id, n), nil
}

func randInt(min, max int64) (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max-min+1))
	if err != nil {
		return 0, err
	}
	return min + n.Int64(), nil
}
