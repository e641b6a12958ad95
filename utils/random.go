package utils

import (
	"errors"
	"math/rand"
)

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CustomerIDLength is the length of the short public customer id.
const CustomerIDLength = 8

// GenerateRandomString returns an uppercase alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idCharset[rand.Intn(len(idCharset))]
	}
	return string(b)
}

// NewCustomerID generates a short customer id by rejection sampling:
// candidates are drawn until exists reports a free one. Gives up after a
// bounded number of attempts so a broken exists check cannot spin forever.
func NewCustomerID(exists func(id string) (bool, error)) (string, error) {
	for attempts := 0; attempts < 100; attempts++ {
		id := GenerateRandomString(CustomerIDLength)
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", errors.New("could not allocate a customer id")
}
