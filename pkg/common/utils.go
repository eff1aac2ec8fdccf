package common

import (
	"math/rand"
	"time"
)

// GenerateTrxNo returns a short human-readable transaction reference,
// e.g. "KS-7GH2Q9XD". References are for display and support lookups;
// uniqueness is enforced by the database primary key, not by this value.
func GenerateTrxNo() string {
	const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	result := make([]byte, 8)
	for i := range result {
		result[i] = characters[r.Intn(len(characters))]
	}
	return "KS-" + string(result)
}
