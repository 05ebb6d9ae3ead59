package utils

import (
	"crypto/rand"
	"math/big"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	NewTicketID(t time.Time) (string, error)
}

type utils struct {
	ticketSuffixLen int
}

func New() IUtils {
	return &utils{
		ticketSuffixLen: 4,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

const ticketAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewTicketID produces ids in the form TCK-YYYYMMDD-XXXX.
func (u *utils) NewTicketID(t time.Time) (string, error) {
	suffix := make([]byte, u.ticketSuffixLen)
	max := big.NewInt(int64(len(ticketAlphabet)))

	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		suffix[i] = ticketAlphabet[n.Int64()]
	}

	return "TCK-" + t.Format("20060102") + "-" + string(suffix), nil
}
