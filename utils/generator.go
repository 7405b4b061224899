package utils

import (
	"math/rand"
	"time"

	"github.com/anjiri1684/course_platform/models"
	"gorm.io/gorm"
)

const ticketReferenceLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateTicketReference returns a short reference code not yet used
// by any contact message.
func GenerateTicketReference(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, ticketReferenceLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var message models.ContactMessage
		err := tx.Where("reference = ?", code).First(&message).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}
