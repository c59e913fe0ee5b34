package service

import (
	"fmt"
	"math"
	"time"
)

// ValidateCardNumber checks the length and Luhn checksum of a card number
func ValidateCardNumber(cardNumber string) error {
	digits := make([]int, 0, len(cardNumber))
	for _, r := range cardNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid card number: must contain only digits")
		}
		digits = append(digits, int(r-'0'))
	}

	if len(digits) < 13 || len(digits) > 19 {
		return fmt.Errorf("invalid card number length: must be 13-19 digits")
	}

	sum := 0
	isSecond := false

	for i := len(digits) - 1; i >= 0; i-- {
		digit := digits[i]

		if isSecond {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		isSecond = !isSecond
	}

	if sum%10 != 0 {
		return fmt.Errorf("invalid card number: failed Luhn check")
	}

	return nil
}

// ValidateAmount checks that a signed amount is a finite number
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("invalid amount: must be a finite number")
	}

	return nil
}

// ValidateTransactionTime rejects transactions that occur after now
func ValidateTransactionTime(occurredAt, now time.Time) error {
	if occurredAt.After(now) {
		return fmt.Errorf("transaction time %s is after current time %s",
			occurredAt.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}

	return nil
}
