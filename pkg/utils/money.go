package utils

import "github.com/Rhymond/go-money"

// Invoice amounts are stored as integer cents; formatting is display-only.
func FormatCents(cents int64) string {
	return money.New(cents, money.AUD).Display()
}
