// Package initdatatest builds signed init data the way Telegram does, for
// tests that need a request to get past the validator.
package initdatatest

import (
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/KirkDiggler/fortune/internal/initdata"
	"github.com/KirkDiggler/fortune/internal/models"
)

// Sign encodes fields as a query string and appends the matching hash
func Sign(botToken string, fields map[string]string) string {
	values := url.Values{}
	for k, v := range fields {
		values.Set(k, v)
	}

	hash := initdata.Sign(initdata.SecretKey(botToken), initdata.CheckString(fields))
	values.Set("hash", hash)

	return values.Encode()
}

// ForUser returns signed init data for user issued at authDate
func ForUser(botToken string, user *models.TelegramUser, authDate time.Time) string {
	userJSON, err := json.Marshal(user)
	if err != nil {
		panic(err)
	}

	return Sign(botToken, map[string]string{
		"auth_date": strconv.FormatInt(authDate.Unix(), 10),
		"query_id":  "AAHdF6IQAAAAAN0XohDhrOrc",
		"user":      string(userJSON),
	})
}
