package api

import (
	"encoding/json"
	"strconv"
)

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

func strconvQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
