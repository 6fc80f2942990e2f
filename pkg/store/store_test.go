package store

import "time"

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
