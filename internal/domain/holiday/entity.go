package holiday

import "time"

type Entry struct {
	ID        string
	Date      time.Time
	Label     string
	CreatedAt time.Time
}
