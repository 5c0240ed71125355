package models

import (
	"fmt"
	"strconv"
	"time"
)

// AttemptVideo is a reference to a clip filmed for one attempt. The
// URI points at a device file or media-library asset; nothing here
// touches the bytes.
type AttemptVideo struct {
	ID      string    `json:"id"`
	URI     string    `json:"uri"`
	Title   string    `json:"title"`
	AddedAt time.Time `json:"addedAt"`
}

// VideoKey identifies the attempt a video belongs to.
type VideoKey struct {
	SessionID     string
	HeightIn      float64
	AttemptNumber int
}

// String renders the key in its stored map form.
func (k VideoKey) String() string {
	return fmt.Sprintf("%s|%s|%d",
		k.SessionID,
		strconv.FormatFloat(k.HeightIn, 'f', -1, 64),
		k.AttemptNumber,
	)
}
