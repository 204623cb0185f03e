package model

import (
	"encoding/base64"
	"time"
)

// Event is a ticketed happening with fixed stock, price and a poster
// image. The poster is raw bytes at rest; every rendered response
// carries it base64-encoded.
type Event struct {
	ID        int       `json:"id" db:"id"`
	NamaEvent string    `json:"nama_event" db:"nama_event"`
	Poster    []byte    `json:"-" db:"poster"`
	Lokasi    string    `json:"lokasi" db:"lokasi"`
	Harga     int       `json:"harga" db:"harga"`
	Tgl       time.Time `json:"tgl" db:"tgl"`
	Stok      int       `json:"stok" db:"stok"`
}

// PosterBase64 re-encodes the poster bytes to the transport-safe text
// form used by the template layer.
func (e *Event) PosterBase64() string {
	return base64.StdEncoding.EncodeToString(e.Poster)
}

func (e *Event) TglFormatted() string {
	return e.Tgl.Format("2006-01-02")
}

// UpdateEventParams carries a full field replace. Poster nil means the
// client submitted no new file and the stored bytes are kept.
type UpdateEventParams struct {
	NamaEvent string
	Lokasi    string
	Harga     int
	Tgl       time.Time
	Stok      int
	Poster    []byte
}
