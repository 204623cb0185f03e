package model

import "encoding/base64"

// TransaksiStatus is the payment status of a transaksi.
type TransaksiStatus string

const (
	TransaksiStatusPending TransaksiStatus = "pending"
	TransaksiStatusLunas   TransaksiStatus = "lunas"
)

func (s TransaksiStatus) IsValid() bool {
	switch s {
	case TransaksiStatusPending, TransaksiStatusLunas:
		return true
	}
	return false
}

// CanTransitionTo enforces the one-way pending -> lunas transition.
func (s TransaksiStatus) CanTransitionTo(target TransaksiStatus) bool {
	return s == TransaksiStatusPending && target == TransaksiStatusLunas
}

// Transaksi links a user to an event purchase. Rows are created by the
// order flow with status pending and only ever mutated by the admin
// marking them lunas; they are never deleted.
type Transaksi struct {
	ID         int             `json:"id" db:"id"`
	IDUser     int             `json:"id_user" db:"id_user"`
	IDEvent    int             `json:"id_event" db:"id_event"`
	Harga      int             `json:"harga" db:"harga"`
	Jumlah     int             `json:"jumlah" db:"jumlah"`
	Total      int             `json:"total" db:"total"`
	Pembayaran string          `json:"pembayaran" db:"pembayaran"`
	Status     TransaksiStatus `json:"status" db:"status"`

	// Poster of the referenced event, populated by joined reads only.
	Poster []byte `json:"-" db:"-"`
}

func (t *Transaksi) PosterBase64() string {
	if len(t.Poster) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(t.Poster)
}

// CreateTransaksiParams is the order submission. Status is always set
// to pending by the service, not the client.
type CreateTransaksiParams struct {
	IDUser     int
	IDEvent    int
	Harga      int
	Jumlah     int
	Total      int
	Pembayaran string
}
