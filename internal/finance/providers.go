package finance

import (
	"strings"

	"smarta/internal/domain"
)

// Provider is a bank or e-wallet that can be linked.
type Provider struct {
	ID       string             `json:"id"`
	Name     string             `json:"name"`
	FullName string             `json:"full_name,omitempty"`
	Type     domain.AccountType `json:"type"`
}

var providers = []Provider{
	{ID: "bca", Name: "BCA", FullName: "Bank Central Asia", Type: domain.AccountBank},
	{ID: "mandiri", Name: "Mandiri", FullName: "Bank Mandiri", Type: domain.AccountBank},
	{ID: "bni", Name: "BNI", FullName: "Bank Negara Indonesia", Type: domain.AccountBank},
	{ID: "bri", Name: "BRI", FullName: "Bank Rakyat Indonesia", Type: domain.AccountBank},
	{ID: "cimb", Name: "CIMB Niaga", FullName: "CIMB Niaga", Type: domain.AccountBank},
	{ID: "permata", Name: "Permata", FullName: "Permata Bank", Type: domain.AccountBank},
	{ID: "danamon", Name: "Danamon", FullName: "Bank Danamon", Type: domain.AccountBank},
	{ID: "bsi", Name: "BSI", FullName: "Bank Syariah Indonesia", Type: domain.AccountBank},
	{ID: "gopay", Name: "GoPay", Type: domain.AccountEWallet},
	{ID: "ovo", Name: "OVO", Type: domain.AccountEWallet},
	{ID: "dana", Name: "DANA", Type: domain.AccountEWallet},
	{ID: "shopeepay", Name: "ShopeePay", Type: domain.AccountEWallet},
	{ID: "linkaja", Name: "LinkAja", Type: domain.AccountEWallet},
	{ID: "flip", Name: "Flip", Type: domain.AccountEWallet},
}

// Providers lists the providers of one kind, or all when kind is empty.
func Providers(kind domain.AccountType) []Provider {
	var out []Provider
	for _, p := range providers {
		if kind == "" || p.Type == kind {
			out = append(out, p)
		}
	}
	return out
}

// FindProvider looks a provider up by ID or display name, case-insensitively.
func FindProvider(kind domain.AccountType, name string) (Provider, bool) {
	for _, p := range Providers(kind) {
		if strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Provider{}, false
}
