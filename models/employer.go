package models

import "time"

// Employer is the persisted employer (manufacturer) profile.
type Employer struct {
	ID               string `json:"id" bson:"id"`
	Phone            string `json:"phone" bson:"phone"`
	RegistrationStep string `json:"registrationStep" bson:"registrationStep"`

	GSTIN        string `json:"gstin,omitempty" bson:"gstin,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
	PasswordHash string `json:"-" bson:"passwordHash,omitempty"`
	CompanyName  string `json:"companyName,omitempty" bson:"companyName,omitempty"`
	Industry     string `json:"industry,omitempty" bson:"industry,omitempty"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`

	ContactPersonName        string `json:"contactPersonName,omitempty" bson:"contactPersonName,omitempty"`
	ContactPersonPhone       string `json:"contactPersonPhone,omitempty" bson:"contactPersonPhone,omitempty"`
	ContactPersonDesignation string `json:"contactPersonDesignation,omitempty" bson:"contactPersonDesignation,omitempty"`
	ContactPersonEmail       string `json:"contactPersonEmail,omitempty" bson:"contactPersonEmail,omitempty"`
	CompanyDescription       string `json:"companyDescription,omitempty" bson:"companyDescription,omitempty"`
	CompanyLogoID            string `json:"companyLogoId,omitempty" bson:"companyLogoId,omitempty"`

	TokenHash string    `json:"-" bson:"tokenHash,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// GSTAddress is the principal place of business block returned by the GST
// provider. Field names follow the provider's payload.
type GSTAddress struct {
	Pncd string `json:"pncd"`
	Loc  string `json:"loc"`
	Stcd string `json:"stcd"`
	Bnm  string `json:"bnm"`
	Bno  string `json:"bno"`
	St   string `json:"st"`
}

// GSTInfo is the verified taxpayer summary. An empty Adadr means the provider
// had no address on file and the client falls back to manual entry.
type GSTInfo struct {
	Lgnm  string      `json:"lgnm"`
	Adadr *GSTAddress `json:"adadr"`
}
