package models

import "time"

// Organization documents carry a caller-supplied string id.

type Organization struct {
	ID                 string              `bson:"_id" json:"id"`
	OrganizationInfo   OrganizationInfo    `bson:"organization_info" json:"organizationInfo"`
	AddressInfo        *AddressInfo        `bson:"address_info,omitempty" json:"addressInfo,omitempty"`
	Programs           []Program           `bson:"programs,omitempty" json:"programs,omitempty"`
	ContactPersons     []ContactPerson     `bson:"contact_persons,omitempty" json:"contactPersons,omitempty"`
	EventRegistrations []EventRegistration `bson:"event_registrations" json:"eventRegistrations"`
	RegistrationStatus RegistrationStatus  `bson:"registration_status" json:"registrationStatus"`
	CreatedAt          time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt          time.Time           `bson:"updated_at" json:"updatedAt"`
}

type OrganizationInfo struct {
	LegalName          string `bson:"legal_name" json:"legalName"`
	CommonName         string `bson:"common_name,omitempty" json:"commonName,omitempty"`
	Acronym            string `bson:"acronym,omitempty" json:"acronym,omitempty"`
	OrganizationType   string `bson:"organization_type,omitempty" json:"organizationType,omitempty"`
	RegistrationNumber string `bson:"registration_number,omitempty" json:"registrationNumber,omitempty"`
	TaxID              string `bson:"tax_id,omitempty" json:"taxId,omitempty"`
	EstablishedDate    string `bson:"established_date,omitempty" json:"establishedDate,omitempty"`
	Website            string `bson:"website,omitempty" json:"website,omitempty"`
	Email              string `bson:"email,omitempty" json:"email,omitempty"`
	Phone              string `bson:"phone,omitempty" json:"phone,omitempty"`
	Logo               string `bson:"logo,omitempty" json:"logo,omitempty"`
}

type AddressInfo struct {
	Headquarters       Headquarters        `bson:"headquarters" json:"headquarters"`
	OperationalRegions []OperationalRegion `bson:"operational_regions,omitempty" json:"operationalRegions,omitempty"`
	FieldOffices       []FieldOffice       `bson:"field_offices,omitempty" json:"fieldOffices,omitempty"`
}

type Headquarters struct {
	Street  string `bson:"street,omitempty" json:"street,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	ZipCode string `bson:"zip_code,omitempty" json:"zipCode,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
}

type OperationalRegion struct {
	Region    string   `bson:"region" json:"region"`
	Countries []string `bson:"countries,omitempty" json:"countries,omitempty"`
	IsActive  bool     `bson:"is_active" json:"isActive"`
}

type FieldOffice struct {
	Name    string `bson:"name" json:"name"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
}

type Program struct {
	Name        string `bson:"name" json:"name"`
	Sector      string `bson:"sector,omitempty" json:"sector,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	IsActive    bool   `bson:"is_active" json:"isActive"`
}

type ContactPerson struct {
	Name  string `bson:"name" json:"name"`
	Role  string `bson:"role,omitempty" json:"role,omitempty"`
	Email string `bson:"email,omitempty" json:"email,omitempty"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}

type EventRegistration struct {
	EventID      int       `bson:"event_id" json:"eventId"`
	Status       string    `bson:"status" json:"status"` // registered
	RegisteredAt time.Time `bson:"registered_at" json:"registeredAt"`
}

type RegistrationStatus struct {
	ApprovalStatus string     `bson:"approval_status" json:"approvalStatus"` // pending, approved
	ReviewedBy     string     `bson:"reviewed_by,omitempty" json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time `bson:"reviewed_at,omitempty" json:"reviewedAt,omitempty"`
}
