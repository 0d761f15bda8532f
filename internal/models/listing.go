package models

import (
	"time"
)

type ListingLocation struct {
	Street     string `bson:"street" json:"street"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	City       string `bson:"city" json:"city"`
	Country    string `bson:"country" json:"country"`
}

type ListingHousing struct {
	TotalRoommates int     `bson:"totalRoommates" json:"totalRoommates"`
	Bathrooms      int     `bson:"bathrooms" json:"bathrooms"`
	PrivateArea    float64 `bson:"privateArea" json:"privateArea"`
}

type ListingDetails struct {
	PropertyType  string  `bson:"propertyType" json:"propertyType"`
	TotalArea     float64 `bson:"totalArea" json:"totalArea"`
	Rooms         int     `bson:"rooms" json:"rooms"`
	Floor         *int    `bson:"floor" json:"floor"`
	Furnished     bool    `bson:"furnished" json:"furnished"`
	AvailableDate string  `bson:"availableDate" json:"availableDate"`
	Rent          float64 `bson:"rent" json:"rent"`
	Title         string  `bson:"title" json:"title"`
	Description   string  `bson:"description" json:"description"`
}

type ListingContact struct {
	Name     string `bson:"name" json:"name"`
	Phone    string `bson:"phone" json:"phone"`
	Email    string `bson:"email" json:"email"`
	PhotoURL string `bson:"photoURL" json:"photoURL"`
}

// ListingMetadata identifies the owning account. UserID is immutable after
// creation; updates preserve it along with status and createdAt.
type ListingMetadata struct {
	UserID       string        `bson:"userId" json:"userId"`
	UserName     string        `bson:"userName" json:"userName"`
	UserEmail    string        `bson:"userEmail" json:"userEmail"`
	UserPhotoURL string        `bson:"userPhotoURL" json:"userPhotoURL"`
	CreatedAt    time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time     `bson:"updatedAt" json:"updatedAt"`
	Status       AccountStatus `bson:"status" json:"status"`
}

type Listing struct {
	ID       string          `bson:"_id,omitempty" json:"id"`
	Location ListingLocation `bson:"location" json:"location"`
	Housing  ListingHousing  `bson:"housing" json:"housing"`
	Details  ListingDetails  `bson:"details" json:"details"`
	Photos   []string        `bson:"photos" json:"photos"`
	Services []string        `bson:"services" json:"services"`
	Contact  ListingContact  `bson:"contact" json:"contact"`
	Metadata ListingMetadata `bson:"metadata" json:"metadata"`
}

// ListingForm is the inbound payload of listing create/update. Numeric fields
// arrive as strings and are parsed by the listing service.
type ListingForm struct {
	Street         string   `json:"street" binding:"required"`
	PostalCode     string   `json:"postalCode" binding:"required"`
	City           string   `json:"city" binding:"required"`
	Country        string   `json:"country" binding:"required"`
	TotalRoommates string   `json:"totalRoommates" binding:"required"`
	Bathrooms      string   `json:"bathrooms" binding:"required"`
	PrivateArea    string   `json:"privateArea" binding:"required"`
	PropertyType   string   `json:"propertyType" binding:"required"`
	TotalArea      string   `json:"totalArea" binding:"required"`
	Rooms          string   `json:"rooms" binding:"required"`
	Floor          string   `json:"floor"`
	Furnished      bool     `json:"furnished"`
	AvailableDate  string   `json:"availableDate"`
	Rent           string   `json:"rent" binding:"required"`
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Photos         []string `json:"photos"`
	Services       []string `json:"services"`
	ContactName    string   `json:"contactName"`
	ContactPhone   string   `json:"contactPhone"`
	ContactEmail   string   `json:"contactEmail"`
}
