package models

// WorkingHours captures a tenant's open window for one weekday (0 = Sunday).
// The absence of a record for a weekday means the business is closed that day.
type WorkingHours struct {
	TenantID  string `bson:"tenantId" json:"tenantId"`
	Weekday   int    `bson:"weekday" json:"weekday"`
	IsOpen    bool   `bson:"isOpen" json:"isOpen"`
	OpenTime  string `bson:"openTime" json:"openTime"`   // "HH:MM", 24-hour
	CloseTime string `bson:"closeTime" json:"closeTime"` // "HH:MM", 24-hour
}
