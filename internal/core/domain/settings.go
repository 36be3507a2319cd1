package domain

// Settings is the singleton business configuration record.
type Settings struct {
	AdminEmail            string `json:"adminEmail"`
	OrderNotificationText string `json:"orderNotificationText"`
	BusinessHours         string `json:"businessHours"`
}

// DefaultSettings are synthesized whenever no settings record has been saved.
func DefaultSettings() Settings {
	return Settings{
		AdminEmail:            "admin@shefazol.com",
		OrderNotificationText: "תודה על הזמנתך בשפע-זול! פרטי ההזמנה:",
		BusinessHours:         "א-ה: 8:00-20:00, ו: 8:00-14:00",
	}
}
