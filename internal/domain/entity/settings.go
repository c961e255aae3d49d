package entity

// Settings is the back-office configuration form. It is accepted and echoed but never stored.
type Settings struct {
	SiteName             string `json:"siteName"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
	Theme                string `json:"theme"`
}

// DefaultSettings returns the values served when nothing has been configured.
func DefaultSettings() Settings {
	return Settings{
		SiteName:             "Storefront",
		NotificationsEnabled: true,
		Theme:                "light",
	}
}
