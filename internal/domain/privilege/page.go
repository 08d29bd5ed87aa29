package privilege

// Page names the backend sections a role can be granted access to. The set is
// fixed; a page missing from a role's map counts as LevelNone.
type Page string

const (
	PageAppointments   Page = "appointments"
	PageCustomers      Page = "customers"
	PageServices       Page = "services"
	PageUsers          Page = "users"
	PageSystemSettings Page = "system_settings"
	PageUserSettings   Page = "user_settings"
)

// Pages returns every known page name.
func Pages() []Page {
	return []Page{
		PageAppointments,
		PageCustomers,
		PageServices,
		PageUsers,
		PageSystemSettings,
		PageUserSettings,
	}
}

func KnownPage(p Page) bool {
	for _, known := range Pages() {
		if p == known {
			return true
		}
	}
	return false
}
