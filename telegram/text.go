package telegram

const (
	TextDefault = "Use /start to open the dashboard."

	TextNotLoggedIn = "You are not logged in.\n" +
		"/login email password - log in\n" +
		"/register email password renter|host Full Name - sign up\n" +
		"/google email - log in with a Google account"

	TextLoggedOut = "You have been logged out."

	TextLoginUsage    = "Usage: /login email password"
	TextRegisterUsage = "Usage: /register email password renter|host Full Name"
	TextGoogleUsage   = "Usage: /google email"
	TextBookUsage     = "Usage: /book house_id 2024-01-01 2024-01-05"

	TextRegistered = "Account created, you can /login now."

	TextHostsOnly   = "Only hosts can do that."
	TextRentersOnly = "Only renters can do that."

	TextNewHouse  = "Fill in the form to list a new house:"
	TextEditHouse = "Open the form to edit the house:"

	TextNoHouses   = "No houses to show yet."
	TextNoBookings = "No bookings to show yet."
)
