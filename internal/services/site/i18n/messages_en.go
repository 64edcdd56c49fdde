package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	// Layout
	message.SetString(lang, "site.name", "T-Solutions")
	message.SetString(lang, "title.page", "%s | T-Solutions")
	message.SetString(lang, "nav.home", "Home")
	message.SetString(lang, "nav.services", "Services")
	message.SetString(lang, "nav.faqs", "FAQ")
	message.SetString(lang, "nav.reviews", "Reviews")
	message.SetString(lang, "nav.about", "About")
	message.SetString(lang, "nav.contact", "Contact")
	message.SetString(lang, "nav.login", "Log in")
	message.SetString(lang, "nav.logout", "Log out")
	message.SetString(lang, "footer.copy", "© T-Solutions")

	// Static pages
	message.SetString(lang, "home.heading", "Technology that works for your business")
	message.SetString(lang, "home.body", "We plan, build and maintain the IT your company depends on, so you can focus on your customers.")
	message.SetString(lang, "home.cta", "See our services")
	message.SetString(lang, "about.heading", "About us")
	message.SetString(lang, "about.body", "T-Solutions is a small team of engineers helping local businesses with networks, web and support.")
	message.SetString(lang, "contact.heading", "Contact")
	message.SetString(lang, "contact.body", "Reach us by email or phone on weekdays between 08:00 and 17:00.")
	message.SetString(lang, "contact.email", "Email")
	message.SetString(lang, "contact.phone", "Phone")

	// Resource pages
	message.SetString(lang, "list.empty", "Nothing here yet.")
	message.SetString(lang, "list.create", "Add new")
	message.SetString(lang, "list.db_error", "The list could not be loaded. Please try again later.")
	message.SetString(lang, "detail.not_found", "That entry does not exist.")
	message.SetString(lang, "detail.db_error", "The entry could not be loaded. Please try again later.")
	message.SetString(lang, "detail.edit", "Edit")
	message.SetString(lang, "detail.delete", "Delete")
	message.SetString(lang, "detail.back", "Back to list")
	message.SetString(lang, "form.create_heading", "New entry in %s")
	message.SetString(lang, "form.update_heading", "Edit entry in %s")
	message.SetString(lang, "form.create_submit", "Create")
	message.SetString(lang, "form.update_submit", "Save changes")
	message.SetString(lang, "review.grade", "%s/10")

	// Login
	message.SetString(lang, "login.heading", "Admin login")
	message.SetString(lang, "login.username", "Username")
	message.SetString(lang, "login.password", "Password")
	message.SetString(lang, "login.submit", "Log in")
	message.SetString(lang, "login.failed", "Wrong username or password.")
	message.SetString(lang, "notice.signed_in", "You are logged in.")
	message.SetString(lang, "notice.signed_out", "You are logged out.")

	// Errors
	message.SetString(lang, "error.not_found", "Page not found")
	message.SetString(lang, "error.internal", "Something went wrong")
	message.SetString(lang, "error.bad_request", "The form could not be read.")
	message.SetString(lang, "error.method_not_allowed", "That action is not available here.")
	message.SetString(lang, "error.forbidden_origin", "The request did not come from this site.")
	message.SetString(lang, "error.session_unavailable", "Sessions are unavailable right now. Please try again shortly.")
}
